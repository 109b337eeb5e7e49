// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

// Package asset models cacheable game assets: discovery by extension,
// reference-name derivation, and the random-suffix rename operation.
package asset
