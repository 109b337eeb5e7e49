// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

// Package scan finds whole-word occurrences of asset reference names inside
// the html, js, and json sources of an extracted game.
package scan
