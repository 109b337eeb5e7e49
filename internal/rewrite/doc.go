// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

// Package rewrite updates asset references inside source files and performs
// the physical rename that completes a cache-busting operation.
package rewrite
