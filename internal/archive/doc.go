// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

// Package archive expands the exported game ZIP into a working directory,
// reusing a previous extraction when one exists.
package archive
