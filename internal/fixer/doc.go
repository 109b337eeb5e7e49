// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

// Package fixer orchestrates the cache-busting pipeline: expansion, asset
// discovery, reference scanning, and rewrite-then-rename per asset.
package fixer
