// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

// Package config loads the optional cachefix.yaml file and exposes typed,
// namespace-aware getters for its dotted keys.
package config
