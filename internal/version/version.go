// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

// Package version holds the release version printed by --version.
package version

// Version is overridden at release time via -ldflags.
var Version = "v0.4.1-dev"
