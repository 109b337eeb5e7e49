// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

// cachefix is the main package for the cachefix command line tool. It wires
// the CLI, delegates to internal packages, and serves as the entry point.
package main
