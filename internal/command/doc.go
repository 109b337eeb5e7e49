// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for cachefix. It wires flags,
// validators, actions, and shell completion for subcommands.
package command
