// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

// Package manifest reads the export's own manifests (data.json,
// offline.json) and renders the inspect report.
package manifest
