// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

// Package remote fetches the exported game archive from S3 when the archive
// argument is an s3:// URI, e.g. a deploy bucket.
package remote
