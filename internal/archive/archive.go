// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// maxFileSize caps a single extracted file as a guard against malformed or
// hostile archives.
const maxFileSize = 1 << 30 // 1 GB

// Expand extracts the ZIP at archivePath into a sibling directory named
// after the archive stem and returns that directory. If the directory
// already exists, extraction is skipped and the existing path returned
// untouched.
func Expand(archivePath string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(archivePath), filepath.Ext(archivePath))
	extractPath := filepath.Join(filepath.Dir(archivePath), stem)

	if _, err := os.Stat(extractPath); err == nil {
		log.Warnf("the directory %q already exists, skipping the extraction", extractPath)
		return extractPath, nil
	}

	log.Debugf("extracting %q to %q", archivePath, extractPath)

	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to open archive %q: %w", archivePath, err)
	}
	defer r.Close()

	var total uint64
	for _, f := range r.File {
		n, err := extractFile(f, extractPath)
		if err != nil {
			return "", fmt.Errorf("failed to extract %q: %w", f.Name, err)
		}
		total += n
	}

	log.Infof("extracted %q to %q (%s)", archivePath, extractPath, humanize.Bytes(total))

	return extractPath, nil
}

// extractFile writes a single archive entry below extractPath and returns
// the number of bytes written.
func extractFile(f *zip.File, extractPath string) (uint64, error) {
	targetPath := filepath.Join(extractPath, f.Name)

	// Prevent path traversal out of the extraction root.
	if !strings.HasPrefix(filepath.Clean(targetPath), filepath.Clean(extractPath)+string(os.PathSeparator)) {
		return 0, fmt.Errorf("illegal entry path %q", f.Name)
	}

	if f.FileInfo().IsDir() {
		return 0, os.MkdirAll(targetPath, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return 0, err
	}

	src, err := f.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	dst, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, f.Mode())
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	lr := &io.LimitedReader{R: src, N: maxFileSize}
	n, err := io.Copy(dst, lr)
	if err != nil {
		return 0, err
	}
	if lr.N == 0 {
		return 0, fmt.Errorf("entry exceeds maximum allowed size of %d bytes", int64(maxFileSize))
	}

	return uint64(n), nil
}
