// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/apex/log"

	"github.com/c3tools/cachefix/internal/asset"
)

// SourceExtensions are the text-bearing file types scanned for asset
// references, in declaration order.
var SourceExtensions = []string{"html", "js", "json"}

// ErrNotReferenced reports an asset with zero referencing source files.
// Renaming such an asset would be unsafe, so this aborts the run.
var ErrNotReferenced = errors.New("asset is not referenced by any source file")

// maxLineSize accommodates minified bundles whose single line exceeds the
// bufio default of 64 KiB.
const maxLineSize = 16 << 20 // 16 MB

// Pattern compiles the whole-word match rule for an asset's reference name:
// the literal name bounded by word boundaries, so "icon" never matches
// inside "icon_large" but does match at line boundaries and next to
// punctuation. The rewriter uses the same rule.
func Pattern(a asset.Asset) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(a.RefName()) + `\b`)
}

// FindReferences returns every source file under root containing at least
// one whole-word occurrence of the asset's reference name. Each file appears
// once; the per-file scan stops at the first matching line. Zero matches
// across all source files is an ErrNotReferenced failure naming the asset.
func FindReferences(root string, a asset.Asset) ([]string, error) {
	sourceFiles, err := listSourceFiles(root)
	if err != nil {
		return nil, err
	}

	log.Debugf("looking for uses of the asset %q", a.Path)

	re := Pattern(a)

	var refs []string
	for _, sourceFile := range sourceFiles {
		found, err := fileContains(sourceFile, re)
		if err != nil {
			return nil, err
		}
		if found {
			log.Debugf("found a use of %q in %q", a.Path, sourceFile)
			refs = append(refs, sourceFile)
		}
	}

	if len(refs) == 0 {
		return nil, fmt.Errorf("%q: %w", a.Path, ErrNotReferenced)
	}

	return refs, nil
}

// listSourceFiles walks root once and returns source files grouped by
// extension in SourceExtensions order.
func listSourceFiles(root string) ([]string, error) {
	byExt := make(map[string][]string, len(SourceExtensions))
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		byExt[ext] = append(byExt[ext], path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, err)
	}

	var sourceFiles []string
	for _, ext := range SourceExtensions {
		sourceFiles = append(sourceFiles, byExt[ext]...)
	}
	return sourceFiles, nil
}

// fileContains scans path line by line and reports whether any line matches
// re, stopping at the first hit.
func fileContains(path string, re *regexp.Regexp) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open source file %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		if re.MatchString(scanner.Text()) {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("failed to read source file %q: %w", path, err)
	}

	return false, nil
}
