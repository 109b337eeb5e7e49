// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package asset

import (
	"fmt"
	"io/fs"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/apex/log"
)

// Patterns is the asset extension allow-list, in match order.
var Patterns = []string{"css", "js", "json", "png", "ttf", "wasm", "webm"}

// suffixAlphabet is the character set random suffixes are drawn from.
const suffixAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultSuffixLength is the length of the random stem suffix.
const DefaultSuffixLength = 8

// Asset is a file under the extraction root whose extension matches one of
// the Patterns.
type Asset struct {
	Path string
}

// Ext returns the extension without the leading dot.
func (a Asset) Ext() string {
	return strings.TrimPrefix(filepath.Ext(a.Path), ".")
}

// Name returns the base filename, stem plus extension.
func (a Asset) Name() string {
	return filepath.Base(a.Path)
}

// Stem returns the base filename without its extension.
func (a Asset) Stem() string {
	return strings.TrimSuffix(a.Name(), filepath.Ext(a.Path))
}

// RefName is the string used to detect and replace occurrences of the asset
// inside source files. Referencing code omits the .webm suffix, so for that
// extension the stem alone is the reference name.
func (a Asset) RefName() string {
	if a.Ext() == "webm" {
		return a.Stem()
	}
	return a.Name()
}

// WithSuffix returns the asset renamed to "{stem}_{suffix}", preserving
// directory and extension.
func (a Asset) WithSuffix(suffix string) Asset {
	name := fmt.Sprintf("%s_%s%s", a.Stem(), suffix, filepath.Ext(a.Path))
	return Asset{Path: filepath.Join(filepath.Dir(a.Path), name)}
}

func (a Asset) String() string {
	return a.Path
}

// RandomSuffix generates a random alphanumeric string of the given length.
func RandomSuffix(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))]
	}
	return string(b)
}

// Locate walks root and returns every file matching the Patterns allow-list.
// The result is ordered pattern-major (all css before all js, and so on);
// order within a pattern follows the filesystem walk.
func Locate(root string) ([]Asset, error) {
	log.Debugf("identifying the assets of the game in %q", root)

	byExt := make(map[string][]Asset, len(Patterns))
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		a := Asset{Path: path}
		byExt[a.Ext()] = append(byExt[a.Ext()], a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, err)
	}

	var assets []Asset
	for _, pattern := range Patterns {
		for _, a := range byExt[pattern] {
			log.Debugf("found an asset matching *.%s: %q", pattern, a.Path)
			assets = append(assets, a)
		}
	}

	log.Infof("identified %d assets", len(assets))

	return assets, nil
}
