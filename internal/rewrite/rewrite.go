// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package rewrite

import (
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/c3tools/cachefix/internal/asset"
	"github.com/c3tools/cachefix/internal/scan"
)

// Rewrite replaces every whole-word occurrence of oldAsset's reference name
// in sourceFile with newAsset's and writes the file back in full. The match
// rule is the same one the scanner uses, so tokens that merely contain the
// reference name are left alone.
func Rewrite(sourceFile string, oldAsset, newAsset asset.Asset) error {
	info, err := os.Stat(sourceFile)
	if err != nil {
		return fmt.Errorf("failed to stat source file %q: %w", sourceFile, err)
	}

	content, err := os.ReadFile(sourceFile)
	if err != nil {
		return fmt.Errorf("failed to read source file %q: %w", sourceFile, err)
	}

	re := scan.Pattern(oldAsset)
	occurrences := len(re.FindAllIndex(content, -1))
	replaced := re.ReplaceAllLiteralString(string(content), newAsset.RefName())

	if err := os.WriteFile(sourceFile, []byte(replaced), info.Mode()); err != nil {
		return fmt.Errorf("failed to write source file %q: %w", sourceFile, err)
	}

	log.Infof("replaced %d uses of %q with %q in %q",
		occurrences, oldAsset.RefName(), newAsset.RefName(), sourceFile)

	return nil
}

// Rename moves the asset file on disk to its suffixed path. Callers must
// rewrite every referencing source file first.
func Rename(oldAsset, newAsset asset.Asset) error {
	if err := os.Rename(oldAsset.Path, newAsset.Path); err != nil {
		return fmt.Errorf("failed to rename asset %q: %w", oldAsset.Path, err)
	}
	log.Infof("renamed the asset %q to %q", oldAsset.Path, newAsset.Name())
	return nil
}
