// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package fixer

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/c3tools/cachefix/internal/archive"
	"github.com/c3tools/cachefix/internal/asset"
	"github.com/c3tools/cachefix/internal/rewrite"
	"github.com/c3tools/cachefix/internal/scan"
)

// Options configure a fix run.
type Options struct {
	// SuffixLength is the length of the random stem suffix. Zero means
	// asset.DefaultSuffixLength.
	SuffixLength int

	// DryRun logs every planned rewrite and rename without touching the
	// filesystem beyond the initial extraction.
	DryRun bool
}

// Fix runs the whole pipeline against the archive: expand, locate assets,
// and for each asset rewrite every referencing source file before renaming
// the asset on disk. Assets are processed strictly one at a time; ctx is
// checked between assets so an interrupt lands on a consistent tree.
func Fix(ctx context.Context, archivePath string, opts Options) error {
	if opts.SuffixLength == 0 {
		opts.SuffixLength = asset.DefaultSuffixLength
	}

	if _, err := os.Stat(archivePath); err != nil {
		return fmt.Errorf("the specified file %q does not exist: %w", archivePath, err)
	}

	root, err := archive.Expand(archivePath)
	if err != nil {
		return err
	}

	assets, err := asset.Locate(root)
	if err != nil {
		return err
	}

	for _, a := range assets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		refs, err := scan.FindReferences(root, a)
		if err != nil {
			return err
		}

		renamed := a.WithSuffix(asset.RandomSuffix(opts.SuffixLength))

		if opts.DryRun {
			for _, ref := range refs {
				log.Infof("would replace %q with %q in %q", a.RefName(), renamed.RefName(), ref)
			}
			log.Infof("would rename the asset %q to %q", a.Path, renamed.Name())
			continue
		}

		// All rewrites must land before the physical rename so no source
		// file ever points at a missing asset.
		for _, ref := range refs {
			if err := rewrite.Rewrite(ref, a, renamed); err != nil {
				return err
			}
		}

		if err := rewrite.Rename(a, renamed); err != nil {
			return err
		}
	}

	log.Info("the run finished successfully")

	return nil
}
