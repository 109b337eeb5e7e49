// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/c3tools/cachefix/internal/archive"
	"github.com/c3tools/cachefix/internal/asset"
	"github.com/c3tools/cachefix/internal/manifest"
	"github.com/c3tools/cachefix/internal/meta"
)

func InspectCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args[1:])

	archiveArg := cmd.Args().First()
	if archiveArg == "" {
		return errors.New("missing required argument: archive or extracted directory")
	}

	path, err := resolveArchive(ctx, cmd, archiveArg)
	if err != nil {
		return err
	}

	// An already-extracted directory is inspected as-is; an archive gets
	// expanded (or reused) first.
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	root := path
	if !fi.IsDir() {
		if root, err = archive.Expand(path); err != nil {
			return err
		}
	}

	assets, err := asset.Locate(root)
	if err != nil {
		return err
	}

	report, err := manifest.BuildReport(root, assets)
	if err != nil {
		return err
	}

	if cmd.String("output") == "json" {
		return report.WriteJSON(os.Stdout)
	}
	report.WriteText(os.Stdout)
	return nil
}

func InspectCommandBuilder(cmd *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "show the export manifest and asset inventory",
		UsageText: "cachefix inspect [options] <archive.zip | directory>",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewOutputFlag("inspect", m.Config.Source),
		},
		Action: InspectCommandAction,
	}
}
