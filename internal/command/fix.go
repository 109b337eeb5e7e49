// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/c3tools/cachefix/internal/fixer"
	mylog "github.com/c3tools/cachefix/internal/log"
	"github.com/c3tools/cachefix/internal/meta"
	"github.com/c3tools/cachefix/internal/remote"
)

func FixCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args[1:])

	if cmd.IsSet("color") {
		mylog.SetColor(cmd.Bool("color"))
	}

	archiveArg := cmd.Args().First()
	if archiveArg == "" {
		return errors.New("missing required argument: path to the exported game archive")
	}

	archivePath, err := resolveArchive(ctx, cmd, archiveArg)
	if err != nil {
		return err
	}

	opts := fixer.Options{
		SuffixLength: cmd.Int("suffix-length"),
		DryRun:       cmd.Bool("dry-run"),
	}

	return fixer.Fix(ctx, archivePath, opts)
}

func FixCommandBuilder(cmd *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "fix",
		Usage:     "rename assets and rewrite their references",
		UsageText: "cachefix fix [options] <archive.zip | s3://bucket/key.zip>",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			dryRunFlag,
			NewSuffixLengthFlag("fix", m.Config.Source),
			NewColorFlag("fix", m.Config.Source),
		},
		Action: FixCommandAction,
	}
}

// resolveArchive turns the archive argument into a local path, downloading
// it first when it lives in S3.
func resolveArchive(ctx context.Context, cmd *cli.Command, archiveArg string) (string, error) {
	if !remote.IsS3(archiveArg) {
		return archiveArg, nil
	}
	m := GetMeta(cmd)
	return remote.Fetch(ctx, archiveArg, m.StartingDir)
}
