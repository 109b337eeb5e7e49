// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/c3tools/cachefix/internal/config"
	"github.com/c3tools/cachefix/internal/meta"
)

// knownCommands are the namespaces config lookups can be scoped to.
var knownCommands = map[string]bool{
	"fix":        true,
	"inspect":    true,
	"completion": true,
}

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// The arg[1] immediately following the binary (arg[0]) is the cachefix
	// subcommand and also the namespace key for config values. The bare
	// invocation `cachefix <archive.zip>` behaves as fix, so anything that
	// is not a known command namespaces as fix.
	ns := "fix"
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") && knownCommands[args[1]] {
		ns = args[1]
	}

	cfg, err := config.Load(ns)
	if err != nil {
		return nil, err
	}

	sd, _ := os.Getwd()
	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:      "cachefix",
		Usage:     "cache busting for Construct 3 exported games",
		UsageText: "cachefix [command] <archive.zip | s3://bucket/key.zip>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "cachefix version info",
				HideDefault: true,
			},
		},
		// Bare invocation runs fix with defaults.
		Action: FixCommandAction,
		Metadata: map[string]any{
			"meta": m,
		},
	}

	app.Commands = append(app.Commands,
		FixCommandBuilder(app, m),
		InspectCommandBuilder(app, m),
		CompletionCommandBuilder(app, m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
