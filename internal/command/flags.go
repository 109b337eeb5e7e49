// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/c3tools/cachefix/internal/asset"
	mylog "github.com/c3tools/cachefix/internal/log"
)

var dryRunFlag *cli.BoolFlag = &cli.BoolFlag{
	Name:        "dry-run",
	Aliases:     []string{"n"},
	Usage:       "log planned rewrites and renames without touching the tree",
	HideDefault: true,
}

// NewSuffixLengthFlag constructs the suffix-length flag, backed by the
// namespaced and global suffix_length config keys.
func NewSuffixLengthFlag(ns string, cfgPath string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "suffix-length",
		Aliases: []string{"s"},
		Usage:   "length of the random suffix appended to asset stems",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CACHEFIX_SUFFIX_LENGTH"),
			yaml.YAML(ns+"."+"suffix_length", altsrc.StringSourcer(cfgPath)),
			yaml.YAML("suffix_length", altsrc.StringSourcer(cfgPath)),
		),
		Value: asset.DefaultSuffixLength,
		Validator: func(value int) error {
			return FlagValidators(value, SuffixLengthValidator)
		},
	}
}

// NewColorFlag constructs the color flag. The default follows the tty
// detection the logger performs at startup.
func NewColorFlag(ns string, cfgPath string) *cli.BoolWithInverseFlag {
	return &cli.BoolWithInverseFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored log output",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"color", altsrc.StringSourcer(cfgPath)),
			yaml.YAML("color", altsrc.StringSourcer(cfgPath)),
		),
		Value: mylog.ColorCapable(),
	}
}

// NewOutputFlag constructs the inspect output-format flag.
func NewOutputFlag(ns string, cfgPath string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"output", altsrc.StringSourcer(cfgPath)),
			yaml.YAML("output", altsrc.StringSourcer(cfgPath)),
		),
		Value: "text",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
}
