// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c3tools/cachefix/internal/meta"
	"github.com/urfave/cli/v3"
)

func TestInitApp_CommandSet(t *testing.T) {
	t.Setenv("CACHEFIX_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", t.TempDir())

	app, err := InitApp(context.Background(), []string{"cachefix", "fix", "game.zip"})
	require.NoError(t, err)

	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"fix", "inspect", "completion"}, names)

	// Bare invocation must behave as fix.
	assert.NotNil(t, app.Action)
}

func TestGetMeta(t *testing.T) {
	m := meta.Meta{Args: []string{"cachefix", "fix"}}
	cmd := &cli.Command{Metadata: map[string]any{"meta": m}}
	assert.Equal(t, m, GetMeta(cmd))

	assert.Equal(t, meta.Meta{}, GetMeta(nil))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{}))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{Metadata: map[string]any{"meta": 42}}))
}

func TestOutputValidator(t *testing.T) {
	assert.NoError(t, OutputValidator("text"))
	assert.NoError(t, OutputValidator("json"))
	assert.Error(t, OutputValidator("yaml"))
}

func TestSuffixLengthValidator(t *testing.T) {
	assert.NoError(t, SuffixLengthValidator(4))
	assert.NoError(t, SuffixLengthValidator(8))
	assert.NoError(t, SuffixLengthValidator(32))
	assert.Error(t, SuffixLengthValidator(3))
	assert.Error(t, SuffixLengthValidator(33))
	assert.Error(t, SuffixLengthValidator("8"))
}
