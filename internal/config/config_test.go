// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points CACHEFIX_CFG at a testdata config file.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("CACHEFIX_CFG", absPath)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	t.Setenv("CACHEFIX_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("fix")
	assert.NoError(t, err)
	assert.Empty(t, cfg.Source)

	// Getters fall back to defaults.
	n, err := cfg.GetInt("suffix_length", 8)
	assert.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestGetInt_NamespaceWins(t *testing.T) {
	setupTestConfig(t, "cachefix.yaml")

	cfg, err := Load("fix")
	require.NoError(t, err)

	// fix.suffix_length shadows the top-level suffix_length.
	n, err := cfg.GetInt("suffix_length")
	assert.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestGetInt_TopLevelFallback(t *testing.T) {
	setupTestConfig(t, "cachefix.yaml")

	cfg, err := Load("inspect")
	require.NoError(t, err)

	n, err := cfg.GetInt("suffix_length")
	assert.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestGetString(t *testing.T) {
	setupTestConfig(t, "cachefix.yaml")

	cfg, err := Load("inspect")
	require.NoError(t, err)

	s, err := cfg.GetString("output")
	assert.NoError(t, err)
	assert.Equal(t, "text", s)

	_, err = cfg.GetString("no_such_key")
	assert.Error(t, err)

	s, err = cfg.GetString("no_such_key", "fallback")
	assert.NoError(t, err)
	assert.Equal(t, "fallback", s)
}

func TestGetBool(t *testing.T) {
	setupTestConfig(t, "cachefix.yaml")

	cfg, err := Load("")
	require.NoError(t, err)

	b, err := cfg.GetBool("color")
	assert.NoError(t, err)
	assert.True(t, b)

	b, err = cfg.GetBool("missing", false)
	assert.NoError(t, err)
	assert.False(t, b)
}

func TestGetInt_WrongType(t *testing.T) {
	setupTestConfig(t, "cachefix.yaml")

	cfg, err := Load("inspect")
	require.NoError(t, err)

	_, err = cfg.GetInt("output")
	assert.Error(t, err)
}
