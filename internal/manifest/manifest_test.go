// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c3tools/cachefix/internal/asset"
)

func TestSummarize_ReadsBothManifests(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "data.json"),
		[]byte(`{"projectName": "Space Blaster", "projectVersion": "1.2.0"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "offline.json"),
		[]byte(`{"fileList": ["index.html", "main.js", "game.png"]}`), 0o644))

	s := Summarize(root)
	assert.Equal(t, "Space Blaster", s.Name)
	assert.Equal(t, "1.2.0", s.Version)
	assert.Equal(t, 3, s.CachedFiles)
}

func TestSummarize_AlternateKeys(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "data.json"),
		[]byte(`{"properties": {"name": "Old Export", "version": "0.9"}}`), 0o644))

	s := Summarize(root)
	assert.Equal(t, "Old Export", s.Name)
	assert.Equal(t, "0.9", s.Version)
}

func TestSummarize_MissingManifestsTolerated(t *testing.T) {
	s := Summarize(t.TempDir())
	assert.Empty(t, s.Name)
	assert.Zero(t, s.CachedFiles)
}

func TestBuildReport(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "media", "intro.webm")
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte("0123456789"), 0o644))

	r, err := BuildReport(root, []asset.Asset{{Path: p}})
	require.NoError(t, err)
	require.Len(t, r.Assets, 1)

	assert.Equal(t, filepath.Join("media", "intro.webm"), r.Assets[0].Path)
	assert.Equal(t, "webm", r.Assets[0].Type)
	assert.Equal(t, int64(10), r.Assets[0].Size)
	assert.Equal(t, "intro", r.Assets[0].RefName)
}

func TestReport_WriteJSONRoundTrips(t *testing.T) {
	r := Report{
		Summary: Summary{Name: "Game", CachedFiles: 2},
		Assets:  []AssetInfo{{Path: "game.png", Type: "png", Size: 42, RefName: "game.png"}},
	}

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, r, decoded)
}

func TestReport_WriteText(t *testing.T) {
	r := Report{
		Summary: Summary{Name: "Game", Version: "2.0"},
		Assets:  []AssetInfo{{Path: "game.png", Type: "png", Size: 42, RefName: "game.png"}},
	}

	var buf bytes.Buffer
	r.WriteText(&buf)

	out := buf.String()
	assert.Contains(t, out, "Project: Game (2.0)")
	assert.Contains(t, out, "game.png")
	assert.Contains(t, out, "42 B")
}
