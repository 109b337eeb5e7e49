// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package asset

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefName_FullNameForMostExtensions(t *testing.T) {
	for _, name := range []string{"style.css", "main.js", "data.json", "sprite.png", "font.ttf", "engine.wasm"} {
		a := Asset{Path: filepath.Join("game", name)}
		assert.Equal(t, name, a.RefName(), name)
	}
}

func TestRefName_WebmDropsExtension(t *testing.T) {
	a := Asset{Path: filepath.Join("game", "media", "intro.webm")}
	assert.Equal(t, "intro", a.RefName())
}

func TestWithSuffix(t *testing.T) {
	a := Asset{Path: filepath.Join("game", "images", "sprite.png")}
	renamed := a.WithSuffix("Ab12Cd34")

	assert.Equal(t, filepath.Join("game", "images", "sprite_Ab12Cd34.png"), renamed.Path)
	assert.Equal(t, "sprite_Ab12Cd34", renamed.Stem())
	assert.Equal(t, "png", renamed.Ext())
}

func TestRandomSuffix(t *testing.T) {
	alnum := regexp.MustCompile(`^[A-Za-z0-9]{8}$`)

	seen := map[string]bool{}
	for range 32 {
		s := RandomSuffix(DefaultSuffixLength)
		assert.Regexp(t, alnum, s)
		seen[s] = true
	}
	// Practically impossible to collide 32 times over a 62^8 space.
	assert.Greater(t, len(seen), 1)
}

func TestLocate_PatternMajorOrderAndAllowList(t *testing.T) {
	root := t.TempDir()
	files := []string{
		"media/intro.webm",
		"style.css",
		"index.html", // not an asset
		"main.js",
		"readme.txt", // not an asset
		"images/sprite.png",
	}
	for _, f := range files {
		p := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	assets, err := Locate(root)
	require.NoError(t, err)

	var names []string
	for _, a := range assets {
		names = append(names, a.Name())
	}
	// css, then js, then png, then webm; html and txt excluded.
	assert.Equal(t, []string{"style.css", "main.js", "sprite.png", "intro.webm"}, names)
}
