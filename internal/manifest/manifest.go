// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"

	"github.com/c3tools/cachefix/internal/asset"
)

// Construct exports have moved these fields around between engine releases,
// so each is probed at several paths.
var (
	nameKeys    = []string{"projectName", "properties.name", "name"}
	versionKeys = []string{"projectVersion", "properties.version", "version"}
	fileKeys    = []string{"fileList", "files", "resources"}
)

// Summary is what the export's own manifests say about the project.
type Summary struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	CachedFiles int    `json:"cached_files"`
}

// AssetInfo is one row of the inspect report.
type AssetInfo struct {
	Path    string `json:"path"`
	Type    string `json:"type"`
	Size    int64  `json:"size"`
	RefName string `json:"ref_name"`
}

// Report is the full inspect output for an extracted export.
type Report struct {
	Summary Summary     `json:"summary"`
	Assets  []AssetInfo `json:"assets"`
}

// Summarize reads the export's data.json and offline.json. Both manifests
// are optional; missing files or keys leave zero values.
func Summarize(root string) Summary {
	var s Summary

	if doc, err := os.ReadFile(filepath.Join(root, "data.json")); err == nil {
		s.Name = firstString(doc, nameKeys)
		s.Version = firstString(doc, versionKeys)
	} else {
		log.Debugf("no readable data.json under %q", root)
	}

	if doc, err := os.ReadFile(filepath.Join(root, "offline.json")); err == nil {
		for _, key := range fileKeys {
			if r := gjson.GetBytes(doc, key); r.IsArray() {
				s.CachedFiles = int(r.Get("#").Int())
				break
			}
		}
	}

	return s
}

// BuildReport assembles the inspect report for the given assets. Paths are
// reported relative to root.
func BuildReport(root string, assets []asset.Asset) (Report, error) {
	r := Report{Summary: Summarize(root)}

	for _, a := range assets {
		info, err := os.Stat(a.Path)
		if err != nil {
			return Report{}, fmt.Errorf("failed to stat asset %q: %w", a.Path, err)
		}

		rel, err := filepath.Rel(root, a.Path)
		if err != nil {
			rel = a.Path
		}

		r.Assets = append(r.Assets, AssetInfo{
			Path:    rel,
			Type:    a.Ext(),
			Size:    info.Size(),
			RefName: a.RefName(),
		})
	}

	return r, nil
}

// WriteText renders the report as a borderless table.
func (r Report) WriteText(w io.Writer) {
	if r.Summary.Name != "" {
		fmt.Fprintf(w, "Project: %s", r.Summary.Name)
		if r.Summary.Version != "" {
			fmt.Fprintf(w, " (%s)", r.Summary.Version)
		}
		fmt.Fprintln(w)
	}
	if r.Summary.CachedFiles > 0 {
		fmt.Fprintf(w, "Offline manifest: %d files\n", r.Summary.CachedFiles)
	}

	var rows [][]string
	for _, a := range r.Assets {
		rows = append(rows, []string{a.Path, a.Type, humanize.Bytes(uint64(a.Size)), a.RefName})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		Headers("Asset", "Type", "Size", "Reference").
		BorderHeader(false).
		Rows(rows...)

	fmt.Fprintln(w, t)
}

// WriteJSON emits the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// firstString returns the first non-empty string among the candidate gjson
// paths.
func firstString(doc []byte, keys []string) string {
	for _, key := range keys {
		if r := gjson.GetBytes(doc, key); r.Exists() && r.String() != "" {
			return r.String()
		}
	}
	return ""
}
