package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/reelcat/internal/catalog"
	"github.com/vmunix/reelcat/internal/config"
	"github.com/vmunix/reelcat/internal/server"
)

// newCatalogServer serves the real daemon handler over testdata/mcu.json.
func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat, err := catalog.LoadFile("testdata/mcu.json")
	require.NoError(t, err)

	h, err := server.NewHandler(server.Deps{
		Catalog: cat,
		Config:  config.Default(),
		Version: "test",
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestStatusCmd(t *testing.T) {
	srv := newCatalogServer(t)

	out, err := execute(t, "status", "--server", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "(ok)")
	assert.Contains(t, out, "Films:      10")
	assert.Contains(t, out, "Characters: 28")
}

func TestStatusCmd_JSON(t *testing.T) {
	srv := newCatalogServer(t)

	out, err := execute(t, "status", "--server", srv.URL, "--json")
	require.NoError(t, err)

	var status StatusResponse
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, "test", status.Version)
	assert.Equal(t, 10, status.Films)
}

func TestFilmsCmd_FilterAndSort(t *testing.T) {
	srv := newCatalogServer(t)

	out, err := execute(t, "films", "--server", srv.URL, "--character", "Loki", "--sort", "title")
	require.NoError(t, err)

	assert.Contains(t, out, "Showing 2 of 10 films featuring Loki, sorted by title")
	assert.Less(t, strings.Index(out, "The Avengers"), strings.Index(out, "Thor"))
	assert.NotContains(t, out, "Iron Man")
}

func TestFilmsCmd_All(t *testing.T) {
	srv := newCatalogServer(t)

	out, err := execute(t, "films", "--server", srv.URL, "--character", "Loki", "--all")
	require.NoError(t, err)

	assert.Contains(t, out, "- 2008  Iron Man")
	assert.Contains(t, out, "  2011  Thor")
}

func TestFilmsCmd_NoMatchSuggests(t *testing.T) {
	srv := newCatalogServer(t)

	out, err := execute(t, "films", "--server", srv.URL, "--character", "Iron Mann")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 0 of 10 films")
	assert.Contains(t, out, "Did you mean: Iron Man")
}

func TestFilmsCmd_BadSort(t *testing.T) {
	_, err := execute(t, "films", "--server", "http://127.0.0.1:1", "--sort", "rating")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUnknownSortKey)
}

func TestCharactersCmd(t *testing.T) {
	srv := newCatalogServer(t)

	out, err := execute(t, "characters", "--server", srv.URL)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Abomination", lines[0])
	assert.Equal(t, "28 characters", lines[len(lines)-1])
}

func TestCheckCmd(t *testing.T) {
	out, err := execute(t, "check", "testdata/mcu.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Films:      10")
	assert.Contains(t, out, "Years:      2008-2019")
	assert.Contains(t, out, "Characters: 28")
	assert.Contains(t, out, "Dataset OK")
}

func TestCheckCmd_JSON(t *testing.T) {
	out, err := execute(t, "check", "--json", "testdata/mcu.json")
	require.NoError(t, err)

	var r checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 10, r.Films)
	assert.Equal(t, 2008, r.FirstYear)
	assert.Equal(t, 2019, r.LastYear)
	assert.Len(t, r.Characters, 28)
}

func TestCheckCmd_Failures(t *testing.T) {
	dir := t.TempDir()
	notArray := filepath.Join(dir, "object.json")
	require.NoError(t, os.WriteFile(notArray, []byte(`{"title":"Thor"}`), 0644))
	malformed := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(malformed, []byte(`[{"title":`), 0644))

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", filepath.Join(dir, "nope.json"), os.ErrNotExist},
		{"not an array", notArray, catalog.ErrNotArray},
		{"malformed", malformed, catalog.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "check", tt.path)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSummarize_Empty(t *testing.T) {
	r := summarize("empty.json", catalog.New(nil))
	assert.Equal(t, 0, r.Films)
	assert.Zero(t, r.FirstYear)
	assert.Empty(t, r.Characters)

	var buf bytes.Buffer
	printCheckHuman(&buf, r)
	assert.NotContains(t, buf.String(), "Years")
}

func TestConfigInitAndTest(t *testing.T) {
	dir := t.TempDir()
	dataset := filepath.Join(dir, "mcu.json")
	data, err := os.ReadFile("testdata/mcu.json")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dataset, data, 0644))
	t.Setenv("REELCAT_DATASET", dataset)

	cfgPath := filepath.Join(dir, "reelcat", "config.toml")
	out, err := execute(t, "config", "init", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+cfgPath)
	assert.FileExists(t, cfgPath)

	_, err = execute(t, "config", "init", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", cfgPath, "--force")
	require.NoError(t, err)

	out, err = execute(t, "config", "test", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset:    "+dataset)
	assert.Contains(t, out, "Sort:       source order")
	assert.Contains(t, out, "Configuration valid!")
}

func TestConfigInit_WithFlags(t *testing.T) {
	dir := t.TempDir()
	dataset := filepath.Join(dir, "films.json")
	require.NoError(t, os.WriteFile(dataset, []byte("[]"), 0644))

	cfgPath := filepath.Join(dir, "config.toml")
	_, err := execute(t, "config", "init", cfgPath, "--dataset", dataset, "--title", "Phase One", "--sort", "year")
	require.NoError(t, err)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, dataset, cfg.Catalog.Path)
	assert.Equal(t, "Phase One", cfg.Catalog.Title)
	assert.Equal(t, "year", cfg.Catalog.SortOnLoad)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestConfigInit_BadSort(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	_, err := execute(t, "config", "init", cfgPath, "--sort", "rating")
	require.ErrorIs(t, err, catalog.ErrUnknownSortKey)
	assert.NoFileExists(t, cfgPath)
}

func TestConfigTest_Invalid(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	content := "[server]\nport = 99999\n\n[catalog]\npath = \"" + filepath.ToSlash(filepath.Join(dir, "missing.json")) + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	out, err := execute(t, "config", "test", cfgPath)
	require.Error(t, err)
	assert.Contains(t, out, "Validation errors:")
	assert.Contains(t, out, "server.port")
	assert.Contains(t, out, "catalog.path")
}
