package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/jsoncheck/internal/errors"
	"github.com/NielsdaWheelz/jsoncheck/internal/fs"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, found, err := Load(fs.NewRealFS(), filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, []string{".json"}, cfg.Extensions)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
version: 1
extensions: [".json", ".jsonc"]
exclude:
  - node_modules
  - "*.min.json"
workers: 3
strict: true
raw_strings: true
`)
	cfg, found, err := Load(fs.NewRealFS(), path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, Config{
		Version:    1,
		Extensions: []string{".json", ".jsonc"},
		Exclude:    []string{"node_modules", "*.min.json"},
		Workers:    3,
		Strict:     true,
		RawStrings: true,
	}, cfg)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "version: 1\nstrict: true\n")
	cfg, _, err := Load(fs.NewRealFS(), path)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{".json"}, cfg.Extensions)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, found, err := Load(fs.NewRealFS(), writeConfig(t, ""))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "version: 1\nindent: 2\n"},
		{"missing version", "strict: true\n"},
		{"wrong version", "version: 2\n"},
		{"bad yaml", "version: [1\n"},
		{"wrong type", "version: 1\nworkers: many\n"},
		{"empty extensions", "version: 1\nextensions: []\n"},
		{"extension without dot", "version: 1\nextensions: [json]\n"},
		{"bad exclude", "version: 1\nexclude: [\"[\"]\n"},
		{"zero workers", "version: 1\nworkers: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, _, err := Load(fs.NewRealFS(), path)
			require.Error(t, err)
			assert.Equal(t, errors.EInvalidConfig, errors.GetCode(err))

			ce, ok := errors.AsCheckError(err)
			require.True(t, ok)
			assert.Equal(t, path, ce.Details["config"])
		})
	}
}

func TestLoad_InvalidHints(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "version: 1\nindent: 2\n", "raw_strings"},
		{"missing version", "strict: true\n", "version: 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, _, err := Load(fs.NewRealFS(), path)
			ce, ok := errors.AsCheckError(err)
			require.True(t, ok)
			assert.Contains(t, ce.Details["hint"], tt.want)
			assert.Equal(t, path, ce.Details["config"])
		})
	}
}

func TestConfig_Filter(t *testing.T) {
	cfg := Default()
	cfg.Exclude = []string{"vendor"}
	f := cfg.Filter()
	assert.Equal(t, []string{".json"}, f.Extensions)
	assert.True(t, f.Excluded("vendor/a.json"))
}
