package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.True(t, cfg.Pretty)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.OutputDir)
	assert.Equal(t, SourceDefault, cfg.Sources["pretty"])
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outputDir: /tmp/exports\npretty: false\nverbose: true\n"), 0o644))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/exports", cfg.OutputDir)
	require.NotNil(t, cfg.Pretty)
	assert.False(t, *cfg.Pretty)
	require.NotNil(t, cfg.Verbose)
	assert.True(t, *cfg.Verbose)
	assert.Nil(t, cfg.JSON)
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("outputDir: [broken\n"), 0o644))

	_, err := loadConfigFile(path)
	assert.Error(t, err)
}

func TestMerge_OverlaysPresentValues(t *testing.T) {
	cfg := Defaults()
	pretty := false
	merge(cfg, &fileConfig{OutputDir: "/exports", Pretty: &pretty}, SourceLocal)

	assert.Equal(t, "/exports", cfg.OutputDir)
	assert.False(t, cfg.Pretty)
	assert.Equal(t, SourceLocal, cfg.Sources["outputDir"])
	assert.Equal(t, SourceLocal, cfg.Sources["pretty"])
	// Untouched values keep their default source.
	assert.Equal(t, SourceDefault, cfg.Sources["verbose"])
}

func TestMerge_AbsentValuesKeepPrevious(t *testing.T) {
	cfg := Defaults()
	merge(cfg, &fileConfig{OutputDir: "/global"}, SourceGlobal)
	merge(cfg, &fileConfig{}, SourceLocal)

	assert.Equal(t, "/global", cfg.OutputDir)
	assert.Equal(t, SourceGlobal, cfg.Sources["outputDir"])
	assert.True(t, cfg.Pretty)
}

func TestMerge_LocalWinsOverGlobal(t *testing.T) {
	cfg := Defaults()
	merge(cfg, &fileConfig{OutputDir: "/global"}, SourceGlobal)
	merge(cfg, &fileConfig{OutputDir: "/local"}, SourceLocal)

	assert.Equal(t, "/local", cfg.OutputDir)
	assert.Equal(t, SourceLocal, cfg.Sources["outputDir"])
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TRAKTPORT_OUTPUT_DIR", "/env/exports")
	t.Setenv("TRAKTPORT_PRETTY", "false")
	t.Setenv("TRAKTPORT_VERBOSE", "1")

	cfg := Defaults()
	applyEnv(cfg)

	assert.Equal(t, "/env/exports", cfg.OutputDir)
	assert.False(t, cfg.Pretty)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, SourceEnv, cfg.Sources["outputDir"])
}

func TestApplyEnv_UnsetLeavesDefaults(t *testing.T) {
	t.Setenv("TRAKTPORT_OUTPUT_DIR", "")
	t.Setenv("TRAKTPORT_PRETTY", "")
	t.Setenv("TRAKTPORT_VERBOSE", "")

	cfg := Defaults()
	applyEnv(cfg)

	assert.Empty(t, cfg.OutputDir)
	assert.True(t, cfg.Pretty)
	assert.False(t, cfg.Verbose)
}
