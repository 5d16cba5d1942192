package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowtasks/flowtext/pkg/config"
)

func TestColorMode_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.ColorAuto.IsValid())
	assert.True(t, config.ColorAlways.IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, "attachments", cfg.AttachmentsDir)
	assert.Empty(t, cfg.TagsFile)
	assert.Empty(t, cfg.TagBaseURL)
}

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := config.Load(config.LoadOptions{WorkingDir: t.TempDir()})
	require.NoError(t, err)

	assert.Empty(t, path)
	assert.Equal(t, config.Default().LogLevel, cfg.LogLevel)
}

func TestLoad_DiscoversWorkingDirFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, config.FileName)
	content := "log_level: debug\ncolor: never\ntags_file: tags.yaml\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	cfg, path, err := config.Load(config.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, file, path)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, "tags.yaml", cfg.TagsFile)
	// Unset keys keep their defaults.
	assert.Equal(t, "attachments", cfg.AttachmentsDir)
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("log_level: warn\n"), 0o644))

	cfg, path, err := config.Load(config.LoadOptions{ExplicitPath: file})
	require.NoError(t, err)

	assert.Equal(t, file, path)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingExplicitPathIsError(t *testing.T) {
	t.Parallel()

	_, _, err := config.Load(config.LoadOptions{
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yaml"),
	})
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(file, []byte("log_level: [\n"), 0o644))

	_, _, err := config.Load(config.LoadOptions{WorkingDir: dir})
	assert.Error(t, err)
}

func TestLoad_InvalidColorMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(file, []byte("color: rainbow\n"), 0o644))

	_, _, err := config.Load(config.LoadOptions{WorkingDir: dir})
	assert.Error(t, err)
}
