package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nile-validator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `base: english.lng
translations:
  - dutch.lng
  - frisian.lng
ignore:
  - STR_WIP
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "english.lng", cfg.Base)
	assert.Equal(t, []string{"dutch.lng", "frisian.lng"}, cfg.Translations)
	assert.Equal(t, []string{"STR_WIP"}, cfg.Ignore)
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"dutch.lng", "frisian.lng"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	paths := expandGlobs([]string{filepath.Join(dir, "*.lng"), "missing.lng"})
	assert.Equal(t, []string{
		filepath.Join(dir, "dutch.lng"),
		filepath.Join(dir, "frisian.lng"),
		"missing.lng",
	}, paths)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := writeConfig(t, "base: [\n")
	_, err := loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestApplyConfig(t *testing.T) {
	path := writeConfig(t, `base: english.lng
translations:
  - dutch.lng
`)

	cmd := &checkCmd{Config: path}
	require.NoError(t, cmd.applyConfig())
	assert.Equal(t, "english.lng", cmd.Base)
	assert.Equal(t, []string{"dutch.lng"}, cmd.Translations)

	// Flags win over the file.
	cmd = &checkCmd{Config: path, Base: "other.lng"}
	require.NoError(t, cmd.applyConfig())
	assert.Equal(t, "other.lng", cmd.Base)
	assert.Equal(t, []string{"dutch.lng"}, cmd.Translations)

	// A missing default config is fine, the flags simply stay empty.
	cmd = &checkCmd{Config: defaultConfigFile}
	require.NoError(t, cmd.applyConfig())
	assert.Empty(t, cmd.Base)

	// A missing config named explicitly is an error.
	cmd = &checkCmd{Config: filepath.Join(t.TempDir(), "missing.yaml")}
	require.Error(t, cmd.applyConfig())
}
