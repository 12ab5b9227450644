package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/intersense/internal/adapters/config"
	"go.trai.ch/intersense/internal/core/domain"
)

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := config.LoadSettings(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestLoadSettings_File(t *testing.T) {
	dir := t.TempDir()
	content := `
catalogue: catalogues/domains.yaml
git_timeout: 2s
keyword_sample_limit: 8
weights:
  directories: 0.25
  files: 0.25
  frameworks: 0.25
  keywords: 0.25
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.SettingsFileName), []byte(content), domain.FilePerm))

	settings, err := config.LoadSettings(dir)
	require.NoError(t, err)

	assert.Equal(t, "catalogues/domains.yaml", settings.Catalogue)
	assert.Equal(t, 2*time.Second, settings.GitTimeout)
	assert.Equal(t, 8, settings.KeywordSampleLimit)
	assert.Equal(t, domain.DefaultDebounceWindow, settings.DebounceWindow)
	assert.Equal(t, domain.Weights{Directories: 0.25, Files: 0.25, Frameworks: 0.25, Keywords: 0.25}, settings.Weights)
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.SettingsFileName), []byte("git_timeout: 2s\n"), domain.FilePerm))

	t.Setenv("INTERSENSE_GIT_TIMEOUT", "9s")
	t.Setenv("INTERSENSE_CATALOGUE", "/etc/intersense/index.yaml")
	t.Setenv("INTERSENSE_KEYWORD_SAMPLE_LIMIT", "3")

	settings, err := config.LoadSettings(dir)
	require.NoError(t, err)

	assert.Equal(t, 9*time.Second, settings.GitTimeout)
	assert.Equal(t, "/etc/intersense/index.yaml", settings.Catalogue)
	assert.Equal(t, 3, settings.KeywordSampleLimit)
}

func TestLoadSettings_EnvWeights(t *testing.T) {
	t.Setenv("INTERSENSE_WEIGHTS_DIRECTORIES", "0.4")
	t.Setenv("INTERSENSE_WEIGHTS_FILES", "0.1")

	settings, err := config.LoadSettings(t.TempDir())
	require.NoError(t, err)

	assert.InDelta(t, 0.4, settings.Weights.Directories, 1e-12)
	assert.InDelta(t, 0.1, settings.Weights.Files, 1e-12)
}

func TestLoadSettings_LogFormatFromEnv(t *testing.T) {
	t.Setenv("INTERSENSE_LOG_FORMAT", "json")

	settings, err := config.LoadSettings(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.LogFormatJSON, settings.LogFormat)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "weights do not sum to one", content: "weights:\n  keywords: 0.9\n"},
		{name: "negative weight", content: "weights:\n  directories: 0.6\n  files: -0.1\n"},
		{name: "negative sample limit", content: "keyword_sample_limit: -1\n"},
		{name: "zero git timeout", content: "git_timeout: 0s\n"},
		{name: "malformed yaml", content: "git_timeout: [\n"},
		{name: "unknown log format", content: "log_format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, domain.SettingsFileName), []byte(tt.content), domain.FilePerm))

			_, err := config.LoadSettings(dir)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrConfigLoadFailed.Error())
		})
	}
}
