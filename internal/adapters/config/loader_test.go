package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/intersense/internal/adapters/config"
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeCatalogue(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeCatalogue(t, `
domains:
  - profile: game-simulation
    min_confidence: 0.4
    signals:
      directories: [scenes, ai/behavior]
      files: ["*.gd", project.godot]
      frameworks: [godot, bevy]
      keywords: [tick_rate, pathfinding]
  - profile: web-api
    signals:
      frameworks: [express]
`)

	catalogue, err := newLoader(t).Load(path)
	require.NoError(t, err)
	require.Len(t, catalogue.Domains, 2)

	game := catalogue.Domains[0]
	assert.Equal(t, "game-simulation", game.Profile)
	assert.InDelta(t, 0.4, game.MinConfidence, 1e-12)
	assert.Equal(t, []string{"scenes", "ai/behavior"}, game.Signals.Directories)
	assert.Equal(t, []string{"*.gd", "project.godot"}, game.Signals.Files)
	assert.Equal(t, []string{"godot", "bevy"}, game.Signals.Frameworks)
	assert.Equal(t, []string{"tick_rate", "pathfinding"}, game.Signals.Keywords)

	web := catalogue.Domains[1]
	assert.Equal(t, "web-api", web.Profile)
	assert.InDelta(t, domain.DefaultMinConfidence, web.MinConfidence, 1e-12)
	assert.Empty(t, web.Signals.Directories)
	assert.Empty(t, web.Signals.Keywords)

	assert.Regexp(t, `^[0-9a-f]{16}$`, catalogue.Fingerprint)
}

func TestLoader_Load_FingerprintTracksContent(t *testing.T) {
	a := writeCatalogue(t, "domains: []\n")
	b := writeCatalogue(t, "domains: []\n# edited\n")

	first, err := newLoader(t).Load(a)
	require.NoError(t, err)
	second, err := newLoader(t).Load(b)
	require.NoError(t, err)
	again, err := newLoader(t).Load(a)
	require.NoError(t, err)

	assert.NotEqual(t, first.Fingerprint, second.Fingerprint)
	assert.Equal(t, first.Fingerprint, again.Fingerprint)
	assert.Empty(t, first.Domains)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "invalid yaml",
			content:     "domains: [",
			errContains: domain.ErrCatalogueParseFailed.Error(),
		},
		{
			name:        "missing domains key",
			content:     "profiles: []\n",
			errContains: domain.ErrCatalogueParseFailed.Error(),
		},
		{
			name:        "missing profile",
			content:     "domains:\n  - signals:\n      files: [x]\n",
			errContains: domain.ErrMissingProfile.Error(),
		},
		{
			name:        "min_confidence above one",
			content:     "domains:\n  - profile: x\n    min_confidence: 1.5\n",
			errContains: domain.ErrInvalidMinConfidence.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeCatalogue(t, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestLoader_Load_NotFound(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCatalogueNotFound.Error())
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, config.Fingerprint([]byte("abc")), config.Fingerprint([]byte("abc")))
	assert.Len(t, config.Fingerprint(nil), 16)
}
