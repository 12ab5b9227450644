package staleness_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/intersense/internal/adapters/cache"
	"go.trai.ch/intersense/internal/adapters/fs"
	"go.trai.ch/intersense/internal/adapters/git"
	"go.trai.ch/intersense/internal/adapters/telemetry"
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports/mocks"
	"go.trai.ch/intersense/internal/engine/staleness"
	"go.uber.org/mock/gomock"
)

// project is a real directory checked with the real cache, hasher and git adapters.
type project struct {
	t       *testing.T
	root    string
	store   *cache.Store
	hasher  *fs.Hasher
	checker *staleness.Checker
}

func newProject(t *testing.T) *project {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	p := &project{
		t:      t,
		root:   t.TempDir(),
		store:  cache.NewStore(),
		hasher: fs.NewHasher(),
	}
	p.checker = staleness.NewChecker(p.store, p.hasher, git.NewHistory(5*time.Second, log), telemetry.NewNoOpTracer(), log)

	p.write("go.mod", "module example.com/app\n\ngo 1.22\n")
	p.write("main.go", "package main\n\nfunc main() {}\n")
	return p
}

func (p *project) write(name, content string) {
	p.t.Helper()
	require.NoError(p.t, os.WriteFile(filepath.Join(p.root, name), []byte(content), domain.FilePerm))
}

func (p *project) git(date string, args ...string) {
	p.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = p.root
	cmd.Env = append(os.Environ(),
		"GIT_CONFIG_GLOBAL=/dev/null",
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_AUTHOR_NAME=test",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=test",
		"GIT_COMMITTER_EMAIL=test@example.com",
		"GIT_AUTHOR_DATE="+date,
		"GIT_COMMITTER_DATE="+date,
	)
	out, err := cmd.CombinedOutput()
	require.NoError(p.t, err, string(out))
}

func (p *project) cachePath() string {
	return domain.DefaultCachePath(p.root)
}

func (p *project) writeCache(mutate func(a *domain.CacheArtifact)) {
	p.t.Helper()
	a := &domain.CacheArtifact{
		CacheVersion: domain.CacheVersion,
		Domains:      []domain.DetectionResult{{Name: "cli-tool", Confidence: 0.5, Primary: true}},
		DetectedAt:   "2024-06-01T12:00:00Z",
	}
	mutate(a)
	require.NoError(p.t, p.store.Write(p.cachePath(), a))
}

func TestCheck_RepeatedWithoutChangesAgrees(t *testing.T) {
	tests := []struct {
		name    string
		git     bool
		setup   func(p *project)
		tier    string
		verdict domain.Verdict
	}{
		{
			name: "hash unchanged",
			setup: func(p *project) {
				hash := p.hasher.Hash(p.root)
				p.writeCache(func(a *domain.CacheArtifact) { a.StructuralHash = hash })
			},
			tier:    staleness.TierHash,
			verdict: domain.VerdictFresh,
		},
		{
			name: "hash changed",
			setup: func(p *project) {
				p.writeCache(func(a *domain.CacheArtifact) { a.StructuralHash = "sha256:0000" })
			},
			tier:    staleness.TierHash,
			verdict: domain.VerdictStale,
		},
		{
			name: "mtime before detection",
			setup: func(p *project) {
				p.writeCache(func(a *domain.CacheArtifact) { a.DetectedAt = "2099-01-01T00:00:00Z" })
			},
			tier:    staleness.TierMtime,
			verdict: domain.VerdictFresh,
		},
		{
			name: "mtime after detection",
			setup: func(p *project) {
				p.writeCache(func(a *domain.CacheArtifact) { a.DetectedAt = "2000-01-01T00:00:00Z" })
			},
			tier:    staleness.TierMtime,
			verdict: domain.VerdictStale,
		},
		{
			name: "manifest committed after detection",
			git:  true,
			setup: func(p *project) {
				p.writeCache(func(*domain.CacheArtifact) {})
			},
			tier:    staleness.TierGit,
			verdict: domain.VerdictStale,
		},
		{
			name: "nothing committed after detection",
			git:  true,
			setup: func(p *project) {
				p.writeCache(func(a *domain.CacheArtifact) { a.DetectedAt = "2099-01-01T00:00:00Z" })
			},
			tier:    staleness.TierGit,
			verdict: domain.VerdictFresh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProject(t)
			if tt.git {
				if _, err := exec.LookPath("git"); err != nil {
					t.Skip("git not installed")
				}
				p.git("2024-06-10T00:00:00Z", "init", "-q")
				p.git("2024-06-10T00:00:00Z", "add", "go.mod", "main.go")
				p.git("2024-06-10T00:00:00Z", "-c", "commit.gpgsign=false", "commit", "-q", "-m", "initial")
			}
			tt.setup(p)

			ctx := context.Background()
			first := p.checker.Check(ctx, p.root, p.cachePath())
			second := p.checker.Check(ctx, p.root, p.cachePath())

			assert.Equal(t, tt.tier, first.Tier, first.Reason)
			assert.Equal(t, tt.verdict, first.Verdict, first.Reason)
			assert.Equal(t, first, second)
		})
	}
}
