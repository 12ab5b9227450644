package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/intersense/internal/adapters/git"
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
	"go.trai.ch/intersense/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// repo is a throwaway git repository with deterministic commit dates.
type repo struct {
	t   *testing.T
	dir string
}

func newRepo(t *testing.T) *repo {
	t.Helper()
	requireGit(t)
	r := &repo{t: t, dir: t.TempDir()}
	r.git("2020-01-01T00:00:00Z", "init", "-q")
	return r
}

func (r *repo) git(date string, args ...string) {
	r.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
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
	require.NoError(r.t, err, string(out))
}

func (r *repo) write(name, content string) {
	r.t.Helper()
	full := filepath.Join(r.dir, filepath.FromSlash(name))
	require.NoError(r.t, os.MkdirAll(filepath.Dir(full), domain.DirPerm))
	require.NoError(r.t, os.WriteFile(full, []byte(content), domain.FilePerm))
}

func (r *repo) commit(date, msg string) {
	r.t.Helper()
	r.git(date, "add", "-A")
	r.git(date, "-c", "commit.gpgsign=false", "commit", "-q", "-m", msg)
}

func newHistory(t *testing.T) *git.History {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return git.NewHistory(5*time.Second, log)
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}

func TestHistory_IsRepository(t *testing.T) {
	h := newHistory(t)
	assert.False(t, h.IsRepository(t.TempDir()))

	r := newRepo(t)
	assert.True(t, h.IsRepository(r.dir))
}

func TestHistory_IsShallow(t *testing.T) {
	r := newRepo(t)
	r.write("README.md", "hello")
	r.commit("2024-01-01T00:00:00Z", "initial")

	shallow, err := newHistory(t).IsShallow(context.Background(), r.dir)
	require.NoError(t, err)
	assert.False(t, shallow)
}

func TestHistory_ChangedSince(t *testing.T) {
	r := newRepo(t)
	r.write("go.mod", "module example.com/a\n")
	r.commit("2024-01-01T00:00:00Z", "initial")

	r.write("main.go", "package main\n")
	r.write("web/package.json", "{}\n")
	r.commit("2025-01-01T00:00:00Z", "add web")

	r.write("main.go", "package main\n\nfunc main() {}\n")
	r.commit("2025-02-01T00:00:00Z", "edit main")

	h := newHistory(t)

	changed, err := h.ChangedSince(context.Background(), r.dir, mustTime(t, "2024-06-01T00:00:00Z"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"main.go", "web/package.json"}, changed)

	changed, err = h.ChangedSince(context.Background(), r.dir, mustTime(t, "2025-03-01T00:00:00Z"))
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestHistory_RenamedSince(t *testing.T) {
	r := newRepo(t)
	r.write("Makefile", "all:\n\techo build something reasonably long so rename detection is sure\n")
	r.commit("2024-01-01T00:00:00Z", "initial")

	r.git("2025-01-01T00:00:00Z", "mv", "Makefile", "build.mk")
	r.commit("2025-01-01T00:00:00Z", "rename")

	renames, err := newHistory(t).RenamedSince(context.Background(), r.dir, mustTime(t, "2024-06-01T00:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, []ports.Rename{{From: "Makefile", To: "build.mk"}}, renames)
}

func TestHistory_NoCommits(t *testing.T) {
	r := newRepo(t)

	_, err := newHistory(t).ChangedSince(context.Background(), r.dir, mustTime(t, "2024-06-01T00:00:00Z"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrGitCommandFailed.Error())
}

func TestHistory_CancelledContext(t *testing.T) {
	r := newRepo(t)
	r.write("README.md", "hello")
	r.commit("2024-01-01T00:00:00Z", "initial")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newHistory(t).ChangedSince(ctx, r.dir, mustTime(t, "2020-01-01T00:00:00Z"))
	require.Error(t, err)
}
