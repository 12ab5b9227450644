// Package git queries version control history through the git CLI.
package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.History = (*History)(nil)

// sinceLayout is an ISO 8601 form git's date parser accepts for --since.
const sinceLayout = "2006-01-02T15:04:05-07:00"

// History implements ports.History by running git with a per-command timeout.
type History struct {
	timeout time.Duration
	logger  ports.Logger
}

// NewHistory creates a History whose git invocations are bounded by timeout.
func NewHistory(timeout time.Duration, logger ports.Logger) *History {
	if timeout <= 0 {
		timeout = domain.DefaultGitTimeout
	}
	return &History{timeout: timeout, logger: logger}
}

// IsRepository reports whether root contains a .git entry (directory or worktree file).
func (h *History) IsRepository(root string) bool {
	_, err := os.Stat(filepath.Join(root, domain.GitDirName))
	return err == nil
}

// IsShallow reports whether the clone at root has truncated history.
func (h *History) IsShallow(ctx context.Context, root string) (bool, error) {
	out, err := h.run(ctx, root, "rev-parse", "--is-shallow-repository")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "true", nil
}

// ChangedSince lists paths added, copied, deleted or modified by commits reachable from HEAD since t.
func (h *History) ChangedSince(ctx context.Context, root string, t time.Time) ([]string, error) {
	out, err := h.run(ctx, root, "log", "--since="+formatSince(t), "--diff-filter=ACDM", "--name-only", "--format=", "HEAD")
	if err != nil {
		return nil, err
	}

	lines := splitLines(out)
	seen := make(map[string]struct{}, len(lines))
	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		paths = append(paths, line)
	}
	return paths, nil
}

// RenamedSince lists renames recorded by commits reachable from HEAD since t.
func (h *History) RenamedSince(ctx context.Context, root string, t time.Time) ([]ports.Rename, error) {
	out, err := h.run(ctx, root, "log", "--since="+formatSince(t), "--diff-filter=R", "--name-status", "--format=", "HEAD")
	if err != nil {
		return nil, err
	}

	var renames []ports.Rename
	for _, line := range splitLines(out) {
		// R<score>\t<old>\t<new>
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		renames = append(renames, ports.Rename{From: fields[1], To: fields[2]})
	}
	return renames, nil
}

// run executes git in root and returns its stdout.
func (h *History) run(ctx context.Context, root string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	full := append([]string{"-c", "core.quotePath=off"}, args...)
	cmd := exec.CommandContext(ctx, "git", full...)
	cmd.Dir = root

	h.logger.Debug("executing git command", "args", strings.Join(args, " "), "timeout", h.timeout.String())

	output, err := cmd.Output()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrGitTimeout.Error()), "args", strings.Join(args, " "))
		}

		wrapped := zerr.With(zerr.Wrap(err, domain.ErrGitCommandFailed.Error()), "args", strings.Join(args, " "))
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			wrapped = zerr.With(wrapped, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", wrapped
	}
	return string(output), nil
}

func formatSince(t time.Time) string {
	return t.UTC().Format(sinceLayout)
}

func splitLines(out string) []string {
	lines := strings.Split(out, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
