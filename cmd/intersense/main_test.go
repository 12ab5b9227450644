package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/intersense/internal/adapters/telemetry"
	"go.trai.ch/intersense/internal/app"
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"intersense": func() int {
			return run(context.Background(), os.Args[1:], os.Stderr, graftProvider)
		},
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   filepath.Join("testdata", "script"),
		Setup: setupScript,
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"exitcode": cmdExitCode,
		},
	})
}

func setupScript(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}

// cmdExitCode runs a command and checks its exit status: exitcode CODE command [args...].
func cmdExitCode(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! exitcode")
	}
	if len(args) < 2 {
		ts.Fatalf("usage: exitcode CODE command [args...]")
	}

	want, err := strconv.Atoi(args[0])
	ts.Check(err)

	got := 0
	if err := ts.Exec(args[1], args[2:]...); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			ts.Fatalf("%s: %v", args[1], err)
		}
		got = exitErr.ExitCode()
	}

	if got != want {
		ts.Fatalf("%s exited with %d, want %d", args[1], got, want)
	}
}

func newComponents(t *testing.T) (*app.Components, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	application := app.New(
		mocks.NewMockCatalogueLoader(ctrl),
		mocks.NewMockCacheStore(ctrl),
		mocks.NewMockStructuralHasher(ctrl),
		nil,
		nil,
		mocks.NewMockWatcher(ctrl),
		log,
		telemetry.NewNoOpTracer(),
		domain.DefaultSettings(),
	)

	return app.NewComponents(application, log), log
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _ := newComponents(t)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 2 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 2, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_InvalidProject verifies that a missing project directory is fatal.
func TestRun_InvalidProject(t *testing.T) {
	components, log := newComponents(t)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrInvalidProjectPath.Error())
	})

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	missing := filepath.Join(t.TempDir(), "missing")
	exitCode := run(context.Background(), []string{missing}, new(bytes.Buffer), provider)

	assert.Equal(t, 2, exitCode)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "no domains", err: domain.ErrNoDomainsDetected, want: 1},
		{name: "stale", err: domain.ErrCacheStale, want: 3},
		{name: "no cache", err: domain.ErrNoCache, want: 4},
		{name: "wrapped outcome", err: zerr.Wrap(domain.ErrCacheStale, "check failed"), want: 3},
		{name: "fatal", err: domain.ErrCacheWriteFailed, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			if tt.want == 2 {
				log.EXPECT().Error(tt.err)
			}

			assert.Equal(t, tt.want, exitCode(tt.err, log))
		})
	}
}
