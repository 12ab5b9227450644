// Package main is the entry point for the intersense domain detector.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/intersense/cmd/intersense/commands"
	"go.trai.ch/intersense/internal/app"
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
	_ "go.trai.ch/intersense/internal/wiring"
)

// Exit codes.
const (
	exitOK          = 0
	exitNoDomains   = 1
	exitFatal       = 2
	exitStale       = 3
	exitCacheAbsent = 4
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, graftProvider))
}

func graftProvider(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFatal
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	return exitCode(cli.Execute(ctx), components.Logger)
}

// exitCode maps outcome sentinels to their exit codes. Anything else is fatal
// and reported through the logger.
func exitCode(err error, log ports.Logger) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrNoDomainsDetected):
		return exitNoDomains
	case errors.Is(err, domain.ErrCacheStale):
		return exitStale
	case errors.Is(err, domain.ErrNoCache):
		return exitCacheAbsent
	default:
		log.Error(err)
		return exitFatal
	}
}
