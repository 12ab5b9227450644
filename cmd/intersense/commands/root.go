// Package commands implements the CLI commands for intersense.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/intersense/internal/app"
	"go.trai.ch/intersense/internal/build"
)

// CLI represents the command line interface for intersense.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Detect(ctx context.Context, out io.Writer, opts app.DetectOptions) error
	CheckStale(ctx context.Context, opts app.CheckOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	SetVerbose(verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "intersense [project]",
		Short: "Detect the domains of a software project",
		Long: "intersense scores directory, file, dependency and keyword signals from a\n" +
			"domain catalogue and caches the result in <project>/.intersense/domains.yaml.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				c.app.SetVerbose(true)
			}
		},
		RunE: c.runRoot,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Trace the staleness checks and enable debug logging")
	rootCmd.PersistentFlags().StringP("catalogue", "c", "", "Path to the domain catalogue (default from configuration)")
	rootCmd.PersistentFlags().String("cache-path", "", "Cache location (default <project>/.intersense/domains.yaml)")
	rootCmd.Flags().Bool("no-cache", false, "Re-run detection even if a cache exists")
	rootCmd.Flags().Bool("json", false, "Print JSON instead of YAML")
	rootCmd.Flags().Bool("check-stale", false, "Only check the cache: exit 0 fresh, 3 stale, 4 no cache")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	project := projectArg(args)
	catalogue, _ := cmd.Flags().GetString("catalogue")
	cachePath, _ := cmd.Flags().GetString("cache-path")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	asJSON, _ := cmd.Flags().GetBool("json")
	checkStale, _ := cmd.Flags().GetBool("check-stale")

	if checkStale {
		return c.app.CheckStale(cmd.Context(), app.CheckOptions{
			Root:      project,
			CachePath: cachePath,
		})
	}

	return c.app.Detect(cmd.Context(), cmd.OutOrStdout(), app.DetectOptions{
		Root:      project,
		Catalogue: catalogue,
		CachePath: cachePath,
		NoCache:   noCache,
		JSON:      asJSON,
	})
}

func projectArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
