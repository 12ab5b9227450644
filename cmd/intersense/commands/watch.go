package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/intersense/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [project]",
		Short: "Keep the domain cache fresh until interrupted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue, _ := cmd.Flags().GetString("catalogue")
			cachePath, _ := cmd.Flags().GetString("cache-path")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Root:      projectArg(args),
				Catalogue: catalogue,
				CachePath: cachePath,
			})
		},
	}
}
