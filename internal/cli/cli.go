// Package cli implements the powergrab command-line interface.
//
// # Commands
//
//   - run:  fly a pilot over the map of one day, or every day of a range,
//     and write the flight log, the GeoJSON trace and optional statistics.
//   - tour: print the visiting order of the positive stations of a map as
//     computed by the tour optimizer.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context and retrieved with loggerFromContext.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute builds the command tree and runs it under ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand returns the powergrab root command logging to logw.
func NewRootCommand(logw io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "powergrab",
		Short:        "PowerGrab drone simulator and route planner",
		Long:         `powergrab flies autonomous drones over daily PowerGrab maps, collecting coins and power from charging stations.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logw, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newTourCmd())

	return root
}
