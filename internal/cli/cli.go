// Package cli implements the chroma command-line interface — the thin
// presentation layer over the coloring engine.
//
// Commands:
//   - color: color the vertices or edges of a graph described by a TOML
//     job file and print the assignment (or the infeasibility report).
//   - bench: measure the average search latency for a job.
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the chroma CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "chroma",
		Short:        "chroma computes proper vertex and edge colorings of graphs",
		Long:         `chroma builds a graph from an adjacency matrix, searches for a proper vertex or edge coloring under a color budget, and reports the assignment or its infeasibility.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newColorCmd())
	root.AddCommand(newBenchCmd())

	return root.ExecuteContext(context.Background())
}
