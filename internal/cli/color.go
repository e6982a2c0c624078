package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newColorCmd builds the "color" command: run one coloring job and print
// the assignment or the infeasibility report.
func newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <job.toml>",
		Short: "Color the vertices or edges of a graph described by a job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			job, err := LoadJob(args[0])
			if err != nil {
				return err
			}
			logger.Debug("job loaded", "mode", job.Mode, "directed", job.Directed, "size", len(job.Matrix))

			req := job.request()
			req.Trials = 0 // timing belongs to the bench command
			out, err := job.run(req)
			if err != nil {
				return err
			}

			if !out.Feasible {
				fmt.Fprintf(cmd.OutOrStdout(),
					"cannot color the %s with %d colors\n", out.Mode, out.NumColors)
				return nil
			}

			logger.Info("coloring found", "mode", out.Mode, "colors", out.NumColors)
			for i, label := range out.Labels {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d: color %d (%s)\n",
					itemName(out.Mode), i, out.Assignment[i], label)
			}

			return nil
		},
	}
}
