package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/timing"
)

// newBenchCmd builds the "bench" command: measure the average search
// latency for a job.
func newBenchCmd() *cobra.Command {
	var trials int

	cmd := &cobra.Command{
		Use:   "bench <job.toml>",
		Short: "Measure the average coloring-search latency for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			job, err := LoadJob(args[0])
			if err != nil {
				return err
			}

			req := job.request()
			if trials > 0 {
				req.Trials = trials
			}
			if req.Trials <= 0 {
				req.Trials = timing.DefaultTrials
			}
			logger.Debug("measuring", "mode", job.Mode, "trials", req.Trials)

			out, err := job.run(req)
			if err != nil {
				return err
			}

			logger.Info("measurement complete",
				"mode", out.Mode, "colors", out.NumColors, "feasible", out.Feasible)
			fmt.Fprintf(cmd.OutOrStdout(), "average execution time: %.6f seconds\n", out.AvgSeconds)

			return nil
		},
	}

	cmd.Flags().IntVarP(&trials, "trials", "t", 0, "trial count (default from job file, else 1000)")

	return cmd
}

// itemName returns the singular item word for a mode.
func itemName(mode coloring.Mode) string {
	if mode == coloring.EdgeMode {
		return "edge"
	}

	return "vertex"
}
