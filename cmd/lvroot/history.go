package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroot/report"
	"github.com/katalvlaran/lvroot/store"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit int
		runID string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored runs, or show one with --run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.read(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Output.Database == "" {
				return errors.New("history requires --db or output.database")
			}
			logger := a.logger(cfg)
			format := report.Format(cfg.Output.Format)
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			st, err := store.Open(ctx, cfg.Output.Database, logger)
			if err != nil {
				return err
			}
			defer st.Close()

			if runID != "" {
				run, err := st.Run(ctx, runID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Run:      %s\n", run.ID)
				fmt.Fprintf(out, "Created:  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
				fmt.Fprintf(out, "Function: %s\n", run.Function)
				if run.Derivative != "" {
					fmt.Fprintf(out, "Derivative: %s\n", run.Derivative)
				}
				fmt.Fprintf(out, "Method:   %s (tol %g, max %d iterations)\n", run.Method, run.Config.Tolerance, run.Config.MaxIterations)
				fmt.Fprintf(out, "Domain:   [%g, %g] step %g\n\n", run.Start, run.End, run.Step)

				return report.Write(out, run.Results, format)
			}

			runs, err := st.ListRuns(ctx, limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "no runs stored")
				return nil
			}

			return report.WriteRuns(out, runs, format)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to list (0 = all)")
	cmd.Flags().StringVar(&runID, "run", "", "show the results of one run")

	return cmd
}
