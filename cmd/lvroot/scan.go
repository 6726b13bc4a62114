package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroot/expr"
	"github.com/katalvlaran/lvroot/report"
	"github.com/katalvlaran/lvroot/roots"
)

func newScanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the candidate intervals of f over the domain",
		Long: `Scan samples f on a uniform grid and prints every interval that may
contain a root. Supplying --df also reports flat roots (extrema touching zero).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load(cmd.Flags())
			if err != nil {
				return err
			}
			logger := a.logger(cfg)

			f, df, err := compile(cfg)
			if err != nil {
				return err
			}
			intervals, err := roots.Scan(f.Func(), expr.FuncOf(df), cfg.Domain.Start, cfg.Domain.End, cfg.Domain.Step)
			if err != nil {
				return err
			}
			if err := evalErr(f, df); err != nil {
				return err
			}
			logger.Info("scan complete", "function", f.Source(), "candidates", len(intervals))

			return report.WriteIntervals(cmd.OutOrStdout(), intervals, report.Format(cfg.Output.Format))
		},
	}
	addProblemFlags(cmd.Flags(), a)

	return cmd
}
