package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroot/config"
	"github.com/katalvlaran/lvroot/expr"
	"github.com/katalvlaran/lvroot/metrics"
	"github.com/katalvlaran/lvroot/report"
	"github.com/katalvlaran/lvroot/roots"
	"github.com/katalvlaran/lvroot/store"
	"github.com/katalvlaran/lvroot/watch"
)

func newSolveCmd(a *app) *cobra.Command {
	var watchConfig bool

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Scan the domain and refine every candidate interval",
		Long: `Solve scans f for candidate intervals and refines each one with the
selected method. Results are printed in input order; with --db the run is
stored, with --metrics-file Prometheus metrics are written after the run, and
with --watch the run is repeated whenever the config file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watchConfig && a.configFile == "" {
				return errors.New("--watch requires --config")
			}
			cfg, err := a.load(cmd.Flags())
			if err != nil {
				return err
			}
			logger := a.logger(cfg)

			reg := prometheus.NewRegistry()
			s := &solver{
				out:      cmd.OutOrStdout(),
				logger:   logger,
				metrics:  metrics.New(reg),
				gatherer: reg,
			}

			ctx := cmd.Context()
			err = s.solve(ctx, cfg)
			if !watchConfig {
				return err
			}
			if err != nil {
				logger.Error("solve failed", "error", err)
			}

			w, err := watch.New(a.configFile, 0, logger)
			if err != nil {
				return err
			}

			return w.Run(ctx, func() {
				cfg, err := a.load(cmd.Flags())
				if err != nil {
					logger.Error("configuration reload failed", "error", err)
					return
				}
				if err := s.solve(ctx, cfg); err != nil {
					logger.Error("solve failed", "error", err)
				}
			})
		},
	}
	addProblemFlags(cmd.Flags(), a)
	addSolverFlags(cmd.Flags(), a)
	cmd.Flags().BoolVarP(&watchConfig, "watch", "w", false, "re-run whenever the config file changes")

	return cmd
}

// solver runs one scan+refine pass per call, sharing metrics across passes.
type solver struct {
	out      io.Writer
	logger   *slog.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

func (s *solver) solve(ctx context.Context, cfg *config.Config) (err error) {
	run := store.NewRun()
	logger := s.logger.With("run_id", run.ID)
	started := time.Now()

	defer func() {
		s.metrics.RecordRun(err)
		if cfg.Output.MetricsFile == "" {
			return
		}
		if werr := metrics.WriteTextfile(cfg.Output.MetricsFile, s.gatherer); werr != nil {
			err = errors.Join(err, werr)
		}
	}()

	method, err := cfg.Method()
	if err != nil {
		return err
	}
	refiner, err := roots.NewRefiner(method)
	if err != nil {
		return err
	}
	f, df, err := compile(cfg)
	if err != nil {
		return err
	}
	fn, dfn := f.Func(), expr.FuncOf(df)

	intervals, err := roots.Scan(fn, dfn, cfg.Domain.Start, cfg.Domain.End, cfg.Domain.Step)
	if err != nil {
		return err
	}
	s.metrics.AddCandidates(len(intervals))
	logger.Debug("scan complete", "candidates", len(intervals))

	results, err := roots.RefineAll(refiner, fn, dfn, intervals, cfg.Tolerance(),
		roots.WithContext(ctx),
		roots.WithWorkers(cfg.Solver.Workers),
		roots.WithObserver(s.metrics.Observe),
	)
	if err != nil {
		return err
	}
	if err := evalErr(f, df); err != nil {
		return err
	}

	if err := report.Write(s.out, results, report.Format(cfg.Output.Format)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.Output.Database != "" {
		run.Function, run.Derivative = cfg.Function.F, cfg.Function.DF
		run.Method = method
		run.Start, run.End, run.Step = cfg.Domain.Start, cfg.Domain.End, cfg.Domain.Step
		run.Config = cfg.Tolerance()
		run.Results = results
		if err := persist(ctx, cfg.Output.Database, run, logger); err != nil {
			return err
		}
	}

	converged := 0
	for _, r := range results {
		if r.OK() {
			converged++
		}
	}
	logger.Info("solve complete",
		"method", method.String(),
		"candidates", len(intervals),
		"converged", converged,
		"elapsed", time.Since(started),
	)

	return nil
}

func persist(ctx context.Context, path string, run store.Run, logger *slog.Logger) error {
	st, err := store.Open(ctx, path, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if _, err := st.SaveRun(ctx, run); err != nil {
		return err
	}

	return nil
}
