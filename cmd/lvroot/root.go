package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvroot/config"
	"github.com/katalvlaran/lvroot/expr"
)

// Version is the semantic version (set by build flags).
var Version = "0.1.0"

// app holds the flag values shared by all subcommands.
type app struct {
	// Global flags
	configFile string
	logLevel   string
	noColor    bool
	format     string
	database   string

	// Problem flags
	f, df            string
	start, end, step float64

	// Solver flags
	method        string
	tolerance     float64
	maxIterations int
	workers       int
	metricsFile   string

	logOutput io.Writer
}

func newRootCmd() *cobra.Command {
	return newAppCmd(&app{logOutput: os.Stderr})
}

func newAppCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lvroot",
		Short: "lvroot - bracketed root finding for scalar functions",
		Long: `lvroot finds the real roots of f(x) over [start, end].

The domain is sampled on a uniform grid; every step where f changes sign,
hits zero, or (with a derivative) has a local extremum becomes a candidate
interval. Each candidate is then refined with bisection, secant or
Newton-Raphson. Per-interval failures are reported, never fatal.

Functions are written as expressions in x, e.g. "x^3 - 4*x^2 + 3" or
"cos(x) - x".`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "config file path (.yaml, .yml or .toml)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored log output")
	pf.StringVar(&a.format, "format", "", "output format: table or plain")
	pf.StringVar(&a.database, "db", "", "SQLite database holding run history")

	root.AddCommand(newScanCmd(a), newSolveCmd(a), newHistoryCmd(a))

	return root
}

// addProblemFlags binds the function and domain flags.
func addProblemFlags(fs *pflag.FlagSet, a *app) {
	fs.StringVar(&a.f, "f", "", "function of x")
	fs.StringVar(&a.df, "df", "", "derivative of f (required by newton)")
	fs.Float64Var(&a.start, "start", config.DefaultStart, "domain start")
	fs.Float64Var(&a.end, "end", config.DefaultEnd, "domain end")
	fs.Float64Var(&a.step, "step", config.DefaultStep, "scan step")
}

// addSolverFlags binds the refinement flags.
func addSolverFlags(fs *pflag.FlagSet, a *app) {
	fs.StringVarP(&a.method, "method", "m", config.DefaultMethod, "refinement method: bisection, secant or newton")
	fs.Float64Var(&a.tolerance, "tol", 0, "convergence tolerance (default 1e-10)")
	fs.IntVar(&a.maxIterations, "max-iter", 0, "iteration budget per interval (default 50)")
	fs.IntVar(&a.workers, "workers", config.DefaultWorkers, "intervals refined concurrently")
	fs.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus text-format metrics here after each run")
}

// read assembles defaults, file and environment, then applies the flags the
// user set explicitly. It does not validate.
func (a *app) read(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Read(a.configFile)
	if err != nil {
		return nil, err
	}
	a.applyFlags(fs, cfg)

	return cfg, nil
}

// load is read followed by config.Validate.
func (a *app) load(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := a.read(fs)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (a *app) applyFlags(fs *pflag.FlagSet, cfg *config.Config) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("log-level", func() { cfg.Log.Level = a.logLevel })
	set("no-color", func() { cfg.Log.NoColor = a.noColor })
	set("format", func() { cfg.Output.Format = a.format })
	set("db", func() { cfg.Output.Database = a.database })
	set("f", func() { cfg.Function.F = a.f })
	set("df", func() { cfg.Function.DF = a.df })
	set("start", func() { cfg.Domain.Start = a.start })
	set("end", func() { cfg.Domain.End = a.end })
	set("step", func() { cfg.Domain.Step = a.step })
	set("method", func() { cfg.Solver.Method = a.method })
	set("tol", func() { cfg.Solver.Tolerance = a.tolerance })
	set("max-iter", func() { cfg.Solver.MaxIterations = a.maxIterations })
	set("workers", func() { cfg.Solver.Workers = a.workers })
	set("metrics-file", func() { cfg.Output.MetricsFile = a.metricsFile })
}

func (a *app) logger(cfg *config.Config) *slog.Logger {
	return newLogger(a.logOutput, cfg.Log.Level, cfg.Log.NoColor)
}

// compile builds f and the optional derivative.
func compile(cfg *config.Config) (f, df *expr.Function, err error) {
	if f, err = expr.Compile(cfg.Function.F); err != nil {
		return nil, nil, err
	}
	if df, err = expr.Optional(cfg.Function.DF); err != nil {
		return nil, nil, err
	}

	return f, df, nil
}

// evalErr reports the first runtime error of f or df.
func evalErr(f, df *expr.Function) error {
	if err := f.Err(); err != nil {
		return err
	}
	if df != nil {
		return df.Err()
	}

	return nil
}
