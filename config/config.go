// Package config holds the run configuration of the lvroot CLI: which
// function to study, over which domain, with which refinement strategy, and
// where to put the results.
//
// A configuration is assembled in four layers, later layers winning:
//
//  1. Defaults (Default)
//  2. A YAML or TOML file (Load), chosen by extension
//  3. LVROOT_* environment variables (ApplyEnv)
//  4. Command-line flags (applied by the CLI)
//
// Validate is run after the last layer; a malformed configuration is rejected
// before any scanning or refinement begins.
package config

import (
	"github.com/katalvlaran/lvroot/roots"
)

// Config is the complete run configuration.
type Config struct {
	Function FunctionConfig `yaml:"function" toml:"function" envPrefix:"FUNCTION_"`
	Domain   DomainConfig   `yaml:"domain" toml:"domain" envPrefix:"DOMAIN_"`
	Solver   SolverConfig   `yaml:"solver" toml:"solver" envPrefix:"SOLVER_"`
	Output   OutputConfig   `yaml:"output" toml:"output" envPrefix:"OUTPUT_"`
	Log      LogConfig      `yaml:"log" toml:"log" envPrefix:"LOG_"`
}

// FunctionConfig defines f and, optionally, its derivative as expressions in x.
type FunctionConfig struct {
	// F is the function under study, e.g. "x^3 - 4*x^2 + 3".
	F string `yaml:"f" toml:"f" env:"F"`

	// DF is the derivative. Required for the newton method; when present it
	// also enables flat-root detection during the scan.
	DF string `yaml:"df" toml:"df" env:"DF"`
}

// DomainConfig bounds the scan.
type DomainConfig struct {
	Start float64 `yaml:"start" toml:"start" env:"START"`
	End   float64 `yaml:"end" toml:"end" env:"END"`
	Step  float64 `yaml:"step" toml:"step" env:"STEP"`
}

// SolverConfig selects the refinement strategy and its budget.
type SolverConfig struct {
	// Method is one of "bisection", "secant", "newton".
	Method string `yaml:"method" toml:"method" env:"METHOD"`

	Tolerance     float64 `yaml:"tolerance" toml:"tolerance" env:"TOLERANCE"`
	MaxIterations int     `yaml:"max_iterations" toml:"max_iterations" env:"MAX_ITERATIONS"`

	// Workers > 1 refines candidates concurrently.
	Workers int `yaml:"workers" toml:"workers" env:"WORKERS"`
}

// OutputConfig controls presentation and side outputs.
type OutputConfig struct {
	// Format is "table" or "plain".
	Format string `yaml:"format" toml:"format" env:"FORMAT"`

	// Database, when set, is the SQLite file runs are stored in.
	Database string `yaml:"database" toml:"database" env:"DATABASE"`

	// MetricsFile, when set, receives Prometheus text-format metrics after a run.
	MetricsFile string `yaml:"metrics_file" toml:"metrics_file" env:"METRICS_FILE"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level   string `yaml:"level" toml:"level" env:"LEVEL"`
	NoColor bool   `yaml:"no_color" toml:"no_color" env:"NO_COLOR"`
}

// Method resolves Solver.Method.
func (c *Config) Method() (roots.Method, error) {
	return roots.ParseMethod(c.Solver.Method)
}

// Tolerance returns the engine configuration derived from Solver.
func (c *Config) Tolerance() roots.Config {
	return roots.Config{Tolerance: c.Solver.Tolerance, MaxIterations: c.Solver.MaxIterations}
}
