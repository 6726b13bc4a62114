package config

import "github.com/katalvlaran/lvroot/roots"

// Default values. Tolerance and iteration budget come from the engine so the
// two layers cannot drift apart.
const (
	DefaultStart   = -10.0
	DefaultEnd     = 10.0
	DefaultStep    = 0.1
	DefaultMethod  = "bisection"
	DefaultWorkers = 1
	DefaultFormat  = FormatTable
	DefaultLevel   = "info"
)

// Output formats.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// Default returns a configuration with every default applied and no function.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)

	return cfg
}

// ApplyDefaults fills zero-valued fields of a Config built in code. Domain
// bounds are only defaulted when both are zero, so an explicit [0, x] domain
// survives. Read does not use it on decoded files: there a zero is a value.
func ApplyDefaults(cfg *Config) {
	if cfg.Domain.Start == 0 && cfg.Domain.End == 0 {
		cfg.Domain.Start = DefaultStart
		cfg.Domain.End = DefaultEnd
	}
	if cfg.Domain.Step == 0 {
		cfg.Domain.Step = DefaultStep
	}
	if cfg.Solver.Method == "" {
		cfg.Solver.Method = DefaultMethod
	}
	if cfg.Solver.Tolerance == 0 {
		cfg.Solver.Tolerance = roots.DefaultTolerance
	}
	if cfg.Solver.MaxIterations == 0 {
		cfg.Solver.MaxIterations = roots.DefaultMaxIterations
	}
	if cfg.Solver.Workers == 0 {
		cfg.Solver.Workers = DefaultWorkers
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultFormat
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLevel
	}
}
