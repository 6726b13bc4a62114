package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvroot/roots"
)

// FieldError is a validation error for one configuration field.
type FieldError struct {
	// Field is the dotted path, e.g. "solver.tolerance".
	Field string

	// Message is a human-readable explanation.
	Message string
}

// Error returns "field: message".
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found in one pass.
type ValidationError struct {
	Errors []FieldError
}

// Error returns a formatted list of field errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}

	return sb.String()
}

// Has reports whether a field error was recorded for field.
func (e ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}

	return false
}

// Validate checks the whole configuration and returns a ValidationError
// listing every problem, or nil.
func Validate(cfg *Config) error {
	var errs []FieldError
	errs = append(errs, validateFunction(cfg)...)
	errs = append(errs, validateDomain(&cfg.Domain)...)
	errs = append(errs, validateSolver(&cfg.Solver)...)
	errs = append(errs, validateOutput(&cfg.Output)...)
	errs = append(errs, validateLog(&cfg.Log)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

func validateFunction(cfg *Config) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(cfg.Function.F) == "" {
		errs = append(errs, FieldError{Field: "function.f", Message: "must be set"})
	}
	if m, err := cfg.Method(); err == nil && roots.RequiresDerivative(m) && strings.TrimSpace(cfg.Function.DF) == "" {
		errs = append(errs, FieldError{Field: "function.df", Message: "required by the newton method"})
	}

	return errs
}

func validateDomain(d *DomainConfig) []FieldError {
	var errs []FieldError
	if !finite(d.Start) || !finite(d.End) || d.Start >= d.End {
		errs = append(errs, FieldError{
			Field:   "domain",
			Message: fmt.Sprintf("start (%g) must be < end (%g)", d.Start, d.End),
		})
	}
	if !finite(d.Step) || d.Step <= 0 {
		errs = append(errs, FieldError{Field: "domain.step", Message: fmt.Sprintf("must be > 0, got %g", d.Step)})
	}

	return errs
}

func validateSolver(s *SolverConfig) []FieldError {
	var errs []FieldError
	if _, err := roots.ParseMethod(s.Method); err != nil {
		errs = append(errs, FieldError{
			Field:   "solver.method",
			Message: fmt.Sprintf("unknown method %q (want bisection, secant or newton)", s.Method),
		})
	}
	if !finite(s.Tolerance) || s.Tolerance <= 0 {
		errs = append(errs, FieldError{Field: "solver.tolerance", Message: fmt.Sprintf("must be > 0, got %g", s.Tolerance)})
	}
	if s.MaxIterations < 1 {
		errs = append(errs, FieldError{Field: "solver.max_iterations", Message: fmt.Sprintf("must be >= 1, got %d", s.MaxIterations)})
	}
	if s.Workers < 1 {
		errs = append(errs, FieldError{Field: "solver.workers", Message: fmt.Sprintf("must be >= 1, got %d", s.Workers)})
	}

	return errs
}

func validateOutput(o *OutputConfig) []FieldError {
	switch o.Format {
	case FormatTable, FormatPlain:
		return nil
	}

	return []FieldError{{Field: "output.format", Message: fmt.Sprintf("unknown format %q (want table or plain)", o.Format)}}
}

func validateLog(l *LogConfig) []FieldError {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}

	return []FieldError{{Field: "log.level", Message: fmt.Sprintf("unknown level %q", l.Level)}}
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
