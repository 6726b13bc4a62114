// SPDX-License-Identifier: MIT
// Package roots: tolerance and iteration budget.
//
// Config is pure data and is passed explicitly into every refiner call; the
// algorithms themselves hold no defaults. DefaultConfig is the single source
// of truth for callers that want one.

package roots

import (
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the distance between successive iterates (or the
	// bracket width for Bisection) below which an estimate is accepted.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations is the iteration budget per interval.
	DefaultMaxIterations = 50
)

// Config holds the convergence tolerance and the iteration budget.
//
// Invariants (checked by Validate):
//   - Tolerance is finite and > 0;
//   - MaxIterations >= 1.
type Config struct {
	Tolerance     float64 // convergence tolerance, > 0
	MaxIterations int     // iteration budget, >= 1
}

// DefaultConfig returns {DefaultTolerance, DefaultMaxIterations}.
func DefaultConfig() Config {
	return Config{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

// Validate enforces the Config invariants.
// Returns ErrBadTolerance or ErrBadIterations (wrapped with the offending value).
func (c Config) Validate() error {
	if c.Tolerance <= 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("Config.Validate: tolerance=%g: %w", c.Tolerance, ErrBadTolerance)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("Config.Validate: max iterations=%d: %w", c.MaxIterations, ErrBadIterations)
	}

	return nil
}

// BisectionBound returns ⌊log2(width/tol)⌋ + 1, the number of halvings
// Bisection needs to shrink a bracket of the given width strictly below tol.
// This equals ⌈log2(width/tol)⌉ except when width/tol is an exact power of
// two, where the strict comparison costs one more halving.
// Returns 0 when width < tol already or when inputs are not positive.
func BisectionBound(width, tol float64) int {
	if width <= 0 || tol <= 0 || width < tol {
		return 0
	}

	return int(math.Floor(math.Log2(width/tol))) + 1
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
