// SPDX-License-Identifier: MIT
// Package: lvroot/roots
//
// secant.go - two-seed secant iteration.
//
// Contract:
//   - No bracket is required or maintained; iterates may leave the seed
//     interval. That is accepted behaviour, not a defect.
//   - x0 == x1 is legal input and degenerates at iteration 0.

package roots

import (
	"fmt"
	"math"
)

// SecantMethod iterates from seeds x0, x1.
//
// Algorithm Outline:
//  1. For i = 0..MaxIterations-1:
//     if f(x1) − f(x0) == 0 → DegenerateSecant, Iterations = i.
//     p = x0 − f(x0)·(x1−x0)/(f(x1)−f(x0))
//     if |p − x1| < tol → Converged(p), Iterations = i+1.
//     x0, x1 = x1, p
//  2. NonConvergence, Iterations = MaxIterations.
//
// The Result interval is [min(x0,x1), max(x0,x1)] of the seeds.
// Errors: ErrBadTolerance, ErrBadIterations, ErrNilFunc.
func SecantMethod(f Func, x0, x1 float64, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("SecantMethod: %w", err)
	}
	if f == nil {
		return Result{}, fmt.Errorf("SecantMethod: %w", ErrNilFunc)
	}

	return secant(f, x0, x1, Interval{Lo: math.Min(x0, x1), Hi: math.Max(x0, x1)}, cfg), nil
}

// secant is the unchecked kernel shared by SecantMethod and SecantRefiner.
func secant(f Func, x0, x1 float64, iv Interval, cfg Config) Result {
	f0, f1 := f(x0), f(x1)
	for i := 0; i < cfg.MaxIterations; i++ {
		denom := f1 - f0
		if denom == 0 {
			return failed(Secant, iv, DegenerateSecant, i)
		}
		p := x0 - f0*(x1-x0)/denom
		if math.Abs(p-x1) < cfg.Tolerance {
			return converged(Secant, iv, p, i+1)
		}
		x0, f0 = x1, f1
		x1, f1 = p, f(p)
	}

	return failed(Secant, iv, NonConvergence, cfg.MaxIterations)
}
