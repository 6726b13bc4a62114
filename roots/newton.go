// SPDX-License-Identifier: MIT
// Package: lvroot/roots
//
// newton.go - Newton–Raphson iteration.
//
// Contract:
//   - One seed p0 and a derivative df are required.
//   - Quadratic local convergence is assumed, not verified: the caller must
//     supply a seed close enough to a simple root.

package roots

import (
	"fmt"
	"math"
)

// Newton iterates p = p0 − f(p0)/df(p0) from the seed p0.
//
// Behavior highlights:
//   - df(p0) == 0 → ZeroDerivative with Iterations = current index (0 at the seed).
//   - |p − p0| < tol → Converged(p) with Iterations = index+1.
//   - Budget exhausted → NonConvergence with Iterations = MaxIterations.
//
// The Result interval is the degenerate [p0, p0].
// Errors: ErrBadTolerance, ErrBadIterations, ErrNilFunc, ErrNilDerivative.
func Newton(f, df Func, p0 float64, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("Newton: %w", err)
	}
	if f == nil {
		return Result{}, fmt.Errorf("Newton: %w", ErrNilFunc)
	}
	if df == nil {
		return Result{}, fmt.Errorf("Newton: %w", ErrNilDerivative)
	}

	return newton(f, df, p0, Interval{Lo: p0, Hi: p0}, cfg), nil
}

// newton is the unchecked kernel shared by Newton and NewtonRefiner.
func newton(f, df Func, p0 float64, iv Interval, cfg Config) Result {
	for i := 0; i < cfg.MaxIterations; i++ {
		d := df(p0)
		if d == 0 {
			return failed(NewtonRaphson, iv, ZeroDerivative, i)
		}
		p := p0 - f(p0)/d
		if math.Abs(p-p0) < cfg.Tolerance {
			return converged(NewtonRaphson, iv, p, i+1)
		}
		p0 = p
	}

	return failed(NewtonRaphson, iv, NonConvergence, cfg.MaxIterations)
}
