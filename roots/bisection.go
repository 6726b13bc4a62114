// SPDX-License-Identifier: MIT
// Package: lvroot/roots
//
// bisection.go - bracket halving.
//
// States: Bracketed → Halving → {Converged, NonConvergence}; NotBracketed is
// decided before any halving.
//
// Contract:
//   - Iterations counts completed halvings, so a bracket of width w converges
//     within BisectionBound(w, tol) = ⌊log2(w/tol)⌋ + 1 iterations (one more
//     than ⌈log2(w/tol)⌉ when w/tol is a power of two, since hi−lo < tol is strict).
//   - On budget exhaustion the last midpoint is returned as Root together with
//     NonConvergence; callers decide whether it is good enough.

package roots

import "fmt"

// Bisect refines the bracket [lo, hi] by repeated halving.
//
// Implementation:
//   - Stage 1: validate cfg, f and lo < hi (fatal errors).
//   - Stage 2: fail with NotBracketed (0 iterations) when f(lo), f(hi) are both
//     > 0 or both < 0. An exact zero at an endpoint converges immediately.
//   - Stage 3: c = lo + (hi−lo)/2; accept c when f(c) == 0 or hi−lo < tol.
//     Keep [lo, c] when f(c)·f(lo) < 0, else [c, hi] (degenerate products go right).
//
// Errors: ErrBadTolerance, ErrBadIterations, ErrNilFunc, ErrBadDomain.
// Complexity: O(min(MaxIterations, BisectionBound(w, tol))) evaluations of f.
func Bisect(f Func, lo, hi float64, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("Bisect: %w", err)
	}
	if f == nil {
		return Result{}, fmt.Errorf("Bisect: %w", ErrNilFunc)
	}
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		return Result{}, fmt.Errorf("Bisect: [%g, %g]: %w", lo, hi, ErrBadDomain)
	}

	return bisect(f, Interval{Lo: lo, Hi: hi}, cfg), nil
}

// bisect is the unchecked kernel shared by Bisect and BisectionRefiner.
func bisect(f Func, iv Interval, cfg Config) Result {
	a, b := iv.Lo, iv.Hi // local copies, iv is never mutated
	fa, fb := f(a), f(b)

	switch {
	case (fa > 0 && fb > 0) || (fa < 0 && fb < 0):
		return failed(Bisection, iv, NotBracketed, 0)
	case fa == 0:
		return converged(Bisection, iv, a, 0)
	case fb == 0:
		return converged(Bisection, iv, b, 0)
	}

	var c float64
	for k := 0; k < cfg.MaxIterations; k++ {
		c = a + (b-a)/2
		fc := f(c)
		if fc == 0 || b-a < cfg.Tolerance {
			return converged(Bisection, iv, c, k)
		}
		if fc*fa < 0 {
			b = c // root in [a, c]
		} else {
			a, fa = c, fc // root in [c, b]
		}
	}

	// Budget exhausted: surface the last midpoint as an approximation.
	return Result{Interval: iv, Method: Bisection, Root: c, Iterations: cfg.MaxIterations, Status: NonConvergence}
}
