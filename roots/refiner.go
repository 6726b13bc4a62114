// SPDX-License-Identifier: MIT
// Package: lvroot/roots
//
// refiner.go - the uniform Refiner contract and its three variants.
//
// Each variant derives its seeds from the candidate interval:
//   - Bisection: the interval itself is the bracket;
//   - Secant:    seeds x0 = Lo, x1 = Hi;
//   - Newton:    seed p0 = Midpoint().
//
// Refine assumes a validated Config and non-nil functions; RefineAll performs
// those checks once per batch.

package roots

import "fmt"

// Refiner turns one candidate interval into a Result.
// Implementations are stateless and safe for concurrent use.
type Refiner interface {
	// Method identifies the strategy.
	Method() Method

	// Refine runs the strategy on iv. df may be nil unless the strategy
	// requires a derivative (see RequiresDerivative).
	Refine(f, df Func, iv Interval, cfg Config) Result
}

// BisectionRefiner halves the candidate bracket.
type BisectionRefiner struct{}

// Method returns Bisection.
func (BisectionRefiner) Method() Method { return Bisection }

// Refine bisects iv.
func (BisectionRefiner) Refine(f, _ Func, iv Interval, cfg Config) Result {
	return bisect(f, iv, cfg)
}

// SecantRefiner runs the secant iteration seeded with the interval endpoints.
type SecantRefiner struct{}

// Method returns Secant.
func (SecantRefiner) Method() Method { return Secant }

// Refine iterates from (iv.Lo, iv.Hi).
func (SecantRefiner) Refine(f, _ Func, iv Interval, cfg Config) Result {
	return secant(f, iv.Lo, iv.Hi, iv, cfg)
}

const panicNilDerivative = "roots: NewtonRefiner.Refine: nil derivative"

// NewtonRefiner runs Newton–Raphson seeded with the interval midpoint.
type NewtonRefiner struct{}

// Method returns NewtonRaphson.
func (NewtonRefiner) Method() Method { return NewtonRaphson }

// Refine iterates from iv.Midpoint(). Panics when df is nil: that is a
// programmer error, which RefineAll and FindRoots report as ErrNilDerivative
// before refining anything.
func (NewtonRefiner) Refine(f, df Func, iv Interval, cfg Config) Result {
	if df == nil {
		panic(panicNilDerivative)
	}

	return newton(f, df, iv.Midpoint(), iv, cfg)
}

// NewRefiner is the single dispatch point from Method to strategy.
// Returns ErrUnknownMethod for values outside {Bisection, Secant, NewtonRaphson}.
func NewRefiner(m Method) (Refiner, error) {
	switch m {
	case Bisection:
		return BisectionRefiner{}, nil
	case Secant:
		return SecantRefiner{}, nil
	case NewtonRaphson:
		return NewtonRefiner{}, nil
	}

	return nil, fmt.Errorf("NewRefiner %d: %w", int(m), ErrUnknownMethod)
}

// RequiresDerivative reports whether the method cannot run without df.
func RequiresDerivative(m Method) bool { return m == NewtonRaphson }
