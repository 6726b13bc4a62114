// SPDX-License-Identifier: MIT
// Package roots: core value types shared by the scanner, the refiners and the
// orchestrator.
//
// Contract:
//   - All types are plain values; a Result is never mutated after it is built.
//   - Refiners copy Interval bounds into locals, intervals are never shared.

package roots

import (
	"fmt"
	"math"
	"strings"
)

// Func maps a real number to a real number. It must be pure and total over
// the scanned domain. A nil derivative Func means "not supplied".
type Func func(x float64) float64

// Interval is a candidate region [Lo, Hi] with Lo < Hi.
type Interval struct {
	Lo float64 // left bound
	Hi float64 // right bound, strictly greater than Lo
}

// Width returns Hi - Lo.
func (iv Interval) Width() float64 { return iv.Hi - iv.Lo }

// Midpoint returns the centre of the interval without overflowing on large bounds.
func (iv Interval) Midpoint() float64 { return iv.Lo + (iv.Hi-iv.Lo)/2 }

// Contains reports whether x lies in the closed interval.
func (iv Interval) Contains(x float64) bool { return x >= iv.Lo && x <= iv.Hi }

// String formats the interval with six decimals, e.g. "[0.900000, 1.000000]".
func (iv Interval) String() string { return fmt.Sprintf("[%.6f, %.6f]", iv.Lo, iv.Hi) }

// Method names a refinement strategy.
type Method int

const (
	// Bisection halves a sign-changing bracket until it is narrower than the tolerance.
	Bisection Method = iota

	// Secant iterates on two seeds (the interval endpoints).
	Secant

	// NewtonRaphson iterates from the interval midpoint using the derivative.
	NewtonRaphson
)

// methodNames is the canonical spelling used by String and ParseMethod.
var methodNames = [...]string{
	Bisection:     "bisection",
	Secant:        "secant",
	NewtonRaphson: "newton",
}

// String returns the canonical lower-case name of the method.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod resolves a case-insensitive method name. "newton-raphson" and
// "newton_raphson" are accepted as aliases of "newton".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bisection", "bisect":
		return Bisection, nil
	case "secant":
		return Secant, nil
	case "newton", "newton-raphson", "newton_raphson", "newtonraphson":
		return NewtonRaphson, nil
	}

	return 0, fmt.Errorf("ParseMethod %q: %w", s, ErrUnknownMethod)
}

// Status is the tagged outcome of one refinement.
type Status int

const (
	// Converged: Root satisfies the tolerance criterion.
	Converged Status = iota

	// NotBracketed: f(lo) and f(hi) share a strict sign; detected before iterating.
	NotBracketed

	// DegenerateSecant: f(x1) == f(x0), the secant update is undefined.
	DegenerateSecant

	// ZeroDerivative: df vanished at the current Newton iterate.
	ZeroDerivative

	// NonConvergence: the iteration budget ran out.
	NonConvergence
)

var statusNames = [...]string{
	Converged:        "converged",
	NotBracketed:     "not-bracketed",
	DegenerateSecant: "degenerate-secant",
	ZeroDerivative:   "zero-derivative",
	NonConvergence:   "non-convergence",
}

// String returns the kebab-case name of the status.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}

	return statusNames[s]
}

// Result is the immutable outcome of refining one interval.
//
// Root holds:
//   - the accepted estimate when Status == Converged;
//   - the last bisection midpoint when Bisection reports NonConvergence;
//   - NaN otherwise.
//
// Iterations is the count consumed on success, or the iteration index at which
// the failure was detected.
type Result struct {
	Interval   Interval // candidate the refiner was given
	Method     Method   // strategy that produced the result
	Root       float64  // see type doc
	Iterations int      // see type doc
	Status     Status   // tagged outcome
}

// OK reports whether the refinement converged.
func (r Result) OK() bool { return r.Status == Converged }

// HasRoot reports whether Root carries a usable value (converged, or an
// approximate bisection midpoint).
func (r Result) HasRoot() bool { return !math.IsNaN(r.Root) }

// Err maps the status onto its outcome sentinel; nil when converged.
func (r Result) Err() error {
	switch r.Status {
	case Converged:
		return nil
	case NotBracketed:
		return ErrNotBracketed
	case DegenerateSecant:
		return ErrDegenerateSecant
	case ZeroDerivative:
		return ErrZeroDerivative
	default:
		return ErrNonConvergence
	}
}

// converged builds a successful Result.
func converged(m Method, iv Interval, root float64, iters int) Result {
	return Result{Interval: iv, Method: m, Root: root, Iterations: iters, Status: Converged}
}

// failed builds a failure Result with no usable root.
func failed(m Method, iv Interval, st Status, iters int) Result {
	return Result{Interval: iv, Method: m, Root: math.NaN(), Iterations: iters, Status: st}
}
