// SPDX-License-Identifier: MIT
// Package roots: sentinel error set.
//
// Two families live here:
//   - configuration sentinels, returned as `error` before any work starts;
//   - outcome sentinels, never returned directly by the engine but exposed via
//     Result.Err so callers can use errors.Is on per-interval failures.
//
// Every message is prefixed with "roots: ". Wrap with fmt.Errorf("ctx: %w", ErrX)
// when context is needed; callers match with errors.Is.

package roots

import "errors"

// Configuration errors (fatal for a call).
var (
	// ErrBadTolerance indicates a tolerance that is not a finite positive number.
	ErrBadTolerance = errors.New("roots: tolerance must be finite and > 0")

	// ErrBadIterations indicates an iteration budget below one.
	ErrBadIterations = errors.New("roots: max iterations must be >= 1")

	// ErrBadStep indicates a scan step that is not a finite positive number.
	ErrBadStep = errors.New("roots: step must be finite and > 0")

	// ErrBadDomain indicates start >= end or non-finite bounds.
	ErrBadDomain = errors.New("roots: domain requires finite start < end")

	// ErrNilFunc indicates that the function under study is nil.
	ErrNilFunc = errors.New("roots: function is nil")

	// ErrNilDerivative indicates Newton–Raphson was requested without a derivative.
	ErrNilDerivative = errors.New("roots: derivative is required")

	// ErrUnknownMethod indicates an unrecognised refinement method.
	ErrUnknownMethod = errors.New("roots: unknown method")
)

// Outcome errors (per interval, see Result.Err).
var (
	// ErrNotBracketed: f(lo) and f(hi) share a strict sign (Bisection only).
	ErrNotBracketed = errors.New("roots: interval does not bracket a sign change")

	// ErrDegenerateSecant: successive secant values coincide, the update is undefined.
	ErrDegenerateSecant = errors.New("roots: degenerate secant (f(x1) == f(x0))")

	// ErrZeroDerivative: the derivative vanished at the current Newton iterate.
	ErrZeroDerivative = errors.New("roots: zero derivative")

	// ErrNonConvergence: iteration budget exhausted before the tolerance was met.
	ErrNonConvergence = errors.New("roots: iteration budget exhausted")
)
