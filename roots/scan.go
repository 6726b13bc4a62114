// SPDX-License-Identifier: MIT
// Package: lvroot/roots
//
// scan.go - fixed-step interval isolation.
//
// Purpose:
//   - Walk [start, end] with a fixed step and emit candidate intervals that are
//     likely to contain a simple root (sign change), an exact zero, or a
//     flat/tangential root (derivative sign change).
//
// Contract:
//   - Sample i is x_i = start + i*step, computed by multiplication so long
//     domains do not accumulate drift. The last interval is clipped to end.
//   - At most one interval per step, even when several rules fire.
//   - Every emitted interval has Lo < Hi: a step that rounds onto the previous
//     sample (step below the float spacing near x) is skipped.
//   - Completeness is NOT guaranteed: even-multiplicity roots without a
//     derivative, or roots closer than step, can be missed.
//
// AI-Hints:
//   - Halve the step (or pass the derivative) when two roots share one step.
//   - ScanSeq is restartable: ranging over the returned sequence twice
//     re-evaluates f and yields the same intervals.

package roots

import (
	"fmt"
	"iter"
	"math"
)

// Scan collects every candidate interval of f over [start, end].
//
// Emission rules for [lo, hi] (hi = min(lo+step, end)):
//
//	(a) f(lo)·f(hi) < 0            — simple sign change
//	(b) f(lo) == 0                 — exact zero at the left sample
//	(c) df != nil, df(lo)·df(hi) < 0 — flat/tangential root candidate
//
// Errors: ErrNilFunc, ErrBadStep, ErrBadDomain.
// Complexity: O(⌈(end−start)/step⌉) evaluations of f (and df).
func Scan(f, df Func, start, end, step float64) ([]Interval, error) {
	seq, err := ScanSeq(f, df, start, end, step)
	if err != nil {
		return nil, err
	}

	var out []Interval
	for iv := range seq {
		out = append(out, iv)
	}

	return out, nil
}

// ScanSeq validates the inputs and returns a restartable sequence of
// candidate intervals in ascending order. See Scan for the emission rules.
func ScanSeq(f, df Func, start, end, step float64) (iter.Seq[Interval], error) {
	// Stage 1: validate configuration before touching f.
	if f == nil {
		return nil, fmt.Errorf("Scan: %w", ErrNilFunc)
	}
	if step <= 0 || !isFinite(step) {
		return nil, fmt.Errorf("Scan: step=%g: %w", step, ErrBadStep)
	}
	if !isFinite(start) || !isFinite(end) || start >= end {
		return nil, fmt.Errorf("Scan: [%g, %g]: %w", start, end, ErrBadDomain)
	}
	// The sample count must fit an int; NaN and ±Inf fail the same test.
	count := math.Ceil((end - start) / step)
	if !(count < float64(math.MaxInt)) {
		return nil, fmt.Errorf("Scan: step=%g over [%g, %g]: too many samples: %w", step, start, end, ErrBadStep)
	}
	samples := int(count)

	// Stage 2: lazily walk the grid, reusing f(hi) as the next f(lo).
	return func(yield func(Interval) bool) {
		lo := start
		fLo := f(lo)
		var dLo float64
		if df != nil {
			dLo = df(lo)
		}
		for i := 0; i < samples && lo < end; i++ {
			hi := math.Min(start+float64(i+1)*step, end)
			if hi <= lo {
				continue
			}
			fHi := f(hi)
			emit := fLo*fHi < 0 || fLo == 0
			var dHi float64
			if df != nil {
				dHi = df(hi)
				emit = emit || dLo*dHi < 0
			}
			if emit && !yield(Interval{Lo: lo, Hi: hi}) {
				return
			}
			lo, fLo, dLo = hi, fHi, dHi
		}
	}, nil
}
