// SPDX-License-Identifier: MIT
// Package: lvroot/roots
//
// refine.go - batch orchestration.
//
// Purpose:
//   - Apply one Refiner to every candidate interval and collect one Result per
//     interval, in input order.
//   - Never let one interval's failure abort the batch: per-interval outcomes
//     are Result.Status values, only misconfiguration (and caller-requested
//     cancellation) is returned as an error.
//
// Concurrency:
//   - Default: sequential, deterministic, no goroutines.
//   - WithWorkers(n > 1): bounded worker pool (errgroup). Results land in
//     pre-sized slots, so order is preserved. f, df and the observer must be
//     safe for concurrent use in this mode.

package roots

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers keeps batch refinement sequential.
const DefaultWorkers = 1

const panicWorkersInvalid = "roots: WithWorkers: n must be >= 1"

// Option configures RefineAll / FindRoots.
type Option func(*options)

// options is the effective batch configuration after applying Option setters.
type options struct {
	ctx      context.Context
	workers  int
	observer func(Result)
}

// WithWorkers refines up to n intervals concurrently. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithContext makes the batch stop scheduling intervals once ctx is done;
// RefineAll then returns ctx.Err(). A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithObserver registers fn to be called once per produced Result
// (concurrently when WithWorkers(n > 1) is set).
func WithObserver(fn func(Result)) Option {
	return func(o *options) { o.observer = fn }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{ctx: context.Background(), workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// RefineAll applies r to every interval and returns one Result per interval,
// preserving input order.
//
// Implementation:
//   - Stage 1: reject nil r, invalid cfg, nil f, or a derivative-based method
//     without df. Nothing is evaluated when this fails.
//   - Stage 2: refine sequentially, or through a bounded pool with WithWorkers.
//
// Errors: ErrUnknownMethod (nil refiner), ErrBadTolerance, ErrBadIterations,
// ErrNilFunc, ErrNilDerivative, or ctx.Err() on cancellation.
func RefineAll(r Refiner, f, df Func, intervals []Interval, cfg Config, opts ...Option) ([]Result, error) {
	// Stage 1: validate once per batch.
	if r == nil {
		return nil, fmt.Errorf("RefineAll: nil refiner: %w", ErrUnknownMethod)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("RefineAll: %w", err)
	}
	if f == nil {
		return nil, fmt.Errorf("RefineAll: %w", ErrNilFunc)
	}
	if df == nil && RequiresDerivative(r.Method()) {
		return nil, fmt.Errorf("RefineAll %s: %w", r.Method(), ErrNilDerivative)
	}
	o := gatherOptions(opts)

	results := make([]Result, len(intervals))
	refineOne := func(i int) {
		results[i] = r.Refine(f, df, intervals[i], cfg)
		if o.observer != nil {
			o.observer(results[i])
		}
	}

	// Stage 2a: sequential path.
	if o.workers <= 1 {
		for i := range intervals {
			if err := o.ctx.Err(); err != nil {
				return nil, fmt.Errorf("RefineAll: %w", err)
			}
			refineOne(i)
		}

		return results, nil
	}

	// Stage 2b: bounded pool; intervals are independent.
	g, gctx := errgroup.WithContext(o.ctx)
	g.SetLimit(o.workers)
	for i := range intervals {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			refineOne(i)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("RefineAll: %w", err)
	}
	if err := o.ctx.Err(); err != nil {
		return nil, fmt.Errorf("RefineAll: %w", err)
	}

	return results, nil
}

// FindRoots scans [start, end] with the given step and refines every
// candidate with method m. It is Scan followed by RefineAll.
//
// Derivative use: df feeds both the flat-root scan rule and Newton–Raphson.
// Errors: any error of NewRefiner, Scan or RefineAll.
func FindRoots(m Method, f, df Func, start, end, step float64, cfg Config, opts ...Option) ([]Result, error) {
	r, err := NewRefiner(m)
	if err != nil {
		return nil, fmt.Errorf("FindRoots: %w", err)
	}
	// Validate the refinement side before scanning so nothing is evaluated
	// under a malformed configuration.
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("FindRoots: %w", err)
	}
	if df == nil && RequiresDerivative(m) {
		return nil, fmt.Errorf("FindRoots %s: %w", m, ErrNilDerivative)
	}
	intervals, err := Scan(f, df, start, end, step)
	if err != nil {
		return nil, fmt.Errorf("FindRoots: %w", err)
	}

	return RefineAll(r, f, df, intervals, cfg, opts...)
}
