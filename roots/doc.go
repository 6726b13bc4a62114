// Package roots locates real roots of a scalar function over a bounded domain
// and refines every candidate to a requested precision.
//
// 🚀 What is inside?
//
//	The package is a two-stage pipeline:
//	  • Scan — walk [start, end] with a fixed step and emit candidate
//	    intervals (sign change, exact zero, or derivative sign change for
//	    flat/tangential roots).
//	  • Refine — apply one interchangeable strategy to every candidate:
//	      – Bisection      (bracketing, guaranteed halving)
//	      – Secant         (two seeds, superlinear, may leave the bracket)
//	      – Newton–Raphson (one seed + derivative, quadratic near simple roots)
//
// ✨ Key features:
//   - one Refiner contract; NewRefiner is the only place that dispatches on Method
//   - typed outcomes: every interval yields a Result with a Status and the
//     iteration count, failures never abort the batch
//   - explicit Config (tolerance + iteration budget), no hidden defaults
//   - optional bounded worker pool for batch refinement (WithWorkers)
//
// ⚙️ Usage:
//
//	f := func(x float64) float64 { return x*x*x - 4*x*x + 3 }
//
//	cfg := roots.DefaultConfig()
//	cfg.Tolerance = 1e-7
//
//	results, err := roots.FindRoots(roots.Bisection, f, nil, -10, 10, 0.1, cfg)
//	if err != nil {
//	  // malformed configuration (tolerance, step, domain, nil function)
//	}
//	for _, r := range results {
//	  if r.OK() {
//	    fmt.Printf("root %.6f after %d iterations\n", r.Root, r.Iterations)
//	  }
//	}
//
// Limitations:
//
//	A fixed-step scan can miss roots of even multiplicity or roots closer
//	together than the step. The engine does not verify continuity of f.
package roots
