// Package lvroot is a bracketed root finder for scalar functions: scan a
// domain for candidate intervals, then refine each one with bisection,
// secant or Newton–Raphson.
//
// 🚀 What is lvroot?
//
//	A small, dependency-light toolkit that brings together:
//		• Engine: interval scanning, three refiners behind one contract,
//		  typed per-interval outcomes, optional parallel refinement
//		• Expressions: f and f′ written as text ("x^3 - 4*x^2 + 3")
//		• Configuration: YAML/TOML files + LVROOT_* environment + flags
//		• Persistence: run history in SQLite
//		• Metrics: Prometheus counters and histograms, textfile export
//		• CLI: lvroot scan | solve | history
//
// ✨ Why choose lvroot?
//
//   - Failures are values – NotBracketed, DegenerateSecant, ZeroDerivative and
//     NonConvergence are reported per interval, never fatal to the batch
//   - Explicit budgets – tolerance and iteration cap are always visible
//   - Pure Go – no cgo (SQLite via modernc.org/sqlite, Lua via go-lua)
//
// Packages:
//
//	roots/   — Scan, Bisect, SecantMethod, Newton, Refiner, RefineAll, FindRoots
//	expr/    — expression compiler for f and f′
//	config/  — layered run configuration and validation
//	metrics/ — Prometheus collectors, pluggable as a RefineAll observer
//	store/   — SQLite run history
//	report/  — table / plain rendering of results
//	watch/   — re-run on configuration change
//	cmd/lvroot — the command-line tool
//
// Quick example:
//
//	f := func(x float64) float64 { return x*x*x - 4*x*x + 3 }
//	results, _ := roots.FindRoots(roots.Bisection, f, nil, -10, 10, 0.1, roots.DefaultConfig())
//
//	go install github.com/katalvlaran/lvroot/cmd/lvroot@latest
package lvroot
