// SPDX-License-Identifier: MIT
// Package roots_test contains shared fixtures.
//
// Purpose:
//   - Keep the reference functions in one place so every test and benchmark
//     exercises the same polynomials.

package roots_test

import (
	"math"

	"github.com/katalvlaran/lvroot/roots"
)

// cubic is x³ − 4x² + 3 with roots 1 and (3 ± √21)/2.
func cubic(x float64) float64 { return x*x*x - 4*x*x + 3 }

// dCubic is the derivative of cubic.
func dCubic(x float64) float64 { return 3*x*x - 8*x }

// quartic is x⁴ + x³ − 3x², which has a double (flat) root at 0.
func quartic(x float64) float64 { return x*x*x*x + x*x*x - 3*x*x }

// dQuartic is the derivative of quartic.
func dQuartic(x float64) float64 { return 4*x*x*x + 3*x*x - 6*x }

// sqr2 is x² − 2 with the positive root √2.
func sqr2(x float64) float64 { return x*x - 2 }

// dSqr2 is the derivative of sqr2.
func dSqr2(x float64) float64 { return 2 * x }

// cubicRoots lists the exact roots of cubic in ascending order.
var cubicRoots = []float64{(3 - math.Sqrt(21)) / 2, 1, (3 + math.Sqrt(21)) / 2}

// cfg returns a Config with the given tolerance and the default budget.
func cfg(tol float64) roots.Config {
	c := roots.DefaultConfig()
	c.Tolerance = tol

	return c
}

// containing returns the first interval containing x, or false.
func containing(ivs []roots.Interval, x float64) (roots.Interval, bool) {
	for _, iv := range ivs {
		if iv.Contains(x) {
			return iv, true
		}
	}

	return roots.Interval{}, false
}
