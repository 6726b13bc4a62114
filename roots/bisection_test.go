package roots_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvroot/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBisect_InvalidConfig ensures fatal configuration errors are returned
// as errors, not as per-interval outcomes.
func TestBisect_InvalidConfig(t *testing.T) {
	_, err := roots.Bisect(cubic, 0, 1, roots.Config{Tolerance: 0, MaxIterations: 10})
	assert.ErrorIs(t, err, roots.ErrBadTolerance)

	_, err = roots.Bisect(cubic, 0, 1, roots.Config{Tolerance: 1e-6, MaxIterations: 0})
	assert.ErrorIs(t, err, roots.ErrBadIterations)

	_, err = roots.Bisect(nil, 0, 1, roots.DefaultConfig())
	assert.ErrorIs(t, err, roots.ErrNilFunc)

	_, err = roots.Bisect(cubic, 1, 0, roots.DefaultConfig())
	assert.ErrorIs(t, err, roots.ErrBadDomain)
}

// TestBisect_CubicScenario bisects the bracket around x = 1 with tolerance
// 1e-7 and expects a root within 1e-6 of 1.
func TestBisect_CubicScenario(t *testing.T) {
	ivs, err := roots.Scan(cubic, nil, -10, 10, 0.1)
	require.NoError(t, err)
	iv, ok := containing(ivs, 1)
	require.True(t, ok)

	res, err := roots.Bisect(cubic, iv.Lo, iv.Hi, cfg(1e-7))
	require.NoError(t, err)
	assert.Equal(t, roots.Converged, res.Status)
	assert.InDelta(t, 1.0, res.Root, 1e-6)
}

// TestBisect_InteriorRoot uses a bracket with the root strictly inside.
func TestBisect_InteriorRoot(t *testing.T) {
	res, err := roots.Bisect(cubic, 0.9, 1.05, cfg(1e-7))
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.InDelta(t, 1.0, res.Root, 1e-6)
	assert.LessOrEqual(t, res.Iterations, roots.BisectionBound(0.15, 1e-7))
}

// TestBisect_IterationBound checks convergence within BisectionBound on every
// bracket of the cubic for several tolerances.
func TestBisect_IterationBound(t *testing.T) {
	ivs, err := roots.Scan(cubic, nil, -10, 10, 0.1)
	require.NoError(t, err)

	for _, tol := range []float64{1e-4, 1e-7, 1e-10} {
		for _, iv := range ivs {
			res, err := roots.Bisect(cubic, iv.Lo, iv.Hi, cfg(tol))
			require.NoError(t, err)
			require.Equal(t, roots.Converged, res.Status)
			assert.LessOrEqualf(t, res.Iterations, roots.BisectionBound(iv.Width(), tol),
				"interval %v tol %g", iv, tol)
			// |f(r)| is small relative to the local slope.
			assert.Less(t, math.Abs(cubic(res.Root)), 10*tol*math.Abs(dCubic(res.Root))+1e-12)
		}
	}
}

// TestBisect_NotBracketed verifies the immediate failure with zero
// iterations when both endpoints share a strict sign.
func TestBisect_NotBracketed(t *testing.T) {
	calls := 0
	f := func(x float64) float64 { calls++; return x*x + 1 }

	for _, iv := range []roots.Interval{{Lo: -3, Hi: 3}, {Lo: 0, Hi: 1}, {Lo: -5, Hi: -4}} {
		res, err := roots.Bisect(f, iv.Lo, iv.Hi, roots.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, roots.NotBracketed, res.Status)
		assert.Zero(t, res.Iterations)
		assert.False(t, res.HasRoot())
		assert.ErrorIs(t, res.Err(), roots.ErrNotBracketed)
	}
	assert.Equal(t, 6, calls, "only the endpoints are evaluated")

	// Both strictly negative.
	res, err := roots.Bisect(func(x float64) float64 { return -1 - x*x }, -1, 1, roots.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, roots.NotBracketed, res.Status)
}

// TestBisect_EndpointZero converges at an endpoint that is an exact root.
func TestBisect_EndpointZero(t *testing.T) {
	res, err := roots.Bisect(cubic, 1, 1.1, roots.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, roots.Converged, res.Status)
	assert.Equal(t, 1.0, res.Root)
	assert.Zero(t, res.Iterations)

	res, err = roots.Bisect(cubic, 0.9, 1, roots.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Root)
}

// TestBisect_NonConvergence exhausts a tiny budget and expects the last
// midpoint to be surfaced as an approximation.
func TestBisect_NonConvergence(t *testing.T) {
	res, err := roots.Bisect(cubic, 3.7, 3.8, roots.Config{Tolerance: 1e-10, MaxIterations: 3})
	require.NoError(t, err)
	assert.Equal(t, roots.NonConvergence, res.Status)
	assert.Equal(t, 3, res.Iterations)
	assert.True(t, res.HasRoot(), "bisection keeps its last midpoint")
	assert.InDelta(t, 3.7875, res.Root, 1e-12)
	assert.ErrorIs(t, res.Err(), roots.ErrNonConvergence)
}

// TestBisectionBound covers the analytic cap helper.
func TestBisectionBound(t *testing.T) {
	assert.Equal(t, 20, roots.BisectionBound(0.1, 1e-7))
	assert.Equal(t, 30, roots.BisectionBound(0.1, 1e-10))
	assert.Zero(t, roots.BisectionBound(1e-9, 1e-7))
	assert.Zero(t, roots.BisectionBound(0, 1e-7))
	assert.Equal(t, 1, roots.BisectionBound(1e-7, 1e-7), "width == tol still needs one halving")
	assert.Equal(t, 11, roots.BisectionBound(1, math.Ldexp(1, -10)))
}

// TestBisect_PowerOfTwoRatio pins the bound when width/tol is an exact power
// of two: the strict hi−lo < tol test needs log2(w/tol)+1 halvings.
func TestBisect_PowerOfTwoRatio(t *testing.T) {
	f := func(x float64) float64 { return x - 0.3 }
	tol := math.Ldexp(1, -10)

	res, err := roots.Bisect(f, 0, 1, roots.Config{Tolerance: tol, MaxIterations: 50})
	require.NoError(t, err)
	require.Equal(t, roots.Converged, res.Status)
	assert.Equal(t, 11, res.Iterations)
	assert.LessOrEqual(t, res.Iterations, roots.BisectionBound(1, tol))
	assert.InDelta(t, 0.3, res.Root, tol)
}
