package roots_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvroot/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSecant_Converges finds √2 from the seeds (1, 2).
func TestSecant_Converges(t *testing.T) {
	res, err := roots.SecantMethod(sqr2, 1, 2, roots.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, roots.Converged, res.Status)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-10)
	assert.Equal(t, 7, res.Iterations)
	assert.Equal(t, roots.Secant, res.Method)
}

// TestSecant_DegenerateSeeds covers the documented division-by-zero guard:
// identical seeds, or seeds with equal function values, fail at iteration 0.
func TestSecant_DegenerateSeeds(t *testing.T) {
	res, err := roots.SecantMethod(sqr2, 1.5, 1.5, roots.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, roots.DegenerateSecant, res.Status)
	assert.Zero(t, res.Iterations)
	assert.ErrorIs(t, res.Err(), roots.ErrDegenerateSecant)

	// f(-1) == f(1) for an even function.
	res, err = roots.SecantMethod(sqr2, -1, 1, roots.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, roots.DegenerateSecant, res.Status)
	assert.Zero(t, res.Iterations)
	assert.True(t, math.IsNaN(res.Root))
}

// TestSecant_DegenerateLater reports the iteration index where the secant
// collapsed when it happens after the first step.
func TestSecant_DegenerateLater(t *testing.T) {
	// Capped at 1: the first update from (0, 2) lands on x = 1, where f
	// already equals f(2), so the second difference is zero.
	f := func(x float64) float64 { return math.Min(2*x-1, 1) }
	res, err := roots.SecantMethod(f, 0, 2, roots.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, roots.DegenerateSecant, res.Status)
	assert.Equal(t, 1, res.Iterations)
}

// TestSecant_NonConvergence exhausts a two-iteration budget.
func TestSecant_NonConvergence(t *testing.T) {
	res, err := roots.SecantMethod(sqr2, 1, 2, roots.Config{Tolerance: 1e-10, MaxIterations: 2})
	require.NoError(t, err)
	assert.Equal(t, roots.NonConvergence, res.Status)
	assert.Equal(t, 2, res.Iterations)
	assert.False(t, res.HasRoot())
}

// TestSecant_InvalidConfig rejects malformed calls.
func TestSecant_InvalidConfig(t *testing.T) {
	_, err := roots.SecantMethod(nil, 0, 1, roots.DefaultConfig())
	assert.ErrorIs(t, err, roots.ErrNilFunc)

	_, err = roots.SecantMethod(sqr2, 0, 1, roots.Config{Tolerance: math.NaN(), MaxIterations: 5})
	assert.ErrorIs(t, err, roots.ErrBadTolerance)
}

// TestNewton_Converges finds √2 from 1.5.
func TestNewton_Converges(t *testing.T) {
	res, err := roots.Newton(sqr2, dSqr2, 1.5, roots.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, roots.Converged, res.Status)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-10)
	assert.Equal(t, 4, res.Iterations)
}

// TestNewton_ZeroDerivativeAtSeed fails immediately regardless of f.
func TestNewton_ZeroDerivativeAtSeed(t *testing.T) {
	for _, f := range []roots.Func{sqr2, cubic, math.Sin, func(float64) float64 { return 0 }} {
		res, err := roots.Newton(f, dSqr2, 0, roots.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, roots.ZeroDerivative, res.Status)
		assert.Zero(t, res.Iterations)
		assert.ErrorIs(t, res.Err(), roots.ErrZeroDerivative)
	}
}

// TestNewton_NonConvergence uses the cube root, on which Newton doubles the
// distance to the root every step.
func TestNewton_NonConvergence(t *testing.T) {
	df := func(x float64) float64 { c := math.Cbrt(x); return 1 / (3 * c * c) }

	res, err := roots.Newton(math.Cbrt, df, 1, roots.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, roots.NonConvergence, res.Status)
	assert.Equal(t, roots.DefaultMaxIterations, res.Iterations)
}

// TestNewton_RequiresDerivative rejects a nil derivative as misconfiguration.
func TestNewton_RequiresDerivative(t *testing.T) {
	_, err := roots.Newton(sqr2, nil, 1, roots.DefaultConfig())
	assert.ErrorIs(t, err, roots.ErrNilDerivative)

	_, err = roots.Newton(nil, dSqr2, 1, roots.DefaultConfig())
	assert.ErrorIs(t, err, roots.ErrNilFunc)
}

// TestSecantNewton_Agree checks that both open methods land on the same root
// (within 2·tol) from nearby seeds.
func TestSecantNewton_Agree(t *testing.T) {
	cases := []struct {
		name   string
		f, df  roots.Func
		x0, x1 float64
	}{
		{"sqrt2", sqr2, dSqr2, 1, 2},
		{"cos", math.Cos, func(x float64) float64 { return -math.Sin(x) }, 1, 2},
		{"cubic left", cubic, dCubic, -0.8, -0.7},
		{"cubic right", cubic, dCubic, 3.7, 3.8},
	}
	c := cfg(1e-10)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := roots.SecantMethod(tc.f, tc.x0, tc.x1, c)
			require.NoError(t, err)
			n, err := roots.Newton(tc.f, tc.df, tc.x0+(tc.x1-tc.x0)/2, c)
			require.NoError(t, err)
			require.True(t, s.OK() && n.OK())
			assert.InDelta(t, s.Root, n.Root, 2*c.Tolerance)
		})
	}
}

// TestRefiners_Idempotent re-runs each refiner seeded with its own answer and
// expects at most one further iteration.
func TestRefiners_Idempotent(t *testing.T) {
	c := cfg(1e-10)
	first, err := roots.Newton(sqr2, dSqr2, 1.5, c)
	require.NoError(t, err)
	r := first.Root

	n, err := roots.Newton(sqr2, dSqr2, r, c)
	require.NoError(t, err)
	assert.True(t, n.OK())
	assert.LessOrEqual(t, n.Iterations, 1)

	s, err := roots.SecantMethod(sqr2, r, r+c.Tolerance/2, c)
	require.NoError(t, err)
	assert.True(t, s.OK())
	assert.LessOrEqual(t, s.Iterations, 1)

	b, err := roots.Bisect(sqr2, r-c.Tolerance/4, r+c.Tolerance/4, c)
	require.NoError(t, err)
	assert.True(t, b.OK())
	assert.LessOrEqual(t, b.Iterations, 1)
}
