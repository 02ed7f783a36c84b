package Transport1D

import (
	"math"
	"testing"

	"github.com/scicomp/gofdm/utils"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, expected []float64, v utils.Vector, tol float64) {
	t.Helper()
	assert.Equal(t, len(expected), v.Len())
	for i, e := range expected {
		assert.InDelta(t, e, v.AtVec(i), tol)
	}
}

func TestStencils(t *testing.T) {
	u0 := utils.NewVector(5, []float64{1, 1, 0, 0, 0})
	// Upwind at nu = 1 shifts one cell per step
	{
		s := NewUpwind(1.0)
		assertVec(t, []float64{1, 1, 1, 0, 0}, s.Step(u0, u0), 1.e-10)
	}
	// FTCS
	{
		s := NewFTCS(0.5)
		assertVec(t, []float64{1, 1.25, 0.25, 0, 0}, s.Step(u0, u0), 1.e-10)
	}
	// Lax
	{
		s := NewLax(0.5)
		assertVec(t, []float64{1, 0.75, 0.75, 0, 0}, s.Step(u0, u0), 1.e-10)
	}
	// Lax-Wendroff
	{
		s := NewLaxWendroff(0.5)
		assertVec(t, []float64{1, 1.125, 0.375, 0, 0}, s.Step(u0, u0), 1.e-10)
	}
	// MacCormack matches Lax-Wendroff for the linear equation
	{
		s := NewMacCormack(0.5)
		assertVec(t, []float64{1, 1.125, 0.375, 0, 0}, s.Step(u0, u0), 1.e-10)
	}
	// Beam-Warming, Crank-Nicolson weighting
	{
		s, err := NewBeamWarming(5, 1.0, 0.5)
		assert.NoError(t, err)
		assertVec(t, []float64{1, 1.22910216718, 0.52631578947, 0.12383900929, 0}, s.Step(u0, u0), 1.e-10)
	}
	// Stencils leave the input level untouched
	assertVec(t, []float64{1, 1, 0, 0, 0}, u0, 0)
}

func TestUpwindStability(t *testing.T) {
	// Square pulse at Courant number 0.5 for 100 steps: the upwind-biased
	// stencil keeps the maximum amplitude non-increasing, the
	// downwind-biased one oscillates with growing amplitude.
	var (
		N = 101
		x = utils.Linspace(-1, 1, N)
	)
	u0, err := InitialCondition("squarepulse", x)
	assert.NoError(t, err)

	good := NewTransport(NewUpwind(0.5), nil, FixedBoundary, x, u0, 100, 100)
	prevMax := good.U.Max()
	for step := 1; step <= 100; step++ {
		good.Step(step)
		assert.LessOrEqual(t, good.U.Max(), prevMax+1.e-12)
		prevMax = good.U.Max()
	}
	assert.True(t, good.U.IsFinite())

	bad := NewTransport(NewBadUpwind(0.5), nil, FixedBoundary, x, u0, 100, 100)
	for step := 1; step <= 100; step++ {
		bad.Step(step)
	}
	assert.Greater(t, bad.U.MaxAbs(), 100*u0.MaxAbs())
}

func TestLeapfrogExactShift(t *testing.T) {
	// At Courant number 1, Leapfrog bootstrapped with one Lax step
	// transports the profile exactly one cell per step.
	var (
		N     = 101
		steps = 10
		x     = utils.Linspace(-1, 1, N)
	)
	u0, err := InitialCondition("squarepulse", x)
	assert.NoError(t, err)

	c := NewTransport(NewLeapfrog(1.0), NewLax(1.0), FixedBoundary, x, u0, steps, steps)
	for step := 1; step <= steps; step++ {
		c.Step(step)
	}
	for i := 1; i < N-1; i++ {
		want := 0.0
		if i-steps >= 0 {
			want = u0.AtVec(i - steps)
		}
		assert.InDelta(t, want, c.U.AtVec(i), 1.e-12)
	}
}

func TestBeamWarmingReplay(t *testing.T) {
	// Two identical implicit runs produce bit-identical grids
	var (
		N = 51
		x = utils.Linspace(-1, 1, N)
	)
	u0, err := InitialCondition("step", x)
	assert.NoError(t, err)

	run := func() []float64 {
		s, err := NewBeamWarming(N, 1.0, 0.5)
		assert.NoError(t, err)
		c := NewTransport(s, nil, FixedBoundary, x, u0, 20, 20)
		for step := 1; step <= 20; step++ {
			c.Step(step)
		}
		return c.U.DataP()
	}
	assert.Equal(t, run(), run())
}

func TestBoundaries(t *testing.T) {
	uinit := utils.NewVector(5, []float64{9, 0, 0, 0, 7})
	// Fixed pins endpoints to the initial values
	{
		u := utils.NewVector(5, []float64{1, 2, 3, 4, 5})
		FixedBoundary(u, uinit)
		assertVec(t, []float64{9, 2, 3, 4, 7}, u, 0)
	}
	// Periodic wraps each endpoint to the opposite interior neighbor
	{
		u := utils.NewVector(5, []float64{1, 2, 3, 4, 5})
		PeriodicBoundary(u, uinit)
		assertVec(t, []float64{4, 2, 3, 4, 2}, u, 0)
	}
	// Unknown policy name is rejected
	{
		_, err := NewBoundary("reflecting")
		assert.Error(t, err)
	}
}

func TestNewScheme(t *testing.T) {
	for _, name := range []string{"upwind", "badupwind", "ftcs", "lax", "laxwendroff", "leapfrog", "maccormack", "beamwarming"} {
		s, bootstrap, err := NewScheme(name, 11, 0.5, 0.5)
		assert.NoError(t, err)
		assert.Equal(t, name, s.Name())
		if name == "leapfrog" {
			assert.NotNil(t, bootstrap)
		} else {
			assert.Nil(t, bootstrap)
		}
	}
	_, _, err := NewScheme("spectral", 11, 0.5, 0.5)
	assert.Error(t, err)
}

func TestInitialConditions(t *testing.T) {
	x := utils.Linspace(-1, 1, 21)
	u, err := InitialCondition("step", x)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, u.AtVec(0))
	assert.Equal(t, 0.0, u.AtVec(20))

	u, err = InitialCondition("sine", x)
	assert.NoError(t, err)
	assert.InDelta(t, math.Sin(-math.Pi), u.AtVec(0), 1.e-12)

	_, err = InitialCondition("gaussian", x)
	assert.Error(t, err)
}
