package Diffusion1D

import (
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
	// FTCS at the stability limit mu = 1/2 averages the neighbors
	{
		u0 := utils.NewVector(5, []float64{0, 0.5, 1, 0.5, 0})
		s := NewFTCS(0.5)
		assertVec(t, []float64{0, 0.5, 0.5, 0.5, 0}, s.Step(u0), 1.e-10)
		assertVec(t, []float64{0, 0.5, 1, 0.5, 0}, u0, 0)
	}
	// Beam-Warming at lambda = 0 reduces to the explicit FTCS update
	{
		u0 := utils.NewVector(7, []float64{0, 0.2, 0.6, 1, 0.6, 0.2, 0})
		bw, err := NewBeamWarming(7, 0.4, 0.0)
		assert.NoError(t, err)
		ftcs := NewFTCS(0.4)
		uBW := bw.Step(u0)
		uFTCS := ftcs.Step(u0)
		for i := 0; i < 7; i++ {
			assert.InDelta(t, uFTCS.AtVec(i), uBW.AtVec(i), 1.e-12)
		}
	}
}

func TestBeamWarmingConservesSymmetry(t *testing.T) {
	// A symmetric profile with equal boundary values stays symmetric and
	// decays toward the boundary value under Crank-Nicolson weighting.
	var (
		N = 21
		x = utils.Linspace(-1, 1, N)
	)
	u0, err := InitialCondition("hat", x)
	assert.NoError(t, err)

	s, err := NewBeamWarming(N, 0.5, 0.5)
	assert.NoError(t, err)
	c := NewDiffusion(s, x, u0, 100, 100)
	peak := c.U.Max()
	for step := 0; step < 100; step++ {
		c.Step()
		assert.Less(t, c.U.Max(), peak)
		peak = c.U.Max()
		for i := 0; i < N/2; i++ {
			assert.InDelta(t, c.U.AtVec(i), c.U.AtVec(N-1-i), 1.e-12)
		}
	}
	assert.True(t, c.U.IsFinite())
	assert.Greater(t, c.U.Min(), -1.e-12)
}

func TestNewScheme(t *testing.T) {
	s, err := NewScheme("ftcs", 11, 0.5, 0)
	assert.NoError(t, err)
	assert.Equal(t, "ftcs", s.Name())

	s, err = NewScheme("beamwarming", 11, 0.5, 0.5)
	assert.NoError(t, err)
	assert.Equal(t, "beamwarming", s.Name())

	_, err = NewScheme("dufortfrankel", 11, 0.5, 0)
	assert.Error(t, err)
}
