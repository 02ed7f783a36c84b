package Laplace2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelaxationFixture(t *testing.T) {
	// 4x4 grid, unit potential on the top column: the discrete solution has
	// interior values 1/8 next to the bottom and 3/8 next to the top.
	check := func(m Method) {
		u := NewField(4, 4, 0, 0, 0, 1)
		res := Solve(u, m, Settings{Tolerance: 1.e-12, MaxIterations: 2000})
		assert.True(t, res.Converged)
		assert.InDelta(t, 0.125, res.U.At(1, 1), 1.e-10)
		assert.InDelta(t, 0.125, res.U.At(2, 1), 1.e-10)
		assert.InDelta(t, 0.375, res.U.At(1, 2), 1.e-10)
		assert.InDelta(t, 0.375, res.U.At(2, 2), 1.e-10)
		// Dirichlet data is untouched
		assert.Equal(t, 0.0, res.U.At(1, 0))
		assert.Equal(t, 1.0, res.U.At(1, 3))
		// The difference equations are satisfied to the sweep tolerance
		assert.Less(t, res.Residual, 1.e-10)
	}
	m, err := NewMethod("jacobi", 0)
	assert.NoError(t, err)
	check(m)
	m, err = NewMethod("sor", 1.5)
	assert.NoError(t, err)
	check(m)
}

func TestOverRelaxationConvergesFaster(t *testing.T) {
	solve := func(m Method) Result {
		u := NewField(9, 9, 0, 0, 0, 1)
		return Solve(u, m, Settings{Tolerance: 1.e-8, MaxIterations: 5000})
	}
	jacobi := solve(NewPointJacobi())
	assert.True(t, jacobi.Converged)
	sor, err := NewSOR(1.5)
	assert.NoError(t, err)
	overRelaxed := solve(sor)
	assert.True(t, overRelaxed.Converged)
	assert.Less(t, overRelaxed.Iterations, jacobi.Iterations)
}

func TestAlreadyConverged(t *testing.T) {
	// The all-zero field solves the homogeneous problem: one sweep, no change
	u := NewField(5, 5, 0, 0, 0, 0)
	res := Solve(u, NewPointJacobi(), Settings{Tolerance: 1.e-12, MaxIterations: 100})
	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, 0.0, res.Change)
}

func TestIterationCap(t *testing.T) {
	// Hitting the cap is a reported outcome, not an error
	u := NewField(9, 9, 0, 0, 0, 1)
	res := Solve(u, NewPointJacobi(), Settings{Tolerance: 1.e-12, MaxIterations: 3})
	assert.False(t, res.Converged)
	assert.Equal(t, 3, res.Iterations)
	assert.Greater(t, res.Change, 0.0)
	assert.Greater(t, res.Residual, 0.0)
	assert.True(t, res.U.IsFinite())
}

func TestLaplacian(t *testing.T) {
	A := Laplacian(4, 4)
	nr, nc := A.Dims()
	assert.Equal(t, 16, nr)
	assert.Equal(t, 16, nc)
	// Boundary rows are identity
	assert.Equal(t, 1.0, A.At(0, 0))
	assert.Equal(t, 0.0, A.At(0, 1))
	// Interior row for point (1,1) = index 5
	assert.Equal(t, 4.0, A.At(5, 5))
	assert.Equal(t, -1.0, A.At(5, 1))
	assert.Equal(t, -1.0, A.At(5, 9))
	assert.Equal(t, -1.0, A.At(5, 4))
	assert.Equal(t, -1.0, A.At(5, 6))
}

func TestNewField(t *testing.T) {
	// Columns are applied after rows, so the bottom/top values win the corners
	u := NewField(4, 4, 5, 6, 7, 8)
	assert.Equal(t, 7.0, u.At(0, 0))
	assert.Equal(t, 8.0, u.At(0, 3))
	assert.Equal(t, 7.0, u.At(3, 0))
	assert.Equal(t, 8.0, u.At(3, 3))
	assert.Equal(t, 5.0, u.At(0, 1))
	assert.Equal(t, 6.0, u.At(3, 2))
	assert.Equal(t, 7.0, u.At(2, 0))
	assert.Equal(t, 8.0, u.At(2, 3))
	assert.Equal(t, 0.0, u.At(1, 1))
}

func TestNewMethod(t *testing.T) {
	m, err := NewMethod("", 0)
	assert.NoError(t, err)
	assert.Equal(t, "jacobi", m.Name())

	m, err = NewMethod("sor", 1.8)
	assert.NoError(t, err)
	assert.Equal(t, "sor", m.Name())

	_, err = NewMethod("sor", 2.0)
	assert.Error(t, err)

	_, err = NewMethod("multigrid", 0)
	assert.Error(t, err)
}
