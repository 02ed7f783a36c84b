// Package tridiag solves tridiagonal linear systems with the Thomas
// algorithm: forward elimination with normalized pivots followed by back
// substitution. O(N) time, O(1) extra space beyond the factorization.
package tridiag

import (
	"errors"
	"math"
)

// ErrSingular is returned when a zero pivot arises during elimination.
// The matrix is not solvable by this method and no partial result is usable.
var ErrSingular = errors.New("tridiag: zero pivot in elimination")

const pivotTol = 1.e-14

// LU holds a factored tridiagonal matrix. The factorization is computed
// once and may be reused for any number of right-hand sides, which is how
// the implicit stepping schemes use it: one factorization per run, one
// solve per time step.
type LU struct {
	lower, diag, upper []float64
}

// New factors the tridiagonal matrix with sub-diagonal a, diagonal b and
// super-diagonal c. a[0] and c[N-1] are ignored. Returns ErrSingular if a
// pivot vanishes.
func New(a, b, c []float64) (*LU, error) {
	var (
		n = len(b)
	)
	if len(a) != n || len(c) != n {
		return nil, errors.New("tridiag: diagonal lengths must match")
	}
	if n == 0 {
		return nil, errors.New("tridiag: empty system")
	}
	lu := &LU{
		lower: make([]float64, n),
		diag:  make([]float64, n),
		upper: make([]float64, n),
	}
	copy(lu.lower, a)
	copy(lu.diag, b)
	copy(lu.upper, c)
	// Forward elimination of the coefficient rows
	for i := 1; i < n; i++ {
		if math.Abs(lu.diag[i-1]) < pivotTol {
			return nil, ErrSingular
		}
		lu.lower[i] /= lu.diag[i-1]
		lu.diag[i] -= lu.lower[i] * lu.upper[i-1]
	}
	if math.Abs(lu.diag[n-1]) < pivotTol {
		return nil, ErrSingular
	}
	return lu, nil
}

// Solve returns the solution of the factored system for right-hand side d.
// d is not modified.
func (lu *LU) Solve(d []float64) (x []float64, err error) {
	var (
		n = len(lu.diag)
	)
	if len(d) != n {
		return nil, errors.New("tridiag: rhs length must match system dimension")
	}
	x = make([]float64, n)
	copy(x, d)
	// Forward elimination of the right-hand side
	for i := 1; i < n; i++ {
		x[i] -= lu.lower[i] * x[i-1]
	}
	// Back substitution
	x[n-1] /= lu.diag[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = (x[i] - lu.upper[i]*x[i+1]) / lu.diag[i]
	}
	return x, nil
}

// Solve factors and solves in one call. a is the sub-diagonal, b the
// diagonal, c the super-diagonal and d the right-hand side, all of length N.
func Solve(a, b, c, d []float64) ([]float64, error) {
	lu, err := New(a, b, c)
	if err != nil {
		return nil, err
	}
	return lu.Solve(d)
}
