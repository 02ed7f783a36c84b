// Package Laplace2D implements iterative relaxation solvers for the
// Laplace equation on a rectangular grid with Dirichlet boundaries. A
// solver sweeps the interior until the maximum pointwise change over a full
// sweep drops below tolerance or the iteration cap is reached. Hitting the
// cap is not an error: the Result reports it as a distinct, non-converged
// outcome with the final metrics attached.
package Laplace2D

import (
	"fmt"

	"github.com/scicomp/gofdm/utils"
)

// Method is one relaxation update rule. Sweep consumes the current grid and
// returns the grid holding the next iterate together with the maximum
// absolute pointwise change over the interior. Implementations may update
// in place and return the same grid, or write into a second buffer and
// return that; boundary cells are never written.
type Method interface {
	Name() string
	Sweep(u utils.Matrix) (unext utils.Matrix, change float64)
}

// Settings controls the iteration.
type Settings struct {
	// Tolerance is the convergence threshold on the maximum pointwise
	// change over one sweep.
	Tolerance float64
	// MaxIterations caps the number of sweeps.
	MaxIterations int
}

// Result is the terminal state of a solve.
type Result struct {
	U          utils.Matrix
	Iterations int
	// Change is the maximum pointwise change of the final sweep.
	Change float64
	// Residual is the max-abs residual of the five-point difference
	// equations at the final iterate.
	Residual  float64
	Converged bool
}

// Solve drives m to convergence or to the iteration cap. The boundary cells
// of u hold the Dirichlet data and are left untouched; u itself may be
// consumed as a sweep buffer.
func Solve(u utils.Matrix, m Method, s Settings) Result {
	var (
		change float64
	)
	for iter := 1; iter <= s.MaxIterations; iter++ {
		u, change = m.Sweep(u)
		if change <= s.Tolerance {
			return Result{
				U:          u,
				Iterations: iter,
				Change:     change,
				Residual:   Residual(u),
				Converged:  true,
			}
		}
	}
	return Result{
		U:          u,
		Iterations: s.MaxIterations,
		Change:     change,
		Residual:   Residual(u),
		Converged:  false,
	}
}

// NewMethod resolves a relaxation method by name. omega is the SOR
// relaxation factor, unused by Point-Jacobi.
func NewMethod(name string, omega float64) (Method, error) {
	switch name {
	case "", "jacobi":
		return NewPointJacobi(), nil
	case "sor":
		return NewSOR(omega)
	default:
		return nil, fmt.Errorf("unknown relaxation method %q", name)
	}
}

// NewField builds an (nx)x(ny) grid with zero interior and the given
// Dirichlet values on the left/right rows and bottom/top columns.
func NewField(nx, ny int, left, right, bottom, top float64) utils.Matrix {
	u := utils.NewMatrix(nx, ny)
	u.SetRow(0, left)
	u.SetRow(nx-1, right)
	u.SetCol(0, bottom)
	u.SetCol(ny-1, top)
	return u
}
