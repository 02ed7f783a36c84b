package Laplace2D

import (
	"math"

	"github.com/scicomp/gofdm/utils"
)

// PointJacobi computes every interior point of the next iterate from the
// previous iterate only:
//
//	u[i,j]' = 0.25*(u[i-1,j] + u[i+1,j] + u[i,j-1] + u[i,j+1])
//
// Two full grids are held; each sweep writes into the spare buffer and the
// buffers swap, so reads and writes never alias within a sweep.
type PointJacobi struct {
	spare utils.Matrix
}

func NewPointJacobi() *PointJacobi {
	return &PointJacobi{}
}

func (m *PointJacobi) Name() string { return "jacobi" }

func (m *PointJacobi) Sweep(u utils.Matrix) (utils.Matrix, float64) {
	var (
		nr, nc = u.Dims()
		change float64
	)
	if m.spare.M == nil {
		m.spare = u.Copy() // boundary values carry into both buffers
	}
	next := m.spare
	for i := 1; i < nr-1; i++ {
		for j := 1; j < nc-1; j++ {
			v := 0.25 * (u.At(i-1, j) + u.At(i+1, j) + u.At(i, j-1) + u.At(i, j+1))
			if d := math.Abs(v - u.At(i, j)); d > change {
				change = d
			}
			next.Set(i, j, v)
		}
	}
	m.spare = u
	return next, change
}
