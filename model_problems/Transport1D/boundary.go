package Transport1D

import (
	"fmt"

	"github.com/scicomp/gofdm/utils"
)

// BoundaryFunc applies the boundary policy to a freshly computed time level.
// uinit is the initial grid, which carries the Dirichlet values. The same
// policy function is shared by every scheme; no stencil hard-codes its
// boundary handling.
type BoundaryFunc func(u, uinit utils.Vector)

// FixedBoundary pins both endpoints to their initial values.
func FixedBoundary(u, uinit utils.Vector) {
	var (
		N = u.Len()
	)
	u.Set(0, uinit.AtVec(0))
	u.Set(N-1, uinit.AtVec(N-1))
}

// PeriodicBoundary wraps the domain; the two endpoints represent the same
// physical point, so each endpoint mirrors the interior neighbor of the
// opposite end.
func PeriodicBoundary(u, _ utils.Vector) {
	var (
		N = u.Len()
	)
	u.Set(0, u.AtVec(N-2))
	u.Set(N-1, u.AtVec(1))
}

// NewBoundary resolves a boundary policy by name.
func NewBoundary(name string) (BoundaryFunc, error) {
	switch name {
	case "", "fixed":
		return FixedBoundary, nil
	case "periodic":
		return PeriodicBoundary, nil
	default:
		return nil, fmt.Errorf("unknown boundary policy %q", name)
	}
}
