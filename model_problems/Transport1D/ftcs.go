package Transport1D

import (
	"github.com/scicomp/gofdm/utils"
)

// FTCS is forward in time, centered in space:
//
//	u[j]' = u[j] - 0.5*nu*(u[j+1] - u[j-1])
//
// Unconditionally unstable for pure advection; the stencil is computed
// regardless, the growth is the point of the experiment.
type FTCS struct {
	nu float64
}

func NewFTCS(nu float64) *FTCS {
	return &FTCS{nu: nu}
}

func (s *FTCS) Name() string { return "ftcs" }

func (s *FTCS) Step(u, _ utils.Vector) utils.Vector {
	var (
		N     = u.Len()
		uD    = u.DataP()
		unext = u.Copy()
		uN    = unext.DataP()
	)
	for i := 1; i < N-1; i++ {
		uN[i] = uD[i] - 0.5*s.nu*(uD[i+1]-uD[i-1])
	}
	return unext
}
