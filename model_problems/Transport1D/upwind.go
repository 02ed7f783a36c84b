package Transport1D

import (
	"github.com/scicomp/gofdm/utils"
)

// Upwind is the first order one-sided scheme differenced on the upwind
// side of the advection (backward for positive advection speed):
//
//	u[j]' = u[j] - nu*(u[j] - u[j-1])
type Upwind struct {
	nu float64
}

func NewUpwind(nu float64) *Upwind {
	return &Upwind{nu: nu}
}

func (s *Upwind) Name() string { return "upwind" }

func (s *Upwind) Step(u, _ utils.Vector) utils.Vector {
	var (
		N     = u.Len()
		uD    = u.DataP()
		unext = u.Copy()
		uN    = unext.DataP()
	)
	for i := 1; i < N-1; i++ {
		uN[i] = uD[i] - s.nu*(uD[i]-uD[i-1])
	}
	return unext
}

// BadUpwind differences on the downwind side:
//
//	u[j]' = u[j] - nu*(u[j+1] - u[j])
//
// It is unconditionally unstable for positive advection speed and exists to
// demonstrate that instability. It is kept as a separate stencil from
// Upwind on purpose.
type BadUpwind struct {
	nu float64
}

func NewBadUpwind(nu float64) *BadUpwind {
	return &BadUpwind{nu: nu}
}

func (s *BadUpwind) Name() string { return "badupwind" }

func (s *BadUpwind) Step(u, _ utils.Vector) utils.Vector {
	var (
		N     = u.Len()
		uD    = u.DataP()
		unext = u.Copy()
		uN    = unext.DataP()
	)
	for i := 1; i < N-1; i++ {
		uN[i] = uD[i] - s.nu*(uD[i+1]-uD[i])
	}
	return unext
}
