package Transport1D

import (
	"github.com/scicomp/gofdm/utils"
)

// LaxWendroff is the second order scheme in its two half-step form:
//
//	u[j+1/2] = 0.5*(u[j+1] + u[j]) - 0.5*nu*(u[j+1] - u[j])
//	u[j]'    = u[j] - nu*(u[j+1/2] - u[j-1/2])
//
// which is algebraically equal, for the linear equation, to the one-step
// stencil combining the first and second centered differences scaled by nu
// and nu squared.
type LaxWendroff struct {
	nu   float64
	half []float64
}

func NewLaxWendroff(nu float64) *LaxWendroff {
	return &LaxWendroff{nu: nu}
}

func (s *LaxWendroff) Name() string { return "laxwendroff" }

func (s *LaxWendroff) Step(u, _ utils.Vector) utils.Vector {
	var (
		N     = u.Len()
		uD    = u.DataP()
		unext = u.Copy()
		uN    = unext.DataP()
	)
	if len(s.half) != N {
		s.half = make([]float64, N)
	}
	// Half-step values live at j+1/2; the two endpoints are never read by
	// the interior update below beyond half[0..N-2].
	half := s.half
	copy(half, uD)
	for i := 1; i < N-1; i++ {
		half[i] = 0.5*(uD[i+1]+uD[i]) - 0.5*s.nu*(uD[i+1]-uD[i])
	}
	for i := 1; i < N-1; i++ {
		uN[i] = uD[i] - s.nu*(half[i]-half[i-1])
	}
	return unext
}
