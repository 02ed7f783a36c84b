package Transport1D

import (
	"github.com/scicomp/gofdm/utils"
)

// MacCormack is the two-stage predictor-corrector:
//
//	p[j]  = u[j] - nu*(u[j+1] - u[j])               forward predictor
//	u[j]' = 0.5*(u[j] + p[j]) - 0.5*nu*(p[j] - p[j-1])  backward corrector
//
// Equivalent to Lax-Wendroff for the linear equation.
type MacCormack struct {
	nu   float64
	pred []float64
}

func NewMacCormack(nu float64) *MacCormack {
	return &MacCormack{nu: nu}
}

func (s *MacCormack) Name() string { return "maccormack" }

func (s *MacCormack) Step(u, _ utils.Vector) utils.Vector {
	var (
		N     = u.Len()
		uD    = u.DataP()
		unext = u.Copy()
		uN    = unext.DataP()
	)
	if len(s.pred) != N {
		s.pred = make([]float64, N)
	}
	pred := s.pred
	copy(pred, uD)
	for i := 1; i < N-1; i++ {
		pred[i] = uD[i] - s.nu*(uD[i+1]-uD[i])
	}
	for i := 1; i < N-1; i++ {
		uN[i] = 0.5*(uD[i]+pred[i]) - 0.5*s.nu*(pred[i]-pred[i-1])
	}
	return unext
}
