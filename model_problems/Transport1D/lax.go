package Transport1D

import (
	"github.com/scicomp/gofdm/utils"
)

// Lax replaces the current-level term of FTCS with the local spatial
// average, which adds numerical dissipation and stabilizes the scheme for
// nu <= 1:
//
//	u[j]' = 0.5*(u[j-1] + u[j+1]) - 0.5*nu*(u[j+1] - u[j-1])
type Lax struct {
	nu float64
}

func NewLax(nu float64) *Lax {
	return &Lax{nu: nu}
}

func (s *Lax) Name() string { return "lax" }

func (s *Lax) Step(u, _ utils.Vector) utils.Vector {
	var (
		N     = u.Len()
		uD    = u.DataP()
		unext = u.Copy()
		uN    = unext.DataP()
	)
	for i := 1; i < N-1; i++ {
		uN[i] = 0.5*(uD[i-1]+uD[i+1]) - 0.5*s.nu*(uD[i+1]-uD[i-1])
	}
	return unext
}
