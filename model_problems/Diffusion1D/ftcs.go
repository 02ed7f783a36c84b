package Diffusion1D

import (
	"github.com/scicomp/gofdm/utils"
)

// FTCS is forward in time, centered in space:
//
//	u[j]' = u[j] + mu*(u[j-1] - 2*u[j] + u[j+1])
type FTCS struct {
	mu float64
}

func NewFTCS(mu float64) *FTCS {
	return &FTCS{mu: mu}
}

func (s *FTCS) Name() string { return "ftcs" }

func (s *FTCS) Step(u utils.Vector) utils.Vector {
	var (
		N     = u.Len()
		uD    = u.DataP()
		unext = u.Copy()
		uN    = unext.DataP()
	)
	for i := 1; i < N-1; i++ {
		uN[i] = uD[i] + s.mu*(uD[i-1]-2.0*uD[i]+uD[i+1])
	}
	return unext
}
