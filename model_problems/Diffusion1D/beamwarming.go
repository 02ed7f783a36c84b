package Diffusion1D

import (
	"github.com/scicomp/gofdm/tridiag"
	"github.com/scicomp/gofdm/utils"
)

// BeamWarming is the lambda-weighted implicit scheme for diffusion:
//
//	-lambda*mu*u[j-1]' + (1+2*lambda*mu)*u[j]' - lambda*mu*u[j+1]' =
//	 (1-lambda)*mu*u[j-1] + (1-2*(1-lambda)*mu)*u[j] + (1-lambda)*mu*u[j+1]
//
// Crank-Nicolson at lambda = 0.5. The tridiagonal factorization is computed
// once at construction and reused for every step.
type BeamWarming struct {
	mu, lambda float64
	lu         *tridiag.LU
	rhs        []float64
}

func NewBeamWarming(N int, mu, lambda float64) (*BeamWarming, error) {
	var (
		lower = make([]float64, N)
		diag  = make([]float64, N)
		upper = make([]float64, N)
	)
	cl := -lambda * mu
	cd := 1.0 + 2.0*lambda*mu
	for i := 0; i < N; i++ {
		lower[i] = cl
		diag[i] = cd
		upper[i] = cl
	}
	lu, err := tridiag.New(lower, diag, upper)
	if err != nil {
		return nil, err
	}
	return &BeamWarming{
		mu:     mu,
		lambda: lambda,
		lu:     lu,
		rhs:    make([]float64, N),
	}, nil
}

func (s *BeamWarming) Name() string { return "beamwarming" }

func (s *BeamWarming) Step(u utils.Vector) utils.Vector {
	var (
		N  = u.Len()
		uD = u.DataP()
		cl = (1.0 - s.lambda) * s.mu
		cd = 1.0 - 2.0*(1.0-s.lambda)*s.mu
	)
	for i := 0; i < N; i++ {
		s.rhs[i] = cd * uD[i]
		if i > 0 {
			s.rhs[i] += cl * uD[i-1]
		}
		if i < N-1 {
			s.rhs[i] += cl * uD[i+1]
		}
	}
	x, err := s.lu.Solve(s.rhs)
	if err != nil {
		panic(err) // dimensions are fixed at construction
	}
	x[0] = uD[0]
	x[N-1] = uD[N-1]
	return utils.NewVector(N, x)
}
