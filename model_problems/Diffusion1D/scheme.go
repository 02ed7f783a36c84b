// Package Diffusion1D implements finite difference schemes for the linear
// diffusion equation du/dt = alpha d2u/dx2 on a fixed 1D grid. The
// controlling dimensionless number is mu = alpha*dt/dx^2; FTCS is stable
// for mu <= 1/2 (the bound is not enforced, overstepping it is an
// experiment), Beam-Warming is unconditionally stable for lambda >= 1/2.
package Diffusion1D

import (
	"fmt"

	"github.com/scicomp/gofdm/utils"
)

// Stepper produces the next time level from the current level.
type Stepper interface {
	Name() string
	Step(u utils.Vector) utils.Vector
}

// NewScheme builds the stepper for the named scheme on an N point grid at
// diffusion number mu. lambda is the implicit weighting factor, used by
// Beam-Warming only.
func NewScheme(name string, N int, mu, lambda float64) (Stepper, error) {
	switch name {
	case "ftcs":
		return NewFTCS(mu), nil
	case "beamwarming":
		return NewBeamWarming(N, mu, lambda)
	default:
		return nil, fmt.Errorf("unknown diffusion scheme %q", name)
	}
}
