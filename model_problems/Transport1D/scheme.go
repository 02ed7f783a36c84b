// Package Transport1D implements finite difference schemes for the linear
// transport equation du/dt + c du/dx = 0 on a fixed 1D grid. The explicit
// schemes differ only in their stencil; all of them update interior points
// and leave the boundary to the configured boundary policy. Stability is an
// experiment outcome here, not a runtime guard: unstable parameter choices
// blow up visibly in the output.
package Transport1D

import (
	"fmt"

	"github.com/scicomp/gofdm/utils"
)

// Stepper produces the next time level from the current level u and, for
// two-level schemes, the previous level uprev. Boundary points carry over
// from u unchanged.
type Stepper interface {
	Name() string
	Step(u, uprev utils.Vector) utils.Vector
}

// NewScheme builds the stepper for the named scheme on an N point grid at
// Courant number nu. lambda is the implicit weighting factor, used by
// Beam-Warming only. For two-level schemes the returned bootstrap produces
// the first new time level; the driving loop applies it for step one and
// the scheme itself after that.
func NewScheme(name string, N int, nu, lambda float64) (scheme, bootstrap Stepper, err error) {
	switch name {
	case "upwind":
		scheme = NewUpwind(nu)
	case "badupwind":
		scheme = NewBadUpwind(nu)
	case "ftcs":
		scheme = NewFTCS(nu)
	case "lax":
		scheme = NewLax(nu)
	case "laxwendroff":
		scheme = NewLaxWendroff(nu)
	case "leapfrog":
		scheme = NewLeapfrog(nu)
		bootstrap = NewLax(nu)
	case "maccormack":
		scheme = NewMacCormack(nu)
	case "beamwarming":
		scheme, err = NewBeamWarming(N, nu, lambda)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unknown transport scheme %q", name)
	}
	return scheme, bootstrap, nil
}
