package Transport1D

import (
	"fmt"
	"io"
	"math"

	"github.com/scicomp/gofdm/output"
	"github.com/scicomp/gofdm/utils"
)

// Transport owns the grid and drives a stepping scheme through a fixed
// number of time steps, writing a snapshot every NCycleOut steps.
type Transport struct {
	Scheme    Stepper
	Bootstrap Stepper // first-step stand-in for two-level schemes, may be nil
	BC        BoundaryFunc
	StepMax   int
	NCycleOut int
	X         utils.Vector
	U, UPrev  utils.Vector
	UInit     utils.Vector
}

// NewTransport sets up a run over the grid x with initial profile u0. The
// previous level starts equal to the initial level; two-level schemes get
// their real second level from the bootstrap step.
func NewTransport(scheme, bootstrap Stepper, bc BoundaryFunc, x, u0 utils.Vector, stepMax, nCycleOut int) *Transport {
	return &Transport{
		Scheme:    scheme,
		Bootstrap: bootstrap,
		BC:        bc,
		StepMax:   stepMax,
		NCycleOut: nCycleOut,
		X:         x,
		U:         u0.Copy(),
		UPrev:     u0.Copy(),
		UInit:     u0.Copy(),
	}
}

// Step advances one time level. step is the 1-based index of the level
// being produced; the bootstrap stands in for step one only.
func (c *Transport) Step(step int) {
	s := c.Scheme
	if step == 1 && c.Bootstrap != nil {
		s = c.Bootstrap
	}
	unext := s.Step(c.U, c.UPrev)
	c.BC(unext, c.UInit)
	c.UPrev, c.U = c.U, unext
}

// Run executes the full driving loop, writing the initial frame and then
// one frame every NCycleOut steps.
func (c *Transport) Run(w io.Writer) error {
	var (
		logFrequency = 50
	)
	if err := output.WriteFrame(w, 0, c.X, c.U); err != nil {
		return err
	}
	for step := 1; step <= c.StepMax; step++ {
		c.Step(step)
		if step%c.NCycleOut == 0 {
			if err := output.WriteFrame(w, step, c.X, c.U); err != nil {
				return err
			}
		}
		if step%logFrequency == 0 {
			fmt.Printf("step = %6d, umin = %8.4f, umax = %8.4f\n", step, c.U.Min(), c.U.Max())
		}
	}
	return nil
}

// InitialCondition evaluates a named initial profile on the grid x.
func InitialCondition(name string, x utils.Vector) (utils.Vector, error) {
	u := x.Copy()
	switch name {
	case "", "step":
		u.Apply(func(xv float64) float64 {
			if xv < 0 {
				return 1
			}
			return 0
		})
	case "squarepulse":
		u.Apply(func(xv float64) float64 {
			if xv >= -0.6 && xv <= -0.2 {
				return 1
			}
			return 0
		})
	case "sine":
		u.Apply(func(xv float64) float64 { return math.Sin(math.Pi * xv) })
	default:
		return utils.Vector{}, fmt.Errorf("unknown initial condition %q", name)
	}
	return u, nil
}
