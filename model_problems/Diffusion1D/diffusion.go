package Diffusion1D

import (
	"fmt"
	"io"
	"math"

	"github.com/scicomp/gofdm/output"
	"github.com/scicomp/gofdm/utils"
)

// Diffusion owns the grid and drives a stepping scheme through a fixed
// number of time steps with fixed endpoint values.
type Diffusion struct {
	Scheme    Stepper
	StepMax   int
	NCycleOut int
	X         utils.Vector
	U         utils.Vector
	UInit     utils.Vector
}

func NewDiffusion(scheme Stepper, x, u0 utils.Vector, stepMax, nCycleOut int) *Diffusion {
	return &Diffusion{
		Scheme:    scheme,
		StepMax:   stepMax,
		NCycleOut: nCycleOut,
		X:         x,
		U:         u0.Copy(),
		UInit:     u0.Copy(),
	}
}

// Step advances one time level with endpoints pinned to initial values.
func (c *Diffusion) Step() {
	var (
		N = c.U.Len()
	)
	unext := c.Scheme.Step(c.U)
	unext.Set(0, c.UInit.AtVec(0))
	unext.Set(N-1, c.UInit.AtVec(N-1))
	c.U = unext
}

// Run executes the full driving loop.
func (c *Diffusion) Run(w io.Writer) error {
	var (
		logFrequency = 100
	)
	if err := output.WriteFrame(w, 0, c.X, c.U); err != nil {
		return err
	}
	for step := 1; step <= c.StepMax; step++ {
		c.Step()
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
	case "", "hat":
		u.Apply(func(xv float64) float64 { return 1.0 - math.Abs(xv) })
	case "sine":
		u.Apply(func(xv float64) float64 { return math.Sin(math.Pi * xv) })
	default:
		return utils.Vector{}, fmt.Errorf("unknown initial condition %q", name)
	}
	return u, nil
}
