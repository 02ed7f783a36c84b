package Laplace2D

import (
	"fmt"
	"io"

	"github.com/scicomp/gofdm/output"
	"github.com/scicomp/gofdm/utils"
)

// Laplace owns the grid and drives a relaxation method to convergence or
// to the iteration cap, then writes the final field.
type Laplace struct {
	U        utils.Matrix
	Method   Method
	Settings Settings
}

func NewLaplace(u utils.Matrix, m Method, s Settings) *Laplace {
	return &Laplace{
		U:        u,
		Method:   m,
		Settings: s,
	}
}

// Run solves and writes the terminal field. Non-convergence is reported in
// the returned Result, not as an error.
func (c *Laplace) Run(w io.Writer) (Result, error) {
	res := Solve(c.U, c.Method, c.Settings)
	if res.Converged {
		fmt.Printf("%s converged after %d iterations, change = %10.3e, residual = %10.3e\n",
			c.Method.Name(), res.Iterations, res.Change, res.Residual)
	} else {
		fmt.Printf("%s did NOT converge within %d iterations, change = %10.3e, residual = %10.3e\n",
			c.Method.Name(), res.Iterations, res.Change, res.Residual)
	}
	if err := output.WriteField(w, res.U); err != nil {
		return res, err
	}
	return res, nil
}
