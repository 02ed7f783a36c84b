package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Set(i, j int, val float64) { m.M.Set(i, j, val) }
func (m Matrix) DataP() []float64          { return m.M.RawMatrix().Data }

// Chainable (extended) methods
func (m Matrix) Copy() (R Matrix) {
	var (
		nr, nc = m.Dims()
		data   = m.DataP()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Apply(f func(float64) float64) Matrix {
	var (
		data = m.DataP()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

func (m Matrix) Min() (min float64) {
	var (
		data = m.DataP()
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	var (
		data = m.DataP()
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

// MaxAbsDiff returns the largest absolute pointwise difference between m and a.
func (m Matrix) MaxAbsDiff(a Matrix) (max float64) {
	var (
		data  = m.DataP()
		dataA = a.DataP()
	)
	if len(data) != len(dataA) {
		panic("dimension mismatch in MaxAbsDiff")
	}
	for i, val := range data {
		if d := math.Abs(val - dataA[i]); d > max {
			max = d
		}
	}
	return
}

// IsFinite reports whether every element is finite.
func (m Matrix) IsFinite() bool {
	for _, val := range m.DataP() {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}

// SetRow and SetCol overwrite a full row / column.
func (m Matrix) SetRow(i int, val float64) Matrix {
	var (
		_, nc = m.Dims()
	)
	for j := 0; j < nc; j++ {
		m.M.Set(i, j, val)
	}
	return m
}

func (m Matrix) SetCol(j int, val float64) Matrix {
	var (
		nr, _ = m.Dims()
	)
	for i := 0; i < nr; i++ {
		m.M.Set(i, j, val)
	}
	return m
}
