package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(N int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			err := fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v\n", N, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(N, dataO[0])
	} else {
		v = mat.NewVecDense(N, make([]float64, N))
	}
	R = Vector{v}
	return
}

func NewVectorConst(N int, val float64) (R Vector) {
	var (
		x = make([]float64, N)
	)
	for i := 0; i < N; i++ {
		x[i] = val
	}
	return NewVector(N, x)
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) Set(i int, val float64)   { v.V.SetVec(i, val) }
func (v Vector) DataP() []float64         { return v.V.RawVector().Data }

// Chainable (extended) methods
func (v Vector) Copy() (R Vector) {
	var (
		N     = v.Len()
		dataR = make([]float64, N)
	)
	copy(dataR, v.DataP())
	R = NewVector(N, dataR)
	return
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.DataP()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	var (
		data = v.DataP()
	)
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) AddScalar(a float64) Vector {
	var (
		data = v.DataP()
	)
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Min() (min float64) {
	var (
		data = v.DataP()
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.DataP()
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) MaxAbs() (max float64) {
	var (
		data = v.DataP()
	)
	for _, val := range data {
		if math.Abs(val) > max {
			max = math.Abs(val)
		}
	}
	return
}

// MaxAbsDiff returns the largest absolute pointwise difference between v and a.
func (v Vector) MaxAbsDiff(a Vector) (max float64) {
	var (
		data  = v.DataP()
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

// IsFinite reports whether every element is finite. Non-finite values are
// the observable signature of a diverged explicit scheme.
func (v Vector) IsFinite() bool {
	for _, val := range v.DataP() {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}
