package utils

const (
	NODETOL = 1.e-12
)

// Linspace returns N evenly spaced values covering [min, max] inclusive.
func Linspace(min, max float64, N int) (V Vector) {
	var (
		x = make([]float64, N)
	)
	if N == 1 {
		x[0] = min
		return NewVector(1, x)
	}
	dx := (max - min) / float64(N-1)
	for i := 0; i < N; i++ {
		x[i] = min + float64(i)*dx
	}
	V = NewVector(N, x)
	return
}
