package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportParams(t *testing.T) {
	// CFL given directly wins over VAdv*Dt/Dx
	{
		ip := &TransportParams{}
		err := ip.Parse([]byte(`
Title: "Square pulse, upwind"
XMin: -1.0
XMax: 1.0
NX: 100
CFL: 0.5
StepMax: 200
NCycleOut: 50
InitType: "squarepulse"
`))
		assert.NoError(t, err)
		assert.Equal(t, 0.5, ip.Courant())
		assert.InDelta(t, 0.02, ip.Dx(), 1.e-12)
	}
	// Courant number derived from VAdv and Dt
	{
		ip := &TransportParams{}
		err := ip.Parse([]byte(`
XMin: 0.0
XMax: 1.0
NX: 10
VAdv: 1.0
Dt: 0.05
StepMax: 10
NCycleOut: 10
`))
		assert.NoError(t, err)
		assert.InDelta(t, 0.5, ip.Courant(), 1.e-12)
	}
	// Rejections
	for _, text := range []string{
		"NX: 0\nXMax: 1\nStepMax: 1\nNCycleOut: 1\nCFL: 0.5",
		"NX: 10\nXMin: 1\nXMax: 1\nStepMax: 1\nNCycleOut: 1\nCFL: 0.5",
		"NX: 10\nXMax: 1\nStepMax: 0\nNCycleOut: 1\nCFL: 0.5",
		"NX: 10\nXMax: 1\nStepMax: 1\nNCycleOut: 0\nCFL: 0.5",
		"NX: 10\nXMax: 1\nStepMax: 1\nNCycleOut: 1",
		"NX: 10\nXMax: 1\nStepMax: 1\nNCycleOut: 1\nCFL: 0.5\nLambda: 1.5",
	} {
		ip := &TransportParams{}
		assert.Error(t, ip.Parse([]byte(text)), text)
	}
}

func TestDiffusionParams(t *testing.T) {
	// Mu derived from Alpha, Dt and the grid spacing
	{
		ip := &DiffusionParams{}
		err := ip.Parse([]byte(`
XMin: -1.0
XMax: 1.0
NX: 20
Alpha: 1.0
Dt: 0.005
StepMax: 100
NCycleOut: 25
InitType: "hat"
`))
		assert.NoError(t, err)
		assert.InDelta(t, 0.5, ip.Diffusion(), 1.e-12)
	}
	// Mu given directly wins
	{
		ip := &DiffusionParams{}
		err := ip.Parse([]byte("NX: 10\nXMax: 1\nMu: 0.25\nStepMax: 1\nNCycleOut: 1"))
		assert.NoError(t, err)
		assert.Equal(t, 0.25, ip.Diffusion())
	}
	// Missing both Mu and Alpha/Dt
	{
		ip := &DiffusionParams{}
		assert.Error(t, ip.Parse([]byte("NX: 10\nXMax: 1\nStepMax: 1\nNCycleOut: 1")))
	}
}

func TestLaplaceParams(t *testing.T) {
	{
		ip := &LaplaceParams{}
		err := ip.Parse([]byte(`
NX: 9
NY: 9
BCTop: 1.0
Tolerance: 1.0e-10
MaxIterations: 300
Omega: 1.5
`))
		assert.NoError(t, err)
		assert.Equal(t, 9, ip.NX)
		assert.Equal(t, 1.0, ip.BCTop)
		assert.Equal(t, 1.5, ip.Omega)
	}
	// Rejections
	for _, text := range []string{
		"NX: 2\nNY: 9\nTolerance: 1.0e-10\nMaxIterations: 300",
		"NX: 9\nNY: 9\nTolerance: 0\nMaxIterations: 300",
		"NX: 9\nNY: 9\nTolerance: 1.0e-10\nMaxIterations: 0",
		"NX: 9\nNY: 9\nTolerance: 1.0e-10\nMaxIterations: 300\nOmega: 2.5",
	} {
		ip := &LaplaceParams{}
		assert.Error(t, ip.Parse([]byte(text)), text)
	}
}
