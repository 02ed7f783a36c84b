// Package InputParameters holds the YAML-parsed run parameters for each
// model problem family. Parsing validates ranges up front: a run never
// starts with non-positive steps, an empty grid or an out-of-range
// relaxation factor.
package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// TransportParams configures a linear transport run.
type TransportParams struct {
	Title     string  `yaml:"Title"`
	XMin      float64 `yaml:"XMin"`
	XMax      float64 `yaml:"XMax"`
	NX        int     `yaml:"NX"`
	VAdv      float64 `yaml:"VAdv"`
	Dt        float64 `yaml:"Dt"`
	CFL       float64 `yaml:"CFL"` // used directly when nonzero, else VAdv*Dt/Dx
	StepMax   int     `yaml:"StepMax"`
	NCycleOut int     `yaml:"NCycleOut"`
	Lambda    float64 `yaml:"Lambda"` // implicit weighting factor
	InitType  string  `yaml:"InitType"`
	Boundary  string  `yaml:"Boundary"`
}

func (ip *TransportParams) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	return ip.validate()
}

func (ip *TransportParams) validate() error {
	if ip.NX <= 0 {
		return fmt.Errorf("NX must be positive, got %d", ip.NX)
	}
	if ip.XMax <= ip.XMin {
		return fmt.Errorf("XMax must be greater than XMin, got [%v, %v]", ip.XMin, ip.XMax)
	}
	if ip.StepMax <= 0 {
		return fmt.Errorf("StepMax must be positive, got %d", ip.StepMax)
	}
	if ip.NCycleOut <= 0 {
		return fmt.Errorf("NCycleOut must be positive, got %d", ip.NCycleOut)
	}
	if ip.CFL == 0 && (ip.VAdv <= 0 || ip.Dt <= 0) {
		return fmt.Errorf("either CFL or positive VAdv and Dt must be given")
	}
	if ip.CFL < 0 {
		return fmt.Errorf("CFL must be positive, got %v", ip.CFL)
	}
	if ip.Lambda < 0 || ip.Lambda > 1 {
		return fmt.Errorf("Lambda must be in [0,1], got %v", ip.Lambda)
	}
	return nil
}

// Dx returns the grid spacing. The grid has NX+1 points covering
// [XMin, XMax] inclusive.
func (ip *TransportParams) Dx() float64 {
	return (ip.XMax - ip.XMin) / float64(ip.NX)
}

// Courant returns the Courant number, computed once from the inputs.
func (ip *TransportParams) Courant() float64 {
	if ip.CFL != 0 {
		return ip.CFL
	}
	return ip.VAdv * ip.Dt / ip.Dx()
}

func (ip *TransportParams) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.Courant())
	fmt.Printf("[%d]\t\t\t= NX\n", ip.NX)
	fmt.Printf("[%d]\t\t\t= StepMax\n", ip.StepMax)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	fmt.Printf("[%s]\t\t= Boundary\n", ip.Boundary)
}

// DiffusionParams configures a diffusion run.
type DiffusionParams struct {
	Title     string  `yaml:"Title"`
	XMin      float64 `yaml:"XMin"`
	XMax      float64 `yaml:"XMax"`
	NX        int     `yaml:"NX"`
	Alpha     float64 `yaml:"Alpha"`
	Dt        float64 `yaml:"Dt"`
	Mu        float64 `yaml:"Mu"` // used directly when nonzero, else Alpha*Dt/Dx^2
	StepMax   int     `yaml:"StepMax"`
	NCycleOut int     `yaml:"NCycleOut"`
	Lambda    float64 `yaml:"Lambda"`
	InitType  string  `yaml:"InitType"`
}

func (ip *DiffusionParams) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	return ip.validate()
}

func (ip *DiffusionParams) validate() error {
	if ip.NX <= 0 {
		return fmt.Errorf("NX must be positive, got %d", ip.NX)
	}
	if ip.XMax <= ip.XMin {
		return fmt.Errorf("XMax must be greater than XMin, got [%v, %v]", ip.XMin, ip.XMax)
	}
	if ip.StepMax <= 0 {
		return fmt.Errorf("StepMax must be positive, got %d", ip.StepMax)
	}
	if ip.NCycleOut <= 0 {
		return fmt.Errorf("NCycleOut must be positive, got %d", ip.NCycleOut)
	}
	if ip.Mu == 0 && (ip.Alpha <= 0 || ip.Dt <= 0) {
		return fmt.Errorf("either Mu or positive Alpha and Dt must be given")
	}
	if ip.Mu < 0 {
		return fmt.Errorf("Mu must be positive, got %v", ip.Mu)
	}
	if ip.Lambda < 0 || ip.Lambda > 1 {
		return fmt.Errorf("Lambda must be in [0,1], got %v", ip.Lambda)
	}
	return nil
}

func (ip *DiffusionParams) Dx() float64 {
	return (ip.XMax - ip.XMin) / float64(ip.NX)
}

// Diffusion returns the diffusion number mu, computed once from the inputs.
func (ip *DiffusionParams) Diffusion() float64 {
	if ip.Mu != 0 {
		return ip.Mu
	}
	dx := ip.Dx()
	return ip.Alpha * ip.Dt / (dx * dx)
}

func (ip *DiffusionParams) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Mu\n", ip.Diffusion())
	fmt.Printf("[%d]\t\t\t= NX\n", ip.NX)
	fmt.Printf("[%d]\t\t\t= StepMax\n", ip.StepMax)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
}

// LaplaceParams configures a Laplace boundary value run. BCLeft/BCRight are
// the Dirichlet values on the first and last grid rows, BCBottom/BCTop on
// the first and last columns.
type LaplaceParams struct {
	Title         string  `yaml:"Title"`
	NX            int     `yaml:"NX"`
	NY            int     `yaml:"NY"`
	BCLeft        float64 `yaml:"BCLeft"`
	BCRight       float64 `yaml:"BCRight"`
	BCBottom      float64 `yaml:"BCBottom"`
	BCTop         float64 `yaml:"BCTop"`
	Tolerance     float64 `yaml:"Tolerance"`
	MaxIterations int     `yaml:"MaxIterations"`
	Omega         float64 `yaml:"Omega"` // SOR relaxation factor
}

func (ip *LaplaceParams) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	return ip.validate()
}

func (ip *LaplaceParams) validate() error {
	if ip.NX < 3 || ip.NY < 3 {
		return fmt.Errorf("NX and NY must be at least 3 for an interior to exist, got %dx%d", ip.NX, ip.NY)
	}
	if ip.Tolerance <= 0 {
		return fmt.Errorf("Tolerance must be positive, got %v", ip.Tolerance)
	}
	if ip.MaxIterations <= 0 {
		return fmt.Errorf("MaxIterations must be positive, got %d", ip.MaxIterations)
	}
	if ip.Omega != 0 && (ip.Omega <= 0 || ip.Omega >= 2) {
		return fmt.Errorf("Omega must be in (0,2), got %v", ip.Omega)
	}
	return nil
}

func (ip *LaplaceParams) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%dx%d]\t\t= Grid\n", ip.NX, ip.NY)
	fmt.Printf("%10.3e\t= Tolerance\n", ip.Tolerance)
	fmt.Printf("[%d]\t\t= MaxIterations\n", ip.MaxIterations)
	fmt.Printf("%8.5f\t\t= Omega\n", ip.Omega)
}
