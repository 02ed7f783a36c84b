/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/scicomp/gofdm/InputParameters"
	"github.com/scicomp/gofdm/model_problems/Diffusion1D"
	"github.com/scicomp/gofdm/utils"
	"github.com/spf13/cobra"
)

const diffusionExample = `
########################################
Title: "Hat profile diffusion"
XMin: -1.0
XMax: 1.0
NX: 20
Mu: 0.5
StepMax: 500
NCycleOut: 100
Lambda: 0.5
InitType: "hat"
########################################
`

// diffusionCmd represents the diffusion command
var diffusionCmd = &cobra.Command{
	Use:   "diffusion",
	Short: "Diffusion equation model problems",
	Long: `
Solves the diffusion equation du/dt = alpha d2u/dx2 with the FTCS or
Beam-Warming scheme and writes snapshot blocks for plotting.

gofdm diffusion --scheme beamwarming -I diffusion.yml -o solution.dat`,
	Run: func(cmd *cobra.Command, args []string) {
		scheme, _ := cmd.Flags().GetString("scheme")
		input, _ := cmd.Flags().GetString("input")
		outPath, _ := cmd.Flags().GetString("output")

		ip := &InputParameters.DiffusionParams{}
		if err := ip.Parse(readInput(input, diffusionExample)); err != nil {
			fmt.Printf("error parsing input parameters: %s\n", err.Error())
			os.Exit(1)
		}
		ip.Print()

		c, err := setupDiffusion(scheme, ip)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		w := openOutput(outPath)
		defer w.Close()
		if err = c.Run(w); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func setupDiffusion(scheme string, ip *InputParameters.DiffusionParams) (*Diffusion1D.Diffusion, error) {
	var (
		N  = ip.NX + 1
		mu = ip.Diffusion()
	)
	s, err := Diffusion1D.NewScheme(scheme, N, mu, ip.Lambda)
	if err != nil {
		return nil, err
	}
	x := utils.Linspace(ip.XMin, ip.XMax, N)
	u0, err := Diffusion1D.InitialCondition(ip.InitType, x)
	if err != nil {
		return nil, err
	}
	return Diffusion1D.NewDiffusion(s, x, u0, ip.StepMax, ip.NCycleOut), nil
}

func init() {
	rootCmd.AddCommand(diffusionCmd)
	diffusionCmd.Flags().StringP("scheme", "s", "ftcs", "scheme to run: ftcs, beamwarming")
	diffusionCmd.Flags().StringP("input", "I", "", "input parameters file in YAML format")
	diffusionCmd.Flags().StringP("output", "o", "", "output file for snapshot blocks (default stdout)")
}
