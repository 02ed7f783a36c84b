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
	"github.com/scicomp/gofdm/model_problems/Transport1D"
	"github.com/scicomp/gofdm/utils"
	"github.com/spf13/cobra"
)

const transportExample = `
########################################
Title: "Square wave advection"
XMin: -1.0
XMax: 1.0
NX: 100
CFL: 0.5
StepMax: 100
NCycleOut: 10
Lambda: 0.5
InitType: "step"
Boundary: "fixed"
########################################
`

// transportCmd represents the transport command
var transportCmd = &cobra.Command{
	Use:   "transport",
	Short: "Linear transport equation model problems",
	Long: `
Solves the linear transport equation du/dt + c du/dx = 0 with a selectable
explicit or implicit scheme and writes snapshot blocks for plotting.

gofdm transport --scheme upwind -I transport.yml -o solution.dat`,
	Run: func(cmd *cobra.Command, args []string) {
		scheme, _ := cmd.Flags().GetString("scheme")
		input, _ := cmd.Flags().GetString("input")
		outPath, _ := cmd.Flags().GetString("output")

		ip := &InputParameters.TransportParams{}
		if err := ip.Parse(readInput(input, transportExample)); err != nil {
			fmt.Printf("error parsing input parameters: %s\n", err.Error())
			os.Exit(1)
		}
		ip.Print()

		c, err := setupTransport(scheme, ip)
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

func setupTransport(scheme string, ip *InputParameters.TransportParams) (*Transport1D.Transport, error) {
	var (
		N  = ip.NX + 1
		nu = ip.Courant()
	)
	s, bootstrap, err := Transport1D.NewScheme(scheme, N, nu, ip.Lambda)
	if err != nil {
		return nil, err
	}
	bc, err := Transport1D.NewBoundary(ip.Boundary)
	if err != nil {
		return nil, err
	}
	x := utils.Linspace(ip.XMin, ip.XMax, N)
	u0, err := Transport1D.InitialCondition(ip.InitType, x)
	if err != nil {
		return nil, err
	}
	return Transport1D.NewTransport(s, bootstrap, bc, x, u0, ip.StepMax, ip.NCycleOut), nil
}

func init() {
	rootCmd.AddCommand(transportCmd)
	transportCmd.Flags().StringP("scheme", "s", "upwind",
		"scheme to run: upwind, badupwind, ftcs, lax, laxwendroff, leapfrog, maccormack, beamwarming")
	transportCmd.Flags().StringP("input", "I", "", "input parameters file in YAML format")
	transportCmd.Flags().StringP("output", "o", "", "output file for snapshot blocks (default stdout)")
}
