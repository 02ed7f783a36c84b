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
	"github.com/scicomp/gofdm/model_problems/Laplace2D"
	"github.com/spf13/cobra"
)

const laplaceExample = `
########################################
Title: "Unit potential on the top edge"
NX: 9
NY: 9
BCLeft: 0.0
BCRight: 0.0
BCBottom: 0.0
BCTop: 1.0
Tolerance: 1.0e-10
MaxIterations: 300
Omega: 1.5
########################################
`

// laplaceCmd represents the laplace command
var laplaceCmd = &cobra.Command{
	Use:   "laplace",
	Short: "Laplace equation boundary value problems",
	Long: `
Solves the Laplace equation on a rectangular grid by Point-Jacobi or SOR
relaxation and writes the converged field for plotting. Reaching the
iteration cap is reported, with the final change and residual, rather than
treated as a failure.

gofdm laplace --method sor -I laplace.yml -o solution.dat`,
	Run: func(cmd *cobra.Command, args []string) {
		method, _ := cmd.Flags().GetString("method")
		input, _ := cmd.Flags().GetString("input")
		outPath, _ := cmd.Flags().GetString("output")

		ip := &InputParameters.LaplaceParams{}
		if err := ip.Parse(readInput(input, laplaceExample)); err != nil {
			fmt.Printf("error parsing input parameters: %s\n", err.Error())
			os.Exit(1)
		}
		ip.Print()

		m, err := Laplace2D.NewMethod(method, ip.Omega)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		u := Laplace2D.NewField(ip.NX, ip.NY, ip.BCLeft, ip.BCRight, ip.BCBottom, ip.BCTop)
		c := Laplace2D.NewLaplace(u, m, Laplace2D.Settings{
			Tolerance:     ip.Tolerance,
			MaxIterations: ip.MaxIterations,
		})
		w := openOutput(outPath)
		defer w.Close()
		if _, err = c.Run(w); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(laplaceCmd)
	laplaceCmd.Flags().StringP("method", "m", "jacobi", "relaxation method to run: jacobi, sor")
	laplaceCmd.Flags().StringP("input", "I", "", "input parameters file in YAML format")
	laplaceCmd.Flags().StringP("output", "o", "", "output file for snapshot blocks (default stdout)")
}
