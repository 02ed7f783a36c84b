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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var profiler interface{ Stop() }

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gofdm",
	Short: "Finite difference solvers for model PDEs",
	Long: `
Finite difference solvers for the model equations of a numerical methods
text: linear transport, diffusion and the Laplace equation. Each subcommand
runs one equation family with a selectable scheme and writes gnuplot-ready
snapshot blocks.

gofdm transport --scheme lax -I transport.yml -o solution.dat`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if on, _ := cmd.Flags().GetBool("profile"); on {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gofdm.yaml)")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile for the run")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".gofdm" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gofdm")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// readInput loads a parameter file or exits with an example of the expected
// format when the path is missing or unreadable.
func readInput(path, example string) []byte {
	if len(path) == 0 {
		fmt.Printf("error: must supply an input parameters file (-I, --input) in YAML format\n")
		fmt.Printf("example file contents:%s\n", example)
		os.Exit(1)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("error reading input file %s: %s\n", path, err.Error())
		os.Exit(1)
	}
	return data
}

// openOutput creates the output file, or returns stdout for an empty path.
func openOutput(path string) *os.File {
	if len(path) == 0 {
		return os.Stdout
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("error creating output file %s: %s\n", path, err.Error())
		os.Exit(1)
	}
	return f
}
