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
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/goswe/Central2D"
	"github.com/notargets/goswe/InputParameters"
	"github.com/notargets/goswe/model_problems/Shallow2D"
)

type Model2D struct {
	ICFile  string
	Profile bool
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional shallow water solver on a periodic grid",
	Long:  `Two dimensional shallow water solver on a periodic grid`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("2D called")
		m2d := &Model2D{}
		if m2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m2d.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processInput(m2d)
		Run2D(m2d, ip)
	},
}

func processInput(m2d *Model2D) (ip *InputParameters.InputParameters2D) {
	var (
		err error
	)
	if len(m2d.ICFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Dam Break"
CFL: 0.2
Theta: 2.
Nx: 200
Ny: 200
Width: 2.
Height: 2.
FinalTime: 0.5
InitType: DamBreak # Can be "StillPond"
PlotField: Height # Can be "Momentum"
OutputPrefix: dam
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(m2d.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParameters2D{
		CFL:          Central2D.DefaultCFL,
		Theta:        Central2D.DefaultTheta,
		OutputPrefix: "goswe",
	}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- Grid and domain dimensions\n\t- FinalTime")
	TwoDCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the run")
}

func Run2D(m2d *Model2D, ip *InputParameters.InputParameters2D) {
	if m2d.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	sim, err := Shallow2D.NewSimulation(ip)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = sim.Run(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
}
