package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters2D struct {
	Title        string  `yaml:"Title"`
	CFL          float64 `yaml:"CFL"`
	Theta        float64 `yaml:"Theta"`
	Nx           int     `yaml:"Nx"`
	Ny           int     `yaml:"Ny"`
	Width        float64 `yaml:"Width"`
	Height       float64 `yaml:"Height"`
	FinalTime    float64 `yaml:"FinalTime"`
	InitType     string  `yaml:"InitType"`
	PlotField    string  `yaml:"PlotField"`
	OutputPrefix string  `yaml:"OutputPrefix"`
	ProcLimit    int     `yaml:"ProcLimit"`
}

func (ip *InputParameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= Theta\n", ip.Theta)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d x %d]\t\t= Grid\n", ip.Nx, ip.Ny)
	fmt.Printf("[%g x %g]\t\t= Domain\n", ip.Width, ip.Height)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	fmt.Printf("[%s]\t\t= PlotField\n", ip.PlotField)
	fmt.Printf("[%s]\t\t= OutputPrefix\n", ip.OutputPrefix)
}
