package Shallow2D

import (
	"fmt"
	"time"

	"github.com/notargets/goswe/Central2D"
	"github.com/notargets/goswe/InputParameters"
)

/*
Simulation glues the central scheme engine to the shallow water physics,
initial conditions and PGM output, driven by the parameters of a YAML run
deck. It is the moral equivalent of a main() for one run.
*/
type Simulation struct {
	C         *Central2D.Central2D
	IP        *InputParameters.InputParameters2D
	Case      InitType
	Field     PlotField
	FinalTime float64
}

func NewSimulation(ip *InputParameters.InputParameters2D) (sim *Simulation, err error) {
	var (
		c *Central2D.Central2D
	)
	if c, err = Central2D.NewCentral2D(Shallow2D{},
		ip.Width, ip.Height, ip.Nx, ip.Ny,
		ip.CFL, ip.Theta, ip.ProcLimit); err != nil {
		return
	}
	sim = &Simulation{
		C:         c,
		IP:        ip,
		Case:      NewInitType(ip.InitType),
		Field:     NewPlotField(ip.PlotField),
		FinalTime: ip.FinalTime,
	}
	sim.C.Init(sim.Case.InitFunc())
	return
}

func (sim *Simulation) PrintInitialization() {
	c := sim.C
	fmt.Printf("Shallow Water Equations in 2 Dimensions\n")
	fmt.Printf("Jiang-Tadmor staggered central scheme\n")
	fmt.Printf("Using %d go routines in parallel\n", c.ParallelDegree)
	fmt.Printf("Solving %s\n", sim.Case.Print())
	fmt.Printf("CFL = %8.4f, Theta = %8.4f, Grid = %d x %d, Domain = %g x %g\n\n",
		c.CFL, c.Theta, c.Nx, c.Ny, c.Dx*float64(c.Nx), c.Dy*float64(c.Ny))
}

/*
Run produces a PGM frame of the initial field, advances the solution to the
run deck's final time and writes the final frame. The returned error is
either a divergence abort from the engine or a frame write failure.
*/
func (sim *Simulation) Run() (err error) {
	var (
		c       = sim.C
		pixelFn = sim.Field.PixelFunc()
	)
	sim.PrintInitialization()
	if _, err = c.SolutionCheck(); err != nil {
		return
	}
	if err = c.WritePGM(sim.IP.OutputPrefix+"_init.pgm", pixelFn); err != nil {
		return
	}
	start := time.Now()
	if err = c.Run(sim.FinalTime); err != nil {
		return
	}
	elapsed := time.Since(start)
	fmt.Printf("\nt = %8.4f reached, elapsed = %v\n", c.Time, elapsed)
	err = c.WritePGM(sim.IP.OutputPrefix+"_final.pgm", pixelFn)
	return
}
