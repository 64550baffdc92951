package Central2D

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/notargets/goswe/utils"
)

/*
Jiang-Tadmor staggered central difference scheme for 2D hyperbolic systems
of conservation laws

	U_t + F(U)_x + G(U)_y = 0

on a periodic rectangular grid. The scheme alternates between two staggered
grids, one offset by half a cell in each direction from the other, and needs
no Riemann solvers or flux Jacobians - only the fluxes F, G and a bound on
the characteristic wave speeds, all supplied by a Physics value. A MinMod
family limiter keeps the reconstruction stable near shocks.

Ref:
http://www.cscamm.umd.edu/tadmor/pub/central-schemes/Jiang-Tadmor.SISSC-98.pdf
*/

// StateWidth is the number of conserved components per cell
const StateWidth = 3

// Vec is one cell's conserved state
type Vec [StateWidth]float64

/*
Physics supplies the pointwise flux functions and a conservative upper bound
on the absolute characteristic wave speeds. Implementations must be pure:
no retained state, no mutation of the argument. They may assume the first
component (the density-like quantity) is strictly positive - the engine
checks that before every sub-step.
*/
type Physics interface {
	FluxX(U Vec) (F Vec)
	FluxY(U Vec) (G Vec)
	WaveSpeed(U Vec) (cx, cy float64)
}

const (
	NGhost = 3 // Number of ghost cells on each side

	DefaultCFL   = 0.2
	DefaultTheta = 1.0
)

type Central2D struct {
	Phys           Physics
	Nx, Ny         int     // Number of (non-ghost) cells in x/y
	NxAll, NyAll   int     // Total cells in x/y (including ghost)
	Dx, Dy         float64 // Cell size in x/y
	Theta          float64 // Parameter for minmod limiter
	CFL            float64 // Allowed CFL number
	Time           float64 // Current simulated time
	ParallelDegree int     // Number of go routines used for the stage loops
	// Cell fields, stored one utils.Matrix plane per conserved component,
	// each plane NyAll x NxAll row-major
	U  [StateWidth]utils.Matrix // Solution values
	F  [StateWidth]utils.Matrix // Fluxes in x
	G  [StateWidth]utils.Matrix // Fluxes in y
	Ux [StateWidth]utils.Matrix // x differences of u
	Uy [StateWidth]utils.Matrix // y differences of u
	Fx [StateWidth]utils.Matrix // x differences of f
	Gy [StateWidth]utils.Matrix // y differences of g
	V  [StateWidth]utils.Matrix // Solution values at next step
	pm *utils.PartitionMap      // Row bands, one per go routine
	// Per partition wave speed maxima, combined in partition order
	cxP, cyP []float64
}

func NewCentral2D(phys Physics, w, h float64, nx, ny int,
	cfl, theta float64, procLimit int) (c *Central2D, err error) {
	switch {
	case phys == nil:
		err = fmt.Errorf("physics must be supplied")
	case w <= 0 || h <= 0:
		err = fmt.Errorf("domain dimensions must be positive, have w,h = %v,%v", w, h)
	case nx < 1 || ny < 1:
		err = fmt.Errorf("cell counts must be at least 1, have nx,ny = %d,%d", nx, ny)
	case cfl <= 0 || cfl > 0.5:
		err = fmt.Errorf("CFL must be in (0,0.5] for stability, have %v", cfl)
	case theta < 1 || theta > 2:
		err = fmt.Errorf("limiter theta must be in [1,2], have %v", theta)
	}
	if err != nil {
		return
	}
	c = &Central2D{
		Phys:  phys,
		Nx:    nx,
		Ny:    ny,
		NxAll: nx + 2*NGhost,
		NyAll: ny + 2*NGhost,
		Dx:    w / float64(nx),
		Dy:    h / float64(ny),
		CFL:   cfl,
		Theta: theta,
	}
	for m := 0; m < StateWidth; m++ {
		c.U[m] = utils.NewMatrix(c.NyAll, c.NxAll)
		c.F[m] = utils.NewMatrix(c.NyAll, c.NxAll)
		c.G[m] = utils.NewMatrix(c.NyAll, c.NxAll)
		c.Ux[m] = utils.NewMatrix(c.NyAll, c.NxAll)
		c.Uy[m] = utils.NewMatrix(c.NyAll, c.NxAll)
		c.Fx[m] = utils.NewMatrix(c.NyAll, c.NxAll)
		c.Gy[m] = utils.NewMatrix(c.NyAll, c.NxAll)
		c.V[m] = utils.NewMatrix(c.NyAll, c.NxAll)
	}
	c.SetParallelDegree(procLimit)
	return
}

func (c *Central2D) SetParallelDegree(procLimit int) {
	if procLimit > 0 {
		c.ParallelDegree = procLimit
	} else {
		c.ParallelDegree = runtime.NumCPU()
	}
	if c.ParallelDegree > c.NyAll {
		c.ParallelDegree = c.NyAll
	}
	c.pm = utils.NewPartitionMap(c.ParallelDegree, c.NyAll)
	c.cxP = make([]float64, c.ParallelDegree)
	c.cyP = make([]float64, c.ParallelDegree)
}

func (c *Central2D) offset(ix, iy int) int { return iy*c.NxAll + ix }

// Offset maps cell coordinates (ghost cells included) to the flat plane index
func (c *Central2D) Offset(ix, iy int) int { return c.offset(ix, iy) }

// At reads one cell, ghost cells included
func (c *Central2D) At(ix, iy int) (u Vec) {
	var (
		o = c.offset(ix, iy)
	)
	for m := 0; m < StateWidth; m++ {
		u[m] = c.U[m].DataP[o]
	}
	return
}

/*
Init calls fn once per live cell with the cell center coordinates
x = (ix+0.5)*dx, y = (iy+0.5)*dy for (ix,iy) in [0,nx) x [0,ny). The
callback fills the output state in place and must produce a strictly
positive first component everywhere.
*/
func (c *Central2D) Init(fn func(u *Vec, x, y float64)) {
	for iy := 0; iy < c.Ny; iy++ {
		for ix := 0; ix < c.Nx; ix++ {
			var u Vec
			fn(&u, (float64(ix)+0.5)*c.Dx, (float64(iy)+0.5)*c.Dy)
			o := c.offset(ix+NGhost, iy+NGhost)
			for m := 0; m < StateWidth; m++ {
				c.U[m].DataP[o] = u[m]
			}
		}
	}
}

/*
bandParallel fans work out over the row bands of the partition map, clipped
to [y0,y1), and blocks until every band has completed. Each stage of a
sub-step runs under exactly one such barrier, so no cell of a stage can be
read before every cell of the previous stage was written.
*/
func (c *Central2D) bandParallel(y0, y1 int, work func(np, iyMin, iyMax int)) {
	var (
		wg = sync.WaitGroup{}
	)
	for np := 0; np < c.ParallelDegree; np++ {
		iyMin, iyMax := c.pm.GetBucketRange(np)
		if iyMin < y0 {
			iyMin = y0
		}
		if iyMax > y1 {
			iyMax = y1
		}
		if iyMin >= iyMax {
			continue
		}
		wg.Add(1)
		go func(np, iyMin, iyMax int) {
			work(np, iyMin, iyMax)
			wg.Done()
		}(np, iyMin, iyMax)
	}
	wg.Wait()
}

/*
Run advances the solution from the current time to tfinal. Sub-steps are
always taken in pairs so that the final state lives on the primary grid,
and dt is chosen once per pair from the CFL bound, shrunk when needed so
the last pair lands exactly on tfinal. Returns a divergence error when a
non-positive depth is found before any sub-step.
*/
func (c *Central2D) Run(tfinal float64) (err error) {
	var (
		done bool
		dt   float64
	)
	if tfinal < c.Time {
		err = fmt.Errorf("tfinal %v is before current time %v", tfinal, c.Time)
		return
	}
	for !done {
		for io := 0; io < 2; io++ {
			c.ApplyPeriodic()
			if _, err = c.SolutionCheck(); err != nil {
				return
			}
			cx, cy := c.ComputeFGSpeeds()
			c.LimitedDerivs()
			if io == 0 {
				dt = c.CFL / max(cx/c.Dx, cy/c.Dy)
				if c.Time+2*dt >= tfinal {
					dt = (tfinal - c.Time) / 2
					done = true
				}
			}
			c.ComputeStep(io, dt)
			c.Time += dt
		}
	}
	return
}
