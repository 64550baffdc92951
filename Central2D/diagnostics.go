package Central2D

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

/*
Diagnostics carries the integrated conserved quantities over the live
interior plus the depth range. The scheme preserves the integrated mass and
momenta up to rounding under periodic boundaries, so these are printed at
every sub-step as a cheap sanity trace.
*/
type Diagnostics struct {
	Mass, MomentumX, MomentumY float64
	HMin, HMax                 float64
}

/*
SolutionCheck sums the conserved quantities over the live interior, prints
the one line diagnostic record, and fails when any live cell has a
non-positive depth - at that point the solution has diverged and further
stepping would only produce NaNs.
*/
func (c *Central2D) SolutionCheck() (d Diagnostics, err error) {
	var (
		i0, i1 = NGhost, c.Nx + NGhost
	)
	d.HMin = c.U[0].Row(NGhost)[i0]
	d.HMax = d.HMin
	for iy := NGhost; iy < c.Ny+NGhost; iy++ {
		hRow := c.U[0].Row(iy)[i0:i1]
		d.Mass += floats.Sum(hRow)
		d.MomentumX += floats.Sum(c.U[1].Row(iy)[i0:i1])
		d.MomentumY += floats.Sum(c.U[2].Row(iy)[i0:i1])
		if hmin := floats.Min(hRow); hmin < d.HMin {
			d.HMin = hmin
		}
		if hmax := floats.Max(hRow); hmax > d.HMax {
			d.HMax = hmax
		}
	}
	cellArea := c.Dx * c.Dy
	d.Mass *= cellArea
	d.MomentumX *= cellArea
	d.MomentumY *= cellArea
	fmt.Printf("%g volume; (%g, %g) momentum; range [%g, %g]\n",
		d.Mass, d.MomentumX, d.MomentumY, d.HMin, d.HMax)
	if d.HMin <= 0 {
		for iy := NGhost; iy < c.Ny+NGhost; iy++ {
			for ix := NGhost; ix < c.Nx+NGhost; ix++ {
				if h := c.U[0].DataP[c.offset(ix, iy)]; h <= 0 {
					err = fmt.Errorf(
						"solution diverged: depth %g <= 0 at cell (%d,%d), t = %g",
						h, ix-NGhost, iy-NGhost, c.Time)
					return
				}
			}
		}
	}
	return
}
