package Central2D

/*
Periodic boundary conditions. The range [NGhost,nx+NGhost) x [NGhost,ny+NGhost)
holds the canonical cell values; every other cell is a periodic image of it
and gets overwritten here.
*/

// wrapIndex is the mathematical (non-negative) modulus of the live index
func wrapIndex(i, n int) int {
	return ((i-NGhost)%n+n)%n + NGhost
}

/*
ApplyPeriodic refreshes all ghost cells of u. Left/right ghost columns of
the interior rows are filled first, then whole top and bottom ghost rows
are copied from their interior image rows - including those rows' already
periodic ghost columns, which covers the corners. Idempotent.
*/
func (c *Central2D) ApplyPeriodic() {
	for m := 0; m < StateWidth; m++ {
		uD := c.U[m].DataP
		// Copy data between right and left boundaries
		for iy := NGhost; iy < c.Ny+NGhost; iy++ {
			o := iy * c.NxAll
			for ix := 0; ix < NGhost; ix++ {
				uD[o+ix] = uD[o+wrapIndex(ix, c.Nx)]
				uD[o+c.Nx+NGhost+ix] = uD[o+wrapIndex(c.Nx+NGhost+ix, c.Nx)]
			}
		}
		// Copy data between top and bottom boundaries, full rows at a time
		for iy := 0; iy < NGhost; iy++ {
			copy(c.U[m].Row(iy), c.U[m].Row(wrapIndex(iy, c.Ny)))
			copy(c.U[m].Row(c.Ny+NGhost+iy), c.U[m].Row(wrapIndex(c.Ny+NGhost+iy, c.Ny)))
		}
	}
}
