package Central2D

/*
ComputeStep takes one sub-step of the scheme at staggering offset io. The
predictor re-evaluates the fluxes at a half-advanced state, then the
corrector forms the staggered cell average and the result is copied back to
the primary grid with the matching shift. Two sub-steps, io = 0 then io = 1,
return the solution to its original cell centering.
*/
func (c *Central2D) ComputeStep(io int, dt float64) {
	var (
		dtcdx2 = 0.5 * dt / c.Dx
		dtcdy2 = 0.5 * dt / c.Dy
	)

	// Predictor (flux values of f and g at half step)
	c.bandParallel(1, c.NyAll-1, func(np, iyMin, iyMax int) {
		var (
			uh Vec
		)
		for iy := iyMin; iy < iyMax; iy++ {
			for ix := 1; ix < c.NxAll-1; ix++ {
				o := c.offset(ix, iy)
				for m := 0; m < StateWidth; m++ {
					uh[m] = c.U[m].DataP[o] -
						dtcdx2*c.Fx[m].DataP[o] -
						dtcdy2*c.Gy[m].DataP[o]
				}
				F := c.Phys.FluxX(uh)
				G := c.Phys.FluxY(uh)
				for m := 0; m < StateWidth; m++ {
					c.F[m].DataP[o] = F[m]
					c.G[m].DataP[o] = G[m]
				}
			}
		}
	})

	// Corrector (finish the step)
	c.bandParallel(NGhost-io, c.Ny+NGhost-io, func(np, iyMin, iyMax int) {
		var (
			nxa = c.NxAll
		)
		for m := 0; m < StateWidth; m++ {
			var (
				uD, vD   = c.U[m].DataP, c.V[m].DataP
				uxD, uyD = c.Ux[m].DataP, c.Uy[m].DataP
				fD, gD   = c.F[m].DataP, c.G[m].DataP
			)
			for iy := iyMin; iy < iyMax; iy++ {
				for ix := NGhost - io; ix < c.Nx+NGhost-io; ix++ {
					o := iy*nxa + ix
					vD[o] =
						0.2500*(uD[o]+uD[o+1]+
							uD[o+nxa]+uD[o+nxa+1]) -
							0.0625*(uxD[o+1]-uxD[o]+
								uxD[o+nxa+1]-uxD[o+nxa]+
								uyD[o+nxa]-uyD[o]+
								uyD[o+nxa+1]-uyD[o+1]) -
							dtcdx2*(fD[o+1]-fD[o]+
								fD[o+nxa+1]-fD[o+nxa]) -
							dtcdy2*(gD[o+nxa]-gD[o]+
								gD[o+nxa+1]-gD[o+1])
				}
			}
		}
	})

	// Copy from v storage back to the primary grid, de-staggering by io
	c.bandParallel(NGhost, c.Ny+NGhost, func(np, iyMin, iyMax int) {
		for m := 0; m < StateWidth; m++ {
			for iy := iyMin; iy < iyMax; iy++ {
				src := c.V[m].Row(iy - io)
				dst := c.U[m].Row(iy)
				copy(dst[NGhost:c.Nx+NGhost], src[NGhost-io:c.Nx+NGhost-io])
			}
		}
	})
}
