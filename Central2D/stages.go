package Central2D

/*
ComputeFGSpeeds evaluates F and G at every cell center, ghost cells
included, and returns global bounds on the characteristic wave speeds as
the basis for the CFL condition. Ghost cells are periodic images of the
interior after ApplyPeriodic, so including them keeps the loops rectangular
without changing the maxima. Each row band reduces into its own slot and
the slots are combined in partition order, so the result is deterministic
run to run.
*/
func (c *Central2D) ComputeFGSpeeds() (cx, cy float64) {
	for np := 0; np < c.ParallelDegree; np++ {
		c.cxP[np] = 0
		c.cyP[np] = 0
	}
	c.bandParallel(0, c.NyAll, func(np, iyMin, iyMax int) {
		var (
			u        Vec
			cxB, cyB float64
		)
		for iy := iyMin; iy < iyMax; iy++ {
			for ix := 0; ix < c.NxAll; ix++ {
				o := c.offset(ix, iy)
				for m := 0; m < StateWidth; m++ {
					u[m] = c.U[m].DataP[o]
				}
				F := c.Phys.FluxX(u)
				G := c.Phys.FluxY(u)
				for m := 0; m < StateWidth; m++ {
					c.F[m].DataP[o] = F[m]
					c.G[m].DataP[o] = G[m]
				}
				cellCx, cellCy := c.Phys.WaveSpeed(u)
				if cellCx > cxB {
					cxB = cellCx
				}
				if cellCy > cyB {
					cyB = cellCy
				}
			}
		}
		c.cxP[np] = cxB
		c.cyP[np] = cyB
	})
	// The tiny floor keeps the downstream dt division finite on an all
	// quiescent field
	cx, cy = 1.0e-15, 1.0e-15
	for np := 0; np < c.ParallelDegree; np++ {
		if c.cxP[np] > cx {
			cx = c.cxP[np]
		}
		if c.cyP[np] > cy {
			cy = c.cyP[np]
		}
	}
	return
}

/*
LimitedDerivs computes the limited central differences of u in both
directions, of f in x and of g in y, component by component. Requires the
flux planes populated by ComputeFGSpeeds.
*/
func (c *Central2D) LimitedDerivs() {
	c.bandParallel(1, c.NyAll-1, func(np, iyMin, iyMax int) {
		var (
			nxa = c.NxAll
		)
		for m := 0; m < StateWidth; m++ {
			var (
				uD, fD, gD = c.U[m].DataP, c.F[m].DataP, c.G[m].DataP
				uxD, fxD   = c.Ux[m].DataP, c.Fx[m].DataP
				uyD, gyD   = c.Uy[m].DataP, c.Gy[m].DataP
			)
			for iy := iyMin; iy < iyMax; iy++ {
				for ix := 1; ix < nxa-1; ix++ {
					o := iy*nxa + ix
					// x derivs
					uxD[o] = c.limdiff(uD[o-1], uD[o], uD[o+1])
					fxD[o] = c.limdiff(fD[o-1], fD[o], fD[o+1])
					// y derivs
					uyD[o] = c.limdiff(uD[o-nxa], uD[o], uD[o+nxa])
					gyD[o] = c.limdiff(gD[o-nxa], gD[o], gD[o+nxa])
				}
			}
		}
	})
}
