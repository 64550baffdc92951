package Central2D

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
zeroFluxPhysics carries a constant wave speed bound and no flux at all, so
a solution under it only sees the averaging part of the scheme. Handy for
exercising the engine without the shallow water nonlinearity.
*/
type zeroFluxPhysics struct {
	cx, cy float64
}

func (p zeroFluxPhysics) FluxX(U Vec) (F Vec)              { return }
func (p zeroFluxPhysics) FluxY(U Vec) (G Vec)              { return }
func (p zeroFluxPhysics) WaveSpeed(U Vec) (cx, cy float64) { return p.cx, p.cy }

// countingPhysics counts WaveSpeed evaluations, one full grid per sub-step
type countingPhysics struct {
	zeroFluxPhysics
	calls *int64
}

func (p countingPhysics) WaveSpeed(U Vec) (cx, cy float64) {
	atomic.AddInt64(p.calls, 1)
	return p.zeroFluxPhysics.WaveSpeed(U)
}

func TestNewCentral2D(t *testing.T) {
	var (
		phys = zeroFluxPhysics{1, 1}
	)
	{ // Valid construction
		c, err := NewCentral2D(phys, 2, 2, 200, 100, 0.2, 2.0, 4)
		assert.NoError(t, err)
		assert.Equal(t, 206, c.NxAll)
		assert.Equal(t, 106, c.NyAll)
		assert.InDelta(t, 0.01, c.Dx, 1.e-15)
		assert.InDelta(t, 0.02, c.Dy, 1.e-15)
		assert.Equal(t, 4, c.ParallelDegree)
	}
	{ // Configuration errors are rejected before allocation
		for _, tc := range []struct {
			w, h       float64
			nx, ny     int
			cfl, theta float64
		}{
			{0, 2, 10, 10, 0.2, 1},
			{2, -1, 10, 10, 0.2, 1},
			{2, 2, 0, 10, 0.2, 1},
			{2, 2, 10, -5, 0.2, 1},
			{2, 2, 10, 10, 0, 1},
			{2, 2, 10, 10, 0.6, 1},
			{2, 2, 10, 10, 0.2, 0.5},
			{2, 2, 10, 10, 0.2, 2.5},
		} {
			_, err := NewCentral2D(phys, tc.w, tc.h, tc.nx, tc.ny, tc.cfl, tc.theta, 1)
			assert.Error(t, err)
		}
		_, err := NewCentral2D(nil, 2, 2, 10, 10, 0.2, 1, 1)
		assert.Error(t, err)
	}
}

// seedDistinct fills the live interior with values unique per cell and
// component, leaving the halo zeroed
func seedDistinct(c *Central2D) {
	c.Init(func(u *Vec, x, y float64) {
		u[0] = 1 + x + 10*y
		u[1] = 100 + x + 10*y
		u[2] = 200 + x + 10*y
	})
}

func TestApplyPeriodic(t *testing.T) {
	c, err := NewCentral2D(zeroFluxPhysics{1, 1}, 2, 2, 4, 4, 0.2, 1, 2)
	assert.NoError(t, err)
	seedDistinct(c)
	c.ApplyPeriodic()
	{ // Spot checks: ghost cell equals its wrapped live image
		assert.Equal(t, c.At(4, 3), c.At(0, 3))
		assert.Equal(t, c.At(5, 5), c.At(9, 9))
		assert.Equal(t, c.At(6, 6), c.At(2, 2))
	}
	{ // Every ghost cell matches the periodic image of the live interior
		for iy := 0; iy < c.NyAll; iy++ {
			for ix := 0; ix < c.NxAll; ix++ {
				assert.Equal(t, c.At(wrapIndex(ix, c.Nx), wrapIndex(iy, c.Ny)),
					c.At(ix, iy))
			}
		}
	}
	{ // Idempotent
		before := c.U[0].Copy()
		c.ApplyPeriodic()
		assert.Equal(t, before.DataP, c.U[0].DataP)
	}
}

func TestComputeFGSpeeds(t *testing.T) {
	c, err := NewCentral2D(zeroFluxPhysics{3, 7}, 1, 1, 8, 8, 0.2, 1, 3)
	assert.NoError(t, err)
	c.Init(func(u *Vec, x, y float64) { u[0] = 1 })
	c.ApplyPeriodic()
	cx, cy := c.ComputeFGSpeeds()
	assert.Equal(t, 3., cx)
	assert.Equal(t, 7., cy)
	{ // The sentinel floors the reduction when all speeds vanish
		c.Phys = zeroFluxPhysics{0, 0}
		cx, cy = c.ComputeFGSpeeds()
		assert.Equal(t, 1.0e-15, cx)
		assert.Equal(t, 1.0e-15, cy)
	}
}

func TestRunParityAndCFL(t *testing.T) {
	var (
		calls int64
		phys  = countingPhysics{zeroFluxPhysics{1, 1}, &calls}
	)
	// dx = dy = 0.1, wave speed 1 -> dt = 0.2/(1/0.1) = 0.02 per sub-step
	c, err := NewCentral2D(phys, 1, 1, 10, 10, 0.2, 1, 2)
	assert.NoError(t, err)
	c.Init(func(u *Vec, x, y float64) { u[0] = 1 })
	assert.NoError(t, c.Run(0.1))
	// Super-steps at t = 0.04, 0.08, then dt shrinks to land exactly on
	// tfinal: 0.08 + 2*0.01 = 0.1
	assert.InDelta(t, 0.1, c.Time, 1.e-14)
	subSteps := atomic.LoadInt64(&calls) / int64(c.NxAll*c.NyAll)
	assert.Equal(t, int64(6), subSteps)
	assert.Equal(t, int64(0), subSteps%2)
	{ // The dt formula used at io = 0 respects the CFL bound
		dt := c.CFL / max(1./c.Dx, 1./c.Dy)
		assert.LessOrEqual(t, dt*max(1./c.Dx, 1./c.Dy), c.CFL+1.e-15)
	}
}

func TestDestagger(t *testing.T) {
	// Under zero flux the pair of staggered sub-steps is a symmetric
	// averaging: a single bump must spread without its center moving
	c, err := NewCentral2D(zeroFluxPhysics{1, 1}, 1, 1, 10, 10, 0.2, 1, 2)
	assert.NoError(t, err)
	c.Init(func(u *Vec, x, y float64) {
		u[0] = 1
		if math.Abs(x-0.55) < 0.049 && math.Abs(y-0.55) < 0.049 {
			u[0] = 2
		}
	})
	assert.Equal(t, 2., c.At(5+NGhost, 5+NGhost)[0])
	for io := 0; io < 2; io++ {
		c.ApplyPeriodic()
		c.ComputeFGSpeeds()
		c.LimitedDerivs()
		c.ComputeStep(io, 0.01)
	}
	var (
		hmax         float64
		ixMax, iyMax int
	)
	for iy := NGhost; iy < c.Ny+NGhost; iy++ {
		for ix := NGhost; ix < c.Nx+NGhost; ix++ {
			if h := c.At(ix, iy)[0]; h > hmax {
				hmax, ixMax, iyMax = h, ix, iy
			}
		}
	}
	assert.Equal(t, 5+NGhost, ixMax)
	assert.Equal(t, 5+NGhost, iyMax)
	assert.Less(t, hmax, 2.)
	assert.Greater(t, hmax, 1.)
}

func TestConstantStateIsSteady(t *testing.T) {
	c, err := NewCentral2D(zeroFluxPhysics{1, 1}, 1, 1, 12, 12, 0.2, 2, 0)
	assert.NoError(t, err)
	c.Init(func(u *Vec, x, y float64) { u[0], u[1], u[2] = 2.5, 0, 0 })
	assert.NoError(t, c.Run(0.05))
	for iy := NGhost; iy < c.Ny+NGhost; iy++ {
		for ix := NGhost; ix < c.Nx+NGhost; ix++ {
			u := c.At(ix, iy)
			assert.InDelta(t, 2.5, u[0], 1.e-12)
			assert.InDelta(t, 0., u[1], 1.e-12)
			assert.InDelta(t, 0., u[2], 1.e-12)
		}
	}
}

func TestSolutionCheckDivergence(t *testing.T) {
	c, err := NewCentral2D(zeroFluxPhysics{1, 1}, 1, 1, 4, 4, 0.2, 1, 1)
	assert.NoError(t, err)
	c.Init(func(u *Vec, x, y float64) { u[0] = 1 })
	d, err := c.SolutionCheck()
	assert.NoError(t, err)
	assert.InDelta(t, 1., d.Mass, 1.e-12) // 16 cells of h=1 times dx*dy = 1/16
	assert.Equal(t, 1., d.HMin)
	assert.Equal(t, 1., d.HMax)
	// Poison one live cell and expect a divergence error naming it
	c.U[0].DataP[c.Offset(2+NGhost, 1+NGhost)] = -0.25
	_, err = c.SolutionCheck()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "(2,1)")
}
