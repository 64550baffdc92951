package Central2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiter(t *testing.T) {
	c, err := NewCentral2D(zeroFluxPhysics{1, 1}, 1, 1, 4, 4, DefaultCFL, 1.0, 1)
	assert.NoError(t, err)
	{ // Literal cases, theta = 1
		assert.Equal(t, 0., c.limdiff(0, 0, 0))
		assert.Equal(t, 1., c.limdiff(0, 1, 2))
		assert.Equal(t, 1., c.limdiff(0, 1, 3))
		assert.Equal(t, -1., c.limdiff(2, 1, 0))
		assert.Equal(t, 0., c.limdiff(0, 1, -1))
	}
	{ // Sign consistency: zero on disagreement, else shared sign and
		// magnitude bounded by the smaller one sided difference
		samples := []float64{-2, -1, -0.5, 0, 0.5, 1, 3}
		for _, um := range samples {
			for _, u0 := range samples {
				for _, up := range samples {
					var (
						dl, dr = u0 - um, up - u0
						ld     = c.limdiff(um, u0, up)
					)
					if dl*dr < 0 {
						assert.Equal(t, 0., ld)
						continue
					}
					if ld != 0 {
						assert.True(t, ld*(dl+dr) > 0)
					}
					assert.LessOrEqual(t, math.Abs(ld),
						math.Min(math.Abs(dl), math.Abs(dr))+1.e-15)
				}
			}
		}
	}
	{ // The copysign formulation treats a zero argument as positive
		assert.Equal(t, 0., xmin(0, 2))
		assert.Equal(t, 0., xmin(-1, 0))
		assert.Equal(t, 1., xmin(1, 2))
		assert.Equal(t, -1., xmin(-2, -1))
		assert.Equal(t, 0., xmin(-1, 2))
	}
}
