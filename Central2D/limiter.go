package Central2D

import "math"

/*
Generalized MinMod limiter used for the slope reconstruction.

xmin is the two argument minmod: zero when the arguments disagree in sign,
otherwise the smaller magnitude with the shared sign. The copysign sum is
the whole trick - it is 1 or -1 when the signs agree and 0 when they
disagree. Note that on IEEE-754 a zero argument carries a positive sign
through copysign, so minmod(0, b) = 0 for b > 0 via the min, not the sign
sum. That matches the reference scheme and must not be "fixed".
*/
func xmin(a, b float64) float64 {
	return (math.Copysign(0.5, a) + math.Copysign(0.5, b)) *
		math.Min(math.Abs(a), math.Abs(b))
}

// xmic is the theta weighted MinMod of the one sided and central differences
func (c *Central2D) xmic(du1, du2 float64) float64 {
	return xmin(c.Theta*xmin(du1, du2), 0.5*(du1+du2))
}

func (c *Central2D) limdiff(um, u0, up float64) float64 {
	return c.xmic(u0-um, up-u0)
}
