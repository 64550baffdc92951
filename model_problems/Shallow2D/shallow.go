package Shallow2D

import (
	"math"

	"github.com/notargets/goswe/Central2D"
)

/*
Shallow water (St. Venant) physics for the central scheme.

The shallow water equations relate the depth and the horizontal momenta of
each water column in the domain:

	U = [ h, hu, hv ]
	F = [ hu, hu^2/h + g h^2/2, hu hv/h ]
	G = [ hv, hu hv/h, hv^2/h + g h^2/2 ]

The characteristic wave speed bound in each direction is the advection
speed plus the gravity wave speed sqrt(g h), which feeds the CFL condition
in the engine.
*/

const Gravity = 9.8

type Shallow2D struct{}

func (Shallow2D) FluxX(U Central2D.Vec) (F Central2D.Vec) {
	h, hu, hv := U[0], U[1], U[2]
	F[0] = hu
	F[1] = hu*hu/h + (0.5*Gravity)*h*h
	F[2] = hu * hv / h
	return
}

func (Shallow2D) FluxY(U Central2D.Vec) (G Central2D.Vec) {
	h, hu, hv := U[0], U[1], U[2]
	G[0] = hv
	G[1] = hu * hv / h
	G[2] = hv*hv/h + (0.5*Gravity)*h*h
	return
}

func (Shallow2D) WaveSpeed(U Central2D.Vec) (cx, cy float64) {
	h, hu, hv := U[0], U[1], U[2]
	rootGH := math.Sqrt(Gravity * h)
	cx = math.Abs(hu/h) + rootGH
	cy = math.Abs(hv/h) + rootGH
	return
}
