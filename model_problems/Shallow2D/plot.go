package Shallow2D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/goswe/Central2D"
)

type PlotField uint

const (
	HEIGHT PlotField = iota
	MOMENTUM
)

var (
	PlotNames = map[string]PlotField{
		"height":   HEIGHT,
		"momentum": MOMENTUM,
	}
	PlotPrintNames = []string{"Water Height", "Momentum Magnitude"}
)

func NewPlotField(label string) (pf PlotField) {
	var (
		ok  bool
		err error
	)
	if len(label) == 0 {
		return HEIGHT
	}
	label = strings.ToLower(label)
	if pf, ok = PlotNames[label]; !ok {
		err = fmt.Errorf("unable to use plot field named %s", label)
		panic(err)
	}
	return
}

func (pf PlotField) Print() string { return PlotPrintNames[pf] }

func (pf PlotField) PixelFunc() func(u Central2D.Vec) int {
	switch pf {
	case MOMENTUM:
		return ShowMomentum
	case HEIGHT:
		fallthrough
	default:
		return ShowHeight
	}
}

// ShowHeight maps the water height to intensity, max height assumed 3.0
func ShowHeight(u Central2D.Vec) int {
	return int(255 * (u[0] / 3.0))
}

// ShowMomentum maps the momentum magnitude to intensity, max assumed 2.5
func ShowMomentum(u Central2D.Vec) int {
	return int(255 * math.Sqrt(u[1]*u[1]+u[2]*u[2]) / 2.5)
}
