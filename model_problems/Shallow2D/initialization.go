package Shallow2D

import (
	"fmt"
	"strings"

	"github.com/notargets/goswe/Central2D"
)

type InitType uint

const (
	DAM_BREAK InitType = iota
	STILL_POND
)

var (
	InitNames = map[string]InitType{
		"dambreak":  DAM_BREAK,
		"stillpond": STILL_POND,
	}
	InitPrintNames = []string{"Circular Dam Break", "Still Pond"}
)

func NewInitType(label string) (it InitType) {
	var (
		ok  bool
		err error
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty init type, must be one of %v", InitNames)
		panic(err)
	}
	label = strings.ToLower(label)
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("unable to use init type named %s", label)
		panic(err)
	}
	return
}

func (it InitType) Print() string { return InitPrintNames[it] }

func (it InitType) InitFunc() func(u *Central2D.Vec, x, y float64) {
	switch it {
	case STILL_POND:
		return StillPond
	case DAM_BREAK:
		fallthrough
	default:
		return DamBreak
	}
}

/*
DamBreak is the circular dam break problem: a column of water half a unit
higher than its surroundings inside radius 0.5 of the point (1,1), at rest.
The small radius slack keeps cells whose centers land exactly on the rim
inside the column.
*/
func DamBreak(u *Central2D.Vec, x, y float64) {
	x -= 1
	y -= 1
	u[0] = 1.0
	if x*x+y*y < 0.25+1e-5 {
		u[0] = 1.5
	}
	u[1] = 0
	u[2] = 0
}

// StillPond is a flat lake at rest, an exact steady state of the scheme
func StillPond(u *Central2D.Vec, x, y float64) {
	u[0] = 1.0
	u[1] = 0
	u[2] = 0
}
