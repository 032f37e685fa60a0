// Package layout places gallery items evenly around a ring
package layout

import (
	"strings"

	"github.com/lixenwraith/radial-gallery/parameter"
)

// Direction is the horizontal reading direction of the ring
type Direction uint8

const (
	LTR Direction = iota
	RTL
)

// String returns the lowercase direction name
func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection maps "ltr"/"rtl" (any case) to a Direction
// Unknown values resolve to LTR with ok=false
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rtl":
		return RTL, true
	case "ltr", "":
		return LTR, true
	}
	return LTR, false
}

// Sign is -1 for RTL and +1 for LTR
func (d Direction) Sign() float64 {
	if d == RTL {
		return -1
	}
	return 1
}

// Geometry is the derived ring size for the current viewport
// Invariant: Diameter == 2*Radius
type Geometry struct {
	Radius    float64
	Diameter  float64
	Direction Direction
}

// NewGeometry builds a Geometry, clamping radius to parameter.MinRadius
func NewGeometry(radius float64, dir Direction) Geometry {
	if !(radius >= parameter.MinRadius) {
		radius = parameter.MinRadius
	}
	return Geometry{
		Radius:    radius,
		Diameter:  2 * radius,
		Direction: dir,
	}
}
