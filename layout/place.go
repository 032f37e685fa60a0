package layout

import (
	"math"

	"github.com/lixenwraith/radial-gallery/parameter"
)

// Placement is an item's offset from the ring center and its self-rotation
// Y grows downward, matching screen coordinates
type Placement struct {
	Index       int
	X, Y        float64
	RotationDeg float64
}

var precisionScale = math.Pow(10, parameter.PlacementPrecision)

// Round trims floating-point noise so identical inputs render identically across frames
func Round(v float64) float64 {
	r := math.Round(v*precisionScale) / precisionScale
	if r == 0 {
		return 0 // normalise -0
	}
	return r
}

// Angle returns θ(i) in radians: index 0 at the top, proceeding clockwise
func Angle(i, n int) float64 {
	if n <= 0 {
		return -math.Pi / 2
	}
	return float64(i)/float64(n)*2*math.Pi - math.Pi/2
}

// Place computes item i of n on the ring described by g
// Callers must not invoke it with n == 0; an empty ring renders nothing
func Place(i, n int, g Geometry) Placement {
	theta := Angle(i, n)
	x := g.Radius * math.Cos(theta)
	y := g.Radius * math.Sin(theta)
	if g.Direction == RTL {
		x = -x
	}
	return Placement{
		Index:       i,
		X:           Round(x),
		Y:           Round(y),
		RotationDeg: Round(theta*180/math.Pi + 90),
	}
}

// PlaceAll lays out the whole ring; nil for n <= 0
func PlaceAll(n int, g Geometry) []Placement {
	if n <= 0 {
		return nil
	}
	out := make([]Placement, n)
	for i := range out {
		out[i] = Place(i, n, g)
	}
	return out
}

// Rotate applies the container rotation to a placement
// Hosts without a transform stack use this to position items on screen
func Rotate(p Placement, deg float64) Placement {
	if deg == 0 {
		return p
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Placement{
		Index:       p.Index,
		X:           Round(p.X*cos - p.Y*sin),
		Y:           Round(p.X*sin + p.Y*cos),
		RotationDeg: Round(p.RotationDeg + deg),
	}
}

// StepDegrees is the angular spacing between neighbours
func StepDegrees(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 360 / float64(n)
}
