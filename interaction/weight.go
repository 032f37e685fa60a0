package interaction

import (
	"github.com/lixenwraith/radial-gallery/parameter"
)

// Weight is the per-item visual emphasis target
type Weight struct {
	Active  bool
	Hovered bool

	Scale      float64
	Opacity    float64
	Blur       float64
	Saturation float64

	// Lift is the distance toward the ring center, in host pixels
	Lift float64

	Z int

	// Visible is false for compact-culled items
	Visible bool

	// Interactive is false when the item must not receive hover or clicks
	Interactive bool
}

// Context is the gallery-wide input to Weigh
type Context struct {
	Count     int
	Effective int

	// AnyHovered is true while an override is engaged
	AnyHovered bool

	Compact  bool
	Disabled bool
}

// Context captures the machine's current weighting input
func (m *Machine) Context(compact bool) Context {
	return Context{
		Count:      m.n,
		Effective:  m.EffectiveIndex(),
		AnyHovered: m.state.Hovered != NoIndex,
		Compact:    compact,
		Disabled:   m.disabled,
	}
}

// Weigh computes the emphasis of item i; exactly one item per context is Active
func Weigh(i int, c Context) Weight {
	if i == c.Effective {
		w := Weight{
			Active:      true,
			Hovered:     c.AnyHovered,
			Scale:       parameter.ActiveScale,
			Lift:        parameter.ActiveLift,
			Opacity:     1,
			Saturation:  1,
			Z:           parameter.ActiveZ,
			Visible:     true,
			Interactive: !c.Disabled,
		}
		if c.Compact {
			w.Scale = parameter.CompactActiveScale
			w.Lift = parameter.CompactActiveLift
		}
		// A disabled ring still marks the scroll position but loses its colour
		if c.Disabled {
			w.Saturation = parameter.DisabledSaturation
		}
		return w
	}

	w := Weight{
		Scale:       1,
		Opacity:     parameter.InactiveOpacity,
		Blur:        parameter.InactiveBlur,
		Saturation:  1,
		Z:           parameter.InactiveZ,
		Visible:     true,
		Interactive: !c.Disabled,
	}
	switch {
	case c.Disabled:
		w.Saturation = parameter.DisabledSaturation
	case c.AnyHovered:
		w.Saturation = parameter.HoverSaturation
	}
	if c.Compact && RingDistance(i, c.Effective, c.Count) > parameter.CompactNeighbourSpan {
		w.Scale = parameter.CulledScale
		w.Opacity = parameter.CulledOpacity
		w.Visible = false
		w.Interactive = false
	}
	return w
}

// RingDistance is the number of steps between a and b going the short way around n items
func RingDistance(a, b, n int) int {
	if n <= 0 {
		return 0
	}
	d := (a - b) % n
	if d < 0 {
		d += n
	}
	return min(d, n-d)
}
