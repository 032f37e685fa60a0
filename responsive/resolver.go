// Package responsive derives ring geometry and visible area from viewport and content measurements
package responsive

import (
	"math"

	"github.com/lixenwraith/radial-gallery/layout"
	"github.com/lixenwraith/radial-gallery/parameter"
)

// Config holds the size tunables the resolver chooses between
type Config struct {
	BaseRadius        float64
	CompactRadius     float64
	Breakpoint        float64
	VisiblePercentage float64
	Direction         layout.Direction
}

// DefaultConfig returns the parameter defaults
func DefaultConfig() Config {
	return Config{
		BaseRadius:        parameter.DefaultBaseRadius,
		CompactRadius:     parameter.DefaultCompactRadius,
		Breakpoint:        parameter.DefaultBreakpoint,
		VisiblePercentage: parameter.DefaultVisiblePercentage,
	}
}

// Change reports which derived values moved after an input update
type Change uint8

const (
	// ChangeViewport is set when width or height moved
	ChangeViewport Change = 1 << iota
	// ChangeCompact is set when the compact/base selection flipped
	ChangeCompact
	// ChangeItem is set when the measured item size moved
	ChangeItem
)

// Has reports whether all bits of c2 are set
func (c Change) Has(c2 Change) bool { return c&c2 == c2 }

// Resolver tracks viewport width, device class and item size
// Inputs are recorded synchronously; consumers decide when to relayout
type Resolver struct {
	cfg Config

	width, height float64
	coarse        bool

	itemW, itemH float64
	measured     bool
}

// NewResolver creates a resolver using the fallback viewport until the host reports one
func NewResolver(cfg Config) *Resolver {
	return &Resolver{
		cfg:    cfg,
		width:  parameter.FallbackViewportWidth,
		height: parameter.FallbackViewportHeight,
	}
}

// Config returns the resolver configuration
func (r *Resolver) Config() Config { return r.cfg }

// SetConfig replaces the tunables; geometry follows on the next read
func (r *Resolver) SetConfig(cfg Config) Change {
	before := r.Compact()
	oldR := r.Radius()
	r.cfg = cfg
	var c Change
	if r.Compact() != before {
		c |= ChangeCompact
	}
	if r.Radius() != oldR {
		c |= ChangeViewport
	}
	return c
}

// SetViewport records the host viewport size; non-positive or NaN sizes keep the previous value
func (r *Resolver) SetViewport(width, height float64) Change {
	before := r.Compact()
	var c Change
	if width > 0 && !math.IsInf(width, 0) && width != r.width {
		r.width = width
		c |= ChangeViewport
	}
	if height > 0 && !math.IsInf(height, 0) && height != r.height {
		r.height = height
		c |= ChangeViewport
	}
	if r.Compact() != before {
		c |= ChangeCompact
	}
	return c
}

// SetDeviceClass records whether the primary pointer is coarse (touch)
func (r *Resolver) SetDeviceClass(coarse bool) Change {
	if coarse == r.coarse {
		return 0
	}
	before := r.Compact()
	r.coarse = coarse
	if r.Compact() != before {
		return ChangeCompact
	}
	return 0
}

// SetItemSize records a measured item box; a non-positive size reverts to the fallback
func (r *Resolver) SetItemSize(width, height float64) Change {
	ok := width > 0 && height > 0 && !math.IsInf(width, 0) && !math.IsInf(height, 0)
	if !ok {
		if !r.measured {
			return 0
		}
		r.measured = false
		r.itemW, r.itemH = 0, 0
		return ChangeItem
	}
	if r.measured && width == r.itemW && height == r.itemH {
		return 0
	}
	r.measured = true
	r.itemW, r.itemH = width, height
	return ChangeItem
}

// Viewport returns the recorded viewport size
func (r *Resolver) Viewport() (width, height float64) {
	return r.width, r.height
}

// Coarse reports the recorded device class
func (r *Resolver) Coarse() bool { return r.coarse }

// Compact reports whether the compact radius applies
func (r *Resolver) Compact() bool {
	return r.coarse || r.width < r.cfg.Breakpoint
}

// Radius is the selected radius clamped to parameter.MinRadius
func (r *Resolver) Radius() float64 {
	radius := r.cfg.BaseRadius
	if r.Compact() {
		radius = r.cfg.CompactRadius
	}
	if !(radius >= parameter.MinRadius) {
		return parameter.MinRadius
	}
	return radius
}

// Geometry derives the ring geometry for the current inputs
func (r *Resolver) Geometry() layout.Geometry {
	return layout.NewGeometry(r.Radius(), r.cfg.Direction)
}

// ItemSize returns the measured item box or the fallback
func (r *Resolver) ItemSize() (width, height float64, measured bool) {
	if !r.measured {
		return parameter.FallbackItemWidth, parameter.FallbackItemHeight, false
	}
	return r.itemW, r.itemH, true
}

// VisibleFraction clamps the configured percentage to [10,100] and returns it as a fraction
func VisibleFraction(pct float64) float64 {
	if math.IsNaN(pct) {
		pct = parameter.DefaultVisiblePercentage
	}
	pct = math.Max(parameter.MinVisiblePercentage, math.Min(parameter.MaxVisiblePercentage, pct))
	return pct / 100
}

// VisibleHeight is the height of the area the ring is clipped to
// Never zero: unmeasured items use a conservative buffer
func (r *Resolver) VisibleHeight() float64 {
	if r.Compact() {
		if r.measured {
			return r.height * parameter.CompactVisibleFactor
		}
		return r.height * parameter.CompactVisibleFallbackFactor
	}
	d := 2 * r.Radius() * VisibleFraction(r.cfg.VisiblePercentage)
	if r.measured {
		return d + r.itemH + parameter.VisibleHeightBuffer
	}
	return d + parameter.VisibleHeightFallbackBuffer
}

// ContainerBottom is the ring container's bottom offset relative to the visible area
// Negative values sink the ring so only the top arc shows
func (r *Resolver) ContainerBottom() float64 {
	if r.Compact() {
		return -r.Radius() * parameter.CompactBottomFactor
	}
	return -2 * r.Radius() * (1 - VisibleFraction(r.cfg.VisiblePercentage))
}

// SectionHeight is the minimum page height of the pinned section for a scroll budget
func (r *Resolver) SectionHeight(budget float64) float64 {
	if r.Compact() || !(budget > 0) {
		return r.height
	}
	return budget + r.height
}
