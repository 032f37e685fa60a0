package gallery

import (
	"log"
	"math"

	"github.com/lixenwraith/radial-gallery/clock"
	"github.com/lixenwraith/radial-gallery/layout"
	"github.com/lixenwraith/radial-gallery/motion"
	"github.com/lixenwraith/radial-gallery/parameter"
	"github.com/lixenwraith/radial-gallery/responsive"
	"github.com/lixenwraith/radial-gallery/scroll"
	"github.com/lixenwraith/radial-gallery/status"
)

// Options configures a gallery; start from DefaultOptions
type Options struct {
	// ScrollDistance is the scroll budget of one traversal; <= 0 gives a static layout
	ScrollDistance float64

	// VisiblePercentage is the share of the ring diameter shown, clamped to [10,100]
	VisiblePercentage float64

	BaseRadius    float64
	CompactRadius float64
	Breakpoint    float64

	// PinStart is the trigger anchor expression, e.g. "top top"
	PinStart string

	Direction layout.Direction

	// Disabled ignores hover, focus and activation; scroll still rotates
	Disabled bool

	// ReducedMotion forces the static layout regardless of the host preference
	ReducedMotion bool

	// OnItemSelect fires on explicit activation only (click, Enter, Space)
	OnItemSelect func(index int)

	// OnSnap fires when the snap index lands on a new item
	OnSnap func(index int)

	// SpringFrequency and SpringDamping tune item emphasis springs; zero keeps the defaults
	SpringFrequency float64
	SpringDamping   float64

	Logger  *log.Logger
	Clock   clock.Clock
	Metrics *status.Registry
}

// DefaultOptions returns the parameter defaults
func DefaultOptions() Options {
	return Options{
		ScrollDistance:    parameter.DefaultScrollDistance,
		VisiblePercentage: parameter.DefaultVisiblePercentage,
		BaseRadius:        parameter.DefaultBaseRadius,
		CompactRadius:     parameter.DefaultCompactRadius,
		Breakpoint:        parameter.DefaultBreakpoint,
		PinStart:          parameter.DefaultPinStart,
	}
}

// normalize clamps invalid values to safe minimums and logs each correction
func (o Options) normalize() (Options, scroll.Anchor) {
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.Clock == nil {
		o.Clock = clock.NewReal()
	}

	if math.IsNaN(o.ScrollDistance) || math.IsInf(o.ScrollDistance, 0) || o.ScrollDistance < 0 {
		o.Logger.Printf("gallery: scroll distance %v invalid, using static layout", o.ScrollDistance)
		o.ScrollDistance = 0
	}
	if o.BaseRadius < parameter.MinRadius || math.IsNaN(o.BaseRadius) {
		o.Logger.Printf("gallery: base radius %v clamped to %v", o.BaseRadius, parameter.MinRadius)
		o.BaseRadius = parameter.MinRadius
	}
	if o.CompactRadius < parameter.MinRadius || math.IsNaN(o.CompactRadius) {
		o.Logger.Printf("gallery: compact radius %v clamped to %v", o.CompactRadius, parameter.MinRadius)
		o.CompactRadius = parameter.MinRadius
	}
	if o.Breakpoint < 0 || math.IsNaN(o.Breakpoint) {
		o.Logger.Printf("gallery: breakpoint %v clamped to 0", o.Breakpoint)
		o.Breakpoint = 0
	}
	if v := responsive.VisibleFraction(o.VisiblePercentage) * 100; v != o.VisiblePercentage {
		o.Logger.Printf("gallery: visible percentage %v clamped to %v", o.VisiblePercentage, v)
		o.VisiblePercentage = v
	}

	if o.SpringFrequency < 0 || o.SpringDamping < 0 {
		o.Logger.Printf("gallery: negative spring tuning %v/%v ignored", o.SpringFrequency, o.SpringDamping)
		o.SpringFrequency, o.SpringDamping = 0, 0
	}

	anchor, err := scroll.ParseAnchor(o.PinStart)
	if err != nil {
		o.Logger.Printf("gallery: %v, using %q", err, scroll.TopTop.String())
		o.PinStart = scroll.TopTop.String()
	}
	return o, anchor
}

func (o Options) responsiveConfig() responsive.Config {
	return responsive.Config{
		BaseRadius:        o.BaseRadius,
		CompactRadius:     o.CompactRadius,
		Breakpoint:        o.Breakpoint,
		VisiblePercentage: o.VisiblePercentage,
		Direction:         o.Direction,
	}
}

func (o Options) springField() *motion.Field {
	freq, damp := o.SpringFrequency, o.SpringDamping
	if freq == 0 {
		freq = parameter.SpringFrequency
	}
	if damp == 0 {
		damp = parameter.SpringDamping
	}
	return motion.NewFieldWith(parameter.SpringFPS, freq, damp)
}
