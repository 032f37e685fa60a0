package scroll

import (
	"math"

	"github.com/lixenwraith/radial-gallery/layout"
)

// Binding is the pinning window state
// Invariant: Budget > 0
type Binding struct {
	Budget float64
	Pinned bool
}

// Rotation is the continuous output of the binder
type Rotation struct {
	// Progress is the share of the budget consumed, in [0,1]
	Progress float64

	// Degrees is the container rotation for Progress
	Degrees float64
}

// Measure is the host layout the pin window is computed from
type Measure struct {
	// ContainerTop is the container's offset from the page top
	ContainerTop float64

	// ContainerHeight is the height of the pinned element (usually the viewport height)
	ContainerHeight float64

	// ViewportHeight is the visible page height
	ViewportHeight float64
}

// Window is the scroll range over which the container stays pinned
type Window struct {
	Start, End float64
}

// Contains reports whether pos lies in the pinned range
func (w Window) Contains(pos float64) bool {
	return pos >= w.Start && pos <= w.End
}

// Binder maps scroll position samples to rotation progress
// The mapping is stateless per sample; the window is recomputed by Refresh
type Binder struct {
	n       int
	dir     layout.Direction
	anchor  Anchor
	binding Binding
	window  Window
	measure Measure

	lastPos  float64
	rotation Rotation
	stale    bool
}

// NewBinder creates a binder for n items; returns nil when n <= 1 or budget is not positive
// A nil binder is a valid static layout: every method is safe on nil
func NewBinder(n int, budget float64, anchor Anchor) *Binder {
	if n <= 1 || !(budget > 0) || math.IsInf(budget, 0) {
		return nil
	}
	return &Binder{
		n:       n,
		anchor:  anchor,
		binding: Binding{Budget: budget},
		stale:   true,
	}
}

// Binding returns the current pin state
func (b *Binder) Binding() Binding {
	if b == nil {
		return Binding{}
	}
	return b.binding
}

// Window returns the current pin window
func (b *Binder) Window() Window {
	if b == nil {
		return Window{}
	}
	return b.window
}

// Anchor returns the pin anchor
func (b *Binder) Anchor() Anchor {
	if b == nil {
		return TopTop
	}
	return b.anchor
}

// Stale reports whether the window needs re-measuring
func (b *Binder) Stale() bool {
	return b != nil && b.stale
}

// Invalidate marks the window stale after a viewport, count or geometry change
func (b *Binder) Invalidate() {
	if b != nil {
		b.stale = true
	}
}

// SetCount updates the item count used for the rotation span
func (b *Binder) SetCount(n int) {
	if b == nil || n == b.n {
		return
	}
	b.n = n
	b.stale = true
}

// SetDirection mirrors the rotation sign for RTL rings
func (b *Binder) SetDirection(d layout.Direction) {
	if b != nil {
		b.dir = d
	}
}

// Refresh re-measures the pin window and re-evaluates the last sample against it
func (b *Binder) Refresh(m Measure) Rotation {
	if b == nil {
		return Rotation{}
	}
	b.measure = m
	start := m.ContainerTop + b.anchor.Element.Resolve(m.ContainerHeight) - b.anchor.Viewport.Resolve(m.ViewportHeight)
	b.window = Window{Start: start, End: start + b.binding.Budget}
	b.stale = false
	return b.Sample(b.lastPos)
}

// Sample maps a scroll position to progress and updates the pinned flag
func (b *Binder) Sample(pos float64) Rotation {
	if b == nil {
		return Rotation{}
	}
	b.lastPos = pos
	b.binding.Pinned = b.window.Contains(pos)
	p := Progress(pos-b.window.Start, b.binding.Budget)
	b.rotation = Rotation{Progress: p, Degrees: Degrees(b.n, p) * b.dir.Sign()}
	return b.rotation
}

// Rotation returns the last computed rotation
func (b *Binder) Rotation() Rotation {
	if b == nil {
		return Rotation{}
	}
	return b.rotation
}

// PinnedOffset is how far into the budget the page has scrolled, clamped to [0, Budget]
// Hosts add it to the container's page position to keep the stage fixed while pinned
func (b *Binder) PinnedOffset(pos float64) float64 {
	if b == nil {
		return 0
	}
	return math.Max(0, math.Min(b.binding.Budget, pos-b.window.Start))
}

// Progress is scrolled/budget clamped to [0,1]; 0 for a non-positive budget
func Progress(scrolled, budget float64) float64 {
	if !(budget > 0) {
		return 0
	}
	p := scrolled / budget
	switch {
	case p < 0 || math.IsNaN(p):
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Degrees is -360*(n-1)/n*progress for n > 1, else 0
// RTL rings apply the opposite sign, see Binder.SetDirection
func Degrees(n int, progress float64) float64 {
	if n <= 1 {
		return 0
	}
	return -360 * float64(n-1) / float64(n) * progress
}
