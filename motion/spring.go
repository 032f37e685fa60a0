package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/radial-gallery/parameter"
)

// Channel indexes one animated emphasis property
type Channel int

const (
	ChannelScale Channel = iota
	ChannelOpacity
	ChannelLift
	ChannelBlur
	ChannelSaturation
	channelCount
)

// Values is one item's animated emphasis
type Values [channelCount]float64

// Field animates emphasis for a ring of items with damped springs stepped at a fixed rate
type Field struct {
	spring harmonica.Spring
	step   time.Duration
	acc    time.Duration

	pos    []Values
	vel    []Values
	target []Values
	primed []bool
}

// NewField creates a spring field with the parameter defaults
func NewField() *Field {
	return NewFieldWith(parameter.SpringFPS, parameter.SpringFrequency, parameter.SpringDamping)
}

// NewFieldWith creates a spring field stepped fps times per second
func NewFieldWith(fps int, frequency, damping float64) *Field {
	if fps <= 0 {
		fps = parameter.SpringFPS
	}
	return &Field{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		step:   time.Second / time.Duration(fps),
	}
}

// Resize keeps existing item state and primes new items on their first target
func (f *Field) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if len(f.pos) == n {
		return
	}
	grow := func(s []Values) []Values {
		if n <= len(s) {
			return s[:n]
		}
		return append(s, make([]Values, n-len(s))...)
	}
	f.pos = grow(f.pos)
	f.vel = grow(f.vel)
	f.target = grow(f.target)
	if n <= len(f.primed) {
		f.primed = f.primed[:n]
	} else {
		f.primed = append(f.primed, make([]bool, n-len(f.primed))...)
	}
}

// Len returns the item count
func (f *Field) Len() int { return len(f.pos) }

// SetTarget sets item i's goal; an item's first target is adopted without animation
func (f *Field) SetTarget(i int, v Values) {
	if i < 0 || i >= len(f.pos) {
		return
	}
	f.target[i] = v
	if !f.primed[i] {
		f.pos[i] = v
		f.primed[i] = true
	}
}

// Snap jumps every item to its target
func (f *Field) Snap() {
	for i := range f.pos {
		f.pos[i] = f.target[i]
		f.vel[i] = Values{}
	}
}

// Advance steps the springs by dt in fixed increments; returns true while any item moves
func (f *Field) Advance(dt time.Duration) bool {
	if dt > 0 {
		f.acc += dt
	}
	// Long stalls settle instead of replaying every missed frame
	if f.acc > 10*f.step {
		f.acc = 10 * f.step
	}
	for f.acc >= f.step {
		f.acc -= f.step
		f.tick()
	}
	return !f.Settled()
}

func (f *Field) tick() {
	for i := range f.pos {
		for c := range f.pos[i] {
			f.pos[i][c], f.vel[i][c] = f.spring.Update(f.pos[i][c], f.vel[i][c], f.target[i][c])
		}
	}
}

// Settled reports whether every item is within epsilon of its target and nearly still
func (f *Field) Settled() bool {
	for i := range f.pos {
		for c := range f.pos[i] {
			if math.Abs(f.pos[i][c]-f.target[i][c]) > parameter.SpringEpsilon ||
				math.Abs(f.vel[i][c]) > parameter.SpringEpsilon {
				return false
			}
		}
	}
	return true
}

// Value returns item i's current emphasis
func (f *Field) Value(i int) Values {
	if i < 0 || i >= len(f.pos) {
		return Values{}
	}
	return f.pos[i]
}
