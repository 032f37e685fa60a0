package motion

import (
	"math"
	"time"

	"github.com/lixenwraith/radial-gallery/parameter"
)

// Bounds is the allowed duration range for a settle tween
type Bounds struct {
	Min, Max time.Duration
}

// SettleBounds returns the settle range for fine or compact layouts
func SettleBounds(compact bool) Bounds {
	if compact {
		return Bounds{parameter.CompactSettleMinDuration, parameter.CompactSettleMaxDuration}
	}
	return Bounds{parameter.SettleMinDuration, parameter.SettleMaxDuration}
}

// SettleEase returns the settle curve for fine or compact layouts
func SettleEase(compact bool) Ease {
	if compact {
		return Power2Out
	}
	return Power3Out
}

// Duration scales by the number of steps travelled and clamps to the bounds
func (b Bounds) Duration(steps float64) time.Duration {
	d := time.Duration(math.Abs(steps) * float64(parameter.SettleStepDuration))
	return max(b.Min, min(b.Max, d))
}

// Tween interpolates a scalar from one value to another over a bounded duration
// The zero Tween is settled at 0
type Tween struct {
	from, to float64
	start    time.Time
	duration time.Duration
	ease     Ease
}

// NewTween returns a tween already settled at v
func NewTween(v float64) Tween {
	return Tween{from: v, to: v}
}

// Retarget starts a new leg from the current value at now
func (t *Tween) Retarget(now time.Time, to float64, d time.Duration, ease Ease) {
	t.from = t.Value(now)
	t.to = to
	t.start = now
	t.duration = d
	t.ease = ease
}

// Jump settles immediately at v
func (t *Tween) Jump(v float64) {
	*t = NewTween(v)
}

// Target is the value the tween ends at
func (t *Tween) Target() float64 { return t.to }

// Value samples the tween at now
func (t *Tween) Value(now time.Time) float64 {
	if t.duration <= 0 || !now.Before(t.start.Add(t.duration)) {
		return t.to
	}
	if now.Before(t.start) {
		return t.from
	}
	ease := t.ease
	if ease == nil {
		ease = Linear
	}
	k := ease(float64(now.Sub(t.start)) / float64(t.duration))
	return t.from + (t.to-t.from)*k
}

// Done reports whether the tween has reached its target at now
func (t *Tween) Done(now time.Time) bool {
	return t.duration <= 0 || !now.Before(t.start.Add(t.duration))
}
