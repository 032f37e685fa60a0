// Package snap discretizes continuous rotation progress into a stable item index
package snap

import (
	"github.com/lixenwraith/radial-gallery/parameter"
)

// thresholdFloor and thresholdCeil keep a policy able to trigger without skipping
const (
	thresholdFloor = 0.05
	thresholdCeil  = 0.95
)

// Policy is the hysteresis configuration, in fractions of one step
type Policy struct {
	// Threshold is the displacement beyond which the index advances
	Threshold float64

	// DeadZone is the minimum band kept between the advance boundary and the one
	// reversing it, so thresholds below 0.5 do not oscillate
	DeadZone float64
}

// DefaultPolicy is the fine pointer policy
func DefaultPolicy() Policy {
	return Policy{Threshold: parameter.SnapThreshold, DeadZone: parameter.SnapDeadZone}
}

// CompactPolicy is looser to absorb touch inertia
func CompactPolicy() Policy {
	return Policy{Threshold: parameter.CompactSnapThreshold, DeadZone: parameter.SnapDeadZone}
}

// PolicyFor picks the policy for the device/viewport class
func PolicyFor(compact bool) Policy {
	if compact {
		return CompactPolicy()
	}
	return DefaultPolicy()
}

// Normalize clamps the threshold into (0,1) and the dead zone into [0,1)
// Reports whether any value was adjusted
func (p Policy) Normalize() (Policy, bool) {
	adjusted := false
	if !(p.Threshold >= thresholdFloor) {
		p.Threshold = thresholdFloor
		adjusted = true
	}
	if p.Threshold > thresholdCeil {
		p.Threshold = thresholdCeil
		adjusted = true
	}
	if !(p.DeadZone >= 0) {
		p.DeadZone = 0
		adjusted = true
	}
	if p.DeadZone > thresholdCeil {
		p.DeadZone = thresholdCeil
		adjusted = true
	}
	return p, adjusted
}

// Forward is the threshold for a step in the same direction as the previous one, or from rest
func (p Policy) Forward() float64 {
	return p.Threshold
}

// Reverse is the threshold for undoing the previous step
// For Threshold >= (1+DeadZone)/2 this equals Threshold and the policy is symmetric
func (p Policy) Reverse() float64 {
	r := 1 + p.DeadZone - p.Threshold
	if r < p.Threshold {
		r = p.Threshold
	}
	if r > thresholdCeil {
		r = thresholdCeil
	}
	return r
}
