package parameter

import "time"

// Snap settle tween, fine pointer
const (
	SettleMinDuration = 180 * time.Millisecond
	SettleMaxDuration = 450 * time.Millisecond
)

// Snap settle tween, compact
const (
	CompactSettleMinDuration = 350 * time.Millisecond
	CompactSettleMaxDuration = 700 * time.Millisecond
)

// SettleDelay is the scroll quiet time before the rotation settles on the snap target
const SettleDelay = 120 * time.Millisecond

// SettleStepDuration is the tween time spent per step of travel before clamping
const SettleStepDuration = 220 * time.Millisecond

// Per-item springs
const (
	// SpringFPS is the frame rate springs are stepped at
	SpringFPS = 60

	// SpringFrequency is the angular frequency of item emphasis springs
	SpringFrequency = 7.0

	// SpringDamping below 1 allows a small overshoot on activation
	SpringDamping = 0.75

	// SpringEpsilon is the distance under which a spring is considered at rest
	SpringEpsilon = 0.001
)

// FrameInterval is the host render interval (~60 FPS)
const FrameInterval = 16 * time.Millisecond
