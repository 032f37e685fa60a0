package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of cue playback
	AudioBufferDuration = 50 * time.Millisecond

	// MinCueGap suppresses snap ticks closer together than this
	MinCueGap = 40 * time.Millisecond

	DefaultMasterVolume = 0.6
)

// Snap tick: short high click on each landing
const (
	TickFrequency = 1320.0
	TickDuration  = 45 * time.Millisecond
	TickAttack    = 2 * time.Millisecond
	TickRelease   = 30 * time.Millisecond
	TickVolume    = 0.35
)

// Select chime: two-note rise on activation
const (
	ChimeNote1Frequency = 880.0
	ChimeNote2Frequency = 1318.5
	ChimeNote1Duration  = 80 * time.Millisecond
	ChimeNote2Duration  = 260 * time.Millisecond
	ChimeAttack         = 5 * time.Millisecond
	ChimeNote1Release   = 40 * time.Millisecond
	ChimeNote2Release   = 200 * time.Millisecond
	ChimeVolume         = 0.6
)

// Disabled buzz: low saw when activation is refused
const (
	BuzzFrequency = 110.0
	BuzzDuration  = 80 * time.Millisecond
	BuzzAttack    = 5 * time.Millisecond
	BuzzRelease   = 20 * time.Millisecond
	BuzzVolume    = 0.3
)
