package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/radial-gallery/parameter"
)

// Cue is a short sound tied to a gallery event
type Cue int

const (
	// CueTick plays when the snap index lands on a new item
	CueTick Cue = iota
	// CueChime plays on item selection
	CueChime
	// CueBuzz plays when activation is refused by a disabled gallery
	CueBuzz
	cueCount
)

var cueNames = [...]string{"tick", "chime", "buzz"}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// Streamer builds a fresh stream for the cue at unity master volume
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueTick:
		osc := newOscillator(parameter.TickFrequency, parameter.TickDuration, WaveTriangle, rate)
		env := newEnvelope(osc, parameter.TickDuration, parameter.TickAttack, parameter.TickRelease, rate)
		return newVolume(env, parameter.TickVolume)

	case CueChime:
		n1 := newEnvelope(
			newOscillator(parameter.ChimeNote1Frequency, parameter.ChimeNote1Duration, WaveSine, rate),
			parameter.ChimeNote1Duration, parameter.ChimeAttack, parameter.ChimeNote1Release, rate)
		n2 := newEnvelope(
			newOscillator(parameter.ChimeNote2Frequency, parameter.ChimeNote2Duration, WaveSine, rate),
			parameter.ChimeNote2Duration, parameter.ChimeAttack, parameter.ChimeNote2Release, rate)
		return newVolume(beep.Seq(n1, n2), parameter.ChimeVolume)

	case CueBuzz:
		osc := newOscillator(parameter.BuzzFrequency, parameter.BuzzDuration, WaveSaw, rate)
		env := newEnvelope(osc, parameter.BuzzDuration, parameter.BuzzAttack, parameter.BuzzRelease, rate)
		return newVolume(env, parameter.BuzzVolume)
	}
	return nil
}
