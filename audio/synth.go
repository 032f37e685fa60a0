package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator is a finite mono tone duplicated to both channels
type oscillator struct {
	freq   float64
	phase  float64
	length int
	pos    int
	wave   Wave
	rate   beep.SampleRate
}

// newOscillator creates a tone of the given length
func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveTriangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		}
		samples[i][0], samples[i][1] = v, v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release over a fixed length
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{s: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (e *envelope) gain() float64 {
	switch {
	case e.attack > 0 && e.pos < e.attack:
		return float64(e.pos) / float64(e.attack)
	case e.release > 0 && e.pos >= e.total-e.release:
		return math.Max(0, float64(e.total-e.pos)/float64(e.release))
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// newVolume scales a stream linearly; zero or less is silent since log2(0) diverges
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
