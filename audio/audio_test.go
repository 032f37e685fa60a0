package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/radial-gallery/clock"
	"github.com/lixenwraith/radial-gallery/parameter"
)

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestCueLengths(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	tests := []struct {
		cue  Cue
		want int
	}{
		{CueTick, rate.N(parameter.TickDuration)},
		{CueChime, rate.N(parameter.ChimeNote1Duration) + rate.N(parameter.ChimeNote2Duration)},
		{CueBuzz, rate.N(parameter.BuzzDuration)},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			n, peak := drain(tt.cue.Streamer(rate))
			if n != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, n)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("Peak %v out of range", peak)
			}
		})
	}
	if Cue(99).Streamer(rate) != nil {
		t.Error("Unknown cue should have no stream")
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := newOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := newEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)
	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	tests := []struct {
		i    int
		want float64
	}{
		{0, 0},
		{5, 0.5},
		{50, 1},
		{90, 0.5},
	}
	for _, tt := range tests {
		if math.Abs(buf[tt.i][0]-tt.want) > 1e-9 {
			t.Errorf("sample %d = %v, want %v", tt.i, buf[tt.i][0], tt.want)
		}
	}
	if n, ok := env.Stream(buf); n != 0 || ok {
		t.Error("Envelope should be exhausted")
	}
}

func TestNewVolumeSilent(t *testing.T) {
	v := newVolume(newOscillator(440, time.Millisecond, WaveSine, 44100), 0)
	if !v.Silent {
		t.Error("Zero volume must be silent")
	}
	if v := newVolume(nil, 0.5); v.Volume != -1 {
		t.Errorf("Half volume should be -1 in log2, got %v", v.Volume)
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	clk := clock.NewMock(time.Unix(0, 0))
	p := NewPlayer(clk)

	if !p.Play(CueTick) {
		t.Fatal("First cue rejected")
	}
	if p.Play(CueTick) {
		t.Error("Repeat inside the cue gap accepted")
	}
	if !p.Play(CueChime) {
		t.Error("Different cue should not be rate limited")
	}
	clk.Advance(parameter.MinCueGap)
	if !p.Play(CueTick) {
		t.Error("Cue after the gap rejected")
	}
	if p.Played(CueTick) != 2 || p.Played(CueChime) != 1 {
		t.Errorf("Unexpected counts %d/%d", p.Played(CueTick), p.Played(CueChime))
	}

	p.SetEnabled(false)
	clk.Advance(time.Second)
	if p.Play(CueBuzz) {
		t.Error("Disabled player accepted a cue")
	}
	p.SetEnabled(true)
	p.SetVolume(3)
	if p.Volume() != 1 {
		t.Errorf("Volume not clamped: %v", p.Volume())
	}
	p.Cleanup()
	if p.Play(Cue(-1)) {
		t.Error("Invalid cue accepted")
	}
}

func TestPlayerInitialize(t *testing.T) {
	p := NewPlayer(nil)
	if err := p.Initialize(); err != nil {
		t.Logf("Speaker unavailable: %v", err)
		return
	}
	if err := p.Initialize(); err != nil {
		t.Errorf("Second Initialize should be a no-op: %v", err)
	}
	p.Play(CueTick)
	p.Cleanup()
}
