// Package audio plays short synthesized cues for snap landings and selection
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/radial-gallery/clock"
	"github.com/lixenwraith/radial-gallery/parameter"
)

// Player mixes cues into the speaker
// Every method is safe before Initialize and after Cleanup; cues are then dropped
type Player struct {
	mu          sync.Mutex
	clk         clock.Clock
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      float64
	enabled     bool
	initialized bool
	last        [cueCount]time.Time
	played      [cueCount]int
}

// NewPlayer creates a player with the default master volume
func NewPlayer(clk clock.Clock) *Player {
	if clk == nil {
		clk = clock.NewReal()
	}
	return &Player{
		clk:     clk,
		rate:    beep.SampleRate(parameter.AudioSampleRate),
		mixer:   &beep.Mixer{},
		master:  parameter.DefaultMasterVolume,
		enabled: true,
	}
}

// Initialize opens the speaker; failure leaves the player silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences every playing cue
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// SetEnabled mutes or unmutes future cues
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	p.enabled = on
	p.mu.Unlock()
}

// SetVolume sets the master volume, clamped to [0,1]
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.master = max(0, min(1, v))
	p.mu.Unlock()
}

// Volume returns the master volume
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.master
}

// Play queues a cue; repeats of the same cue within parameter.MinCueGap are dropped
// Returns true when the cue was accepted
func (p *Player) Play(c Cue) bool {
	if c < 0 || c >= cueCount {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || p.master <= 0 {
		return false
	}
	now := p.clk.Now()
	if last := p.last[c]; !last.IsZero() && now.Sub(last) < parameter.MinCueGap {
		return false
	}
	p.last[c] = now
	p.played[c]++

	if !p.initialized {
		return true
	}
	s := newVolume(c.Streamer(p.rate), p.master)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Played returns how many times c was accepted
func (p *Player) Played(c Cue) int {
	if c < 0 || c >= cueCount {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}
