package responsive

import (
	"sync"
	"time"

	"github.com/lixenwraith/radial-gallery/clock"
)

// Debouncer coalesces bursts of triggers into one call after a quiet window
// fn runs on the clock's timer goroutine and must only enqueue work
type Debouncer struct {
	mu      sync.Mutex
	clk     clock.Clock
	delay   time.Duration
	fn      func()
	timer   clock.Timer
	gen     uint64
	stopped bool
}

// NewDebouncer creates a debouncer calling fn after delay of quiet
func NewDebouncer(clk clock.Clock, delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{clk: clk, delay: delay, fn: fn}
}

// Trigger restarts the quiet window
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clk.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Pending reports whether a call is scheduled
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending call and rejects future triggers
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// A timer that lost the Stop race must not fire a superseded window
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.fn()
}
