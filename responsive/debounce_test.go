package responsive

import (
	"testing"
	"time"

	"github.com/lixenwraith/radial-gallery/clock"
)

func TestDebouncerCoalesces(t *testing.T) {
	clk := clock.NewMock(time.Unix(0, 0))
	calls := 0
	d := NewDebouncer(clk, 100*time.Millisecond, func() { calls++ })

	for i := 0; i < 5; i++ {
		d.Trigger()
		clk.Advance(50 * time.Millisecond)
	}
	if calls != 0 {
		t.Fatalf("Fired during burst: %d", calls)
	}
	if !d.Pending() {
		t.Error("Expected a pending call")
	}
	clk.Advance(50 * time.Millisecond)
	if calls != 1 {
		t.Errorf("Expected one call after quiet window, got %d", calls)
	}
	if d.Pending() {
		t.Error("Pending after fire")
	}

	clk.Advance(time.Second)
	if calls != 1 {
		t.Errorf("Spurious call: %d", calls)
	}
}

func TestDebouncerStop(t *testing.T) {
	clk := clock.NewMock(time.Unix(0, 0))
	calls := 0
	d := NewDebouncer(clk, 100*time.Millisecond, func() { calls++ })

	d.Trigger()
	d.Stop()
	clk.Advance(time.Second)
	d.Trigger()
	clk.Advance(time.Second)
	if calls != 0 {
		t.Errorf("Stopped debouncer fired %d times", calls)
	}
	if clk.Pending() != 0 {
		t.Errorf("Timers left pending: %d", clk.Pending())
	}
}
