package clock

import (
	"testing"
	"time"
)

func TestRealClock(t *testing.T) {
	c := NewReal()

	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := c.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	fired := make(chan struct{})
	c.AfterFunc(time.Millisecond, func() { close(fired) })
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("Real AfterFunc did not fire")
	}
}

func TestMockAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMock(start)

	if !m.Now().Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, m.Now())
	}

	m.Advance(30 * time.Minute)
	m.Advance(15 * time.Minute)
	if want := start.Add(45 * time.Minute); !m.Now().Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, m.Now())
	}
}

func TestMockTimersFireInOrder(t *testing.T) {
	m := NewMock(time.Unix(0, 0))

	var order []string
	m.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	m.AfterFunc(500*time.Millisecond, func() { order = append(order, "c") })

	m.Advance(250 * time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("Expected [a b], got %v", order)
	}
	if m.Pending() != 1 {
		t.Errorf("Expected 1 pending timer, got %d", m.Pending())
	}

	m.Advance(time.Second)
	if len(order) != 3 || order[2] != "c" {
		t.Errorf("Expected c to fire last, got %v", order)
	}
}

func TestMockTimerStop(t *testing.T) {
	m := NewMock(time.Unix(0, 0))
	fired := false
	tm := m.AfterFunc(100*time.Millisecond, func() { fired = true })

	if !tm.Stop() {
		t.Error("Expected first Stop to report true")
	}
	if tm.Stop() {
		t.Error("Expected second Stop to report false")
	}
	m.Advance(time.Second)
	if fired {
		t.Error("Stopped timer fired")
	}
}

func TestMockTimerReschedulesFromCallback(t *testing.T) {
	m := NewMock(time.Unix(0, 0))
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			m.AfterFunc(10*time.Millisecond, tick)
		}
	}
	m.AfterFunc(10*time.Millisecond, tick)

	m.Advance(100 * time.Millisecond)
	if count != 3 {
		t.Errorf("Expected 3 chained firings, got %d", count)
	}
}

func TestClockInterface(t *testing.T) {
	var _ Clock = &Real{}
	var _ Clock = &Mock{}
}
