package clock

import (
	"sort"
	"sync"
	"time"
)

// Mock provides a controllable time source for testing
// Timers fire synchronously inside Advance, in deadline order
type Mock struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
	seq         int
}

type mockTimer struct {
	m        *Mock
	deadline time.Time
	seq      int
	fn       func()
	done     bool
}

// NewMock creates a new mock clock with the given start time
func NewMock(startTime time.Time) *Mock {
	return &Mock{currentTime: startTime}
}

// Now returns the current mocked time
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// AfterFunc registers fn to run once the mock time reaches now+d
func (m *Mock) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &mockTimer{m: m, deadline: m.currentTime.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Stop cancels a pending mock timer
func (t *mockTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// Advance moves time forward by d, firing every timer whose deadline is reached
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.currentTime.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.currentTime = target
			m.mu.Unlock()
			return
		}
		next.done = true
		if next.deadline.After(m.currentTime) {
			m.currentTime = next.deadline
		}
		fn := next.fn
		m.mu.Unlock()

		// Outside the lock: callbacks may schedule or stop timers
		fn()
	}
}

// Pending returns the number of timers not yet fired or stopped
func (m *Mock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.done {
			n++
		}
	}
	return n
}

// nextDue returns the earliest live timer due at or before target, pruning finished ones
func (m *Mock) nextDue(target time.Time) *mockTimer {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	m.timers = live

	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].deadline.Equal(m.timers[j].deadline) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].deadline.Before(m.timers[j].deadline)
	})

	if len(m.timers) == 0 || m.timers[0].deadline.After(target) {
		return nil
	}
	return m.timers[0]
}
