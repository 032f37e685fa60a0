package events

import (
	"sync/atomic"

	"github.com/lixenwraith/radial-gallery/parameter"
)

// Queue is a lock-free MPSC ring buffer for gallery events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK (host input goroutine, debounce timers)
//   - Consume: Single consumer (host loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
// Consume coalesces runs of position samples (scroll, pointer motion) into the latest one,
// so a burst of wheel or mouse input costs one dispatch per frame
type Queue struct {
	events    [parameter.EventQueueSize]Event
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
	dropped   atomic.Uint64
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds event using lock-free CAS with published flags pattern
// Safe for concurrent producers. O(1) amortized
func (q *Queue) Push(event Event) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			q.events[idx] = event
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				if q.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize) {
					q.dropped.Add(1)
				}
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
// Single-consumer design (host loop). Checks published flags for safety
func (q *Queue) Consume() []Event {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.EventQueueSize {
			maxAvailable = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		result := make([]Event, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.events[idx])
			q.events[idx] = Event{}
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return coalesce(result)
		}
	}
}

// Sampled reports whether only the latest of consecutive events of type t matters
func Sampled(t EventType) bool {
	return t == EventScroll || t == EventPointerMove
}

// coalesce drops every sample that is directly followed by a newer sample of the same type
// Order between different types is preserved, so a pointer move never crosses a leave
func coalesce(evs []Event) []Event {
	out := evs[:0]
	for i, ev := range evs {
		if Sampled(ev.Type) && i+1 < len(evs) && evs[i+1].Type == ev.Type {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// Len returns the number of unconsumed events
func (q *Queue) Len() int {
	n := q.tail.Load() - q.head.Load()
	if n > parameter.EventQueueSize {
		n = parameter.EventQueueSize
	}
	return int(n)
}

// Dropped returns how many events were overwritten before being consumed
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
