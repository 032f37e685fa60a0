package events

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/radial-gallery/parameter"
)

type recorder struct {
	types []EventType
	seen  []Event
}

func (r *recorder) HandleEvent(ev Event)     { r.seen = append(r.seen, ev) }
func (r *recorder) EventTypes() []EventType { return r.types }

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Push(Event{Type: EventScroll, Payload: &ScrollPayload{Position: float64(i)}})
		q.Push(Event{Type: EventBlur})
	}
	if q.Len() != 10 {
		t.Fatalf("Expected 10 queued, got %d", q.Len())
	}
	got := q.Consume()
	if len(got) != 10 {
		t.Fatalf("Expected 10 events, got %d", len(got))
	}
	for i, ev := range got {
		if i%2 == 1 {
			if ev.Type != EventBlur {
				t.Errorf("Event %d: expected blur, got %v", i, ev.Type)
			}
			continue
		}
		if p := ev.Payload.(*ScrollPayload); p.Position != float64(i/2) {
			t.Errorf("Event %d out of order: %v", i, p.Position)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		if i%2 == 0 {
			q.Push(Event{Type: EventScroll, Payload: &ScrollPayload{Position: float64(i)}})
		} else {
			q.Push(Event{Type: EventBlur})
		}
	}
	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(got))
	}
	if first := got[0].Payload.(*ScrollPayload).Position; first != 10 {
		t.Errorf("Expected oldest surviving event 10, got %v", first)
	}
	if q.Dropped() == 0 {
		t.Error("Expected dropped counter to advance")
	}
}

func TestQueueCoalescesSamples(t *testing.T) {
	scroll := func(pos float64) Event {
		return Event{Type: EventScroll, Payload: &ScrollPayload{Position: pos}}
	}
	move := func(x float64) Event {
		return Event{Type: EventPointerMove, Payload: &PointerPayload{X: x}}
	}

	tests := []struct {
		name string
		in   []Event
		want []EventType
		last float64
	}{
		{"wheel burst", []Event{scroll(1), scroll(2), scroll(3)}, []EventType{EventScroll}, 3},
		{"move then leave keeps order", []Event{move(1), move(2), {Type: EventPointerLeave}, move(3)},
			[]EventType{EventPointerMove, EventPointerLeave, EventPointerMove}, 3},
		{"interleaved types untouched", []Event{scroll(1), move(1), scroll(2)},
			[]EventType{EventScroll, EventPointerMove, EventScroll}, 2},
		{"blur splits runs", []Event{scroll(1), {Type: EventBlur}, scroll(2), scroll(4)},
			[]EventType{EventScroll, EventBlur, EventScroll}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue()
			for _, ev := range tt.in {
				q.Push(ev)
			}
			got := q.Consume()
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d events, got %d", len(tt.want), len(got))
			}
			for i, ev := range got {
				if ev.Type != tt.want[i] {
					t.Errorf("Event %d: got %v, want %v", i, ev.Type, tt.want[i])
				}
			}
			var last float64
			switch p := got[len(got)-1].Payload.(type) {
			case *ScrollPayload:
				last = p.Position
			case *PointerPayload:
				last = p.X
			}
			if last != tt.last {
				t.Errorf("Latest sample %v, want %v", last, tt.last)
			}
		})
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 30; i++ {
				q.Push(Event{Type: EventRelayout})
			}
		}()
	}
	wg.Wait()
	if got := len(q.Consume()); got != 120 {
		t.Errorf("Expected 120 events, got %d", got)
	}
}

func TestRouterDispatchAndUnsubscribe(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	a := &recorder{types: []EventType{EventScroll, EventBlur}}
	b := &recorder{types: []EventType{EventScroll}}
	subA := r.Subscribe(a)
	r.Subscribe(b)

	now := time.Unix(100, 0)
	r.Push(EventScroll, &ScrollPayload{Position: 1}, now)
	r.Push(EventBlur, nil, now)
	if n := r.DispatchAll(); n != 2 {
		t.Fatalf("Expected 2 dispatched, got %d", n)
	}
	if len(a.seen) != 2 || len(b.seen) != 1 {
		t.Fatalf("Unexpected deliveries a=%d b=%d", len(a.seen), len(b.seen))
	}
	if !a.seen[0].Timestamp.Equal(now) {
		t.Errorf("Timestamp not preserved")
	}

	subA.Unsubscribe()
	subA.Unsubscribe()
	if subA.Active() {
		t.Error("Expected subscription inactive")
	}
	if r.HasHandlers(EventBlur) {
		t.Error("Expected no blur handlers after unsubscribe")
	}
	r.Push(EventScroll, &ScrollPayload{Position: 2}, now)
	r.DispatchAll()
	if len(a.seen) != 2 || len(b.seen) != 2 {
		t.Errorf("Unexpected deliveries after unsubscribe a=%d b=%d", len(a.seen), len(b.seen))
	}
}

func TestRouterUnsubscribeDuringDispatch(t *testing.T) {
	r := NewRouter(NewQueue())
	var second *recorder
	var subSecond *Subscription

	first := HandlerFunc{Types: []EventType{EventBlur}, Fn: func(Event) { subSecond.Unsubscribe() }}
	second = &recorder{types: []EventType{EventBlur}}

	r.Subscribe(first)
	subSecond = r.Subscribe(second)

	r.Dispatch(Event{Type: EventBlur})
	if len(second.seen) != 0 {
		t.Error("Handler removed mid-dispatch still received the event")
	}
}

func TestRegistryNames(t *testing.T) {
	InitRegistry()
	InitRegistry()

	if EventScroll.String() != "EventScroll" {
		t.Errorf("Unexpected name %q", EventScroll.String())
	}
	et, ok := GetEventType("eventpointermove")
	if !ok || et != EventPointerMove {
		t.Errorf("Case-insensitive lookup failed: %v %v", et, ok)
	}
	if _, ok := NewPayloadStruct(EventViewportResize).(*ViewportPayload); !ok {
		t.Error("Expected *ViewportPayload from registry")
	}
	if NewPayloadStruct(EventBlur) != nil {
		t.Error("Expected nil payload for EventBlur")
	}
	if EventType(999).String() != "EventUnknown" {
		t.Error("Expected EventUnknown for unregistered type")
	}
}
