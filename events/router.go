package events

import "time"

// Handler processes specific event types
// Gallery components implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(event Event)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function and a type list to Handler
type HandlerFunc struct {
	Types []EventType
	Fn    func(Event)
}

// HandleEvent calls Fn
func (h HandlerFunc) HandleEvent(event Event) { h.Fn(event) }

// EventTypes returns Types
func (h HandlerFunc) EventTypes() []EventType { return h.Types }

// Subscription is a registration owned by the subscriber and released with Unsubscribe
type Subscription struct {
	router  *Router
	handler Handler
	id      uint64
}

// Unsubscribe removes the handler from the router; idempotent
func (s *Subscription) Unsubscribe() {
	if s == nil || s.router == nil {
		return
	}
	s.router.remove(s)
	s.router = nil
}

// Active reports whether the subscription is still registered
func (s *Subscription) Active() bool {
	return s != nil && s.router != nil
}

type registration struct {
	id      uint64
	handler Handler
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Handlers may unsubscribe during dispatch; removal takes effect immediately, so later
//     handlers of the event being dispatched are skipped too
type Router struct {
	handlers map[EventType][]registration
	queue    *Queue
	nextID   uint64
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *Queue) *Router {
	InitRegistry()
	return &Router{
		handlers: make(map[EventType][]registration),
		queue:    queue,
	}
}

// Subscribe adds a handler for its declared event types
func (r *Router) Subscribe(handler Handler) *Subscription {
	r.nextID++
	id := r.nextID
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], registration{id: id, handler: handler})
	}
	return &Subscription{router: r, handler: handler, id: id}
}

// remove rebuilds slices instead of filtering in place so an in-flight dispatch keeps its view
func (r *Router) remove(s *Subscription) {
	for _, t := range s.handler.EventTypes() {
		regs := r.handlers[t]
		kept := make([]registration, 0, len(regs))
		for _, reg := range regs {
			if reg.id != s.id {
				kept = append(kept, reg)
			}
		}
		if len(kept) == 0 {
			delete(r.handlers, t)
		} else {
			r.handlers[t] = kept
		}
	}
}

// Push enqueues an event stamped with the given time
func (r *Router) Push(t EventType, payload any, now time.Time) {
	r.queue.Push(Event{Type: t, Payload: payload, Timestamp: now})
}

// Dispatch routes one event immediately, bypassing the queue
func (r *Router) Dispatch(ev Event) {
	regs := r.handlers[ev.Type]
	for _, reg := range regs {
		if !r.registered(ev.Type, reg.id) {
			continue
		}
		reg.handler.HandleEvent(ev)
	}
}

// DispatchAll consumes all pending events and routes to handlers
// Events are processed in FIFO order; returns the number dispatched
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		r.Dispatch(ev)
	}
	return len(events)
}

// registered guards against handlers removed earlier in the same dispatch
func (r *Router) registered(t EventType, id uint64) bool {
	for _, reg := range r.handlers[t] {
		if reg.id == id {
			return true
		}
	}
	return false
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
