package gallery

import (
	"errors"
	"sync/atomic"

	"github.com/lixenwraith/radial-gallery/clock"
	"github.com/lixenwraith/radial-gallery/events"
	"github.com/lixenwraith/radial-gallery/parameter"
)

// ErrUnsupported is returned by hosts that cannot deliver a signal
var ErrUnsupported = errors.New("host does not support subscription")

// Host is the environment a gallery is mounted into
type Host interface {
	// Subscribe registers h for its event types
	Subscribe(h events.Handler) (*events.Subscription, error)

	// Post enqueues an event for the loop; safe from any goroutine
	Post(t events.EventType, payload any)

	// PrefersReducedMotion reports the user's motion preference
	PrefersReducedMotion() bool
}

// Measurer is implemented by hosts that know where the gallery section sits on the page
type Measurer interface {
	// ContainerTop is the section's offset from the page top, in pixels
	ContainerTop() float64
}

// ScrollSetter is implemented by hosts that let the gallery drive the page scroll while settling
type ScrollSetter interface {
	SetScroll(pos float64)
}

// LoopHost is a Host backed by an event queue and router, pumped from the host's main loop
type LoopHost struct {
	Queue  *events.Queue
	Router *events.Router
	Clock  clock.Clock

	reduced atomic.Bool
}

// NewLoopHost creates a loop host; a nil clock uses the system clock
func NewLoopHost(clk clock.Clock) *LoopHost {
	if clk == nil {
		clk = clock.NewReal()
	}
	q := events.NewQueue()
	return &LoopHost{
		Queue:  q,
		Router: events.NewRouter(q),
		Clock:  clk,
	}
}

// Subscribe registers h with the router
func (h *LoopHost) Subscribe(handler events.Handler) (*events.Subscription, error) {
	return h.Router.Subscribe(handler), nil
}

// Post enqueues an event stamped with the host clock
func (h *LoopHost) Post(t events.EventType, payload any) {
	h.Router.Push(t, payload, h.Clock.Now())
}

// Pump dispatches every pending event; call from the loop goroutine only
func (h *LoopHost) Pump() int {
	return h.Router.DispatchAll()
}

// SetReducedMotion records the user's motion preference
func (h *LoopHost) SetReducedMotion(v bool) {
	h.reduced.Store(v)
}

// PrefersReducedMotion reports the recorded preference
func (h *LoopHost) PrefersReducedMotion() bool {
	return h.reduced.Load()
}

// PageHost is a LoopHost over a virtual page: an intro section, the gallery section, then an outro
// Both sections around the gallery are parameter.IntroSectionViewports and
// parameter.OutroSectionViewports viewport heights tall
type PageHost struct {
	*LoopHost
	top    float64
	scroll float64
}

// NewPageHost creates a page host scrolled to the top
func NewPageHost(clk clock.Clock) *PageHost {
	return &PageHost{LoopHost: NewLoopHost(clk)}
}

// ContainerTop implements Measurer
func (h *PageHost) ContainerTop() float64 { return h.top }

// Scroll returns the last page scroll position
func (h *PageHost) Scroll() float64 { return h.scroll }

// SetScroll implements ScrollSetter; the page reports the new position back like a real scroll
func (h *PageHost) SetScroll(pos float64) {
	h.scroll = pos
	h.Post(events.EventScroll, &events.ScrollPayload{Position: pos})
}

// Resize records a new viewport and posts it with the size of one item
func (h *PageHost) Resize(w, vh, itemW, itemH float64) {
	h.top = vh * parameter.IntroSectionViewports
	h.Post(events.EventViewportResize, &events.ViewportPayload{Width: w, Height: vh})
	h.Post(events.EventItemResize, &events.ItemSizePayload{Width: itemW, Height: itemH})
}

// PageHeight is the virtual page length around a gallery section of height section
func PageHeight(vh, section float64) float64 {
	return vh*parameter.IntroSectionViewports + section + vh*parameter.OutroSectionViewports
}

// PageMaxScroll is the largest scroll position that keeps the viewport on the page
func PageMaxScroll(vh, section float64) float64 {
	return max(PageHeight(vh, section)-vh, 0)
}
