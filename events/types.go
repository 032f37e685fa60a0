package events

import (
	"time"
)

// EventType represents the type of gallery signal
type EventType int

const (
	// EventNone is the zero value and never dispatched
	EventNone EventType = iota

	// EventScroll carries a page scroll position sample
	// Trigger: host wheel/keyboard scroll | Payload: *ScrollPayload
	EventScroll

	// EventPointerMove carries the pointer position in viewport pixels
	// Trigger: host mouse motion | Payload: *PointerPayload
	EventPointerMove

	// EventPointerLeave signals the pointer left the host surface
	// Trigger: window/terminal focus loss, cursor outside window | Payload: nil
	EventPointerLeave

	// EventFocus signals keyboard focus landing on an item
	// Trigger: Tab navigation | Payload: *FocusPayload
	EventFocus

	// EventBlur signals keyboard focus leaving the gallery
	// Trigger: Esc | Payload: nil
	EventBlur

	// EventActivate signals explicit activation (click, Enter, Space)
	// Payload: *ActivatePayload
	EventActivate

	// EventViewportResize carries the new viewport size in pixels
	// Trigger: host resize | Payload: *ViewportPayload
	EventViewportResize

	// EventItemResize carries the measured size of a representative item
	// Trigger: host after first layout of an item | Payload: *ItemSizePayload
	EventItemResize

	// EventDeviceClass reports the pointer device class of the host
	// Payload: *DeviceClassPayload
	EventDeviceClass

	// EventRelayout fires when the resize debounce window closes
	// Trigger: responsive.Debouncer | Payload: nil
	EventRelayout

	// EventPinRefresh fires when the pin window must be re-measured
	// Trigger: delayed refresh after radius/count/viewport change | Payload: nil
	EventPinRefresh
)

// Event is the unit pushed through the queue and routed to handlers
type Event struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// String returns the registered event name
func (t EventType) String() string {
	if name := GetEventName(t); name != "" {
		return name
	}
	return "EventUnknown"
}
