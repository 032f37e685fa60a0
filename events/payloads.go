package events

// ScrollPayload is a page scroll position sample, in pixels from the page top
type ScrollPayload struct {
	Position float64
}

// PointerPayload is a pointer position in viewport pixels
type PointerPayload struct {
	X, Y float64
}

// FocusPayload names the item receiving keyboard focus
type FocusPayload struct {
	Index int
}

// ActivatePayload names the activated item
// Index < 0 activates the currently effective item (Enter/Space without a target)
type ActivatePayload struct {
	Index int
}

// ViewportPayload is the host viewport size in pixels
type ViewportPayload struct {
	Width, Height float64
}

// ItemSizePayload is the rendered size of one representative item
type ItemSizePayload struct {
	Width, Height float64
}

// DeviceClassPayload reports whether the primary pointer is coarse (touch)
type DeviceClassPayload struct {
	Coarse bool
}
