package status

import "sync/atomic"

// Metric keys written by the gallery
const (
	KeyScrollSamples = "gallery.scroll_samples"
	KeySnapSteps     = "gallery.snap_steps"
	KeyPointerEvents = "gallery.pointer_events"
	KeyRelayouts     = "gallery.relayouts"
	KeyPinRefreshes  = "gallery.pin_refreshes"
	KeySelections    = "gallery.selections"
	KeySnapIndex     = "gallery.snap_index"
	KeyEffective     = "gallery.effective_index"
	KeyProgress      = "gallery.progress"
	KeyDegrees       = "gallery.degrees"
	KeyPinned        = "gallery.pinned"
	KeyCompact       = "gallery.compact"
	KeyMode          = "gallery.mode"
	KeyDropped       = "events.dropped"
)

// GalleryMetrics caches the gallery's metric pointers for the hot path
type GalleryMetrics struct {
	ScrollSamples *atomic.Int64
	SnapSteps     *atomic.Int64
	PointerEvents *atomic.Int64
	Relayouts     *atomic.Int64
	PinRefreshes  *atomic.Int64
	Selections    *atomic.Int64
	SnapIndex     *atomic.Int64
	Effective     *atomic.Int64
	Dropped       *atomic.Int64

	Progress *Float
	Degrees  *Float

	Pinned  *atomic.Bool
	Compact *atomic.Bool

	Mode *Label
}

// NewGalleryMetrics registers the gallery keys in r; a nil registry gets a private one
func NewGalleryMetrics(r *Registry) *GalleryMetrics {
	if r == nil {
		r = NewRegistry()
	}
	return &GalleryMetrics{
		ScrollSamples: r.Ints.Get(KeyScrollSamples),
		SnapSteps:     r.Ints.Get(KeySnapSteps),
		PointerEvents: r.Ints.Get(KeyPointerEvents),
		Relayouts:     r.Ints.Get(KeyRelayouts),
		PinRefreshes:  r.Ints.Get(KeyPinRefreshes),
		Selections:    r.Ints.Get(KeySelections),
		SnapIndex:     r.Ints.Get(KeySnapIndex),
		Effective:     r.Ints.Get(KeyEffective),
		Dropped:       r.Ints.Get(KeyDropped),
		Progress:      r.Floats.Get(KeyProgress),
		Degrees:       r.Floats.Get(KeyDegrees),
		Pinned:        r.Bools.Get(KeyPinned),
		Compact:       r.Bools.Get(KeyCompact),
		Mode:          r.Labels.Get(KeyMode),
	}
}
