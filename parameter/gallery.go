package parameter

import "time"

// Geometry defaults, in host pixels
const (
	// DefaultBaseRadius is the ring radius on wide viewports
	DefaultBaseRadius = 850.0

	// DefaultCompactRadius is the ring radius below the breakpoint
	DefaultCompactRadius = 650.0

	// DefaultBreakpoint is the viewport width under which the compact radius applies
	DefaultBreakpoint = 768.0

	// MinRadius is the smallest radius accepted after clamping
	MinRadius = 1.0

	// PlacementPrecision is the number of decimals kept on layout outputs
	PlacementPrecision = 3
)

// Scroll binding defaults
const (
	// DefaultScrollDistance is the scroll budget consumed by one full traversal
	DefaultScrollDistance = 2500.0

	// DefaultPinStart pins when the container top reaches the viewport top
	DefaultPinStart = "top top"
)

// Visible area
const (
	// DefaultVisiblePercentage is the share of the ring diameter kept visible
	DefaultVisiblePercentage = 45.0

	// MinVisiblePercentage and MaxVisiblePercentage bound the configured percentage
	MinVisiblePercentage = 10.0
	MaxVisiblePercentage = 100.0

	// VisibleHeightBuffer keeps lifted items from clipping once an item is measured
	VisibleHeightBuffer = 260.0

	// VisibleHeightFallbackBuffer replaces item height and buffer before measurement
	VisibleHeightFallbackBuffer = 340.0

	// CompactVisibleFactor scales viewport height for measured compact layouts
	CompactVisibleFactor = 1.2

	// CompactVisibleFallbackFactor scales viewport height before measurement on compact layouts
	CompactVisibleFallbackFactor = 0.45

	// CompactBottomFactor is the share of the radius the ring sinks below the visible area on compact layouts
	CompactBottomFactor = 0.15

	// FallbackViewportHeight is used until the host reports a size
	FallbackViewportHeight = 800.0

	// FallbackViewportWidth is used until the host reports a size
	FallbackViewportWidth = 1280.0
)

// Snap thresholds, in fractions of one step
const (
	// SnapThreshold is the displacement needed to advance on fine pointer viewports
	SnapThreshold = 0.55

	// CompactSnapThreshold is looser to absorb touch scroll inertia
	CompactSnapThreshold = 0.35

	// SnapDeadZone is the minimum hysteresis band kept when reversing a step
	SnapDeadZone = 0.1
)

// Debounce windows
const (
	// ResizeDebounce coalesces relayout during continuous resize
	ResizeDebounce = 100 * time.Millisecond

	// PinRefreshDelay re-measures the pin window after geometry or count changes
	PinRefreshDelay = 300 * time.Millisecond

	// SyntheticScrollTolerance matches scroll samples produced by the settle itself
	SyntheticScrollTolerance = 0.5
)

// Item emphasis
const (
	ActiveScale        = 1.58
	CompactActiveScale = 1.38

	// ActiveLift moves the active item outward along its own up axis, in pixels
	ActiveLift        = 160.0
	CompactActiveLift = 100.0

	InactiveOpacity = 0.65
	InactiveBlur    = 1.0

	// HoverSaturation is applied to non-active items while any item is hovered
	HoverSaturation = 0.35

	// DisabledSaturation fully greys an inert gallery
	DisabledSaturation = 0.0

	// CulledScale and CulledOpacity hide non-neighbour items on compact layouts
	CulledScale   = 0.75
	CulledOpacity = 0.0

	// CompactNeighbourSpan is how many steps from the active item stay visible on compact layouts
	CompactNeighbourSpan = 1

	ActiveZ   = 100
	InactiveZ = 10
)

// Item measurement fallback
const (
	FallbackItemWidth  = 200.0
	FallbackItemHeight = 280.0
)
