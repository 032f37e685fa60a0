package parameter

// Cell geometry used to map host pixels onto terminal cells
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Card size reported to the gallery as the measured item, in cells
const (
	CardCols = 16
	CardRows = 6
)

// Page sections surrounding the gallery in both front-ends, in viewport heights
const (
	IntroSectionViewports = 0.6
	OutroSectionViewports = 0.6
)

// Input
const (
	// WheelStep is the scroll distance of one wheel notch, in pixels
	WheelStep = 100.0

	// KeyStep is the scroll distance of j/k and arrow keys
	KeyStep = 60.0

	// PageStepFraction of the viewport height is scrolled by PgUp/PgDn
	PageStepFraction = 0.9
)

// Status bar & overlay
const (
	StatusBarHeight = 1

	OverlayWidthPercent  = 0.6
	OverlayHeightPercent = 0.5

	// LabelMaxWidth caps titles drawn under thumbnails, in cells
	LabelMaxWidth = 18

	// LabelMinOpacity hides labels of faded items
	LabelMinOpacity = 0.3
)

// Thumbnail sampling grid; rotated cards sample this half-block grid per cell
const (
	ThumbnailSampleCols = 48
	ThumbnailSampleRows = 30
)

// EventQueueSize is the fixed capacity of the event ring buffer
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
