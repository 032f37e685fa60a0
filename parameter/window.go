package parameter

// Desktop window front-end
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800

	// WindowCardWidth and WindowCardHeight are the unscaled item box, in pixels
	WindowCardWidth  = 180
	WindowCardHeight = 135

	// WindowCardEdge is the highlight border drawn around hovered and active cards
	WindowCardEdge = 3

	// WindowWheelStep scales ebiten's wheel offset to page pixels
	WindowWheelStep = 120.0

	// WindowTPS is the update rate; one gallery tick per update
	WindowTPS = 60
)
