package render

import (
	"math"
	"time"

	"github.com/lixenwraith/radial-gallery/gallery"
	"github.com/lixenwraith/radial-gallery/status"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now time.Time

	// Frame is the gallery state in viewport pixels
	Frame gallery.Frame

	// Screen dimensions in cells; the bottom StatusRows rows are reserved
	ScreenWidth  int
	ScreenHeight int
	StatusRows   int

	// CellWidth and CellHeight map viewport pixels onto cells
	CellWidth  float64
	CellHeight float64

	// Page scroll position and total page height, in pixels
	Scroll     float64
	PageHeight float64

	// Selected is the item shown in the detail overlay, or -1
	Selected int

	Muted   bool
	Metrics []status.Entry
}

// ViewHeight is the number of rows available to the page
func (rc *RenderContext) ViewHeight() int {
	return max(rc.ScreenHeight-rc.StatusRows, 0)
}

// ToCell converts viewport pixels to a cell coordinate
func (rc *RenderContext) ToCell(px, py float64) (int, int) {
	return int(math.Floor(px / rc.CellWidth)), int(math.Floor(py / rc.CellHeight))
}

// CellRect converts a pixel rectangle to the cells it covers, clipped to the page rows
func (rc *RenderContext) CellRect(r gallery.Rect) (x, y, w, h int) {
	x0, y0 := rc.ToCell(r.X, r.Y)
	x1 := int(math.Ceil((r.X + r.W) / rc.CellWidth))
	y1 := int(math.Ceil((r.Y + r.H) / rc.CellHeight))
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, rc.ScreenWidth), min(y1, rc.ViewHeight())
	return x0, y0, max(x1-x0, 0), max(y1-y0, 0)
}

// CellCenter returns the viewport pixel at the center of cell (x, y)
func (rc *RenderContext) CellCenter(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * rc.CellWidth, (float64(y) + 0.5) * rc.CellHeight
}
