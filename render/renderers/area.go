package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/radial-gallery/render"
)

// AreaRenderer fills the visible band and traces the ring through it
type AreaRenderer struct{}

// NewAreaRenderer creates an area renderer
func NewAreaRenderer() *AreaRenderer {
	return &AreaRenderer{}
}

// Render implements SystemRenderer
func (r *AreaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	f := ctx.Frame
	x0, y0, w, h := ctx.CellRect(f.Area)
	if w == 0 || h == 0 {
		return
	}

	bg := render.RgbArea
	if f.Pinned {
		bg = render.Blend(bg, render.RgbRing, 0.15)
	}
	buf.FillRect(x0, y0, w, h, bg)

	// Ring trace: a cell is on the ring when the circle crosses it
	band := math.Max(ctx.CellWidth, ctx.CellHeight) / 2
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			px, py := ctx.CellCenter(x, y)
			d := math.Hypot(px-f.CenterX, py-f.CenterY)
			if math.Abs(d-f.Radius) <= band {
				buf.SetFgOnly(x, y, '·', render.RgbRing, tcell.AttrNone)
			}
		}
	}

	// Center marker when the center is on screen
	cx, cy := ctx.ToCell(f.CenterX, f.CenterY)
	if cy >= y0 && cy < y0+h {
		buf.SetFgOnly(cx, cy, '+', render.RgbCenter, tcell.AttrNone)
	}
}
