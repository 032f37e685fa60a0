package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/radial-gallery/render"
)

// DebugRenderer lists live metrics in the top-left corner while toggled on
type DebugRenderer struct {
	visible bool
}

// NewDebugRenderer creates a hidden debug renderer
func NewDebugRenderer() *DebugRenderer {
	return &DebugRenderer{}
}

// Toggle flips visibility
func (d *DebugRenderer) Toggle() {
	d.visible = !d.visible
}

// IsVisible implements VisibilityToggle
func (d *DebugRenderer) IsVisible() bool {
	return d.visible
}

// Render implements SystemRenderer
func (d *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	keyW := 0
	for _, e := range ctx.Metrics {
		keyW = max(keyW, render.TextWidth(e.Key))
	}
	for i, e := range ctx.Metrics {
		if i >= ctx.ViewHeight() {
			break
		}
		width := keyW + 2 + render.TextWidth(e.Value)
		buf.FillRect(0, i, width+2, 1, render.RgbStatusBg)
		buf.Text(1, i, e.Key, render.RgbStatusKey, tcell.AttrNone)
		buf.Text(keyW+3, i, e.Value, render.RgbStatusText, tcell.AttrNone)
	}
}
