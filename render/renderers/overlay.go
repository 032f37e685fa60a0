package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/radial-gallery/parameter"
	"github.com/lixenwraith/radial-gallery/render"
)

// DetailOverlayRenderer shows the selected item in a centered box
type DetailOverlayRenderer struct {
	Hint string
}

// NewDetailOverlayRenderer creates an overlay renderer
func NewDetailOverlayRenderer() *DetailOverlayRenderer {
	return &DetailOverlayRenderer{Hint: "enter/esc close"}
}

// Render implements SystemRenderer
func (r *DetailOverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	sel := -1
	for i, v := range ctx.Frame.Items {
		if v.Index == ctx.Selected {
			sel = i
			break
		}
	}
	if sel < 0 {
		return
	}
	view := ctx.Frame.Items[sel]
	item := view.Item

	w := max(int(float64(ctx.ScreenWidth)*parameter.OverlayWidthPercent), 12)
	h := max(int(float64(ctx.ViewHeight())*parameter.OverlayHeightPercent), 5)
	w, h = min(w, ctx.ScreenWidth), min(h, ctx.ViewHeight())
	x0 := (ctx.ScreenWidth - w) / 2
	y0 := (ctx.ViewHeight() - h) / 2

	// Dim the page behind
	for y := 0; y < ctx.ViewHeight(); y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			buf.Set(x, y, 0, render.RgbBlack, render.RgbBlack, render.BlendAlpha, 0.5, tcell.AttrNone)
		}
	}

	buf.FillRect(x0, y0, w, h, render.RgbOverlayBg)
	r.border(buf, x0, y0, w, h)

	inner := w - 4
	accent := render.Accent(render.Hue(view.Index, len(ctx.Frame.Items)))
	row := y0 + 1
	if item.Step != "" {
		buf.Text(x0+2, row, render.Truncate(item.Step, inner), accent, tcell.AttrBold)
		row++
	}
	buf.Text(x0+2, row, render.Truncate(item.Title, inner), render.RgbOverlayText, tcell.AttrBold)
	row += 2
	if item.Image != "" && row < y0+h-2 {
		buf.Text(x0+2, row, render.Truncate(item.Image, inner), render.RgbLabelDim, tcell.AttrNone)
	}
	hint := render.Truncate(r.Hint, inner)
	buf.Text(x0+w-2-render.TextWidth(hint), y0+h-2, hint, render.RgbStatusKey, tcell.AttrNone)
}

func (r *DetailOverlayRenderer) border(buf *render.RenderBuffer, x0, y0, w, h int) {
	fg := render.RgbOverlayBorder
	for x := x0 + 1; x < x0+w-1; x++ {
		buf.SetFgOnly(x, y0, '─', fg, tcell.AttrNone)
		buf.SetFgOnly(x, y0+h-1, '─', fg, tcell.AttrNone)
	}
	for y := y0 + 1; y < y0+h-1; y++ {
		buf.SetFgOnly(x0, y, '│', fg, tcell.AttrNone)
		buf.SetFgOnly(x0+w-1, y, '│', fg, tcell.AttrNone)
	}
	buf.SetFgOnly(x0, y0, '╭', fg, tcell.AttrNone)
	buf.SetFgOnly(x0+w-1, y0, '╮', fg, tcell.AttrNone)
	buf.SetFgOnly(x0, y0+h-1, '╰', fg, tcell.AttrNone)
	buf.SetFgOnly(x0+w-1, y0+h-1, '╯', fg, tcell.AttrNone)
}
