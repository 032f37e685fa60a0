package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/radial-gallery/parameter"
	"github.com/lixenwraith/radial-gallery/render"
)

// BackdropRenderer draws the page copy above and below the gallery section
type BackdropRenderer struct {
	Title    string
	Subtitle string
	Footer   string
}

// NewBackdropRenderer creates a backdrop with page copy
func NewBackdropRenderer(title, subtitle, footer string) *BackdropRenderer {
	return &BackdropRenderer{Title: title, Subtitle: subtitle, Footer: footer}
}

// Render implements SystemRenderer
func (r *BackdropRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	vh := ctx.Frame.ViewportH
	introY := vh*parameter.IntroSectionViewports/2 - ctx.Scroll
	r.centered(ctx, buf, introY, r.Title, render.RgbLabel, tcell.AttrBold)
	r.centered(ctx, buf, introY+ctx.CellHeight*1.5, r.Subtitle, render.RgbLabelDim, tcell.AttrNone)

	outroY := ctx.Frame.SectionTop + ctx.Frame.SectionHeight + vh*parameter.OutroSectionViewports/2 - ctx.Scroll
	r.centered(ctx, buf, outroY, r.Footer, render.RgbLabelDim, tcell.AttrNone)
}

func (r *BackdropRenderer) centered(ctx render.RenderContext, buf *render.RenderBuffer, py float64, s string, fg render.RGB, attrs tcell.AttrMask) {
	if s == "" {
		return
	}
	_, y := ctx.ToCell(0, py)
	if y < 0 || y >= ctx.ViewHeight() {
		return
	}
	s = render.Truncate(s, ctx.ScreenWidth-2)
	x := (ctx.ScreenWidth - render.TextWidth(s)) / 2
	buf.Text(x, y, s, fg, attrs)
}
