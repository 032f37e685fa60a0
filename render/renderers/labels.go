package renderers

import (
	"math"

	"github.com/lixenwraith/radial-gallery/parameter"
	"github.com/lixenwraith/radial-gallery/render"
)

// LabelsRenderer writes step and title under each visible card
type LabelsRenderer struct{}

// NewLabelsRenderer creates a label renderer
func NewLabelsRenderer() *LabelsRenderer {
	return &LabelsRenderer{}
}

// Render implements SystemRenderer
func (r *LabelsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, v := range ctx.Frame.Items {
		if !v.Target.Visible || v.Opacity < parameter.LabelMinOpacity {
			continue
		}
		s := math.Max(v.Scale, 0)
		cx, top := ctx.ToCell(v.X, v.Y-v.Height*s/2)
		_, bottom := ctx.ToCell(v.X, v.Y+v.Height*s/2)

		step := render.Truncate(v.Item.Step, parameter.LabelMaxWidth)
		if step != "" && top-1 >= 0 && top-1 < ctx.ViewHeight() {
			fg := render.Blend(buf.Get(cx, top-1).Bg, render.RgbStep, v.Opacity)
			buf.Text(cx-render.TextWidth(step)/2, top-1, step, fg, attrsFor(v.Target))
		}

		title := render.Truncate(v.Item.Title, parameter.LabelMaxWidth)
		row := bottom + 1
		if title == "" || row < 0 || row >= ctx.ViewHeight() {
			continue
		}
		base := render.RgbLabelDim
		if v.Target.Active || v.Target.Hovered {
			base = render.RgbLabel
		}
		fg := render.Blend(buf.Get(cx, row).Bg, base, v.Opacity)
		buf.Text(cx-render.TextWidth(title)/2, row, title, fg, attrsFor(v.Target))
	}
}
