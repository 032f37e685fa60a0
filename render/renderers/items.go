package renderers

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/radial-gallery/gallery"
	"github.com/lixenwraith/radial-gallery/interaction"
	"github.com/lixenwraith/radial-gallery/parameter"
	"github.com/lixenwraith/radial-gallery/render"
	"github.com/lixenwraith/radial-gallery/thumbnail"
)

// ItemsRenderer draws every visible item as a rotated half-block card
type ItemsRenderer struct {
	cache *thumbnail.Cache
}

// NewItemsRenderer creates an item renderer drawing thumbnails from cache
func NewItemsRenderer(cache *thumbnail.Cache) *ItemsRenderer {
	if cache == nil {
		cache = thumbnail.NewCache()
	}
	return &ItemsRenderer{cache: cache}
}

// Render implements SystemRenderer
func (r *ItemsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	f := ctx.Frame
	n := len(f.Items)
	for _, v := range f.Items {
		if !v.Visible() || !v.Target.Visible {
			continue
		}
		grid := r.grid(v, n)
		r.card(ctx, buf, v, grid)
	}
}

// grid returns the sample grid for an item, falling back to a placeholder when the image is unusable
func (r *ItemsRenderer) grid(v gallery.ItemView, n int) thumbnail.Cells {
	key := v.Item.Image
	if key == "" {
		key = fmt.Sprintf("placeholder:%d/%d", v.Index, n)
	}
	if _, err := r.cache.Source(key, v.Item.Image); err != nil {
		r.cache.Put(key, thumbnail.Placeholder(parameter.ThumbnailSampleCols, parameter.ThumbnailSampleRows*2, render.Hue(v.Index, n)))
	}
	g, _ := r.cache.Cells(key, parameter.ThumbnailSampleCols, parameter.ThumbnailSampleRows)
	return g
}

func (r *ItemsRenderer) card(ctx render.RenderContext, buf *render.RenderBuffer, v gallery.ItemView, grid thumbnail.Cells) {
	s := math.Max(v.Scale, 0)
	hw, hh := v.Width*s/2, v.Height*s/2
	if hw <= 0 || hh <= 0 {
		return
	}
	// Bounding radius of the rotated box
	reach := math.Hypot(hw, hh)
	x0, y0, w, h := ctx.CellRect(gallery.Rect{X: v.X - reach, Y: v.Y - reach, W: 2 * reach, H: 2 * reach})

	rad := -v.Rotation * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	edge := edgeColor(v.Target)
	// Border is one cell thick on each edge
	bx, by := ctx.CellWidth, ctx.CellHeight

	local := func(px, py float64) (float64, float64) {
		dx, dy := px-v.X, py-v.Y
		return dx*cos - dy*sin, dx*sin + dy*cos
	}

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			px, py := ctx.CellCenter(x, y)
			lx, ly := local(px, py)
			if math.Abs(lx) > hw || math.Abs(ly) > hh {
				continue
			}
			under := buf.Get(x, y).Bg
			if math.Abs(lx) > hw-bx || math.Abs(ly) > hh-by {
				c := r.shade(edge, under, v)
				buf.SetWithBg(x, y, ' ', c, c)
				continue
			}
			// Upper and lower half of the cell sample separate image rows
			tx, ty := local(px, py-ctx.CellHeight/4)
			bxl, byl := local(px, py+ctx.CellHeight/4)
			top := r.shade(sample(grid, tx, ty, hw, hh), under, v)
			bottom := r.shade(sample(grid, bxl, byl, hw, hh), under, v)
			buf.SetWithBg(x, y, '▀', top, bottom)
		}
	}
}

// shade applies saturation, blur and opacity against what is underneath
func (r *ItemsRenderer) shade(c, under render.RGB, v gallery.ItemView) render.RGB {
	c = render.Saturate(c, v.Saturation)
	c = render.Soften(c, under, v.Blur)
	return render.Blend(under, c, v.Opacity)
}

func sample(grid thumbnail.Cells, lx, ly, hw, hh float64) render.RGB {
	if grid.Cols == 0 {
		return render.RgbCardFill
	}
	u := (lx + hw) / (2 * hw)
	t := (ly + hh) / (2 * hh)
	col := min(max(int(u*float64(grid.Cols)), 0), grid.Cols-1)
	prow := min(max(int(t*float64(grid.Rows*2)), 0), grid.Rows*2-1)
	cell := grid.At(col, prow/2)
	if prow%2 == 0 {
		return render.FromNRGBA(cell.Top)
	}
	return render.FromNRGBA(cell.Bottom)
}

func edgeColor(w interaction.Weight) render.RGB {
	switch {
	case w.Hovered:
		return render.RgbHoverEdge
	case w.Active:
		return render.RgbActiveEdge
	}
	return render.RgbCardEdge
}

// attrsFor bolds active item text
func attrsFor(w interaction.Weight) tcell.AttrMask {
	if w.Active || w.Hovered {
		return tcell.AttrBold
	}
	return tcell.AttrNone
}
