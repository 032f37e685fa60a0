package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lixenwraith/radial-gallery/gallery"
	"github.com/lixenwraith/radial-gallery/render"
	"github.com/lixenwraith/radial-gallery/thumbnail"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// canvas draws in supersampled pixels; scale maps viewport pixels onto it
type canvas struct {
	img   *image.RGBA
	scale float64
	face  font.Face
}

func newCanvas(w, h int, scale, size float64) (*canvas, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("snapshot: parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    max(size, 6) * scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: font face: %w", err)
	}
	return &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scale: scale,
		face:  face,
	}, nil
}

func (c *canvas) at(x, y int) render.RGB {
	p := c.img.RGBAAt(x, y)
	return render.RGB{R: p.R, G: p.G, B: p.B}
}

func (c *canvas) set(x, y int, v render.RGB) {
	c.img.SetRGBA(x, y, rgba(v))
}

func (c *canvas) fill(r image.Rectangle, v render.RGB) {
	r = r.Intersect(c.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.set(x, y, v)
		}
	}
}

// rect converts viewport pixels to canvas pixels
func (c *canvas) rect(r gallery.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X*c.scale)), int(math.Floor(r.Y*c.scale)),
		int(math.Ceil((r.X+r.W)*c.scale)), int(math.Ceil((r.Y+r.H)*c.scale)),
	)
}

// area fills the visible band and strokes the ring inside it
func (c *canvas) area(f gallery.Frame) {
	band := c.rect(f.Area).Intersect(c.img.Bounds())
	c.fill(band, render.RgbArea)

	cx, cy, r := f.CenterX*c.scale, f.CenterY*c.scale, f.Radius*c.scale
	stroke := c.scale
	for y := band.Min.Y; y < band.Max.Y; y++ {
		for x := band.Min.X; x < band.Max.X; x++ {
			d := math.Abs(math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) - r)
			if d <= stroke {
				c.set(x, y, render.Blend(c.at(x, y), render.RgbRing, 1-d/stroke*0.5))
			}
		}
	}
}

// item draws one rotated, emphasis-shaded card
func (c *canvas) item(v gallery.ItemView, src image.Image) {
	s := math.Max(v.Scale, 0) * c.scale
	hw, hh := v.Width*s/2, v.Height*s/2
	if hw < 0.5 || hh < 0.5 {
		return
	}
	tex := thumbnail.Cover(src, max(int(2*hw), 1), max(int(2*hh), 1))
	tb := tex.Bounds()

	cx, cy := v.X*c.scale, v.Y*c.scale
	reach := math.Hypot(hw, hh)
	box := image.Rect(int(cx-reach), int(cy-reach), int(cx+reach)+1, int(cy+reach)+1).Intersect(c.img.Bounds())

	rad := -v.Rotation * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	edge := 2 * c.scale
	edgeColor := render.RgbCardEdge
	switch {
	case v.Target.Hovered:
		edgeColor = render.RgbHoverEdge
	case v.Target.Active:
		edgeColor = render.RgbActiveEdge
	}

	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			lx := dx*cos - dy*sin
			ly := dx*sin + dy*cos
			if math.Abs(lx) > hw || math.Abs(ly) > hh {
				continue
			}
			var px render.RGB
			if math.Abs(lx) > hw-edge || math.Abs(ly) > hh-edge {
				px = edgeColor
			} else {
				tx := min(max(int(lx+hw), 0), tb.Dx()-1)
				ty := min(max(int(ly+hh), 0), tb.Dy()-1)
				px = render.FromNRGBA(tex.NRGBAAt(tx, ty))
			}
			under := c.at(x, y)
			px = render.Saturate(px, v.Saturation)
			px = render.Soften(px, under, v.Blur)
			c.set(x, y, render.Blend(under, px, v.Opacity))
		}
	}
}

// labels writes the step above and the title below a card
func (c *canvas) labels(v gallery.ItemView) {
	s := math.Max(v.Scale, 0)
	cx := v.X * c.scale
	top := (v.Y - v.Height*s/2) * c.scale
	bottom := (v.Y + v.Height*s/2) * c.scale
	m := c.face.Metrics()
	gap := 4 * c.scale

	under := c.at(int(cx), int(bottom+gap))
	fg := render.RgbLabelDim
	if v.Target.Active || v.Target.Hovered {
		fg = render.RgbLabel
	}
	c.text(v.Item.Title, cx, bottom+gap+float64(m.Ascent.Ceil()), render.Blend(under, fg, v.Opacity))
	if v.Item.Step != "" {
		c.text(v.Item.Step, cx, top-gap-float64(m.Descent.Ceil()), render.Blend(under, render.RgbStep, v.Opacity))
	}
}

// text draws s centered horizontally on x with its baseline at y
func (c *canvas) text(s string, x, y float64, fg render.RGB) {
	if s == "" {
		return
	}
	width := font.MeasureString(c.face, s).Ceil()
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(color.RGBA{fg.R, fg.G, fg.B, 255}),
		Face: c.face,
		Dot:  fixed.Point26_6{X: fixed.I(int(x) - width/2), Y: fixed.I(int(y))},
	}
	d.DrawString(s)
}
