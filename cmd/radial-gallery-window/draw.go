package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/radial-gallery/gallery"
	"github.com/lixenwraith/radial-gallery/interaction"
	"github.com/lixenwraith/radial-gallery/parameter"
	"github.com/lixenwraith/radial-gallery/render"
	"github.com/lixenwraith/radial-gallery/thumbnail"
)

// debugGlyph is the cell size of ebitenutil's debug font
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

func rgba(c render.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(render.RgbBackground))
	f := g.gal.Frame()

	g.drawBackdrop(screen, f)
	g.drawArea(screen, f)

	area := screen.SubImage(image.Rect(
		int(f.Area.X), int(f.Area.Y), int(f.Area.X+f.Area.W), int(f.Area.Y+f.Area.H),
	)).(*ebiten.Image)
	n := len(f.Items)
	for _, v := range f.Items {
		if !v.Visible() || !v.Target.Visible {
			continue
		}
		g.drawItem(area, v, n)
	}
	for _, v := range f.Items {
		if v.Target.Visible && v.Opacity >= parameter.LabelMinOpacity {
			g.drawLabels(area, v)
		}
	}

	g.drawStatus(screen, f)
	if g.selected >= 0 && g.selected < n {
		g.drawOverlay(screen, f)
	}
}

func centeredText(dst *ebiten.Image, s string, cx, y int) {
	ebitenutil.DebugPrintAt(dst, s, cx-len(s)*debugGlyphW/2, y)
}

func (g *game) drawBackdrop(screen *ebiten.Image, f gallery.Frame) {
	scroll := g.host.Scroll()
	cx := g.width / 2
	intro := f.ViewportH*parameter.IntroSectionViewports/2 - scroll
	centeredText(screen, "RADIAL GALLERY", cx, int(intro))
	centeredText(screen, "scroll to turn the ring", cx, int(intro)+debugGlyphH)

	outro := f.SectionTop + f.SectionHeight + f.ViewportH*parameter.OutroSectionViewports/2 - scroll
	centeredText(screen, "end of gallery", cx, int(outro))
}

func (g *game) drawArea(screen *ebiten.Image, f gallery.Frame) {
	fill := render.RgbArea
	if f.Pinned {
		fill = render.Blend(fill, render.RgbPinned, 0.15)
	}
	vector.DrawFilledRect(screen, float32(f.Area.X), float32(f.Area.Y), float32(f.Area.W), float32(f.Area.H), rgba(fill), false)

	area := screen.SubImage(image.Rect(
		int(f.Area.X), int(f.Area.Y), int(f.Area.X+f.Area.W), int(f.Area.Y+f.Area.H),
	)).(*ebiten.Image)
	vector.StrokeCircle(area, float32(f.CenterX), float32(f.CenterY), float32(f.Radius), 1, rgba(render.RgbRing), true)
	vector.DrawFilledCircle(area, float32(f.CenterX), float32(f.CenterY), 3, rgba(render.RgbCenter), true)
}

// cardGeoM maps a w by h texture onto the item's scaled, rotated box centred at its position
func cardGeoM(v gallery.ItemView, w, h, pad float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-w/2, -h/2)
	m.Scale((v.Width*v.Scale+2*pad)/w, (v.Height*v.Scale+2*pad)/h)
	m.Rotate(v.Rotation * math.Pi / 180)
	m.Translate(v.X, v.Y)
	return m
}

func edgeColor(w interaction.Weight) (render.RGB, bool) {
	switch {
	case w.Hovered:
		return render.RgbHoverEdge, true
	case w.Active:
		return render.RgbActiveEdge, true
	}
	return render.RgbCardEdge, false
}

func (g *game) drawItem(dst *ebiten.Image, v gallery.ItemView, n int) {
	if edge, ok := edgeColor(v.Target); ok {
		op := &ebiten.DrawImageOptions{GeoM: cardGeoM(v, 1, 1, parameter.WindowCardEdge)}
		op.ColorScale.ScaleWithColor(rgba(edge))
		op.ColorScale.ScaleAlpha(float32(v.Opacity))
		dst.DrawImage(g.pixel, op)
	}

	tex := g.texture(v, n)
	b := tex.Bounds()
	op := &colorm.DrawImageOptions{GeoM: cardGeoM(v, float64(b.Dx()), float64(b.Dy()), 0)}
	op.Filter = ebiten.FilterLinear
	var cm colorm.ColorM
	cm.ChangeHSV(0, v.Saturation, 1-min(v.Blur, 8)/40)
	cm.Scale(1, 1, 1, v.Opacity)
	colorm.DrawImage(dst, tex, cm, op)
}

// texture returns the cover-cropped card image for v, uploading it once
func (g *game) texture(v gallery.ItemView, n int) *ebiten.Image {
	key := v.Item.Image
	if key == "" {
		key = fmt.Sprintf("placeholder:%d/%d", v.Index, n)
	}
	if t, ok := g.textures[key]; ok {
		return t
	}
	src, err := g.thumbs.Source(key, v.Item.Image)
	if err != nil {
		src = thumbnail.Placeholder(parameter.WindowCardWidth, parameter.WindowCardHeight, render.Hue(v.Index, n))
		g.thumbs.Put(key, src)
	}
	t := ebiten.NewImageFromImage(thumbnail.Cover(src, parameter.WindowCardWidth, parameter.WindowCardHeight))
	g.textures[key] = t
	return t
}

func (g *game) drawLabels(dst *ebiten.Image, v gallery.ItemView) {
	half := v.Height * v.Scale / 2
	cx := int(v.X)
	centeredText(dst, v.Item.Step, cx, int(v.Y-half)-debugGlyphH-4)
	centeredText(dst, truncate(v.Item.Title, parameter.LabelMaxWidth), cx, int(v.Y+half)+4)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:max(n-1, 0)]) + "…"
}

func (g *game) drawStatus(screen *ebiten.Image, f gallery.Frame) {
	y := g.height - debugGlyphH - 4
	vector.DrawFilledRect(screen, 0, float32(y-2), float32(g.width), float32(debugGlyphH+6), rgba(render.RgbStatusBg), false)

	mode := f.Mode.String()
	if f.Disabled {
		mode = "disabled"
	}
	line := fmt.Sprintf(" %s  %d/%d  %3.0f%%  %6.1f°  ->%d", mode, f.SnapIndex+1, len(f.Items),
		f.Rotation.Progress*100, f.Rotation.Degrees, f.Effective+1)
	if f.Pinned {
		line += "  PIN"
	}
	if f.Compact {
		line += "  COMPACT"
	}
	if f.Static {
		line += "  STATIC"
	}
	if !g.player.Enabled() {
		line += "  muted"
	}
	ebitenutil.DebugPrintAt(screen, line, 4, y)
}

func (g *game) drawOverlay(screen *ebiten.Image, f gallery.Frame) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: 0x80}, false)

	w := float32(g.width) * parameter.OverlayWidthPercent
	h := float32(g.height) * parameter.OverlayHeightPercent
	x := (float32(g.width) - w) / 2
	y := (float32(g.height) - h) / 2
	vector.DrawFilledRect(screen, x, y, w, h, rgba(render.RgbOverlayBg), false)
	vector.StrokeRect(screen, x, y, w, h, 2, rgba(render.RgbOverlayBorder), false)

	var item gallery.Item
	for _, v := range f.Items {
		if v.Index == g.selected {
			item = v.Item
		}
	}
	cx := int(x + w/2)
	top := int(y) + 2*debugGlyphH
	centeredText(screen, item.Step, cx, top)
	centeredText(screen, item.Title, cx, top+2*debugGlyphH)
	if item.Image != "" {
		centeredText(screen, item.Image, cx, top+4*debugGlyphH)
	}
	centeredText(screen, "enter/esc/click close", cx, int(y+h)-2*debugGlyphH)
}
