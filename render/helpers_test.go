package render

import "github.com/lixenwraith/radial-gallery/gallery"

func rect(x, y, w, h float64) gallery.Rect {
	return gallery.Rect{X: x, Y: y, W: w, H: h}
}
