// Package snapshot rasterizes a gallery frame to an image file
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/lixenwraith/radial-gallery/gallery"
	"github.com/lixenwraith/radial-gallery/render"
	"github.com/lixenwraith/radial-gallery/thumbnail"
	"golang.org/x/image/draw"
)

// ErrFormat is returned for output formats other than webp and png
var ErrFormat = errors.New("unsupported snapshot format")

// Format is an output encoding
type Format string

const (
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
)

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return FormatWebP, nil
	case ".png":
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

// Options configures rasterization
type Options struct {
	// Supersample renders at this multiple and downsamples; 1 disables
	Supersample int

	// FontSize is the label size in points at 1x
	FontSize float64

	// Labels toggles step and title text
	Labels bool
}

// DefaultOptions returns 2x supersampling with labels
func DefaultOptions() Options {
	return Options{Supersample: 2, FontSize: 13, Labels: true}
}

// Render rasterizes f at its viewport size
// Item images come from cache; items without a usable image get a placeholder
func Render(f gallery.Frame, cache *thumbnail.Cache, opts Options) (*image.RGBA, error) {
	w, h := int(math.Round(f.ViewportW)), int(math.Round(f.ViewportH))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("snapshot: empty viewport %dx%d", w, h)
	}
	scale := max(opts.Supersample, 1)
	if cache == nil {
		cache = thumbnail.NewCache()
	}

	c, err := newCanvas(w*scale, h*scale, float64(scale), opts.FontSize)
	if err != nil {
		return nil, err
	}
	c.fill(image.Rect(0, 0, w*scale, h*scale), render.RgbBackground)
	c.area(f)
	n := len(f.Items)
	for _, v := range f.Items {
		if !v.Visible() || !v.Target.Visible {
			continue
		}
		c.item(v, itemSource(cache, v, n))
	}
	if opts.Labels {
		for _, v := range f.Items {
			if v.Target.Visible && v.Opacity >= 0.3 {
				c.labels(v)
			}
		}
	}

	if scale == 1 {
		return c.img, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	return out, nil
}

func itemSource(cache *thumbnail.Cache, v gallery.ItemView, n int) image.Image {
	key := v.Item.Image
	if key == "" {
		key = fmt.Sprintf("placeholder:%d/%d", v.Index, n)
	}
	img, err := cache.Source(key, v.Item.Image)
	if err != nil {
		img = thumbnail.Placeholder(64, 64, render.Hue(v.Index, n))
		cache.Put(key, img)
	}
	return img
}

// Encode writes img in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("snapshot: encode webp: %w", err)
		}
		return nil
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("snapshot: encode png: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrFormat, format)
}

// WriteFile renders and encodes f to path, picking the format from its extension
func WriteFile(path string, f gallery.Frame, cache *thumbnail.Cache, opts Options) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	img, err := Render(f, cache, opts)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	if err := Encode(out, img, format); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func rgba(c render.RGB) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}
