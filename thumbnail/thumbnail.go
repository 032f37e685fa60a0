// Package thumbnail decodes item images and reduces them to terminal half-block cells
package thumbnail

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrDecode is returned when image data is not in a registered format
var ErrDecode = errors.New("unsupported or corrupt image")

// Load reads and decodes an image file
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("thumbnail: read %s: %w", path, err)
	}
	img, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("thumbnail: %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes PNG, JPEG, GIF, WebP or TGA data
func Decode(data []byte) (*image.NRGBA, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("%w: empty %s image", ErrDecode, format)
	}
	return toNRGBA(img), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	stddraw.Draw(dst, dst.Bounds(), src, b.Min, stddraw.Src)
	return dst
}

// Cover scales src to fill w×h, cropping the overflow around the center
func Cover(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	sb := src.Bounds()
	if sb.Empty() {
		return dst
	}
	// Crop the source to the destination aspect ratio
	sw, sh := sb.Dx(), sb.Dy()
	cw, ch := sw, sw*dst.Bounds().Dy()/dst.Bounds().Dx()
	if ch > sh {
		ch = sh
		cw = sh * dst.Bounds().Dx() / dst.Bounds().Dy()
	}
	cw, ch = max(cw, 1), max(ch, 1)
	x0 := sb.Min.X + (sw-cw)/2
	y0 := sb.Min.Y + (sh-ch)/2
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, image.Rect(x0, y0, x0+cw, y0+ch), draw.Src, nil)
	return dst
}

// Placeholder is a vertical gradient standing in for a missing image
// hue is in degrees; the same hue always yields the same image
func Placeholder(w, h int, hue float64) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	top := colorful.Hcl(hue, 0.45, 0.75)
	bottom := colorful.Hcl(hue+40, 0.55, 0.3)
	rows := dst.Bounds().Dy()
	for y := 0; y < rows; y++ {
		t := 0.0
		if rows > 1 {
			t = float64(y) / float64(rows-1)
		}
		r, g, b := top.BlendLab(bottom, t).Clamped().RGB255()
		c := color.NRGBA{r, g, b, 255}
		for x := 0; x < dst.Bounds().Dx(); x++ {
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}
