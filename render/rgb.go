package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// FromNRGBA drops alpha from an image color
func FromNRGBA(c color.NRGBA) RGB {
	return RGB{c.R, c.G, c.B}
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Max returns per-channel maximum with alpha blending
func Max(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	maxed := RGB{
		R: max(c.R, src.R),
		G: max(c.G, src.G),
		B: max(c.B, src.B),
	}
	return Blend(c, maxed, alpha)
}

// Add performs additive blend with clamping and alpha blending
func Add(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	added := RGB{
		R: uint8(min(int(c.R)+int(src.R), 255)),
		G: uint8(min(int(c.G)+int(src.G), 255)),
		B: uint8(min(int(c.B)+int(src.B), 255)),
	}
	return Blend(c, added, alpha)
}

// fastDiv255 approximates x / 255 using integer math
func fastDiv255(x int) int {
	return (x + (x >> 8) + 1) >> 8
}

// Screen blend: 1 - (1-Dst)*(1-Src) with alpha blending
func Screen(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	screened := RGB{
		R: uint8(255 - fastDiv255((255-int(c.R))*(255-int(src.R)))),
		G: uint8(255 - fastDiv255((255-int(c.G))*(255-int(src.G)))),
		B: uint8(255 - fastDiv255((255-int(c.B))*(255-int(src.B)))),
	}
	return Blend(c, screened, alpha)
}

// Scale multiplies all channels by factor, clamped so factor > 1 brightens without wrapping
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Saturate scales chroma in HCL space; 0 yields gray at the same lightness, 1 is unchanged
func Saturate(c RGB, amount float64) RGB {
	if amount >= 1 {
		return c
	}
	h, ch, l := c.colorful().Hcl()
	return fromColorful(colorful.Hcl(h, ch*max(amount, 0), l))
}

// Soften approximates blur on a character grid by pulling toward the backdrop
// radius is the blur radius in pixels; 8px is treated as fully washed out
func Soften(c, backdrop RGB, radius float64) RGB {
	if radius <= 0 {
		return c
	}
	return Blend(c, backdrop, min(radius/8, 1)*0.6)
}

// Hue returns a deterministic accent for item i of n, evenly spaced around the wheel
func Hue(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return 360 * float64(i) / float64(n)
}

// Accent returns the HCL accent color for hue
func Accent(hue float64) RGB {
	return fromColorful(colorful.Hcl(hue, 0.5, 0.7))
}
