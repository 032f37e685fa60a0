package gallery

import (
	"cmp"
	"math"
	"slices"

	"github.com/lixenwraith/radial-gallery/interaction"
	"github.com/lixenwraith/radial-gallery/layout"
	"github.com/lixenwraith/radial-gallery/motion"
	"github.com/lixenwraith/radial-gallery/scroll"
)

// Rect is an axis-aligned box in viewport pixels
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ItemView is one item resolved to viewport coordinates for drawing
type ItemView struct {
	Index int
	Item  Item

	// Placement is the unrotated ring position relative to the center
	Placement layout.Placement

	// X, Y is the item center in viewport pixels after rotation and lift
	X, Y float64

	// Rotation is the item's total rotation in degrees
	Rotation float64

	// Width, Height is the unscaled item box
	Width, Height float64

	// Target is the emphasis the item is animating toward
	Target interaction.Weight

	// Animated emphasis
	Scale      float64
	Opacity    float64
	Blur       float64
	Saturation float64
	Lift       float64
}

// Visible reports whether the item should be drawn at all
func (v ItemView) Visible() bool {
	return v.Opacity > 0.01 && v.Scale > 0
}

// Frame is everything a renderer needs for one draw
type Frame struct {
	ViewportW, ViewportH float64

	// Stage is the viewport-high container; pinned while the budget is consumed
	Stage Rect

	// Area is the clipped visible band the ring shows through
	Area Rect

	CenterX, CenterY float64
	Radius           float64
	Direction        layout.Direction

	// Rotation is the displayed rotation, including settle
	Rotation scroll.Rotation

	// Live is the rotation of the latest scroll sample
	Live scroll.Rotation

	SnapIndex int
	Effective int
	Hovered   int
	Mode      interaction.Mode

	Pinned   bool
	Compact  bool
	Disabled bool
	Static   bool
	Degraded bool

	// SectionTop and SectionHeight place the gallery section on the page
	SectionTop    float64
	SectionHeight float64

	// Items are ordered back to front
	Items []ItemView
}

// Frame resolves the current state into viewport coordinates
func (g *Gallery) Frame() Frame {
	st := g.machine.State()
	f := Frame{
		ViewportW:     g.layout.viewportW,
		ViewportH:     g.layout.viewportH,
		Radius:        g.layout.geom.Radius,
		Direction:     g.layout.geom.Direction,
		Live:          g.live,
		SnapIndex:     g.snapper.Index(),
		Effective:     g.machine.EffectiveIndex(),
		Hovered:       st.Hovered,
		Mode:          g.machine.Mode(),
		Pinned:        g.binder.Binding().Pinned,
		Compact:       g.layout.compact,
		Disabled:      g.opts.Disabled,
		Static:        g.binder == nil,
		Degraded:      g.degraded,
		SectionTop:    g.containerTop(),
		SectionHeight: g.layout.sectionH,
	}
	f.Rotation = scroll.Rotation{
		Progress: g.displayed,
		Degrees:  scroll.Degrees(len(g.items), g.displayed) * g.layout.geom.Direction.Sign(),
	}
	f.Stage = Rect{W: f.ViewportW, H: f.ViewportH, Y: g.stageTop()}
	f.Area = Rect{
		W: f.ViewportW,
		H: g.layout.visibleH,
		Y: f.Stage.Y + (f.Stage.H-g.layout.visibleH)/2,
	}
	f.CenterX = f.ViewportW / 2
	f.CenterY = f.Area.Y + f.Area.H - g.layout.bottom - f.Radius

	f.Items = g.itemViews(f)
	return f
}

func (g *Gallery) itemViews(f Frame) []ItemView {
	n := len(g.items)
	if n == 0 {
		return nil
	}
	ctx := g.machine.Context(g.layout.compact)
	views := make([]ItemView, n)
	for i, p := range layout.PlaceAll(n, g.layout.geom) {
		r := layout.Rotate(p, f.Rotation.Degrees)
		val := g.field.Value(i)
		total := f.Rotation.Degrees + p.RotationDeg
		rad := total * math.Pi / 180
		lift := val[motion.ChannelLift]
		views[i] = ItemView{
			Index:      i,
			Item:       g.items[i],
			Placement:  p,
			X:          f.CenterX + r.X + lift*math.Sin(rad),
			Y:          f.CenterY + r.Y - lift*math.Cos(rad),
			Rotation:   total,
			Width:      g.layout.itemW,
			Height:     g.layout.itemH,
			Target:     interaction.Weigh(i, ctx),
			Scale:      val[motion.ChannelScale],
			Opacity:    val[motion.ChannelOpacity],
			Blur:       val[motion.ChannelBlur],
			Saturation: val[motion.ChannelSaturation],
			Lift:       lift,
		}
	}
	slices.SortStableFunc(views, func(a, b ItemView) int {
		return cmp.Compare(a.Target.Z, b.Target.Z)
	})
	return views
}

// stageTop is the stage's viewport y: scrolls with the page except while pinned
func (g *Gallery) stageTop() float64 {
	return g.containerTop() - g.scrollPos + g.binder.PinnedOffset(g.scrollPos)
}

func (g *Gallery) stageContains(y float64) bool {
	top := g.stageTop()
	return y >= top && y < top+g.layout.viewportH
}

// ItemAt returns the topmost interactive item under (x, y) in viewport pixels, or -1
func (g *Gallery) ItemAt(x, y float64) int {
	f := g.Frame()
	if !f.Stage.Contains(x, y) {
		return -1
	}
	for i := len(f.Items) - 1; i >= 0; i-- {
		v := f.Items[i]
		if !v.Target.Interactive || !v.Target.Visible {
			continue
		}
		if v.Hit(x, y) {
			return v.Index
		}
	}
	return -1
}

// Hit reports whether (x, y) falls inside the item's rotated, scaled box
func (v ItemView) Hit(x, y float64) bool {
	rad := -v.Rotation * math.Pi / 180
	dx, dy := x-v.X, y-v.Y
	lx := dx*math.Cos(rad) - dy*math.Sin(rad)
	ly := dx*math.Sin(rad) + dy*math.Cos(rad)
	s := math.Max(v.Scale, 0)
	return math.Abs(lx) <= v.Width*s/2 && math.Abs(ly) <= v.Height*s/2
}
