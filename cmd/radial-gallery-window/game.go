package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/radial-gallery/audio"
	"github.com/lixenwraith/radial-gallery/clock"
	"github.com/lixenwraith/radial-gallery/config"
	"github.com/lixenwraith/radial-gallery/events"
	"github.com/lixenwraith/radial-gallery/gallery"
	"github.com/lixenwraith/radial-gallery/interaction"
	"github.com/lixenwraith/radial-gallery/parameter"
	"github.com/lixenwraith/radial-gallery/thumbnail"
)

// game implements ebiten.Game over a gallery mounted on a virtual page
type game struct {
	clk    clock.Clock
	host   *gallery.PageHost
	gal    *gallery.Gallery
	player *audio.Player
	thumbs *thumbnail.Cache

	textures map[string]*ebiten.Image
	pixel    *ebiten.Image

	width, height    int
	cursorX, cursorY int
	inside           bool
	selected         int
	quit             bool
}

func newGame(cfg *config.Config, items []gallery.Item, reducedMotion bool) *game {
	clk := clock.NewReal()
	g := &game{
		clk:      clk,
		host:     gallery.NewPageHost(clk),
		player:   audio.NewPlayer(clk),
		thumbs:   thumbnail.NewCache(),
		textures: make(map[string]*ebiten.Image),
		pixel:    ebiten.NewImage(1, 1),
		selected: -1,
	}
	g.pixel.Fill(color.White)
	g.player.SetVolume(cfg.Audio.Volume)
	g.host.SetReducedMotion(reducedMotion)
	g.gal = newGallery(cfg, items, g)
	g.gal.Mount(g.host)
	g.host.Post(events.EventDeviceClass, &events.DeviceClassPayload{Coarse: false})
	return g
}

func (g *game) close() {
	g.gal.Dispose()
	g.player.Cleanup()
	for _, t := range g.textures {
		t.Deallocate()
	}
}

func (g *game) Update() error {
	g.input()
	g.host.Pump()
	g.gal.Tick(g.clk.Now())
	g.host.Pump()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

// Layout reports a new viewport to the gallery whenever the window changes size
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.host.Resize(float64(g.width), float64(g.height), parameter.WindowCardWidth, parameter.WindowCardHeight)
	}
	return outsideWidth, outsideHeight
}

// repeating is true on the first frame of a press and then at the key repeat rate
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%4 == 0)
}

func (g *game) input() {
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scrollTo(g.host.Scroll() - dy*parameter.WindowWheelStep)
	}

	vh := float64(g.height)
	switch {
	case repeating(ebiten.KeyArrowDown) || repeating(ebiten.KeyJ):
		g.scrollTo(g.host.Scroll() + parameter.KeyStep)
	case repeating(ebiten.KeyArrowUp) || repeating(ebiten.KeyK):
		g.scrollTo(g.host.Scroll() - parameter.KeyStep)
	case repeating(ebiten.KeyPageDown):
		g.scrollTo(g.host.Scroll() + parameter.PageStepFraction*vh)
	case repeating(ebiten.KeyPageUp):
		g.scrollTo(g.host.Scroll() - parameter.PageStepFraction*vh)
	case repeating(ebiten.KeyArrowRight) || repeating(ebiten.KeyL):
		g.step(1)
	case repeating(ebiten.KeyArrowLeft) || repeating(ebiten.KeyH):
		g.step(-1)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.scrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.scrollTo(math.Inf(1))
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.focusStep(-1)
		} else {
			g.focusStep(1)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if !g.closeOverlay() {
			g.host.Post(events.EventBlur, nil)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if !g.closeOverlay() {
			g.activate(-1)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.player.SetEnabled(!g.player.Enabled())
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.gal.SetDisabled(!g.gal.Disabled())
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.quit = true
	}

	g.pointer()
}

// pointer forwards cursor motion, leave and clicks
func (g *game) pointer() {
	x, y := ebiten.CursorPosition()
	in := x >= 0 && y >= 0 && x < g.width && y < g.height && ebiten.IsFocused()
	switch {
	case in && (!g.inside || x != g.cursorX || y != g.cursorY):
		g.host.Post(events.EventPointerMove, &events.PointerPayload{X: float64(x), Y: float64(y)})
	case !in && g.inside:
		g.host.Post(events.EventPointerLeave, nil)
	}
	g.inside, g.cursorX, g.cursorY = in, x, y

	if in && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.closeOverlay() {
			return
		}
		g.host.Pump()
		if i := g.gal.ItemAt(float64(x), float64(y)); i >= 0 {
			g.activate(i)
		}
	}
}

func (g *game) scrollTo(pos float64) {
	f := g.gal.Frame()
	pos = max(0, min(pos, gallery.PageMaxScroll(f.ViewportH, f.SectionHeight)))
	g.host.SetScroll(pos)
}

// step scrolls to the neighbouring snap target; a static ring moves focus instead
func (g *game) step(dir int) {
	if pos, ok := g.gal.ScrollFor(g.gal.SnapIndex() + dir); ok {
		g.scrollTo(pos)
		return
	}
	g.focusStep(dir)
}

func (g *game) focusStep(dir int) {
	n := g.gal.Count()
	if n == 0 {
		return
	}
	cur := g.gal.Interaction().Hovered
	if cur == interaction.NoIndex {
		cur = g.gal.EffectiveIndex()
	}
	g.host.Post(events.EventFocus, &events.FocusPayload{Index: ((cur+dir)%n + n) % n})
}

func (g *game) activate(i int) {
	if g.gal.Disabled() {
		g.player.Play(audio.CueBuzz)
		return
	}
	g.host.Post(events.EventActivate, &events.ActivatePayload{Index: i})
}

func (g *game) closeOverlay() bool {
	if g.selected < 0 {
		return false
	}
	g.selected = -1
	return true
}
