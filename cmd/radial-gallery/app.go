package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/radial-gallery/audio"
	"github.com/lixenwraith/radial-gallery/clock"
	"github.com/lixenwraith/radial-gallery/config"
	"github.com/lixenwraith/radial-gallery/events"
	"github.com/lixenwraith/radial-gallery/gallery"
	"github.com/lixenwraith/radial-gallery/input"
	"github.com/lixenwraith/radial-gallery/interaction"
	"github.com/lixenwraith/radial-gallery/parameter"
	"github.com/lixenwraith/radial-gallery/render"
	"github.com/lixenwraith/radial-gallery/render/renderers"
	"github.com/lixenwraith/radial-gallery/snapshot"
	"github.com/lixenwraith/radial-gallery/status"
	"github.com/lixenwraith/radial-gallery/thumbnail"
)

// app owns the terminal front-end: one goroutine drives input, gallery and rendering
type app struct {
	screen   tcell.Screen
	clk      clock.Clock
	host     *gallery.PageHost
	gal      *gallery.Gallery
	keys     *input.Machine
	player   *audio.Player
	orch     *render.RenderOrchestrator
	debug    *renderers.DebugRenderer
	thumbs   *thumbnail.Cache
	registry *status.Registry

	cellW, cellH  float64
	width, height int
	pageH         float64
	selected      int
	buttons       tcell.ButtonMask
	quit          bool
}

func runTUI(flags *rootFlags, noAudio, reducedMotion bool) error {
	cfg, items, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}
	keyTable, err := cfg.KeyTable()
	if err != nil {
		log.Printf("%v; using default keys", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	watchScreen(screen)
	defer func() {
		handleCrash(recover())
		watchScreen(nil)
		screen.Fini()
	}()

	if cfg.Terminal.Mouse {
		screen.EnableMouse(tcell.MouseMotionEvents)
	}
	screen.EnableFocus()
	screen.HideCursor()

	cw, ch := flags.cellSize(cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	a := newApp(screen, clock.NewReal(), cfg, items, keyTable, cw, ch)
	a.host.SetReducedMotion(reducedMotion)
	if !noAudio && cfg.Audio.Enabled {
		if err := a.player.Initialize(); err != nil {
			log.Printf("audio unavailable: %v (continuing without audio)", err)
		}
	} else {
		a.player.SetEnabled(false)
	}
	defer a.player.Cleanup()

	a.gal.Mount(a.host)
	defer a.gal.Dispose()
	a.host.Post(events.EventDeviceClass, &events.DeviceClassPayload{Coarse: false})
	a.resize()

	return a.loop()
}

func newApp(screen tcell.Screen, clk clock.Clock, cfg *config.Config, items []gallery.Item, keys *input.KeyTable, cellW, cellH float64) *app {
	a := &app{
		screen:   screen,
		clk:      clk,
		host:     gallery.NewPageHost(clk),
		keys:     input.NewMachine(keys),
		player:   audio.NewPlayer(clk),
		debug:    renderers.NewDebugRenderer(),
		thumbs:   thumbnail.NewCache(),
		registry: status.NewRegistry(),
		cellW:    cellW,
		cellH:    cellH,
		selected: -1,
	}
	a.player.SetVolume(cfg.Audio.Volume)

	opts := cfg.Options()
	opts.Clock = clk
	opts.Logger = log.Default()
	opts.Metrics = a.registry
	opts.OnSnap = func(int) { a.player.Play(audio.CueTick) }
	opts.OnItemSelect = func(i int) {
		a.selected = i
		a.player.Play(audio.CueChime)
		log.Printf("selected item %d", i)
	}
	a.gal = gallery.New(items, opts)

	a.width, a.height = screen.Size()
	a.orch = render.NewRenderOrchestrator(screen, a.width, a.height)
	a.orch.Register(renderers.NewBackdropRenderer("RADIAL GALLERY", "scroll to turn the ring", "end of gallery"), render.PriorityBackground)
	a.orch.Register(renderers.NewAreaRenderer(), render.PriorityArea)
	a.orch.Register(renderers.NewItemsRenderer(a.thumbs), render.PriorityItems)
	a.orch.Register(renderers.NewLabelsRenderer(), render.PriorityLabels)
	a.orch.Register(renderers.NewStatusBarRenderer(), render.PriorityUI)
	a.orch.Register(renderers.NewDetailOverlayRenderer(), render.PriorityOverlay)
	a.orch.Register(a.debug, render.PriorityDebug)
	return a
}

func (a *app) loop() error {
	frameTicker := time.NewTicker(parameter.FrameInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	quitChan := make(chan struct{})
	goSafe(func() { a.screen.ChannelEvents(eventChan, quitChan) })
	defer close(quitChan)

	for !a.quit {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			a.handle(ev)
		case <-frameTicker.C:
			a.frame(a.clk.Now())
		}
	}
	return nil
}

// frame pumps queued signals, advances animation and draws
func (a *app) frame(now time.Time) {
	a.host.Pump()
	a.gal.Tick(now)
	a.host.Pump()

	f := a.gal.Frame()
	a.pageH = gallery.PageHeight(f.ViewportH, f.SectionHeight)
	ctx := render.RenderContext{
		Now:          now,
		Frame:        f,
		ScreenWidth:  a.width,
		ScreenHeight: a.height,
		StatusRows:   parameter.StatusBarHeight,
		CellWidth:    a.cellW,
		CellHeight:   a.cellH,
		Scroll:       a.host.Scroll(),
		PageHeight:   a.pageH,
		Selected:     a.selected,
		Muted:        !a.player.Enabled(),
	}
	if a.debug.IsVisible() {
		ctx.Metrics = a.registry.Snapshot()
	}
	a.orch.RenderFrame(ctx)
}

func (a *app) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.width, a.height = ev.Size()
		a.orch.Resize(a.width, a.height)
		a.resize()
	case *tcell.EventKey:
		if in, ok := a.keys.Process(ev); ok {
			a.apply(in)
		}
	case *tcell.EventMouse:
		a.mouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			a.host.Post(events.EventPointerLeave, nil)
		}
	}
}

// resize reports the page viewport; the status bar is not part of the page
func (a *app) resize() {
	rows := max(a.height-parameter.StatusBarHeight, 1)
	resizeHost(a.host, float64(a.width)*a.cellW, float64(rows)*a.cellH, a.cellW, a.cellH)
	a.scrollTo(a.host.Scroll())
}

func (a *app) viewportHeight() float64 {
	return float64(max(a.height-parameter.StatusBarHeight, 1)) * a.cellH
}

// scrollTo moves the page like user input, clamped to the page
func (a *app) scrollTo(pos float64) {
	maxScroll := max(a.pageH-a.viewportHeight(), 0)
	pos = max(0, min(pos, maxScroll))
	a.host.SetScroll(pos)
}

func (a *app) apply(in input.Intent) {
	n := float64(in.Count)
	switch in.Action {
	case input.ActionScrollDown:
		a.scrollTo(a.host.Scroll() + parameter.KeyStep*n)
	case input.ActionScrollUp:
		a.scrollTo(a.host.Scroll() - parameter.KeyStep*n)
	case input.ActionPageDown:
		a.scrollTo(a.host.Scroll() + parameter.PageStepFraction*a.viewportHeight()*n)
	case input.ActionPageUp:
		a.scrollTo(a.host.Scroll() - parameter.PageStepFraction*a.viewportHeight()*n)
	case input.ActionTop:
		a.scrollTo(0)
	case input.ActionBottom:
		a.scrollTo(a.pageH)
	case input.ActionNext, input.ActionPrev:
		step := in.Count
		if in.Action == input.ActionPrev {
			step = -step
		}
		if pos, ok := a.gal.ScrollFor(a.gal.SnapIndex() + step); ok {
			a.scrollTo(pos)
		} else {
			a.focusStep(step)
		}
	case input.ActionFocusNext:
		a.focusStep(in.Count)
	case input.ActionFocusPrev:
		a.focusStep(-in.Count)
	case input.ActionBlur:
		if a.selected >= 0 {
			a.selected = -1
			return
		}
		a.host.Post(events.EventBlur, nil)
	case input.ActionActivate:
		if a.selected >= 0 {
			a.selected = -1
			return
		}
		a.activate(-1)
	case input.ActionToggleMute:
		a.player.SetEnabled(!a.player.Enabled())
	case input.ActionToggleDebug:
		a.debug.Toggle()
	case input.ActionToggleDisabled:
		a.gal.SetDisabled(!a.gal.Disabled())
	case input.ActionSnapshot:
		a.snapshot()
	case input.ActionQuit:
		a.quit = true
	}
}

// focusStep moves keyboard focus by step items around the ring
func (a *app) focusStep(step int) {
	n := a.gal.Count()
	if n == 0 {
		return
	}
	cur := a.gal.Interaction().Hovered
	if cur == interaction.NoIndex {
		cur = a.gal.EffectiveIndex()
	}
	next := ((cur+step)%n + n) % n
	a.host.Post(events.EventFocus, &events.FocusPayload{Index: next})
}

func (a *app) activate(i int) {
	if a.gal.Disabled() {
		a.player.Play(audio.CueBuzz)
		return
	}
	a.host.Post(events.EventActivate, &events.ActivatePayload{Index: i})
}

func (a *app) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()
	pressed := btn &^ a.buttons
	a.buttons = btn & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	switch {
	case btn&tcell.WheelDown != 0:
		a.scrollTo(a.host.Scroll() + parameter.WheelStep)
	case btn&tcell.WheelUp != 0:
		a.scrollTo(a.host.Scroll() - parameter.WheelStep)
	}

	if y >= a.height-parameter.StatusBarHeight {
		a.host.Post(events.EventPointerLeave, nil)
		return
	}
	px, py := (float64(x)+0.5)*a.cellW, (float64(y)+0.5)*a.cellH
	a.host.Post(events.EventPointerMove, &events.PointerPayload{X: px, Y: py})

	if pressed&tcell.Button1 != 0 {
		if a.selected >= 0 {
			a.selected = -1
			return
		}
		if i := a.gal.ItemAt(px, py); i >= 0 {
			a.activate(i)
		}
	}
}

// snapshot writes the current frame next to the working directory
func (a *app) snapshot() {
	name := fmt.Sprintf("radial-gallery-%s.webp", a.clk.Now().Format("20060102-150405"))
	path := filepath.Join(".", name)
	if err := snapshot.WriteFile(path, a.gal.Frame(), a.thumbs, snapshot.DefaultOptions()); err != nil {
		log.Printf("snapshot failed: %v", err)
		return
	}
	log.Printf("snapshot written to %s", path)
}
