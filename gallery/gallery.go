// Package gallery composes layout, responsive sizing, scroll binding, snapping and interaction
// into one circular scroll-driven gallery driven by a host event loop
package gallery

import (
	"log"
	"math"
	"time"

	"github.com/lixenwraith/radial-gallery/clock"
	"github.com/lixenwraith/radial-gallery/events"
	"github.com/lixenwraith/radial-gallery/interaction"
	"github.com/lixenwraith/radial-gallery/layout"
	"github.com/lixenwraith/radial-gallery/motion"
	"github.com/lixenwraith/radial-gallery/parameter"
	"github.com/lixenwraith/radial-gallery/responsive"
	"github.com/lixenwraith/radial-gallery/scroll"
	"github.com/lixenwraith/radial-gallery/snap"
	"github.com/lixenwraith/radial-gallery/status"
)

// Item is caller-owned content placed on the ring; the gallery never mutates it
type Item struct {
	Step  string
	Title string
	Image string

	// Data is opaque to the gallery and passed through to renderers
	Data any
}

// snapshot is the layout captured at the last relayout
type snapshot struct {
	geom      layout.Geometry
	compact   bool
	viewportW float64
	viewportH float64
	visibleH  float64
	bottom    float64
	sectionH  float64
	itemW     float64
	itemH     float64
}

// Gallery is one mounted gallery instance
// All methods must be called from the host loop goroutine
type Gallery struct {
	opts   Options
	anchor scroll.Anchor
	log    *log.Logger
	clk    clock.Clock

	items []Item

	resolver *responsive.Resolver
	binder   *scroll.Binder
	snapper  *snap.Resolver
	machine  *interaction.Machine
	field    *motion.Field
	settle   motion.Tween
	metrics  *status.GalleryMetrics

	host      Host
	subs      []*events.Subscription
	relayout  *responsive.Debouncer
	pinDelay  *responsive.Debouncer
	layout    snapshot
	reduced   bool
	degraded  bool
	disposed  bool
	scrollPos float64
	live      scroll.Rotation
	displayed float64
	settling  bool
	synthetic float64
	hasSynth  bool
	lastInput time.Time
	lastTick  time.Time
}

// New creates a gallery over items; invalid options are clamped and logged, never fatal
func New(items []Item, opts Options) *Gallery {
	opts, anchor := opts.normalize()
	g := &Gallery{
		opts:     opts,
		anchor:   anchor,
		log:      opts.Logger,
		clk:      opts.Clock,
		resolver: responsive.NewResolver(opts.responsiveConfig()),
		field:    opts.springField(),
		metrics:  status.NewGalleryMetrics(opts.Metrics),
		reduced:  opts.ReducedMotion,
	}
	g.items = append([]Item(nil), items...)
	n := len(g.items)
	g.snapper = snap.NewResolver(n, snap.PolicyFor(g.resolver.Compact()))
	g.machine = interaction.NewMachine(n)
	g.machine.SetDisabled(opts.Disabled)
	g.field.Resize(n)
	g.rebuildBinder()
	g.applyLayout()
	g.refreshPin()
	g.retarget()
	return g
}

// Mount subscribes to host signals; registration failures degrade to a static layout
func (g *Gallery) Mount(host Host) {
	if g.disposed || g.host != nil || host == nil {
		return
	}
	g.host = host
	if host.PrefersReducedMotion() && !g.reduced {
		g.reduced = true
		g.rebuildBinder()
	}

	g.relayout = responsive.NewDebouncer(g.clk, parameter.ResizeDebounce, func() {
		host.Post(events.EventRelayout, nil)
	})
	g.pinDelay = responsive.NewDebouncer(g.clk, parameter.PinRefreshDelay, func() {
		host.Post(events.EventPinRefresh, nil)
	})

	groups := []struct {
		name  string
		types []events.EventType
	}{
		{"scroll", []events.EventType{events.EventScroll}},
		{"pointer", []events.EventType{
			events.EventPointerMove, events.EventPointerLeave,
			events.EventFocus, events.EventBlur, events.EventActivate,
		}},
		{"resize", []events.EventType{
			events.EventViewportResize, events.EventItemResize, events.EventDeviceClass,
			events.EventRelayout, events.EventPinRefresh,
		}},
	}
	for _, grp := range groups {
		sub, err := host.Subscribe(events.HandlerFunc{Types: grp.types, Fn: g.HandleEvent})
		if err != nil {
			g.log.Printf("gallery: %s subscription failed: %v", grp.name, err)
			if grp.name == "scroll" {
				g.degraded = true
				g.rebuildBinder()
			}
			continue
		}
		g.subs = append(g.subs, sub)
	}
	g.refreshPin()
}

// Dispose releases every subscription and pending timer; later events are ignored
func (g *Gallery) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	for _, s := range g.subs {
		s.Unsubscribe()
	}
	g.subs = nil
	if g.relayout != nil {
		g.relayout.Stop()
	}
	if g.pinDelay != nil {
		g.pinDelay.Stop()
	}
}

// Disposed reports whether Dispose was called
func (g *Gallery) Disposed() bool { return g.disposed }

// Degraded reports whether scroll binding was lost to a host failure
func (g *Gallery) Degraded() bool { return g.degraded }

// Static reports whether the ring is not scroll-bound
func (g *Gallery) Static() bool { return g.binder == nil }

// Count returns the number of items
func (g *Gallery) Count() int { return len(g.items) }

// Items returns the current items
func (g *Gallery) Items() []Item { return g.items }

// SnapIndex returns the scroll-derived active index
func (g *Gallery) SnapIndex() int { return g.snapper.Index() }

// EffectiveIndex returns the hovered item if engaged, else the snap index
func (g *Gallery) EffectiveIndex() int { return g.machine.EffectiveIndex() }

// Interaction returns the interaction state
func (g *Gallery) Interaction() interaction.State { return g.machine.State() }

// Mode returns the interaction mode
func (g *Gallery) Mode() interaction.Mode { return g.machine.Mode() }

// Rotation returns the live scroll-derived rotation
func (g *Gallery) Rotation() scroll.Rotation { return g.live }

// Compact reports whether the compact layout is in effect
func (g *Gallery) Compact() bool { return g.layout.compact }

// Geometry returns the applied ring geometry
func (g *Gallery) Geometry() layout.Geometry { return g.layout.geom }

// Window returns the current pin window in page pixels
func (g *Gallery) Window() scroll.Window { return g.binder.Window() }

// Disabled reports whether interaction is switched off
func (g *Gallery) Disabled() bool { return g.opts.Disabled }

// SetDisabled switches interaction off or on; scroll keeps rotating either way
func (g *Gallery) SetDisabled(v bool) {
	if g.disposed || g.opts.Disabled == v {
		return
	}
	g.opts.Disabled = v
	g.machine.SetDisabled(v)
	g.retarget()
	g.publish()
}

// ScrollFor returns the page scroll position that lands the ring on item i
// ok is false for a static ring
func (g *Gallery) ScrollFor(i int) (pos float64, ok bool) {
	if g.binder == nil || len(g.items) < 2 {
		return 0, false
	}
	i = max(0, min(i, len(g.items)-1))
	w := g.binder.Window()
	return w.Start + float64(i)*snap.Step(len(g.items))*g.binder.Binding().Budget, true
}

// SetItems replaces the items; the count change re-measures the pin window after a delay
func (g *Gallery) SetItems(items []Item) {
	if g.disposed {
		return
	}
	prev := len(g.items)
	g.items = append(g.items[:0:0], items...)
	n := len(g.items)
	if n == prev {
		return
	}
	g.snapper.Resize(n)
	g.machine.SetCount(n)
	g.field.Resize(n)
	g.retarget()
	if (prev > 1) != (n > 1) {
		g.rebuildBinder()
		g.refreshPin()
	} else {
		g.binder.SetCount(n)
	}
	g.schedule(g.pinDelay, g.refreshPin)
}

// EventTypes lists every signal the gallery consumes
func (g *Gallery) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventScroll, events.EventPointerMove, events.EventPointerLeave,
		events.EventFocus, events.EventBlur, events.EventActivate,
		events.EventViewportResize, events.EventItemResize, events.EventDeviceClass,
		events.EventRelayout, events.EventPinRefresh,
	}
}

// HandleEvent applies one host signal synchronously
func (g *Gallery) HandleEvent(ev events.Event) {
	if g.disposed {
		return
	}
	switch ev.Type {
	case events.EventScroll:
		if p, ok := ev.Payload.(*events.ScrollPayload); ok {
			g.onScroll(p.Position, ev.Timestamp)
		}
	case events.EventPointerMove:
		if p, ok := ev.Payload.(*events.PointerPayload); ok {
			g.onPointer(p.X, p.Y)
		}
	case events.EventPointerLeave:
		g.metrics.PointerEvents.Add(1)
		g.machine.Leave()
	case events.EventFocus:
		if p, ok := ev.Payload.(*events.FocusPayload); ok {
			g.machine.Focus(p.Index)
		}
	case events.EventBlur:
		g.machine.Blur()
	case events.EventActivate:
		idx := -1
		if p, ok := ev.Payload.(*events.ActivatePayload); ok {
			idx = p.Index
		}
		g.Activate(idx)
	case events.EventViewportResize:
		if p, ok := ev.Payload.(*events.ViewportPayload); ok {
			g.onViewport(p.Width, p.Height)
		}
	case events.EventItemResize:
		if p, ok := ev.Payload.(*events.ItemSizePayload); ok {
			if g.resolver.SetItemSize(p.Width, p.Height).Has(responsive.ChangeItem) {
				g.applyLayout()
				g.refreshPin()
			}
		}
	case events.EventDeviceClass:
		if p, ok := ev.Payload.(*events.DeviceClassPayload); ok {
			if g.resolver.SetDeviceClass(p.Coarse) != 0 {
				g.schedule(g.relayout, g.onRelayout)
			}
		}
	case events.EventRelayout:
		g.onRelayout()
	case events.EventPinRefresh:
		g.refreshPin()
	}
	g.publish()
}

// Activate selects item i, or the effective item when i < 0
// Disabled galleries and hidden items never reach OnItemSelect
func (g *Gallery) Activate(i int) {
	if g.disposed || g.opts.Disabled || len(g.items) == 0 {
		return
	}
	if i < 0 {
		i = g.machine.EffectiveIndex()
	}
	if i >= len(g.items) {
		return
	}
	if !interaction.Weigh(i, g.machine.Context(g.layout.compact)).Interactive {
		return
	}
	g.metrics.Selections.Add(1)
	if g.opts.OnItemSelect != nil {
		g.opts.OnItemSelect(i)
	}
}

func (g *Gallery) onScroll(pos float64, at time.Time) {
	g.metrics.ScrollSamples.Add(1)
	g.scrollPos = pos
	if g.binder == nil {
		return
	}
	g.live = g.binder.Sample(pos)

	self := g.hasSynth && math.Abs(pos-g.synthetic) < parameter.SyntheticScrollTolerance
	if !self {
		g.hasSynth = false
		g.settling = false
		g.settle.Jump(g.live.Progress)
		g.displayed = g.live.Progress
		if at.IsZero() {
			at = g.clk.Now()
		}
		g.lastInput = at
	}
	g.stepSnap()
}

func (g *Gallery) stepSnap() {
	if g.binder == nil || g.reduced {
		return
	}
	r := g.snapper.Update(g.live.Progress)
	if !r.Changed {
		return
	}
	g.metrics.SnapSteps.Add(1)
	g.machine.OnSnap(r.Index)
	if g.opts.OnSnap != nil {
		g.opts.OnSnap(r.Index)
	}
}

func (g *Gallery) onPointer(x, y float64) {
	g.metrics.PointerEvents.Add(1)
	if g.opts.Disabled {
		return
	}
	if !g.stageContains(y) {
		if g.machine.State().PointerInside {
			g.machine.Leave()
		}
		return
	}
	g.machine.PointerEnter()
	if i := g.ItemAt(x, y); i >= 0 {
		g.machine.Hover(i)
	}
}

func (g *Gallery) onViewport(w, h float64) {
	c := g.resolver.SetViewport(w, h)
	if c == 0 {
		return
	}
	g.schedule(g.relayout, g.onRelayout)
	g.schedule(g.pinDelay, g.refreshPin)
}

func (g *Gallery) onRelayout() {
	g.metrics.Relayouts.Add(1)
	prev := g.layout.geom
	g.applyLayout()
	if g.layout.geom != prev {
		g.schedule(g.pinDelay, g.refreshPin)
	}
}

// applyLayout captures the resolver's current outputs
func (g *Gallery) applyLayout() {
	w, h := g.resolver.Viewport()
	iw, ih, _ := g.resolver.ItemSize()
	budget := 0.0
	if g.binder != nil {
		budget = g.binder.Binding().Budget
	}
	compact := g.resolver.Compact()
	g.snapper.SetPolicy(snap.PolicyFor(compact))
	g.layout = snapshot{
		geom:      g.resolver.Geometry(),
		compact:   compact,
		viewportW: w,
		viewportH: h,
		visibleH:  g.resolver.VisibleHeight(),
		bottom:    g.resolver.ContainerBottom(),
		sectionH:  g.resolver.SectionHeight(budget),
		itemW:     iw,
		itemH:     ih,
	}
	g.binder.Invalidate()
}

// rebuildBinder creates or drops the scroll binding for the current count and mode
func (g *Gallery) rebuildBinder() {
	if g.reduced || g.degraded {
		g.binder = nil
	} else {
		g.binder = scroll.NewBinder(len(g.items), g.opts.ScrollDistance, g.anchor)
		g.binder.SetDirection(g.opts.Direction)
		// Seed with the current position so the next Refresh replays it
		g.live = g.binder.Sample(g.scrollPos)
	}
	if g.binder == nil {
		g.live = scroll.Rotation{}
		g.settle.Jump(0)
		g.displayed = 0
		g.settling = false
	}
	g.resolverSection()
}

func (g *Gallery) resolverSection() {
	budget := 0.0
	if g.binder != nil {
		budget = g.binder.Binding().Budget
	}
	g.layout.sectionH = g.resolver.SectionHeight(budget)
}

// refreshPin re-measures the pin window and replays the last scroll sample against it
func (g *Gallery) refreshPin() {
	if g.binder == nil {
		return
	}
	g.metrics.PinRefreshes.Add(1)
	g.live = g.binder.Refresh(scroll.Measure{
		ContainerTop:    g.containerTop(),
		ContainerHeight: g.layout.viewportH,
		ViewportHeight:  g.layout.viewportH,
	})
	if !g.settling {
		g.settle.Jump(g.live.Progress)
		g.displayed = g.live.Progress
	}
	g.stepSnap()
}

func (g *Gallery) containerTop() float64 {
	if m, ok := g.host.(Measurer); ok {
		return m.ContainerTop()
	}
	return 0
}

// schedule defers fn through d when mounted, or runs it now on a bare gallery
func (g *Gallery) schedule(d *responsive.Debouncer, fn func()) {
	if d == nil {
		fn()
		return
	}
	d.Trigger()
}

// Tick advances animation to now; returns true while anything is still moving
func (g *Gallery) Tick(now time.Time) bool {
	if g.disposed {
		return false
	}
	var dt time.Duration
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick)
	}
	g.lastTick = now

	if g.binder.Stale() {
		g.refreshPin()
	}

	lagging := false
	if g.binder != nil && !g.reduced {
		// Big jumps walk through every index, one per frame
		if g.snapper.Lagging(g.live.Progress) {
			g.stepSnap()
			lagging = g.snapper.Lagging(g.live.Progress)
		}
		g.tickSettle(now, lagging)
	}

	g.retarget()
	moving := false
	if g.reduced {
		g.field.Snap()
	} else {
		moving = g.field.Advance(dt)
	}
	g.publish()
	return moving || lagging || g.settling
}

func (g *Gallery) tickSettle(now time.Time, lagging bool) {
	if !g.settling {
		if lagging || g.lastInput.IsZero() || now.Sub(g.lastInput) < parameter.SettleDelay {
			return
		}
		target := g.snapper.Target()
		if math.Abs(target-g.settle.Target()) < 1e-9 {
			return
		}
		steps := (target - g.displayed) / snap.Step(len(g.items))
		compact := g.layout.compact
		g.settle.Retarget(now, target, motion.SettleBounds(compact).Duration(steps), motion.SettleEase(compact))
		g.settling = true
	}

	g.displayed = g.settle.Value(now)
	if setter, ok := g.host.(ScrollSetter); ok {
		w := g.binder.Window()
		pos := w.Start + g.displayed*g.binder.Binding().Budget
		g.synthetic, g.hasSynth = pos, true
		setter.SetScroll(pos)
	}
	if g.settle.Done(now) {
		g.settling = false
	}
}

// retarget feeds the current emphasis weights to the springs
func (g *Gallery) retarget() {
	ctx := g.machine.Context(g.layout.compact)
	for i := range g.items {
		w := interaction.Weigh(i, ctx)
		g.field.SetTarget(i, motion.Values{
			motion.ChannelScale:      w.Scale,
			motion.ChannelOpacity:    w.Opacity,
			motion.ChannelLift:       w.Lift,
			motion.ChannelBlur:       w.Blur,
			motion.ChannelSaturation: w.Saturation,
		})
	}
}

// publish mirrors state into the metrics registry
func (g *Gallery) publish() {
	g.metrics.SnapIndex.Store(int64(g.snapper.Index()))
	g.metrics.Effective.Store(int64(g.machine.EffectiveIndex()))
	g.metrics.Progress.Set(g.live.Progress)
	g.metrics.Degrees.Set(g.live.Degrees)
	g.metrics.Pinned.Store(g.binder.Binding().Pinned)
	g.metrics.Compact.Store(g.layout.compact)
	g.metrics.Mode.Store(g.machine.Mode().String())
	if lh, ok := g.host.(*LoopHost); ok {
		g.metrics.Dropped.Store(int64(lh.Queue.Dropped()))
	}
}
