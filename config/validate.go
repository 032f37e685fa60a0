package config

import (
	"fmt"
	"math"

	"github.com/lixenwraith/radial-gallery/gallery"
	"github.com/lixenwraith/radial-gallery/input"
	"github.com/lixenwraith/radial-gallery/layout"
	"github.com/lixenwraith/radial-gallery/parameter"
	"github.com/lixenwraith/radial-gallery/scroll"
)

// Validate clamps out-of-range values in place and returns one warning per correction
func (c *Config) Validate() []string {
	var warn []string
	fix := func(section, key string, from, to any) {
		warn = append(warn, fmt.Sprintf("[%s] %s: %v out of range, using %v", section, key, from, to))
	}

	g := &c.Gallery
	if g.ScrollDistance < 0 || math.IsNaN(g.ScrollDistance) {
		fix("gallery", "scroll_distance", g.ScrollDistance, 0)
		g.ScrollDistance = 0
	}
	if p := math.Max(parameter.MinVisiblePercentage, math.Min(parameter.MaxVisiblePercentage, g.VisiblePercentage)); p != g.VisiblePercentage {
		fix("gallery", "visible_percentage", g.VisiblePercentage, p)
		g.VisiblePercentage = p
	}
	if g.BaseRadius < parameter.MinRadius {
		fix("gallery", "base_radius", g.BaseRadius, parameter.MinRadius)
		g.BaseRadius = parameter.MinRadius
	}
	if g.CompactRadius < parameter.MinRadius {
		fix("gallery", "compact_radius", g.CompactRadius, parameter.MinRadius)
		g.CompactRadius = parameter.MinRadius
	}
	if g.Breakpoint < 0 {
		fix("gallery", "breakpoint", g.Breakpoint, 0)
		g.Breakpoint = 0
	}
	if _, err := scroll.ParseAnchor(g.PinStart); err != nil {
		fix("gallery", "pin_start", g.PinStart, parameter.DefaultPinStart)
		g.PinStart = parameter.DefaultPinStart
	}
	if d, ok := layout.ParseDirection(g.Direction); !ok {
		fix("gallery", "direction", g.Direction, d)
		g.Direction = d.String()
	}

	if c.Motion.SpringFrequency <= 0 {
		fix("motion", "spring_frequency", c.Motion.SpringFrequency, parameter.SpringFrequency)
		c.Motion.SpringFrequency = parameter.SpringFrequency
	}
	if c.Motion.SpringDamping <= 0 {
		fix("motion", "spring_damping", c.Motion.SpringDamping, parameter.SpringDamping)
		c.Motion.SpringDamping = parameter.SpringDamping
	}

	if v := math.Max(0, math.Min(1, c.Audio.Volume)); v != c.Audio.Volume {
		fix("audio", "volume", c.Audio.Volume, v)
		c.Audio.Volume = v
	}

	if c.Terminal.CellWidth <= 0 {
		fix("terminal", "cell_width", c.Terminal.CellWidth, parameter.DefaultCellWidth)
		c.Terminal.CellWidth = parameter.DefaultCellWidth
	}
	if c.Terminal.CellHeight <= 0 {
		fix("terminal", "cell_height", c.Terminal.CellHeight, parameter.DefaultCellHeight)
		c.Terminal.CellHeight = parameter.DefaultCellHeight
	}
	return warn
}

// Options converts the gallery and motion sections; callbacks, logger and clock are left to the caller
func (c *Config) Options() gallery.Options {
	dir, _ := layout.ParseDirection(c.Gallery.Direction)
	return gallery.Options{
		ScrollDistance:    c.Gallery.ScrollDistance,
		VisiblePercentage: c.Gallery.VisiblePercentage,
		BaseRadius:        c.Gallery.BaseRadius,
		CompactRadius:     c.Gallery.CompactRadius,
		Breakpoint:        c.Gallery.Breakpoint,
		PinStart:          c.Gallery.PinStart,
		Direction:         dir,
		Disabled:          c.Gallery.Disabled,
		ReducedMotion:     c.Gallery.ReducedMotion,
		SpringFrequency:   c.Motion.SpringFrequency,
		SpringDamping:     c.Motion.SpringDamping,
	}
}

// GalleryItems converts [[items]]; returns ErrNoItems when the list is empty
func (c *Config) GalleryItems() ([]gallery.Item, error) {
	if len(c.Items) == 0 {
		return nil, ErrNoItems
	}
	items := make([]gallery.Item, len(c.Items))
	for i, e := range c.Items {
		step := e.Step
		if step == "" {
			step = fmt.Sprintf("%02d", i+1)
		}
		items[i] = gallery.Item{Step: step, Title: e.Title, Image: e.Image}
	}
	return items, nil
}

// KeyTable merges [keys] over the default bindings
// An invalid binding returns the defaults together with the error
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return base, nil
	}
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return base, fmt.Errorf("config keys: %w", err)
	}
	return input.MergeKeyTable(base, override), nil
}

// DemoItems is the built-in item set used when no items are configured
func DemoItems() []gallery.Item {
	titles := []string{"NIKE", "CAFE", "CLOTHING", "SELF-CARE", "JEWELLERY", "BOLD", "ANTICIPATION", "ELEGANCE"}
	items := make([]gallery.Item, len(titles))
	for i, t := range titles {
		items[i] = gallery.Item{Step: fmt.Sprintf("%02d", i+1), Title: t}
	}
	return items
}
