package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/radial-gallery/clock"
	"github.com/lixenwraith/radial-gallery/config"
	"github.com/lixenwraith/radial-gallery/gallery"
	"github.com/lixenwraith/radial-gallery/parameter"
)

// loadConfig reads the file at path, logs every clamped value and resolves the item list
func loadConfig(path string) (*config.Config, []gallery.Item, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range cfg.Validate() {
		log.Printf("config: %s", w)
	}
	items, err := cfg.GalleryItems()
	if errors.Is(err, config.ErrNoItems) {
		items = config.DemoItems()
	} else if err != nil {
		return nil, nil, err
	}
	if !cfg.Terminal.Thumbnails {
		for i := range items {
			items[i].Image = ""
		}
	}
	return cfg, items, nil
}

// resizeHost reports a viewport of w by vh pixels with the card size for cells of cellW by cellH
func resizeHost(h *gallery.PageHost, w, vh, cellW, cellH float64) {
	h.Resize(w, vh, parameter.CardCols*cellW, parameter.CardRows*cellH)
}

// headless mounts a gallery on a mock clock, sizes it and settles it at progress through the pin window
func headless(cfg *config.Config, items []gallery.Item, w, h, cellW, cellH, progress float64) (*gallery.Gallery, *gallery.PageHost, error) {
	if w <= 0 || h <= 0 {
		return nil, nil, fmt.Errorf("invalid viewport %gx%g", w, h)
	}
	clk := clock.NewMock(time.Unix(0, 0))
	host := gallery.NewPageHost(clk)
	host.SetReducedMotion(cfg.Gallery.ReducedMotion)

	opts := cfg.Options()
	opts.Clock = clk
	g := gallery.New(items, opts)
	g.Mount(host)

	resizeHost(host, w, h, cellW, cellH)
	host.Pump()
	clk.Advance(parameter.PinRefreshDelay)
	host.Pump()

	if win := g.Window(); !g.Static() {
		progress = max(0, min(1, progress))
		host.SetScroll(win.Start + progress*(win.End-win.Start))
	}
	// Two seconds covers the longest settle; nothing may stop before the settle delay has passed
	deadline := clk.Now().Add(2 * time.Second)
	quiet := clk.Now().Add(2 * parameter.SettleDelay)
	for clk.Now().Before(deadline) {
		host.Pump()
		clk.Advance(parameter.FrameInterval)
		if !g.Tick(clk.Now()) && clk.Now().After(quiet) {
			break
		}
	}
	host.Pump()
	return g, host, nil
}
