package responsive

import (
	"math"
	"testing"

	"github.com/lixenwraith/radial-gallery/layout"
	"github.com/lixenwraith/radial-gallery/parameter"
)

func TestRadiusSelection(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		coarse  bool
		radius  float64
		compact bool
	}{
		{"wide", 1280, false, 850, false},
		{"at breakpoint", 768, false, 850, false},
		{"narrow", 767, false, 650, true},
		{"wide touch", 1280, true, 650, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(DefaultConfig())
			r.SetViewport(tt.width, 800)
			r.SetDeviceClass(tt.coarse)
			if r.Radius() != tt.radius || r.Compact() != tt.compact {
				t.Errorf("Got radius %v compact %v", r.Radius(), r.Compact())
			}
			g := r.Geometry()
			if g.Diameter != 2*g.Radius {
				t.Errorf("Diameter %v != 2*%v", g.Diameter, g.Radius)
			}
		})
	}
}

func TestChangeReporting(t *testing.T) {
	r := NewResolver(DefaultConfig())
	if c := r.SetViewport(1280, 800); c != 0 {
		t.Errorf("Same size reported change %b", c)
	}
	if c := r.SetViewport(1000, 800); !c.Has(ChangeViewport) || c.Has(ChangeCompact) {
		t.Errorf("Unexpected change %b", c)
	}
	if c := r.SetViewport(500, 800); !c.Has(ChangeViewport | ChangeCompact) {
		t.Errorf("Expected compact flip, got %b", c)
	}
	if c := r.SetDeviceClass(true); c != 0 {
		t.Errorf("Already compact, got %b", c)
	}
	if c := r.SetViewport(math.NaN(), -1); c != 0 {
		t.Errorf("Invalid size reported change %b", c)
	}
	if w, _ := r.Viewport(); w != 500 {
		t.Errorf("Invalid size overwrote width: %v", w)
	}
}

func TestRadiusClamp(t *testing.T) {
	r := NewResolver(Config{BaseRadius: -5, CompactRadius: 0, Breakpoint: 768, VisiblePercentage: 45})
	if r.Radius() != parameter.MinRadius {
		t.Errorf("Expected clamp to %v, got %v", parameter.MinRadius, r.Radius())
	}
}

func TestVisibleFraction(t *testing.T) {
	tests := []struct{ pct, want float64 }{
		{45, 0.45},
		{5, 0.1},
		{150, 1},
		{math.NaN(), 0.45},
	}
	for _, tt := range tests {
		if got := VisibleFraction(tt.pct); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("VisibleFraction(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestVisibleHeight(t *testing.T) {
	r := NewResolver(DefaultConfig())
	r.SetViewport(1280, 900)

	// 2*850*0.45 = 765
	if got := r.VisibleHeight(); math.Abs(got-(765+340)) > 1e-9 {
		t.Errorf("Unmeasured height %v", got)
	}
	if c := r.SetItemSize(200, 300); !c.Has(ChangeItem) {
		t.Error("Expected item change")
	}
	if got := r.VisibleHeight(); math.Abs(got-(765+300+260)) > 1e-9 {
		t.Errorf("Measured height %v", got)
	}
	if c := r.SetItemSize(200, 300); c != 0 {
		t.Error("Same item size reported change")
	}

	r.SetViewport(600, 900)
	if got := r.VisibleHeight(); math.Abs(got-1080) > 1e-9 {
		t.Errorf("Compact measured height %v, want 1080", got)
	}
	r.SetItemSize(0, 0)
	if got := r.VisibleHeight(); math.Abs(got-405) > 1e-9 {
		t.Errorf("Compact fallback height %v, want 405", got)
	}
	if w, h, ok := r.ItemSize(); ok || w != parameter.FallbackItemWidth || h != parameter.FallbackItemHeight {
		t.Errorf("Expected fallback item size, got %v %v %v", w, h, ok)
	}
}

func TestContainerBottomAndSection(t *testing.T) {
	r := NewResolver(DefaultConfig())
	r.SetViewport(1280, 800)
	if got := r.ContainerBottom(); math.Abs(got-(-935)) > 1e-9 {
		t.Errorf("Base bottom %v, want -935", got)
	}
	if got := r.SectionHeight(2500); got != 3300 {
		t.Errorf("Section height %v", got)
	}
	if got := r.SectionHeight(0); got != 800 {
		t.Errorf("Static section height %v", got)
	}

	r.SetViewport(500, 800)
	if got := r.ContainerBottom(); math.Abs(got-(-97.5)) > 1e-9 {
		t.Errorf("Compact bottom %v, want -97.5", got)
	}
	if got := r.SectionHeight(2500); got != 800 {
		t.Errorf("Compact section height %v", got)
	}
}

func TestSetConfigDirection(t *testing.T) {
	r := NewResolver(DefaultConfig())
	cfg := r.Config()
	cfg.Direction = layout.RTL
	r.SetConfig(cfg)
	if r.Geometry().Direction != layout.RTL {
		t.Error("Direction not applied")
	}
	cfg.Breakpoint = 2000
	if c := r.SetConfig(cfg); !c.Has(ChangeCompact) {
		t.Errorf("Breakpoint change should flip compact, got %b", c)
	}
}
