package main

import (
	"math"
	"testing"

	"github.com/lixenwraith/radial-gallery/gallery"
	"github.com/lixenwraith/radial-gallery/interaction"
	"github.com/lixenwraith/radial-gallery/render"
)

func TestCardGeoM(t *testing.T) {
	v := gallery.ItemView{X: 300, Y: 200, Width: 100, Height: 50, Scale: 2, Rotation: 90}

	tests := []struct {
		name   string
		sx, sy float64
		wx, wy float64
	}{
		{"center", 50, 25, 300, 200},
		// A 90 degree turn maps the texture's right edge midpoint below the center
		{"right edge", 100, 25, 300, 300},
		{"top edge", 50, 0, 350, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := cardGeoM(v, 100, 50, 0)
			x, y := m.Apply(tt.sx, tt.sy)
			if math.Abs(x-tt.wx) > 1e-9 || math.Abs(y-tt.wy) > 1e-9 {
				t.Errorf("Apply(%v,%v) = (%v,%v), want (%v,%v)", tt.sx, tt.sy, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestCardGeoMPadding(t *testing.T) {
	v := gallery.ItemView{X: 0, Y: 0, Width: 10, Height: 10, Scale: 1}
	m := cardGeoM(v, 1, 1, 3)
	x, y := m.Apply(1, 1)
	if x != 8 || y != 8 {
		t.Errorf("padded corner = (%v,%v), want (8,8)", x, y)
	}
}

func TestEdgeColor(t *testing.T) {
	tests := []struct {
		w    interaction.Weight
		want render.RGB
		ok   bool
	}{
		{interaction.Weight{Hovered: true, Active: true}, render.RgbHoverEdge, true},
		{interaction.Weight{Active: true}, render.RgbActiveEdge, true},
		{interaction.Weight{}, render.RgbCardEdge, false},
	}
	for _, tt := range tests {
		got, ok := edgeColor(tt.w)
		if got != tt.want || ok != tt.ok {
			t.Errorf("edgeColor(%+v) = %v,%v want %v,%v", tt.w, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"ELEGANCE", 18, "ELEGANCE"},
		{"ANTICIPATION", 6, "ANTIC…"},
		{"ab", 0, "…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
