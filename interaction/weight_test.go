package interaction

import (
	"testing"

	"github.com/lixenwraith/radial-gallery/parameter"
)

func TestWeighExactlyOneActive(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
	}{
		{"base", Context{Count: 8, Effective: 3}},
		{"hovered", Context{Count: 8, Effective: 5, AnyHovered: true}},
		{"compact", Context{Count: 8, Effective: 0, Compact: true}},
		{"disabled", Context{Count: 4, Effective: 1, Disabled: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, hovered := 0, 0
			for i := 0; i < tt.ctx.Count; i++ {
				w := Weigh(i, tt.ctx)
				if w.Active {
					active++
					if w.Z != parameter.ActiveZ {
						t.Errorf("Active item z %d", w.Z)
					}
				} else if w.Z >= parameter.ActiveZ {
					t.Errorf("Inactive item %d drawn on top", i)
				}
				if w.Hovered {
					hovered++
				}
			}
			if active != 1 {
				t.Errorf("Expected one active item, got %d", active)
			}
			if hovered > 1 {
				t.Errorf("Expected at most one hovered item, got %d", hovered)
			}
		})
	}
}

func TestWeighEmphasis(t *testing.T) {
	base := Context{Count: 6, Effective: 2}
	a := Weigh(2, base)
	if a.Scale != parameter.ActiveScale || a.Lift != parameter.ActiveLift || a.Opacity != 1 || a.Blur != 0 {
		t.Errorf("Unexpected active weight %+v", a)
	}
	o := Weigh(0, base)
	if o.Scale != 1 || o.Opacity != parameter.InactiveOpacity || o.Blur != parameter.InactiveBlur || o.Saturation != 1 {
		t.Errorf("Unexpected inactive weight %+v", o)
	}

	hov := base
	hov.AnyHovered = true
	if w := Weigh(0, hov); w.Saturation != parameter.HoverSaturation {
		t.Errorf("Expected desaturation while hovering, got %v", w.Saturation)
	}
	if w := Weigh(2, hov); w.Saturation != 1 || !w.Hovered {
		t.Errorf("Hovered item must keep colour, got %+v", w)
	}

	compact := base
	compact.Compact = true
	if w := Weigh(2, compact); w.Scale != parameter.CompactActiveScale || w.Lift != parameter.CompactActiveLift {
		t.Errorf("Unexpected compact emphasis %+v", w)
	}

	dis := base
	dis.Disabled = true
	if w := Weigh(0, dis); w.Interactive || w.Saturation != parameter.DisabledSaturation {
		t.Errorf("Disabled items must be inert and grey, got %+v", w)
	}
	w := Weigh(dis.Effective, dis)
	if w.Interactive || w.Saturation != parameter.DisabledSaturation {
		t.Errorf("Disabled effective item must be inert and grey, got %+v", w)
	}
	if !w.Active || w.Scale != parameter.ActiveScale || w.Lift != parameter.ActiveLift {
		t.Errorf("Disabled effective item keeps its position emphasis, got %+v", w)
	}
}

func TestCompactCulling(t *testing.T) {
	ctx := Context{Count: 8, Effective: 0, Compact: true}
	visible := map[int]bool{7: true, 0: true, 1: true}
	for i := 0; i < 8; i++ {
		w := Weigh(i, ctx)
		if w.Visible != visible[i] {
			t.Errorf("item %d visible=%v", i, w.Visible)
		}
		if !w.Visible && (w.Interactive || w.Opacity != parameter.CulledOpacity) {
			t.Errorf("Culled item %d still shown: %+v", i, w)
		}
	}
}

func TestRingDistance(t *testing.T) {
	tests := []struct{ a, b, n, want int }{
		{0, 0, 8, 0},
		{0, 7, 8, 1},
		{7, 0, 8, 1},
		{2, 6, 8, 4},
		{1, 5, 7, 3},
		{3, 1, 0, 0},
	}
	for _, tt := range tests {
		if got := RingDistance(tt.a, tt.b, tt.n); got != tt.want {
			t.Errorf("RingDistance(%d,%d,%d) = %d, want %d", tt.a, tt.b, tt.n, got, tt.want)
		}
	}
}

func TestMachineContext(t *testing.T) {
	m := NewMachine(5)
	m.OnSnap(3)
	m.Hover(1)
	c := m.Context(true)
	if c.Effective != 1 || !c.AnyHovered || !c.Compact || c.Count != 5 {
		t.Errorf("Unexpected context %+v", c)
	}
}
