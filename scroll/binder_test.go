package scroll

import (
	"math"
	"testing"

	"github.com/lixenwraith/radial-gallery/layout"
)

func TestNewBinderDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		budget float64
	}{
		{"empty", 0, 2000},
		{"single", 1, 2000},
		{"zero budget", 8, 0},
		{"negative budget", 8, -10},
		{"nan budget", 8, math.NaN()},
		{"inf budget", 8, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBinder(tt.n, tt.budget, TopTop)
			if b != nil {
				t.Fatalf("Expected nil binder")
			}
			// Nil binder is a static layout
			if r := b.Sample(500); r.Progress != 0 || r.Degrees != 0 {
				t.Errorf("Expected static rotation, got %+v", r)
			}
			if b.Binding().Pinned {
				t.Error("Nil binder reported pinned")
			}
			b.Invalidate()
			b.SetCount(3)
			if b.Stale() {
				t.Error("Nil binder reported stale")
			}
		})
	}
}

func TestScenarioEightItems(t *testing.T) {
	b := NewBinder(8, 2000, TopTop)
	b.Refresh(Measure{ContainerTop: 0, ContainerHeight: 800, ViewportHeight: 800})

	tests := []struct {
		pos      float64
		progress float64
		pinned   bool
	}{
		{0, 0, true},
		{1000, 0.5, true},
		{2000, 1, true},
		{2500, 1, false},
	}
	for _, tt := range tests {
		r := b.Sample(tt.pos)
		if math.Abs(r.Progress-tt.progress) > 1e-12 {
			t.Errorf("pos=%v: progress %v, want %v", tt.pos, r.Progress, tt.progress)
		}
		if b.Binding().Pinned != tt.pinned {
			t.Errorf("pos=%v: pinned %v, want %v", tt.pos, b.Binding().Pinned, tt.pinned)
		}
	}

	r := b.Sample(2000)
	if want := -360.0 * 7 / 8; math.Abs(r.Degrees-want) > 1e-9 {
		t.Errorf("Full traversal rotation %v, want %v", r.Degrees, want)
	}
}

func TestWindowFromAnchor(t *testing.T) {
	tests := []struct {
		expr  string
		start float64
	}{
		{"top top", 600},
		{"top center", 200},
		{"center center", 600},
		{"top bottom", -200},
		{"top 100px", 500},
	}
	for _, tt := range tests {
		a, err := ParseAnchor(tt.expr)
		if err != nil {
			t.Fatal(err)
		}
		b := NewBinder(4, 1000, a)
		b.Refresh(Measure{ContainerTop: 600, ContainerHeight: 800, ViewportHeight: 800})
		w := b.Window()
		if w.Start != tt.start || w.End != tt.start+1000 {
			t.Errorf("%s: window %+v, want start %v", tt.expr, w, tt.start)
		}
	}
}

func TestReversibleAndUnpinAboveTrigger(t *testing.T) {
	b := NewBinder(5, 1000, TopTop)
	b.Refresh(Measure{ContainerTop: 300, ContainerHeight: 800, ViewportHeight: 800})

	up := b.Sample(800).Progress
	back := b.Sample(550).Progress
	if !(back < up) {
		t.Errorf("Scrolling back did not reduce progress: %v -> %v", up, back)
	}
	if again := b.Sample(800).Progress; again != up {
		t.Errorf("Progress not a pure function of position: %v vs %v", again, up)
	}

	r := b.Sample(100)
	if r.Progress != 0 || b.Binding().Pinned {
		t.Errorf("Above trigger: progress %v pinned %v", r.Progress, b.Binding().Pinned)
	}
}

func TestRefreshReevaluatesLastSample(t *testing.T) {
	b := NewBinder(5, 1000, TopTop)
	if !b.Stale() {
		t.Error("New binder should start stale")
	}
	b.Refresh(Measure{ContainerTop: 0, ContainerHeight: 800, ViewportHeight: 800})
	b.Sample(500)

	b.Invalidate()
	if !b.Stale() {
		t.Error("Expected stale after Invalidate")
	}
	// Container moved down by 250: same scroll position is now a quarter in
	r := b.Refresh(Measure{ContainerTop: 250, ContainerHeight: 800, ViewportHeight: 800})
	if math.Abs(r.Progress-0.25) > 1e-12 {
		t.Errorf("Expected progress 0.25 after refresh, got %v", r.Progress)
	}
	if b.Stale() {
		t.Error("Expected fresh window after Refresh")
	}
}

func TestPinnedOffset(t *testing.T) {
	b := NewBinder(3, 1000, TopTop)
	b.Refresh(Measure{ContainerTop: 200, ContainerHeight: 600, ViewportHeight: 600})
	tests := []struct{ pos, want float64 }{
		{0, 0},
		{700, 500},
		{5000, 1000},
	}
	for _, tt := range tests {
		if got := b.PinnedOffset(tt.pos); got != tt.want {
			t.Errorf("PinnedOffset(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestSetCountInvalidates(t *testing.T) {
	b := NewBinder(3, 1000, TopTop)
	b.Refresh(Measure{ViewportHeight: 600, ContainerHeight: 600})
	b.SetCount(3)
	if b.Stale() {
		t.Error("Same count should not invalidate")
	}
	b.SetCount(6)
	if !b.Stale() {
		t.Error("Count change should invalidate")
	}
	b.Refresh(Measure{ViewportHeight: 600, ContainerHeight: 600})
	if got := b.Sample(1000).Degrees; math.Abs(got+300) > 1e-9 {
		t.Errorf("Expected -300 degrees for 6 items at full progress, got %v", got)
	}
}

func TestDegrees(t *testing.T) {
	if Degrees(1, 1) != 0 || Degrees(0, 0.5) != 0 {
		t.Error("Degenerate counts must not rotate")
	}
	if got := Degrees(4, 0.5); got != -135 {
		t.Errorf("Degrees(4,.5) = %v, want -135", got)
	}
}

func TestRTLMirrorsRotation(t *testing.T) {
	ltr := NewBinder(4, 1000, TopTop)
	rtl := NewBinder(4, 1000, TopTop)
	rtl.SetDirection(layout.RTL)
	m := Measure{ContainerHeight: 600, ViewportHeight: 600}
	ltr.Refresh(m)
	rtl.Refresh(m)

	a, b := ltr.Sample(400), rtl.Sample(400)
	if a.Progress != b.Progress {
		t.Errorf("Direction changed progress: %v vs %v", a.Progress, b.Progress)
	}
	if a.Degrees >= 0 || b.Degrees != -a.Degrees {
		t.Errorf("Expected mirrored degrees, got ltr=%v rtl=%v", a.Degrees, b.Degrees)
	}
}
