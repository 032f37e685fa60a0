package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBlendModes(t *testing.T) {
	buf := NewRenderBuffer(2, 1)
	red := RGB{200, 0, 0}
	blue := RGB{0, 0, 200}

	buf.SetWithBg(0, 0, 'a', red, red)
	buf.Set(0, 0, 0, blue, blue, BlendAlpha, 0.5, tcell.AttrNone)
	c := buf.Get(0, 0)
	if c.Rune != 'a' {
		t.Errorf("Zero rune must keep existing rune, got %q", c.Rune)
	}
	if c.Bg.R != 100 || c.Bg.B != 100 {
		t.Errorf("Alpha blend: got %+v", c.Bg)
	}

	buf.Set(1, 0, 'b', red, blue, BlendFgOnly, 1, tcell.AttrBold)
	c = buf.Get(1, 0)
	if c.Fg != red || c.Bg != RgbBackground || buf.Touched(1, 0) {
		t.Errorf("Fg-only blend touched background: %+v", c)
	}

	buf.Set(1, 0, 0, red, red, BlendAdd, 1, tcell.AttrNone)
	if got := buf.Get(1, 0).Fg; got.R != 255 {
		t.Errorf("Add should clamp, got %+v", got)
	}

	// Out of bounds is ignored
	buf.Set(5, 5, 'x', red, red, BlendReplace, 1, tcell.AttrNone)
}

func TestClearAndResize(t *testing.T) {
	buf := NewRenderBuffer(3, 3)
	buf.SetWithBg(1, 1, 'x', RgbLabel, RgbArea)
	buf.Clear()
	if c := buf.Get(1, 1); c.Rune != 0 || buf.Touched(1, 1) {
		t.Errorf("Clear left content: %+v", c)
	}

	buf.Resize(5, 2)
	if w, h := buf.Bounds(); w != 5 || h != 2 {
		t.Errorf("Bounds after resize: %dx%d", w, h)
	}
	buf.Resize(-1, 4)
	if w, h := buf.Bounds(); w != 0 || h != 4 {
		t.Errorf("Negative width should clamp to 0, got %dx%d", w, h)
	}
}

func TestText(t *testing.T) {
	buf := NewRenderBuffer(10, 1)
	n := buf.Text(0, 0, "a世b", RgbLabel, tcell.AttrNone)
	if n != 4 {
		t.Errorf("Expected 4 cells for a wide rune, got %d", n)
	}
	if buf.Get(1, 0).Rune != '世' || buf.Get(2, 0).Rune != 0 || buf.Get(3, 0).Rune != 'b' {
		t.Errorf("Wide rune layout wrong: %q %q %q", buf.Get(1, 0).Rune, buf.Get(2, 0).Rune, buf.Get(3, 0).Rune)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ELEGANCE", 10, "ELEGANCE"},
		{"ELEGANCE", 5, "ELEG…"},
		{"ELEGANCE", 0, ""},
		{"世界世界", 5, "世界…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestSaturate(t *testing.T) {
	c := RGB{220, 40, 40}
	if got := Saturate(c, 1); got != c {
		t.Errorf("Full saturation changed color: %+v", got)
	}
	gray := Saturate(c, 0)
	if d := int(gray.R) - int(gray.B); d > 3 || d < -3 {
		t.Errorf("Zero saturation should be near gray, got %+v", gray)
	}
}

func TestSoften(t *testing.T) {
	c := RGB{255, 255, 255}
	if Soften(c, RgbBlack, 0) != c {
		t.Error("Zero radius must not change color")
	}
	if got := Soften(c, RgbBlack, 8); got.R >= 255 {
		t.Errorf("Blur should pull toward backdrop, got %+v", got)
	}
}

type recorder struct {
	name  string
	order *[]string
}

func (r recorder) Render(RenderContext, *RenderBuffer) { *r.order = append(*r.order, r.name) }

type hidden struct{ recorder }

func (hidden) IsVisible() bool { return false }

func TestOrchestratorOrder(t *testing.T) {
	var order []string
	o := NewRenderOrchestrator(nil, 4, 4)
	o.Register(recorder{"ui", &order}, PriorityUI)
	o.Register(recorder{"bg", &order}, PriorityBackground)
	o.Register(recorder{"items1", &order}, PriorityItems)
	o.Register(recorder{"items2", &order}, PriorityItems)
	o.Register(hidden{recorder{"debug", &order}}, PriorityDebug)

	o.RenderFrame(RenderContext{})

	want := []string{"bg", "items1", "items2", "ui"}
	if len(order) != len(want) {
		t.Fatalf("Got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Position %d: got %s, want %s", i, order[i], want[i])
		}
	}
}

func TestFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	buf := NewRenderBuffer(4, 2)
	buf.SetWithBg(1, 0, 'x', RgbLabel, RgbArea)
	buf.FlushToScreen(screen)
	screen.Show()

	r, _, style, _ := screen.GetContent(1, 0)
	if r != 'x' {
		t.Errorf("Expected x, got %q", r)
	}
	fg, bg, _ := style.Decompose()
	if TcellToRGB(fg) != RgbLabel || TcellToRGB(bg) != RgbArea {
		t.Errorf("Style colors lost: %v %v", fg, bg)
	}
	_, _, style, _ = screen.GetContent(0, 1)
	if _, bg, _ := style.Decompose(); TcellToRGB(bg) != RgbBackground {
		t.Errorf("Untouched cell should get the default background, got %v", bg)
	}
}

func TestCellRect(t *testing.T) {
	ctx := RenderContext{ScreenWidth: 10, ScreenHeight: 6, StatusRows: 1, CellWidth: 8, CellHeight: 16}
	x, y, w, h := ctx.CellRect(rect(4, 8, 20, 200))
	if x != 0 || y != 0 || w != 3 || h != 5 {
		t.Errorf("CellRect = %d,%d %dx%d", x, y, w, h)
	}
}
