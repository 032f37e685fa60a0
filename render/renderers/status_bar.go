package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/radial-gallery/interaction"
	"github.com/lixenwraith/radial-gallery/render"
)

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.StatusRows <= 0 {
		return
	}
	y := ctx.ScreenHeight - ctx.StatusRows
	buf.FillRect(0, y, ctx.ScreenWidth, ctx.StatusRows, render.RgbStatusBg)

	f := ctx.Frame
	x := 0

	// Mode pill
	modeText, modeBg := modeBadge(f.Mode, f.Disabled)
	x += s.pill(buf, x, y, modeText, modeBg)

	n := len(f.Items)
	parts := []string{
		fmt.Sprintf("%d/%d", f.SnapIndex+1, n),
		fmt.Sprintf("%3.0f%%", f.Rotation.Progress*100),
		fmt.Sprintf("%+.0f°", f.Rotation.Degrees),
	}
	if n == 0 {
		parts[0] = "0/0"
	}
	if f.Effective >= 0 && f.Effective < n && f.Effective != f.SnapIndex {
		parts = append(parts, fmt.Sprintf("→%d", f.Effective+1))
	}
	x += 1 + buf.Text(x+1, y, strings.Join(parts, "  "), render.RgbStatusText, tcell.AttrNone)

	if f.Pinned {
		x += 1 + s.pill(buf, x+1, y, "PIN", render.RgbPinned)
	}
	if f.Compact {
		x += 1 + s.pill(buf, x+1, y, "COMPACT", render.RgbModeIdle)
	}
	if f.Static {
		x += 1 + s.pill(buf, x+1, y, "STATIC", render.RgbModeIdle)
	}
	if f.Degraded {
		x += 1 + s.pill(buf, x+1, y, "DEGRADED", render.RgbModeDisabled)
	}

	// Right-aligned audio state
	audio := "♪"
	fg := render.RgbModeScroll
	if ctx.Muted {
		audio = "♪ off"
		fg = render.RgbStatusKey
	}
	rx := ctx.ScreenWidth - render.TextWidth(audio) - 1
	if rx > x {
		buf.Text(rx, y, audio, fg, tcell.AttrNone)
	}
}

func (s *StatusBarRenderer) pill(buf *render.RenderBuffer, x, y int, text string, bg render.RGB) int {
	label := " " + text + " "
	w := render.TextWidth(label)
	buf.FillRect(x, y, w, 1, bg)
	buf.Text(x, y, label, render.RgbStatusBg, tcell.AttrBold)
	return w
}

func modeBadge(m interaction.Mode, disabled bool) (string, render.RGB) {
	if disabled {
		return "DISABLED", render.RgbModeDisabled
	}
	switch m {
	case interaction.ScrollDriven:
		return "SCROLL", render.RgbModeScroll
	case interaction.PointerOverride:
		return "POINTER", render.RgbModePointer
	}
	return "IDLE", render.RgbModeIdle
}
