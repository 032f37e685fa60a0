package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

var emptyCell = Cell{Fg: RgbLabel, Bg: RgbBackground}

// RenderBuffer is a compositor backed by a Cell array with dirty tracking
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of bounds returns the empty cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Touched reports whether anything wrote a background at (x, y)
func (b *RenderBuffer) Touched(x, y int) bool {
	return b.inBounds(x, y) && b.touched[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Set composites a cell with specified blend mode
func (b *RenderBuffer) Set(x, y int, mainRune rune, fg, bg RGB, mode BlendMode, alpha float64, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if mainRune != 0 {
		dst.Rune = mainRune
		dst.Attrs = attrs
	}
	if flags&flagBg != 0 {
		dst.Bg = applyOp(op, dst.Bg, bg, alpha)
		b.touched[idx] = true
	}
	if flags&flagFg != 0 {
		dst.Fg = applyOp(op, dst.Fg, fg, alpha)
	}
}

// SetFgOnly writes rune, foreground, and attrs while preserving existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetBgOnly updates the background color while preserving existing rune/foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// FillRect paints the background of a cell rectangle, clearing runes
func (b *RenderBuffer) FillRect(x, y, w, h int, bg RGB) {
	for row := max(y, 0); row < min(y+h, b.height); row++ {
		for col := max(x, 0); col < min(x+w, b.width); col++ {
			b.SetWithBg(col, row, ' ', bg, bg)
		}
	}
}

// ===== TEXT =====

// Text writes s starting at (x, y) over the existing background, one grapheme cluster per cell group
// Returns the number of cells consumed
func (b *RenderBuffer) Text(x, y int, s string, fg RGB, attrs tcell.AttrMask) int {
	col := x
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if width <= 0 {
			continue
		}
		r := []rune(cluster)[0]
		b.SetFgOnly(col, y, r, fg, attrs)
		// Wide runes occupy the next cell; blank it so stale content does not bleed through
		for k := 1; k < width; k++ {
			b.SetFgOnly(col+k, y, 0, fg, attrs)
		}
		col += width
	}
	return col - x
}

// Truncate shortens s to at most width display cells, appending an ellipsis when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// TextWidth returns the display width of s in cells
func TextWidth(s string) int {
	return uniseg.StringWidth(s)
}

// ===== OUTPUT =====

// finalize sets default background to untouched cells before Flush
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = RgbBackground
		}
	}
}

// FlushToScreen writes the buffer to a tcell screen; the caller calls Show
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Rune == 0 && x > 0 && row[x-1].Rune != 0 && runewidth.RuneWidth(row[x-1].Rune) > 1 {
				// Continuation of a wide rune
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(RGBToTcell(c.Fg)).
				Background(RGBToTcell(c.Bg)).
				Attributes(c.Attrs)
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
