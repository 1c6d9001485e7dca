package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Cell is one screen position
// A zero Rune on a touched cell renders as a space; wide runes mark their
// right half as a continuation the flush skips
type Cell struct {
	Rune  rune
	Fg    colorful.Color
	Bg    colorful.Color
	Attrs tcell.AttrMask

	continuation bool
}

// RenderBuffer is a compositor backed by a cell array with dirty tracking
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
	b.cells[0] = Cell{Fg: RgbHUD, Bg: RgbBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; out of bounds yields the zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetFgOnly writes rune, foreground and attrs while preserving the background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg colorful.Color, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
	dst.continuation = false

	// Orphaned right half of a wide rune
	if x+1 < b.width && b.cells[idx+1].continuation {
		b.cells[idx+1].continuation = false
		b.cells[idx+1].Rune = 0
	}
}

// SetBgOnly updates the background while preserving rune and foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// FillPanel blanks a rectangle opaquely, hiding whatever lower layers drew
func (b *RenderBuffer) FillPanel(x, y, w, h int, fg, bg colorful.Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetWithBg(col, row, ' ', fg, bg)
		}
	}
}

// FillBg paints a rectangle background, clipped to the buffer
func (b *RenderBuffer) FillBg(x, y, w, h int, bg colorful.Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetBgOnly(col, row, bg)
		}
	}
}

// DrawText writes s from x keeping backgrounds; returns the columns used
// Wide runes take two columns and are dropped whole when clipped at the right edge;
// one cut at the left edge leaves a blank in column 0
func (b *RenderBuffer) DrawText(x, y int, s string, fg colorful.Color, attrs tcell.AttrMask) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if w == 2 && col+1 >= b.width {
			break
		}
		if w == 2 && col < 0 {
			// Left half clipped: blank the visible half so no stale cell survives
			b.SetFgOnly(col+1, y, ' ', fg, attrs)
			col += w
			continue
		}
		b.SetFgOnly(col, y, r, fg, attrs)
		if w == 2 && b.inBounds(col+1, y) {
			next := &b.cells[y*b.width+col+1]
			next.Rune = 0
			next.continuation = true
		}
		col += w
	}
	return col - x
}

// DrawTextCentered centers s on column cx
func (b *RenderBuffer) DrawTextCentered(cx, y int, s string, fg colorful.Color, attrs tcell.AttrMask) int {
	return b.DrawText(cx-runewidth.StringWidth(s)/2, y, s, fg, attrs)
}

// ===== OUTPUT =====

// FlushToScreen writes the buffer to the screen and shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.continuation {
				continue
			}
			bg := RgbBackground
			if b.touched[y*b.width+x] {
				bg = c.Bg
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(ToTcell(c.Fg)).
				Background(ToTcell(bg)).
				Attributes(c.Attrs)
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
