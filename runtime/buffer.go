package runtime

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/odvcencio/furry-tabs/backend"
)

// Cell represents a single character cell in the buffer.
type Cell = backend.Cell

// span is the dirty column range [start, end) of one row.
type span struct {
	start, end int
}

// Buffer is a 2D grid of cells that widgets render into.
// Changed cells are tracked per row so the app flushes only dirty spans.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	dirty      []span
	dirtyCount int
	dirtyAll   bool
}

// NewBuffer creates a buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize changes the buffer dimensions, preserving overlapping content.
func (b *Buffer) Resize(w, h int) {
	w, h = max(0, w), max(0, h)
	if w == b.width && h == b.height && b.cells != nil {
		return
	}
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = Cell{Rune: ' '}
	}
	for y := 0; y < min(h, b.height); y++ {
		copy(cells[y*w:y*w+min(w, b.width)], b.cells[y*b.width:])
	}
	b.cells = cells
	b.width, b.height = w, h
	b.dirty = make([]span, h)
	b.MarkAllDirty()
}

// Clear fills the buffer with spaces in the default style.
func (b *Buffer) Clear() {
	b.Fill(Rect{Width: b.width, Height: b.height}, ' ', backend.DefaultStyle())
}

// Get returns the cell at (x, y), or a blank cell when out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune with style at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer) Set(x, y int, r rune, style backend.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.put(x, y, Cell{Rune: r, Style: style})
}

// SetString writes s starting at (x, y), clipped to the buffer, and returns
// the number of columns consumed. Wide runes take two cells; a wide rune that
// would straddle the right edge is replaced by a space.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= b.width {
			break
		}
		if w == 2 && col+1 >= b.width {
			b.Set(col, y, ' ', style)
			col++
			break
		}
		b.Set(col, y, r, style)
		if w == 2 {
			b.Set(col+1, y, 0, style)
		}
		col += w
	}
	return col - x
}

// Fill fills a region with a rune and style.
func (b *Buffer) Fill(r Rect, ch rune, style backend.Style) {
	clipped := r.Intersection(Rect{Width: b.width, Height: b.height})
	cell := Cell{Rune: ch, Style: style}
	for y := clipped.Y; y < clipped.Y+clipped.Height; y++ {
		for x := clipped.X; x < clipped.X+clipped.Width; x++ {
			b.put(x, y, cell)
		}
	}
}

// Restyle replaces the style of the cell at (x, y) with fn's result.
func (b *Buffer) Restyle(x, y int, fn func(backend.Style) backend.Style) {
	if !b.inBounds(x, y) || fn == nil {
		return
	}
	cell := b.cells[y*b.width+x]
	cell.Style = fn(cell.Style)
	b.put(x, y, cell)
}

// RowString returns row y as text, skipping wide-rune continuation cells.
func (b *Buffer) RowString(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, cell := range b.cells[y*b.width : (y+1)*b.width] {
		if cell.Rune != 0 {
			sb.WriteRune(cell.Rune)
		}
	}
	return sb.String()
}

// Cells returns the underlying row-major cell slice.
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// MarkAllDirty forces the next flush to redraw every cell.
func (b *Buffer) MarkAllDirty() {
	b.dirtyAll = true
	b.dirtyCount = b.width * b.height
}

// ClearDirty resets dirty tracking after a flush.
func (b *Buffer) ClearDirty() {
	clear(b.dirty)
	b.dirtyCount = 0
	b.dirtyAll = false
}

// IsDirty reports whether anything changed since the last ClearDirty.
func (b *Buffer) IsDirty() bool {
	return b.dirtyAll || b.dirtyCount > 0
}

// DirtyCount returns the number of changed cells, counting span gaps.
func (b *Buffer) DirtyCount() int {
	return b.dirtyCount
}

// ForEachDirtySpan calls fn with the dirty column range of each changed row.
func (b *Buffer) ForEachDirtySpan(fn func(y, startX, endX int)) {
	for y := 0; y < b.height; y++ {
		if b.dirtyAll {
			fn(y, 0, b.width)
			continue
		}
		if s := b.dirty[y]; s.end > s.start {
			fn(y, s.start, s.end)
		}
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) put(x, y int, cell Cell) {
	idx := y*b.width + x
	if b.cells[idx] == cell {
		return
	}
	b.cells[idx] = cell
	if b.dirtyAll {
		return
	}
	s := b.dirty[y]
	before := s.end - s.start
	if s.end <= s.start {
		s = span{start: x, end: x + 1}
	} else {
		s.start = min(s.start, x)
		s.end = max(s.end, x+1)
	}
	b.dirty[y] = s
	b.dirtyCount += (s.end - s.start) - before
}
