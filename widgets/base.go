// Package widgets provides the terminal widgets that host a tab bar.
package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-tabs/backend"
	"github.com/odvcencio/furry-tabs/runtime"
)

// Alignment positions a single line of text within its bounds.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Base provides common functionality for widgets.
// Embed this in widget structs to get default implementations.
type Base struct {
	bounds      runtime.Rect
	focused     bool
	needsRender bool
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	if b == nil {
		return
	}
	if b.bounds != bounds {
		b.bounds = bounds
		b.needsRender = true
	}
}

// Bounds returns the widget's assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	if b == nil {
		return runtime.Rect{}
	}
	return b.bounds
}

// HandleMessage returns Unhandled by default.
func (b *Base) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// CanFocus returns false by default.
func (b *Base) CanFocus() bool {
	return false
}

// Focus marks the widget as focused.
func (b *Base) Focus() {
	if b == nil {
		return
	}
	b.focused = true
}

// Blur marks the widget as unfocused.
func (b *Base) Blur() {
	if b == nil {
		return
	}
	b.focused = false
}

// IsFocused returns whether the widget is focused.
func (b *Base) IsFocused() bool {
	if b == nil {
		return false
	}
	return b.focused
}

// Invalidate marks the widget as needing a render pass.
func (b *Base) Invalidate() {
	if b == nil {
		return
	}
	b.needsRender = true
}

// NeedsRender reports whether the widget needs to re-render.
func (b *Base) NeedsRender() bool {
	if b == nil {
		return false
	}
	return b.needsRender
}

// ClearInvalidation clears the render-needed flag.
func (b *Base) ClearInvalidation() {
	if b == nil {
		return
	}
	b.needsRender = false
}

// FocusableBase extends Base for focusable widgets.
type FocusableBase struct {
	Base
}

// CanFocus returns true for focusable widgets.
func (f *FocusableBase) CanFocus() bool {
	return true
}

// truncateString truncates a string to fit within maxWidth.
// Adds "…" if truncated.
func truncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// alignedX returns where text of the given width starts within bounds.
func alignedX(bounds runtime.Rect, width int, align Alignment) int {
	switch align {
	case AlignCenter:
		return bounds.X + (bounds.Width-width)/2
	case AlignRight:
		return bounds.X + bounds.Width - width
	}
	return bounds.X
}

// putClipped writes s at (x, y) keeping only cells inside clip and returns
// the columns consumed. A wide rune is dropped unless both of its cells fit.
func putClipped(buf *runtime.Buffer, x, y int, clip runtime.Rect, s string, style backend.Style) int {
	if buf == nil {
		return 0
	}
	if y < clip.Y || y >= clip.Y+clip.Height {
		return runewidth.StringWidth(s)
	}
	right := clip.X + clip.Width
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= clip.X && col+w <= right {
			buf.Set(col, y, r, style)
			if w == 2 {
				buf.Set(col+1, y, 0, style)
			}
		}
		col += w
	}
	return col - x
}
