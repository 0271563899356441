package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-tabs/backend"
	"github.com/odvcencio/furry-tabs/runtime"
	"github.com/odvcencio/furry-tabs/tabbar"
)

// TextAccessory is a short piece of text placed in a tab bar accessory slot,
// such as a "+" button or a page counter.
type TextAccessory struct {
	text     string
	style    backend.Style
	padding  int
	onChange func()
}

// NewTextAccessory creates an accessory showing text.
func NewTextAccessory(text string) *TextAccessory {
	return &TextAccessory{text: text, style: backend.DefaultStyle(), padding: 1}
}

// IntrinsicSize measures the text plus padding.
func (a *TextAccessory) IntrinsicSize() tabbar.Size {
	if a.text == "" {
		return tabbar.Size{}
	}
	return tabbar.Size{Width: float64(runewidth.StringWidth(a.text) + 2*a.padding), Height: 1}
}

// Text returns the accessory text.
func (a *TextAccessory) Text() string { return a.text }

// SetText replaces the text; the owning bar re-lays out when the width
// changes.
func (a *TextAccessory) SetText(text string) {
	if a.text == text {
		return
	}
	a.text = text
	if a.onChange != nil {
		a.onChange()
	}
}

// SetStyle sets the text style.
func (a *TextAccessory) SetStyle(style backend.Style) {
	a.style = style
}

// Draw renders the accessory starting at column x of row y.
func (a *TextAccessory) Draw(buf *runtime.Buffer, x, y int, clip runtime.Rect) {
	if a.text == "" {
		return
	}
	putClipped(buf, x+a.padding, y, clip, a.text, a.style)
}
