package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-tabs/backend"
	"github.com/odvcencio/furry-tabs/runtime"
	"github.com/odvcencio/furry-tabs/tabbar"
)

// DefaultButtonPadding is the blank columns on each side of a label.
const DefaultButtonPadding = 1

// LabelButton is a one-row tab button. Its title may use inline markdown
// and an optional badge follows the title.
type LabelButton struct {
	theme   *Theme
	title   string
	spans   []Span
	badge   string
	state   tabbar.ButtonState
	padding int
}

// NewLabelButton creates a button that draws with theme.
func NewLabelButton(theme *Theme) *LabelButton {
	if theme == nil {
		def := DefaultTheme()
		theme = &def
	}
	return &LabelButton{theme: theme, padding: DefaultButtonPadding}
}

// IntrinsicSize measures the label in terminal columns.
func (l *LabelButton) IntrinsicSize() tabbar.Size {
	return tabbar.Size{Width: float64(2*l.padding + l.textWidth()), Height: 1}
}

// Populate copies the item's title and badge.
func (l *LabelButton) Populate(item *tabbar.Item) {
	l.title = item.Title()
	l.spans = ParseInline(l.title)
	l.badge = item.Badge()
}

// UpdateState records the interpolated selection state.
func (l *LabelButton) UpdateState(state tabbar.ButtonState) {
	l.state = state
}

// State returns the last selection state.
func (l *LabelButton) State() tabbar.ButtonState { return l.state }

// Title returns the raw title, including any markdown.
func (l *LabelButton) Title() string { return l.title }

// Text returns the title as displayed.
func (l *LabelButton) Text() string { return PlainText(l.spans) }

// Badge returns the badge text.
func (l *LabelButton) Badge() string { return l.badge }

// SetPadding sets the blank columns on each side.
func (l *LabelButton) SetPadding(padding int) {
	l.padding = max(0, padding)
}

func (l *LabelButton) textWidth() int {
	width := runewidth.StringWidth(l.Text())
	if l.badge != "" {
		width += 1 + runewidth.StringWidth(l.badge)
	}
	return width
}

// Draw renders the label into columns [x0, x1) of row y, centered when the
// frame is wider than the label, keeping only cells inside clip.
func (l *LabelButton) Draw(buf *runtime.Buffer, x0, x1, y int, clip runtime.Rect) {
	if x1 <= x0 {
		return
	}
	clip = clip.Intersection(runtime.Rect{X: x0, Y: y, Width: x1 - x0, Height: 1})
	if clip.Width == 0 {
		return
	}
	base := l.theme.ButtonStyle(l.state)
	buf.Fill(clip, ' ', base)

	x := x0 + max(0, (x1-x0-l.textWidth())/2)
	for _, span := range l.spans {
		x += putClipped(buf, x, y, clip, span.Text, l.spanStyle(base, span))
	}
	if l.badge != "" {
		badge := backend.DefaultStyle().
			Foreground(Blend(l.theme.Muted, l.theme.Accent, 0.5+l.state.Weight/2)).
			Background(l.theme.Background)
		putClipped(buf, x+1, y, clip, l.badge, badge)
	}
}

func (l *LabelButton) spanStyle(base backend.Style, span Span) backend.Style {
	style := base
	if span.Bold {
		style = style.Bold(true)
	}
	if span.Italic {
		style = style.Italic(true)
	}
	if span.Code {
		style = style.Foreground(Blend(l.theme.Muted, l.theme.Code, 0.5+l.state.Weight/2))
	}
	return style
}
