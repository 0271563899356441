package widgets

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/odvcencio/furry-tabs/backend"
	"github.com/odvcencio/furry-tabs/runtime"
	"github.com/odvcencio/furry-tabs/scroll"
	"github.com/odvcencio/furry-tabs/tabbar"
	"github.com/odvcencio/furry-tabs/terminal"
)

// TabBar hosts a tabbar.Bar: it owns the items, draws labels on its first
// row and the indicator on its second, and turns clicks, keys and wheel
// steps into selections and scrolling.
type TabBar struct {
	Component
	bar       *tabbar.Bar
	items     []*tabbar.Item
	theme     *Theme
	animator  *SpringAnimator
	viewport  *scroll.Viewport
	offset    *AnimatedValue
	indicator *LineIndicator
	accessory [4]*TextAccessory

	position  float64
	hasPos    bool
	fadeEdges bool
	fadeWidth int
	wheelStep float64
	duration  time.Duration
	onSelect  func(index int)
}

// NewTabBar creates a tab bar drawn with theme. opts configure the layout
// engine; the data source, indicator, scroller and animator are the bar's
// own.
func NewTabBar(theme Theme, opts ...tabbar.Option) *TabBar {
	t := &TabBar{
		theme:     &theme,
		animator:  NewSpringAnimator(DefaultFPS),
		viewport:  scroll.NewViewport(),
		fadeWidth: 3,
		wheelStep: 3,
	}
	t.offset = t.animator.Value(0)
	t.indicator = NewLineIndicator(t.animator)
	t.viewport.SetOnChange(func(float64) { t.Base.Invalidate() })

	all := append([]tabbar.Option{tabbar.WithInterButtonSpacing(1)}, opts...)
	all = append(all,
		tabbar.WithDataSource(t),
		tabbar.WithIndicator(t.indicator, tabbar.DefaultIndicatorStyle()),
		tabbar.WithScroller(offsetScroller{t.offset}),
		tabbar.WithAnimator(t.animator),
	)
	t.bar = tabbar.NewBar(func(*tabbar.Item) tabbar.Button {
		return NewLabelButton(t.theme)
	}, all...)
	return t
}

type offsetScroller struct {
	value *AnimatedValue
}

func (s offsetScroller) SetContentOffset(x float64) { s.value.Set(x) }

// ItemCount implements tabbar.DataSource.
func (t *TabBar) ItemCount() int { return len(t.items) }

// BarItem implements tabbar.DataSource.
func (t *TabBar) BarItem(index int) *tabbar.Item { return t.items[index] }

// Bar returns the layout engine.
func (t *TabBar) Bar() *tabbar.Bar { return t.bar }

// Animator returns the animator that drives the offset and indicator.
func (t *TabBar) Animator() *SpringAnimator { return t.animator }

// Viewport returns the horizontal viewport.
func (t *TabBar) Viewport() *scroll.Viewport { return t.viewport }

// Theme returns the current palette.
func (t *TabBar) Theme() Theme { return *t.theme }

// SetTheme replaces the palette.
func (t *TabBar) SetTheme(theme Theme) {
	*t.theme = theme
	for _, acc := range t.accessory {
		if acc != nil {
			acc.SetStyle(t.accessoryStyle())
		}
	}
	t.Invalidate()
}

// SetOnSelect sets the selection callback. Without one, a selection moves
// the bar itself.
func (t *TabBar) SetOnSelect(fn func(index int)) {
	t.onSelect = fn
}

// SetFadeEdges dims width columns at each edge that has content scrolled
// past it.
func (t *TabBar) SetFadeEdges(on bool, width int) {
	t.fadeEdges = on
	if width > 0 {
		t.fadeWidth = width
	}
	t.Invalidate()
}

// Len returns the number of tabs.
func (t *TabBar) Len() int { return len(t.items) }

// Item returns the item at index, for title and badge updates.
func (t *TabBar) Item(index int) *tabbar.Item { return t.items[index] }

// SetTabs replaces every tab.
func (t *TabBar) SetTabs(titles ...string) {
	t.items = make([]*tabbar.Item, len(titles))
	for i, title := range titles {
		t.items[i] = tabbar.NewItem(title)
	}
	t.bar.ReloadAll()
	t.update(t.position, false)
}

// InsertTab inserts a tab at index and keeps the same tab selected.
func (t *TabBar) InsertTab(index int, title string) *tabbar.Item {
	if index < 0 || index > len(t.items) {
		panic(fmt.Sprintf("widgets: insert index %d outside [0, %d]", index, len(t.items)))
	}
	item := tabbar.NewItem(title)
	t.items = append(t.items, nil)
	copy(t.items[index+1:], t.items[index:])
	t.items[index] = item
	t.bar.Reload(index, index, tabbar.ReloadInsertion)
	if t.hasPos && len(t.items) > 1 && float64(index) <= math.Round(t.position) {
		t.update(t.position+1, false)
	} else {
		t.update(t.position, false)
	}
	return item
}

// RemoveTab removes the tab at index and keeps the same tab selected when
// it survives.
func (t *TabBar) RemoveTab(index int) {
	if index < 0 || index >= len(t.items) {
		panic(fmt.Sprintf("widgets: remove index %d outside [0, %d)", index, len(t.items)))
	}
	t.items = append(t.items[:index], t.items[index+1:]...)
	t.bar.Reload(index, index, tabbar.ReloadDeletion)
	next := t.position
	if float64(index) < math.Round(t.position) {
		next--
	}
	t.update(math.Min(next, math.Max(0, float64(len(t.items)-1))), false)
}

// SetAccessory puts text in an accessory slot; empty text clears it.
func (t *TabBar) SetAccessory(loc tabbar.AccessoryLocation, text string) *TextAccessory {
	if text == "" {
		t.bar.SetAccessory(loc, nil)
		t.accessory[loc] = nil
		t.relayout()
		return nil
	}
	acc := NewTextAccessory(text)
	acc.SetStyle(t.accessoryStyle())
	acc.onChange = func() {
		t.bar.InvalidateLayout()
		t.relayout()
	}
	t.bar.SetAccessory(loc, acc)
	t.accessory[loc] = acc
	t.relayout()
	return acc
}

// SetTitle retitles the tab at index.
func (t *TabBar) SetTitle(index int, title string) {
	t.items[index].SetTitle(title)
	t.relayout()
}

// SetBadge sets the badge of the tab at index.
func (t *TabBar) SetBadge(index int, badge string) {
	t.items[index].SetBadge(badge)
	t.relayout()
}

func (t *TabBar) accessoryStyle() backend.Style {
	return backend.DefaultStyle().Foreground(t.theme.Accent).Background(t.theme.Background)
}

// SetPosition moves the bar to a continuous page position.
func (t *TabBar) SetPosition(position float64, animated bool) {
	t.update(position, animated)
}

// Position returns the last position set.
func (t *TabBar) Position() float64 { return t.position }

// SelectedIndex returns the tab nearest the position, or -1 without tabs.
func (t *TabBar) SelectedIndex() int {
	if len(t.items) == 0 {
		return -1
	}
	return min(max(int(math.Round(t.position)), 0), len(t.items)-1)
}

// ScrollBy scrolls the bar content directly.
func (t *TabBar) ScrollBy(dx float64) bool {
	if !t.bar.ScrollBy(dx) {
		return false
	}
	t.relayout()
	return true
}

func (t *TabBar) update(position float64, animated bool) {
	direction := tabbar.DirectionNone
	if t.hasPos {
		direction = tabbar.DirectionBetween(t.position, position)
	}
	t.position, t.hasPos = position, true
	t.bar.Update(position, len(t.items), direction, tabbar.Animation{Enabled: animated, Duration: t.duration})
	t.relayout()
}

// SetAnimationDuration sets how long animated position changes take. Zero
// uses the bar default.
func (t *TabBar) SetAnimationDuration(d time.Duration) {
	t.duration = max(0, d)
}

func (t *TabBar) relayout() {
	t.sync()
	t.Invalidate()
}

// sync points the viewport at the current, possibly in-flight, offset.
func (t *TabBar) sync() {
	snap := t.bar.Snapshot()
	t.viewport.SetRange(snap.MinOffset, snap.MaxOffset)
	t.viewport.SetContentOffset(t.offset.Value())
}

// Measure asks for the full width and two rows.
func (t *TabBar) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: 2})
}

// Layout resizes the bar.
func (t *TabBar) Layout(bounds runtime.Rect) {
	t.Base.Layout(bounds)
	t.bar.SetBounds(tabbar.Size{Width: float64(bounds.Width), Height: float64(bounds.Height)})
	t.sync()
}

// Render draws pinned accessories, the scrolled buttons and the indicator.
func (t *TabBar) Render(ctx runtime.RenderContext) {
	bounds := t.bounds
	buf := ctx.Buffer
	if buf == nil || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	buf.Fill(bounds, ' ', t.theme.BarStyle())
	t.sync()

	snap := t.bar.Snapshot()
	view := t.viewRect(snap)
	for _, loc := range []tabbar.AccessoryLocation{tabbar.AccessoryLeadingPinned, tabbar.AccessoryTrailingPinned} {
		if acc := t.accessory[loc]; acc != nil {
			frame := snap.AccessoryFrame(loc)
			acc.Draw(buf, bounds.X+int(math.Round(frame.MinX())), bounds.Y, bounds)
		}
	}
	for _, loc := range []tabbar.AccessoryLocation{tabbar.AccessoryLeading, tabbar.AccessoryTrailing} {
		if acc := t.accessory[loc]; acc != nil {
			acc.Draw(buf, t.viewport.Column(view.X, snap.AccessoryFrame(loc).MinX()), bounds.Y, view)
		}
	}
	for i, button := range t.bar.Buttons() {
		label, ok := button.(*LabelButton)
		if !ok || i >= len(snap.ButtonFrames) {
			continue
		}
		frame := snap.ButtonFrames[i]
		x0, x1 := t.viewport.Span(view.X, frame.MinX(), frame.MaxX())
		label.Draw(buf, x0, x1, bounds.Y, view)
	}
	if bounds.Height > 1 {
		origin := float64(view.X) - t.viewport.Offset()
		t.indicator.Draw(buf, bounds.Y+1, origin, view.Row(1), t.theme.IndicatorStyle())
	}
	if t.fadeEdges {
		t.fade(buf, view, snap)
	}
}

// viewRect is the region between the pinned accessories.
func (t *TabBar) viewRect(snap tabbar.Snapshot) runtime.Rect {
	start := t.bounds.X + int(math.Round(snap.ViewportMinX()))
	end := t.bounds.X + t.bounds.Width - int(math.Round(snap.AccessoryFrame(tabbar.AccessoryTrailingPinned).Width()))
	return runtime.Rect{X: start, Y: t.bounds.Y, Width: max(0, end-start), Height: t.bounds.Height}
}

func (t *TabBar) fade(buf *runtime.Buffer, view runtime.Rect, snap tabbar.Snapshot) {
	width := min(t.fadeWidth, view.Width/2)
	leading, trailing := tabbar.EdgeFade(t.viewport.Offset(), snap.MinOffset, snap.MaxOffset, float64(width))
	for k := 0; k < width; k++ {
		ramp := float64(width-k) / float64(width+1)
		for y := view.Y; y < view.Y+view.Height; y++ {
			if leading > 0 {
				amount := leading * ramp
				buf.Restyle(view.X+k, y, func(s backend.Style) backend.Style { return t.theme.Fade(s, amount) })
			}
			if trailing > 0 {
				amount := trailing * ramp
				buf.Restyle(view.X+view.Width-1-k, y, func(s backend.Style) backend.Style { return t.theme.Fade(s, amount) })
			}
		}
	}
}

// HandleMessage advances animations on ticks and reacts to input.
func (t *TabBar) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.TickMsg:
		if !t.animator.Animating() {
			return runtime.Unhandled()
		}
		t.animator.Step()
		t.sync()
		return runtime.Handled()
	case runtime.KeyMsg:
		if !t.focused {
			return runtime.Unhandled()
		}
		switch m.Key {
		case terminal.KeyLeft:
			return t.selectIndex(t.SelectedIndex() - 1)
		case terminal.KeyRight:
			return t.selectIndex(t.SelectedIndex() + 1)
		case terminal.KeyHome:
			return t.selectIndex(0)
		case terminal.KeyEnd:
			return t.selectIndex(len(t.items) - 1)
		}
	case runtime.MouseMsg:
		if !t.bounds.Contains(m.X, m.Y) {
			return runtime.Unhandled()
		}
		switch m.Button {
		case terminal.MouseLeft:
			if m.Action != terminal.MousePress {
				return runtime.Handled()
			}
			if index := t.bar.ButtonIndexAt(float64(m.X - t.bounds.X)); index >= 0 {
				return t.selectIndex(index)
			}
			return runtime.Handled()
		case terminal.MouseWheelUp, terminal.MouseWheelLeft:
			t.ScrollBy(-t.wheelStep)
			return runtime.Handled()
		case terminal.MouseWheelDown, terminal.MouseWheelRight:
			t.ScrollBy(t.wheelStep)
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

func (t *TabBar) selectIndex(index int) runtime.HandleResult {
	if len(t.items) == 0 {
		return runtime.Unhandled()
	}
	index = min(max(index, 0), len(t.items)-1)
	t.Services.Logger().Debug("tab selected",
		slog.Int("index", index),
		slog.String("title", t.items[index].Title()),
	)
	if t.onSelect != nil {
		t.onSelect(index)
	} else {
		t.SetPosition(float64(index), true)
	}
	return runtime.WithCommand(runtime.TabSelected{Index: index})
}
