package widgets

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/odvcencio/furry-tabs/runtime"
	"github.com/odvcencio/furry-tabs/state"
	"github.com/odvcencio/furry-tabs/tabbar"
	"github.com/odvcencio/furry-tabs/terminal"
)

// Tab represents a single tab.
type Tab struct {
	Title   string
	Content runtime.Widget
}

// Tabs is a paged container. Selecting a page springs a continuous page
// position toward it; the position is published as a signal and drives the
// tab bar on top, so the bar tracks the page as it moves.
type Tabs struct {
	Component
	Tabs []Tab

	bar      *TabBar
	spring   harmonica.Spring
	vel      float64
	target   int
	position *state.Signal[float64]
	selected *state.Derived[int]
	shown    runtime.Widget
	mounted  bool
}

// NewTabs creates a tab container with a default-themed bar.
func NewTabs(tabs ...Tab) *Tabs {
	return NewTabsWithBar(NewTabBar(DefaultTheme()), tabs...)
}

// NewTabsWithBar creates a tab container around an existing bar.
func NewTabsWithBar(bar *TabBar, tabs ...Tab) *Tabs {
	t := &Tabs{
		Tabs:     tabs,
		bar:      bar,
		spring:   harmonica.NewSpring(harmonica.FPS(DefaultFPS), defaultFrequency, defaultDamping),
		position: state.NewValue(0.0),
	}
	t.selected = state.Derive(func() int {
		return t.clampIndex(int(math.Round(t.position.Get())))
	}, state.Equal[int], t.position)

	titles := make([]string, len(tabs))
	for i, tab := range tabs {
		titles[i] = tab.Title
	}
	bar.SetTabs(titles...)
	bar.SetOnSelect(t.Select)
	t.shown = t.selectedContent()
	return t
}

// Bar returns the tab bar.
func (t *Tabs) Bar() *TabBar { return t.bar }

// Position is the continuous page position.
func (t *Tabs) Position() state.Readable[float64] { return t.position }

// Selected is the index of the page nearest the position.
func (t *Tabs) Selected() state.Readable[int] { return t.selected }

// Target returns the page the position is moving toward.
func (t *Tabs) Target() int { return t.target }

// Select starts moving to the page at index.
func (t *Tabs) Select(index int) {
	if len(t.Tabs) == 0 {
		return
	}
	t.target = t.clampIndex(index)
	t.Invalidate()
}

// Jump moves to the page at index without animation.
func (t *Tabs) Jump(index int) {
	if len(t.Tabs) == 0 {
		return
	}
	t.target = t.clampIndex(index)
	t.vel = 0
	t.position.Set(float64(t.target))
}

// Mount subscribes the bar and page content to the position.
func (t *Tabs) Mount() {
	t.mounted = true
	t.Observe(t.position, t.onPosition)
	t.Observe(t.selected, t.onSelected)
}

// Unmount drops the subscriptions.
func (t *Tabs) Unmount() {
	t.mounted = false
	t.Subs.Clear()
}

func (t *Tabs) onPosition() {
	t.bar.SetPosition(t.position.Get(), false)
}

func (t *Tabs) onSelected() {
	next := t.selectedContent()
	if next == t.shown {
		return
	}
	if t.shown != nil {
		runtime.Detach(t.shown)
	}
	t.shown = next
	if next != nil {
		if t.mounted {
			runtime.Attach(next, t.Services)
		}
		next.Layout(t.contentBounds())
	}
	t.Invalidate()
}

// Measure returns the bar height plus the selected page.
func (t *Tabs) Measure(constraints runtime.Constraints) runtime.Size {
	size := runtime.Size{Width: constraints.MaxWidth, Height: 2}
	if content := t.selectedContent(); content != nil {
		inner := constraints
		inner.MaxHeight = max(0, inner.MaxHeight-2)
		inner.MinHeight = max(0, inner.MinHeight-2)
		size.Height += content.Measure(inner).Height
	}
	return constraints.Constrain(size)
}

// Layout places the bar on top and the page below it.
func (t *Tabs) Layout(bounds runtime.Rect) {
	t.Base.Layout(bounds)
	barHeight := min(2, bounds.Height)
	t.bar.Layout(runtime.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: barHeight})
	if t.shown != nil {
		t.shown.Layout(t.contentBounds())
	}
}

func (t *Tabs) contentBounds() runtime.Rect {
	b := t.bounds
	return runtime.Rect{X: b.X, Y: b.Y + 2, Width: b.Width, Height: max(0, b.Height-2)}
}

// Render draws the bar and the selected page.
func (t *Tabs) Render(ctx runtime.RenderContext) {
	if t.bounds.Width <= 0 || t.bounds.Height <= 0 {
		return
	}
	t.bar.Render(ctx.Sub(t.bar.Bounds()))
	if t.shown != nil {
		content := t.contentBounds()
		ctx.Sub(content).Clear(t.bar.Theme().BarStyle())
		t.shown.Render(ctx.Sub(content))
	}
}

// HandleMessage steps the page spring on ticks, switches pages with the
// arrow keys and forwards everything else to the bar and the page.
func (t *Tabs) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.TickMsg:
		result := t.bar.HandleMessage(msg)
		if t.step() {
			result.Handled = true
		}
		if t.shown != nil {
			result = result.Merge(t.shown.HandleMessage(msg))
		}
		return result
	case runtime.KeyMsg:
		switch m.Key {
		case terminal.KeyLeft, terminal.KeyBacktab:
			t.Select(t.target - 1)
			return runtime.WithCommand(runtime.TabSelected{Index: t.target})
		case terminal.KeyRight, terminal.KeyTab:
			t.Select(t.target + 1)
			return runtime.WithCommand(runtime.TabSelected{Index: t.target})
		}
	case runtime.MouseMsg:
		if t.bar.Bounds().Contains(m.X, m.Y) {
			return t.bar.HandleMessage(msg)
		}
	}
	if t.shown != nil {
		return t.shown.HandleMessage(msg)
	}
	return runtime.Unhandled()
}

// step advances the page spring one frame and reports whether it moved.
func (t *Tabs) step() bool {
	pos := t.position.Get()
	goal := float64(t.target)
	if pos == goal && t.vel == 0 {
		return false
	}
	pos, t.vel = t.spring.Update(pos, t.vel, goal)
	if math.Abs(pos-goal) < settleEpsilon && math.Abs(t.vel) < settleEpsilon {
		pos, t.vel = goal, 0
	}
	t.position.Set(pos)
	return true
}

// ChildWidgets returns the bar and the selected page.
func (t *Tabs) ChildWidgets() []runtime.Widget {
	children := []runtime.Widget{t.bar}
	if t.shown != nil {
		children = append(children, t.shown)
	}
	return children
}

// AddTab appends a page.
func (t *Tabs) AddTab(tab Tab) {
	t.Tabs = append(t.Tabs, tab)
	t.bar.InsertTab(len(t.Tabs)-1, tab.Title)
}

// SetBadge sets the badge of the tab at index.
func (t *Tabs) SetBadge(index int, badge string) {
	t.bar.SetBadge(index, badge)
}

// BarItem returns the bar item behind the tab at index.
func (t *Tabs) BarItem(index int) *tabbar.Item {
	return t.bar.Item(index)
}

func (t *Tabs) selectedContent() runtime.Widget {
	if len(t.Tabs) == 0 {
		return nil
	}
	return t.Tabs[t.clampIndex(t.selected.Get())].Content
}

func (t *Tabs) clampIndex(index int) int {
	if len(t.Tabs) == 0 {
		return 0
	}
	return min(max(index, 0), len(t.Tabs)-1)
}
