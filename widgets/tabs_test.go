package widgets

import (
	"testing"

	"github.com/odvcencio/furry-tabs/backend"
	"github.com/odvcencio/furry-tabs/runtime"
	"github.com/odvcencio/furry-tabs/terminal"
)

type pageWidget struct {
	Base
	text    string
	mounted bool
}

func (p *pageWidget) Measure(c runtime.Constraints) runtime.Size {
	return c.Constrain(runtime.Size{Width: len(p.text), Height: 1})
}

func (p *pageWidget) Render(ctx runtime.RenderContext) {
	ctx.Buffer.SetString(ctx.Bounds.X, ctx.Bounds.Y, p.text, backend.DefaultStyle())
}

func (p *pageWidget) Mount()   { p.mounted = true }
func (p *pageWidget) Unmount() { p.mounted = false }

func newDetachedTabs() (*Tabs, []*pageWidget) {
	pages := []*pageWidget{{text: "first"}, {text: "second"}, {text: "third"}}
	tabs := NewTabs(
		Tab{Title: "One", Content: pages[0]},
		Tab{Title: "Two", Content: pages[1]},
		Tab{Title: "Three", Content: pages[2]},
	)
	return tabs, pages
}

func newTestTabs() (*Tabs, []*pageWidget) {
	tabs, pages := newDetachedTabs()
	runtime.Attach(tabs, runtime.Services{})
	tabs.Layout(runtime.Rect{Width: 30, Height: 4})
	return tabs, pages
}

func TestTabsSpringDrivesBar(t *testing.T) {
	tabs, pages := newTestTabs()
	if !pages[0].mounted || pages[1].mounted {
		t.Fatalf("only the first page should be mounted")
	}

	tabs.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRight})
	tabs.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRight})
	if tabs.Target() != 2 || tabs.Position().Get() != 0 {
		t.Fatalf("target %d position %v, want 2 and 0 before ticks", tabs.Target(), tabs.Position().Get())
	}

	tabs.HandleMessage(runtime.TickMsg{})
	mid := tabs.Position().Get()
	if mid <= 0 || mid >= 2 {
		t.Fatalf("position after one tick = %v", mid)
	}
	if tabs.Bar().Position() != mid {
		t.Fatalf("bar position %v does not follow page position %v", tabs.Bar().Position(), mid)
	}

	settle(t, tabs)
	if tabs.Position().Get() != 2 || tabs.Selected().Get() != 2 {
		t.Fatalf("settled at %v (selected %d), want 2", tabs.Position().Get(), tabs.Selected().Get())
	}
	if pages[0].mounted || !pages[2].mounted {
		t.Fatalf("page lifecycle not switched: %v %v", pages[0].mounted, pages[2].mounted)
	}

	_, rows := renderRows(tabs, 30, 4)
	if rows[2] != "third" {
		t.Fatalf("content row = %q, want third", rows[2])
	}
}

func TestTabsBarClickSelectsPage(t *testing.T) {
	tabs, _ := newDetachedTabs()
	screen := runtime.NewScreen(30, 4)
	screen.SetRoot(tabs)

	result := screen.HandleMessage(runtime.MouseMsg{X: 8, Y: 0, Button: terminal.MouseLeft})
	if !result.Handled || tabs.Target() != 1 {
		t.Fatalf("click target = %d, want 1", tabs.Target())
	}
	tabs.Jump(0)
	if tabs.Position().Get() != 0 || tabs.Bar().Position() != 0 {
		t.Fatalf("jump did not move the bar")
	}
}

func TestTabsAddTab(t *testing.T) {
	tabs, _ := newTestTabs()
	tabs.AddTab(Tab{Title: "Four", Content: &pageWidget{text: "fourth"}})
	tabs.SetBadge(3, "new")
	if tabs.Bar().Len() != 4 || tabs.BarItem(3).Badge() != "new" {
		t.Fatalf("bar has %d tabs", tabs.Bar().Len())
	}
	tabs.Select(9)
	if tabs.Target() != 3 {
		t.Fatalf("target = %d, want clamp to 3", tabs.Target())
	}
}
