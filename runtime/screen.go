package runtime

import "github.com/odvcencio/furry-tabs/backend"

// Screen owns the root widget and the render buffer.
type Screen struct {
	width, height int
	root          Widget
	buffer        *Buffer
	services      Services
}

// NewScreen creates a screen with the given dimensions.
func NewScreen(w, h int) *Screen {
	return &Screen{width: w, height: h, buffer: NewBuffer(w, h)}
}

// SetServices configures services handed to bindable widgets.
func (s *Screen) SetServices(services Services) {
	s.services = services
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Bounds returns the full screen rect.
func (s *Screen) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// Resize changes the dimensions and re-lays out the root.
func (s *Screen) Resize(w, h int) {
	s.width, s.height = w, h
	s.buffer.Resize(w, h)
	if s.root != nil {
		s.root.Layout(s.Bounds())
	}
}

// Buffer returns the render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// Root returns the root widget.
func (s *Screen) Root() Widget {
	return s.root
}

// SetRoot detaches the old root and attaches, lays out and mounts the new one.
func (s *Screen) SetRoot(root Widget) {
	if s.root != nil {
		Detach(s.root)
	}
	s.root = root
	if root == nil {
		return
	}
	Attach(root, s.services)
	root.Layout(s.Bounds())
}

// Render draws the root into the buffer.
func (s *Screen) Render() {
	if s.root == nil {
		return
	}
	s.root.Render(RenderContext{Buffer: s.buffer, Focused: true, Bounds: s.Bounds()})
}

// HandleMessage routes mouse messages to the deepest widget under the
// pointer and everything else to the root.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	if s.root == nil {
		return Unhandled()
	}
	if mouse, ok := msg.(MouseMsg); ok {
		if target := s.hitTest(s.root, mouse.X, mouse.Y); target != nil {
			if result := target.HandleMessage(msg); result.Handled {
				return result
			}
		}
	}
	return s.root.HandleMessage(msg)
}

func (s *Screen) hitTest(w Widget, x, y int) Widget {
	if container, ok := w.(ChildProvider); ok {
		children := container.ChildWidgets()
		for i := len(children) - 1; i >= 0; i-- {
			if hit := s.hitTest(children[i], x, y); hit != nil {
				return hit
			}
		}
	}
	if bp, ok := w.(BoundsProvider); ok && w != s.root && bp.Bounds().Contains(x, y) {
		return w
	}
	return nil
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Buffer  *Buffer
	Focused bool
	Bounds  Rect
}

// Sub creates a context for a child widget with adjusted bounds.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	ctx.Bounds = bounds
	return ctx
}

// Clear fills the context bounds with spaces using style.
func (ctx RenderContext) Clear(style backend.Style) {
	if ctx.Buffer != nil {
		ctx.Buffer.Fill(ctx.Bounds, ' ', style)
	}
}
