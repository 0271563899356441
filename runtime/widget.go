package runtime

// Widget is a node in the UI tree.
// Measure reports a desired size, Layout assigns bounds, Render draws into
// the buffer and HandleMessage reacts to input.
type Widget interface {
	Measure(constraints Constraints) Size
	Layout(bounds Rect)
	Render(ctx RenderContext)
	HandleMessage(msg Message) HandleResult
}

// ChildProvider exposes child widgets for tree walks.
type ChildProvider interface {
	ChildWidgets() []Widget
}

// BoundsProvider exposes the bounds assigned by the last Layout.
type BoundsProvider interface {
	Bounds() Rect
}

// HandleResult is the outcome of HandleMessage.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Handled marks a message as consumed.
func Handled() HandleResult {
	return HandleResult{Handled: true}
}

// Unhandled lets a message continue to other widgets.
func Unhandled() HandleResult {
	return HandleResult{}
}

// WithCommand consumes a message and emits cmd.
func WithCommand(cmd Command) HandleResult {
	return HandleResult{Handled: true, Commands: []Command{cmd}}
}

// Merge combines two results.
func (r HandleResult) Merge(other HandleResult) HandleResult {
	r.Handled = r.Handled || other.Handled
	r.Commands = append(r.Commands, other.Commands...)
	return r
}
