package runtime

import "context"

// Command represents an intent emitted by widgets.
// Commands bubble up from widgets to the app for handling.
type Command interface {
	Command()
}

// PostFunc sends a message into the app.
// It returns false when the message queue is full.
type PostFunc func(Message) bool

// Quit signals the application should exit.
type Quit struct{}

func (Quit) Command() {}

// Refresh requests a full screen redraw.
type Refresh struct{}

func (Refresh) Command() {}

// SendMsg posts a message into the app loop.
type SendMsg struct {
	Message Message
}

func (SendMsg) Command() {}

// Send wraps a message in a SendMsg command.
func Send(msg Message) Command {
	return SendMsg{Message: msg}
}

// Effect runs work in a background goroutine.
// Use the provided context for cancellation and PostFunc to emit messages.
type Effect struct {
	Run func(ctx context.Context, post PostFunc)
}

func (Effect) Command() {}

// TabSelected reports that the user picked a tab by key or mouse.
type TabSelected struct {
	Index int
}

func (TabSelected) Command() {}
