package runtime

import (
	"time"

	"github.com/odvcencio/furry-tabs/terminal"
)

// Message represents an event flowing into the UI.
// Messages come from terminal input, timers, or background goroutines.
type Message interface {
	isMessage()
}

// KeyMsg represents a keyboard input event.
type KeyMsg struct {
	Key   terminal.Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyMsg) isMessage() {}

// ResizeMsg indicates the terminal size changed.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// MouseMsg represents a mouse input event.
type MouseMsg struct {
	X, Y   int
	Button terminal.MouseButton
	Action terminal.MouseAction
	Alt    bool
	Ctrl   bool
	Shift  bool
}

func (MouseMsg) isMessage() {}

// TickMsg is sent on each frame tick to advance animations.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// QueueFlushMsg triggers a state queue flush in the update loop.
type QueueFlushMsg struct{}

func (QueueFlushMsg) isMessage() {}

// InvalidateMsg requests a render pass without forcing a full redraw.
type InvalidateMsg struct{}

func (InvalidateMsg) isMessage() {}

// CustomMsg carries an application-defined payload, such as a reloaded
// configuration, into the update loop.
type CustomMsg struct {
	Value any
}

func (CustomMsg) isMessage() {}

func messageFromEvent(ev terminal.Event) Message {
	switch e := ev.(type) {
	case terminal.KeyEvent:
		return KeyMsg{Key: e.Key, Rune: e.Rune, Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift}
	case terminal.ResizeEvent:
		return ResizeMsg{Width: e.Width, Height: e.Height}
	case terminal.MouseEvent:
		return MouseMsg{X: e.X, Y: e.Y, Button: e.Button, Action: e.Action, Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift}
	}
	return nil
}
