package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-tabs/backend"
	"github.com/odvcencio/furry-tabs/runtime"
	"github.com/odvcencio/furry-tabs/state"
)

// SignalLabel is a one-line label bound to a signal, such as the title of
// the page a tab bar currently points at.
type SignalLabel struct {
	Base
	source    state.Readable[string]
	scheduler state.Scheduler
	subs      state.Subscriptions
	text      string
	style     backend.Style
	alignment Alignment
	mounted   bool
}

// NewSignalLabel creates a new signal-backed label. A nil scheduler applies
// changes synchronously.
func NewSignalLabel(source state.Readable[string], scheduler state.Scheduler) *SignalLabel {
	label := &SignalLabel{
		source:    source,
		scheduler: scheduler,
		style:     backend.DefaultStyle(),
		alignment: AlignLeft,
	}
	label.subs.SetScheduler(scheduler)
	label.pull()
	return label
}

// Text returns the current label text.
func (s *SignalLabel) Text() string {
	return s.text
}

// SetStyle sets the label style.
func (s *SignalLabel) SetStyle(style backend.Style) {
	s.style = style
}

// SetAlignment sets text alignment.
func (s *SignalLabel) SetAlignment(align Alignment) {
	s.alignment = align
}

// Bind switches to the app scheduler unless one was given explicitly.
func (s *SignalLabel) Bind(services runtime.Services) {
	if s.scheduler == nil {
		s.subs.SetScheduler(services.Scheduler())
	}
}

// Measure returns the size needed for the label.
func (s *SignalLabel) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  runewidth.StringWidth(s.text),
		Height: 1,
	})
}

// Render draws the label.
func (s *SignalLabel) Render(ctx runtime.RenderContext) {
	bounds := s.bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	ctx.Buffer.Fill(bounds.Row(0), ' ', s.style)
	text := truncateString(s.text, bounds.Width)
	x := alignedX(bounds, runewidth.StringWidth(text), s.alignment)
	putClipped(ctx.Buffer, x, bounds.Y, bounds, text, s.style)
}

// Mount subscribes to signal changes.
func (s *SignalLabel) Mount() {
	s.mounted = true
	s.subscribe()
}

// Unmount unsubscribes from signal changes.
func (s *SignalLabel) Unmount() {
	s.mounted = false
	s.subs.Clear()
}

func (s *SignalLabel) subscribe() {
	s.subs.Clear()
	s.pull()
	if s.source != nil {
		s.subs.Observe(s.source, s.onSignal)
	}
}

func (s *SignalLabel) onSignal() {
	if !s.mounted {
		return
	}
	s.pull()
}

func (s *SignalLabel) pull() {
	if s.source == nil {
		s.text = ""
		return
	}
	s.text = s.source.Get()
}
