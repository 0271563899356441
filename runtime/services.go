package runtime

import (
	"log/slog"
	"time"

	"github.com/odvcencio/furry-tabs/state"
)

// Services exposes app-level scheduling, messaging and logging to widgets.
// The zero value is inert.
type Services struct {
	app *App
}

// Services returns a service handle for the app.
func (a *App) Services() Services {
	return Services{app: a}
}

func (s Services) isZero() bool {
	return s.app == nil
}

// Scheduler returns the app state scheduler.
func (s Services) Scheduler() state.Scheduler {
	if s.app == nil {
		return nil
	}
	return s.app.queueScheduler
}

// Invalidate requests a render pass.
func (s Services) Invalidate() {
	if s.app != nil {
		s.app.Invalidate()
	}
}

// Post sends a message into the app loop.
func (s Services) Post(msg Message) bool {
	if s.app == nil {
		return false
	}
	return s.app.TryPost(msg)
}

// Spawn starts an effect using the app task context.
func (s Services) Spawn(effect Effect) {
	if s.app != nil {
		s.app.Spawn(effect)
	}
}

// After schedules a delayed message.
func (s Services) After(delay time.Duration, msg Message) {
	s.Spawn(After(delay, msg))
}

// Every schedules a recurring message.
func (s Services) Every(interval time.Duration, fn func(time.Time) Message) {
	s.Spawn(Every(interval, fn))
}

// Logger returns the app logger, or slog.Default.
func (s Services) Logger() *slog.Logger {
	if s.app == nil || s.app.logger == nil {
		return slog.Default()
	}
	return s.app.logger
}
