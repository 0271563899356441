package runtime

import (
	"context"
	"time"
)

// After posts msg once after delay. A non-positive delay posts immediately.
func After(delay time.Duration, msg Message) Effect {
	return Effect{Run: func(ctx context.Context, post PostFunc) {
		if msg == nil || post == nil {
			return
		}
		if delay <= 0 {
			post(msg)
			return
		}
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
			post(msg)
		}
	}}
}

// Every posts fn's message on each interval until the context ends.
// A nil message from fn skips that interval.
func Every(interval time.Duration, fn func(time.Time) Message) Effect {
	return Effect{Run: func(ctx context.Context, post PostFunc) {
		if interval <= 0 || fn == nil || post == nil {
			return
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if msg := fn(now); msg != nil {
					post(msg)
				}
			}
		}
	}}
}

// Listen forwards values from ch as CustomMsg until ch closes or the context
// ends.
func Listen[T any](ch <-chan T) Effect {
	return Effect{Run: func(ctx context.Context, post PostFunc) {
		if ch == nil || post == nil {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-ch:
				if !ok {
					return
				}
				post(CustomMsg{Value: v})
			}
		}
	}}
}
