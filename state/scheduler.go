package state

import "sync"

// Scheduler decides when a listener callback runs.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function into a Scheduler.
type SchedulerFunc func(func())

// Schedule calls f with fn.
func (f SchedulerFunc) Schedule(fn func()) {
	if f != nil && fn != nil {
		f(fn)
	}
}

// Queue defers callbacks until Flush. The app flushes it on its own
// goroutine so widgets observe signal changes between frames.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule enqueues fn.
func (q *Queue) Schedule(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush runs pending callbacks in order and returns how many ran. Callbacks
// scheduled during the flush wait for the next one.
func (q *Queue) Flush() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

// Subscriptions collects unsubscribe functions so a widget can drop all of
// them on unmount.
type Subscriptions struct {
	scheduler Scheduler
	stops     []func()
}

// SetScheduler sets the scheduler used by Observe.
func (s *Subscriptions) SetScheduler(scheduler Scheduler) {
	s.scheduler = scheduler
}

// Observe subscribes fn to src through the configured scheduler.
func (s *Subscriptions) Observe(src interface {
	SubscribeWithScheduler(Scheduler, func()) func()
}, fn func()) {
	if src == nil || fn == nil {
		return
	}
	s.stops = append(s.stops, src.SubscribeWithScheduler(s.scheduler, fn))
}

// Len returns the number of live subscriptions.
func (s *Subscriptions) Len() int { return len(s.stops) }

// Clear removes every subscription.
func (s *Subscriptions) Clear() {
	for _, stop := range s.stops {
		stop()
	}
	s.stops = nil
}
