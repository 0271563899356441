// Package state provides small reactive values for driving widgets from
// page positions and configuration.
package state

import "sync"

// Readable is reactive state that can be observed.
type Readable[T any] interface {
	Get() T
	Version() uint64
	Subscribe(fn func()) func()
	SubscribeWithScheduler(scheduler Scheduler, fn func()) func()
}

// Writable is reactive state that can also be replaced.
type Writable[T any] interface {
	Readable[T]
	Set(value T) bool
}

// EqualFunc reports whether two values are the same for change detection.
type EqualFunc[T any] func(a, b T) bool

// Equal compares with ==.
func Equal[T comparable](a, b T) bool { return a == b }

type listener struct {
	id        uint64
	fn        func()
	scheduler Scheduler
}

// Signal holds a value and notifies listeners, in subscription order, when
// it changes. Every accepted Set bumps Version.
type Signal[T any] struct {
	mu        sync.Mutex
	value     T
	version   uint64
	equal     EqualFunc[T]
	listeners []listener
	nextID    uint64
}

// NewSignal creates a signal. Without an EqualFunc every Set notifies.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// NewValue creates a signal that ignores Sets of an equal value.
func NewValue[T comparable](initial T) *Signal[T] {
	s := NewSignal(initial)
	s.equal = Equal[T]
	return s
}

// SetEqualFunc replaces the change detector.
func (s *Signal[T]) SetEqualFunc(fn EqualFunc[T]) {
	s.mu.Lock()
	s.equal = fn
	s.mu.Unlock()
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	if s == nil {
		var zero T
		return zero
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Version returns the number of accepted Sets.
func (s *Signal[T]) Version() uint64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Set stores value and reports whether listeners were notified.
func (s *Signal[T]) Set(value T) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	if s.equal != nil && s.equal(s.value, value) {
		s.mu.Unlock()
		return false
	}
	s.value = value
	s.version++
	listeners := append([]listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		if l.scheduler != nil {
			l.scheduler.Schedule(l.fn)
		} else {
			l.fn()
		}
	}
	return true
}

// Update applies fn to the current value. It is not atomic with respect to
// concurrent Sets.
func (s *Signal[T]) Update(fn func(T) T) bool {
	if s == nil || fn == nil {
		return false
	}
	return s.Set(fn(s.Get()))
}

// Subscribe runs fn synchronously after every change.
func (s *Signal[T]) Subscribe(fn func()) func() {
	return s.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler dispatches fn through scheduler after every change.
// The returned function removes the listener and is safe to call twice.
func (s *Signal[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn, scheduler: scheduler})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
