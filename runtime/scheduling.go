package runtime

import (
	"sync/atomic"

	"github.com/odvcencio/furry-tabs/state"
)

// QueueFlushPolicy configures when the app flushes its state queue.
type QueueFlushPolicy int

const (
	// FlushOnMessageAndTick flushes on any message or tick.
	FlushOnMessageAndTick QueueFlushPolicy = iota
	// FlushOnMessage flushes on messages except TickMsg.
	FlushOnMessage
	// FlushOnTick flushes only on TickMsg.
	FlushOnTick
	// FlushManual flushes only on QueueFlushMsg.
	FlushManual
)

func (p QueueFlushPolicy) flushes(msg Message) bool {
	if _, ok := msg.(QueueFlushMsg); ok {
		return true
	}
	_, tick := msg.(TickMsg)
	switch p {
	case FlushManual:
		return false
	case FlushOnMessage:
		return !tick
	case FlushOnTick:
		return tick
	}
	return true
}

// coalescer posts msg at most once until reset, retrying when a post fails.
type coalescer struct {
	post    PostFunc
	msg     Message
	pending atomic.Bool
}

func (c *coalescer) wake() {
	if c == nil || c.post == nil {
		return
	}
	if c.pending.CompareAndSwap(false, true) && !c.post(c.msg) {
		c.pending.Store(false)
	}
}

func (c *coalescer) reset() {
	if c != nil {
		c.pending.Store(false)
	}
}

// QueueScheduler enqueues signal callbacks on a state queue and wakes the
// app to flush it.
type QueueScheduler struct {
	queue *state.Queue
	wake  coalescer
}

// NewQueueScheduler wires queue to post.
func NewQueueScheduler(queue *state.Queue, post PostFunc) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	s := &QueueScheduler{queue: queue}
	s.wake.post, s.wake.msg = post, QueueFlushMsg{}
	return s
}

// Schedule enqueues fn and requests a flush.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	s.wake.wake()
}

// Invalidator requests render passes, coalescing repeated requests.
type Invalidator struct {
	wake coalescer
}

// NewInvalidator wires an invalidator to post.
func NewInvalidator(post PostFunc) *Invalidator {
	i := &Invalidator{}
	i.wake.post, i.wake.msg = post, InvalidateMsg{}
	return i
}

// Invalidate requests a render pass.
func (i *Invalidator) Invalidate() {
	if i != nil {
		i.wake.wake()
	}
}

// Schedule runs fn immediately and requests a render pass.
func (i *Invalidator) Schedule(fn func()) {
	if fn != nil {
		fn()
	}
	i.Invalidate()
}
