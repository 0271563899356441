package log

import (
	"bytes"
	"sync"
)

// Ring is an [io.Writer] keeping the most recent log lines. A full-screen
// UI points its logger here instead of at the terminal it is drawing on.
type Ring struct {
	mu       sync.RWMutex
	lines    []string
	head     int
	size     int
	partial  []byte
	onChange func()
}

// NewRing creates a ring holding capacity lines. A non-positive capacity
// defaults to 100.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 100
	}

	return &Ring{lines: make([]string, capacity)}
}

// SetOnChange sets a callback run after every write that completes a line.
// It runs on the writer's goroutine.
func (r *Ring) SetOnChange(fn func()) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// Write splits p into lines; a trailing fragment waits for its newline.
func (r *Ring) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	data := append(r.partial, p...)
	added := false
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		r.push(string(bytes.TrimRight(data[:i], "\r")))
		data = data[i+1:]
		added = true
	}
	r.partial = append([]byte(nil), data...)
	notify := r.onChange
	r.mu.Unlock()

	if added && notify != nil {
		notify()
	}

	return len(p), nil
}

func (r *Ring) push(line string) {
	r.lines[r.head] = line
	r.head = (r.head + 1) % len(r.lines)
	if r.size < len(r.lines) {
		r.size++
	}
}

// Lines returns up to n of the most recent lines, oldest first. A
// non-positive n returns all of them.
func (r *Ring) Lines(n int) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n <= 0 || n > r.size {
		n = r.size
	}
	out := make([]string, 0, n)
	start := (r.head - n + len(r.lines)) % len(r.lines)
	for i := range n {
		out = append(out, r.lines[(start+i)%len(r.lines)])
	}

	return out
}

// Len returns the number of stored lines.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.size
}

// Capacity returns the maximum number of lines.
func (r *Ring) Capacity() int {
	return len(r.lines)
}

// Clear drops every line.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.lines)
	r.head, r.size, r.partial = 0, 0, nil
}
