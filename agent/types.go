package agent

import (
	"strings"
	"time"
)

// Snapshot is the text content of the simulated terminal.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Text      string    `json:"text,omitempty"`
	Lines     []string  `json:"lines,omitempty"`
}

// Find returns the cell position of text, or (-1, -1). Positions count
// runes, so wide runes are counted once.
func (s Snapshot) Find(text string) (x, y int) {
	for row, line := range s.Lines {
		if i := strings.Index(line, text); i >= 0 {
			return len([]rune(line[:i])), row
		}
	}
	return -1, -1
}

// Row returns line y, or "" when out of range.
func (s Snapshot) Row(y int) string {
	if y < 0 || y >= len(s.Lines) {
		return ""
	}
	return s.Lines[y]
}
