package tabbar

import (
	"fmt"
	"math"
	"time"
)

// DefaultAnimationDuration is used when an animation is forced without a
// caller-supplied duration.
const DefaultAnimationDuration = 250 * time.Millisecond

// AnimationStyle controls how positions reach the layout.
type AnimationStyle int

const (
	// AnimationProgressive follows fractional positions.
	AnimationProgressive AnimationStyle = iota
	// AnimationSnap rounds to whole items and always animates the jump.
	AnimationSnap
)

// String returns the style name.
func (s AnimationStyle) String() string {
	switch s {
	case AnimationProgressive:
		return "progressive"
	case AnimationSnap:
		return "snap"
	}
	return fmt.Sprintf("AnimationStyle(%d)", int(s))
}

// Animation is the caller's animation request for one update.
type Animation struct {
	Enabled  bool
	Duration time.Duration
}

// Adapt maps a raw position through the animation style.
func Adapt(raw float64, style AnimationStyle, requestedAnimated bool) (float64, bool) {
	if style == AnimationSnap {
		return math.Round(raw), true
	}
	return raw, requestedAnimated
}
