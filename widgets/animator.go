package widgets

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/odvcencio/furry-tabs/tabbar"
)

const (
	// DefaultFPS is the frame rate springs are tuned for.
	DefaultFPS = 60

	defaultFrequency = 6.0
	defaultDamping   = 1.0
	settleEpsilon    = 0.01
)

// SpringAnimator is a tabbar.Animator backed by harmonica springs. Values
// written inside Animate move toward their target one Step at a time; values
// written anywhere else jump.
type SpringAnimator struct {
	fps       int
	damping   float64
	animating bool
	spring    harmonica.Spring
	values    []*AnimatedValue
}

// NewSpringAnimator creates an animator stepped fps times a second. A
// non-positive fps uses DefaultFPS.
func NewSpringAnimator(fps int) *SpringAnimator {
	if fps <= 0 {
		fps = DefaultFPS
	}
	a := &SpringAnimator{fps: fps, damping: defaultDamping}
	a.spring = a.springFor(tabbar.DefaultAnimationDuration)
	return a
}

// FrameInterval is the tick rate that matches the spring tuning.
func (a *SpringAnimator) FrameInterval() time.Duration {
	return time.Second / time.Duration(a.fps)
}

// Value registers an animated value starting at initial.
func (a *SpringAnimator) Value(initial float64) *AnimatedValue {
	v := &AnimatedValue{owner: a, spring: a.spring, pos: initial, target: initial}
	a.values = append(a.values, v)
	return v
}

// Animate runs body with animated writes. The spring is tuned so a move
// settles in roughly duration.
func (a *SpringAnimator) Animate(duration time.Duration, body func()) {
	prev := a.animating
	a.animating = true
	spring := a.springFor(duration)
	for _, v := range a.values {
		v.pending = &spring
	}
	defer func() {
		a.animating = prev
		for _, v := range a.values {
			v.pending = nil
		}
	}()
	body()
}

// PerformWithoutAnimation runs body with immediate writes.
func (a *SpringAnimator) PerformWithoutAnimation(body func()) {
	prev := a.animating
	a.animating = false
	defer func() { a.animating = prev }()
	body()
}

// Step advances every moving value by one frame and reports whether any is
// still moving.
func (a *SpringAnimator) Step() bool {
	moving := false
	for _, v := range a.values {
		if v.step() {
			moving = true
		}
	}
	return moving
}

// Animating reports whether any value has yet to settle.
func (a *SpringAnimator) Animating() bool {
	for _, v := range a.values {
		if v.moving {
			return true
		}
	}
	return false
}

// Settle jumps every value to its target.
func (a *SpringAnimator) Settle() {
	for _, v := range a.values {
		v.jump(v.target)
	}
}

// springFor maps a duration onto an angular frequency. A critically damped
// spring at defaultFrequency settles in about the default duration.
func (a *SpringAnimator) springFor(duration time.Duration) harmonica.Spring {
	freq := defaultFrequency
	if duration > 0 {
		freq = defaultFrequency * float64(tabbar.DefaultAnimationDuration) / float64(duration)
	}
	return harmonica.NewSpring(harmonica.FPS(a.fps), freq, a.damping)
}

// AnimatedValue is one spring-driven scalar owned by a SpringAnimator.
type AnimatedValue struct {
	owner   *SpringAnimator
	spring  harmonica.Spring
	pending *harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	moving  bool
}

// Set moves the target. Inside Animate the value springs toward it;
// otherwise it jumps.
func (v *AnimatedValue) Set(target float64) {
	if math.IsNaN(target) {
		return
	}
	if !v.owner.animating {
		v.jump(target)
		return
	}
	if v.pending != nil {
		v.spring = *v.pending
	}
	v.target = target
	v.moving = v.pos != target || v.vel != 0
}

// Value returns the current, possibly in-flight, value.
func (v *AnimatedValue) Value() float64 { return v.pos }

// Target returns the value being approached.
func (v *AnimatedValue) Target() float64 { return v.target }

// Moving reports whether the value has yet to settle.
func (v *AnimatedValue) Moving() bool { return v.moving }

func (v *AnimatedValue) jump(target float64) {
	v.pos, v.vel, v.target, v.moving = target, 0, target, false
}

func (v *AnimatedValue) step() bool {
	if !v.moving {
		return false
	}
	v.pos, v.vel = v.spring.Update(v.pos, v.vel, v.target)
	if math.Abs(v.pos-v.target) < settleEpsilon && math.Abs(v.vel) < settleEpsilon {
		v.jump(v.target)
	}
	return v.moving
}
