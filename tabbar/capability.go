package tabbar

import "time"

// Measurable reports an intrinsic size measured by the rendering layer.
type Measurable interface {
	IntrinsicSize() Size
}

// Populatable receives an item's display data.
type Populatable interface {
	Populate(item *Item)
}

// StateUpdatable receives interpolated selection state.
type StateUpdatable interface {
	UpdateState(state ButtonState)
}

// Button is the capability set a bar button must provide.
type Button interface {
	Measurable
	Populatable
	StateUpdatable
}

// ButtonFactory creates the button for a newly inserted item.
type ButtonFactory func(item *Item) Button

// Indicator receives the target indicator frame in scroll content coordinates.
type Indicator interface {
	SetFrame(frame Rect)
}

// Scroller receives the target horizontal content offset.
type Scroller interface {
	SetContentOffset(x float64)
}

// Animator applies writes either with visual interpolation or immediately.
type Animator interface {
	Animate(duration time.Duration, body func())
	PerformWithoutAnimation(body func())
}

// DataSource supplies items during reloads.
type DataSource interface {
	ItemCount() int
	BarItem(index int) *Item
}

type immediateAnimator struct{}

func (immediateAnimator) Animate(_ time.Duration, body func()) { body() }

func (immediateAnimator) PerformWithoutAnimation(body func()) { body() }
