package tabbar

import (
	"fmt"
	"math"
)

// OverscrollBehavior controls the indicator when the position runs past the
// first or last item.
type OverscrollBehavior int

const (
	// OverscrollCompress shrinks the indicator against the edge.
	OverscrollCompress OverscrollBehavior = iota
	// OverscrollNone lets the indicator translate past the edge.
	OverscrollNone
	// OverscrollClamp pins the indicator to the edge item.
	OverscrollClamp
)

// String returns the behavior name.
func (o OverscrollBehavior) String() string {
	switch o {
	case OverscrollCompress:
		return "compress"
	case OverscrollNone:
		return "none"
	case OverscrollClamp:
		return "clamp"
	}
	return fmt.Sprintf("OverscrollBehavior(%d)", int(o))
}

// IndicatorStyle configures indicator placement.
type IndicatorStyle struct {
	// Progressive indicators follow fractional positions; others snap to the
	// nearest whole button.
	Progressive bool
	Overscroll  OverscrollBehavior
}

// DefaultIndicatorStyle is progressive with compressing overscroll.
func DefaultIndicatorStyle() IndicatorStyle {
	return IndicatorStyle{Progressive: true, Overscroll: OverscrollCompress}
}

// IndicatorFrame derives the indicator frame from a focus rect. A
// non-progressive indicator re-resolves the focus at the rounded position
// through resolve. Overscroll is applied afterwards, using the raw position
// carried by focus.
func IndicatorFrame(focus FocusRect, progressive bool, overscroll OverscrollBehavior, resolve FocusFunc) Rect {
	frame := focus.Rect
	if !progressive && resolve != nil {
		frame = resolve(math.Round(focus.Position), focus.Capacity).Rect
	}
	if focus.Capacity <= 0 || overscroll == OverscrollClamp {
		return frame
	}

	last := float64(focus.Capacity - 1)
	var amount float64
	leading := false
	switch {
	case focus.Position < 0:
		amount = -focus.Position
		leading = true
	case focus.Position > last:
		amount = focus.Position - last
	default:
		return frame
	}
	amount = clamp(amount, 0, 1)
	width := frame.Size.Width

	switch overscroll {
	case OverscrollNone:
		if leading {
			frame.Origin.X -= amount * width
		} else {
			frame.Origin.X += amount * width
		}
	case OverscrollCompress:
		frame.Size.Width = width * (1 - amount)
		if !leading {
			frame.Origin.X += width * amount
		}
	}
	return frame
}
