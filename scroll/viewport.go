// Package scroll provides the horizontal viewport tab bars scroll through.
package scroll

import "math"

// Viewport tracks a horizontal window onto wider content.
// Offsets are fractional so animated scrolling can land between cells.
type Viewport struct {
	offset   float64
	min      float64
	max      float64
	onChange func(offset float64)
}

// NewViewport creates a viewport with an empty range.
func NewViewport() *Viewport {
	return &Viewport{}
}

// SetRange sets the valid offsets and clamps the current one.
// An inverted range collapses to lo.
func (v *Viewport) SetRange(lo, hi float64) {
	if hi < lo {
		hi = lo
	}
	v.min, v.max = lo, hi
	v.SetContentOffset(v.offset)
}

// Range returns the valid offsets.
func (v *Viewport) Range() (lo, hi float64) {
	return v.min, v.max
}

// Offset returns the current offset.
func (v *Viewport) Offset() float64 {
	return v.offset
}

// SetOnChange sets a callback for offset updates.
func (v *Viewport) SetOnChange(fn func(offset float64)) {
	v.onChange = fn
}

// SetContentOffset moves the viewport, clamped to its range.
func (v *Viewport) SetContentOffset(x float64) {
	if math.IsNaN(x) {
		return
	}
	next := math.Min(math.Max(x, v.min), v.max)
	if next == v.offset {
		return
	}
	v.offset = next
	if v.onChange != nil {
		v.onChange(next)
	}
}

// ScrollBy adjusts the offset by dx.
func (v *Viewport) ScrollBy(dx float64) {
	v.SetContentOffset(v.offset + dx)
}

// CanScroll reports whether content extends past the leading and trailing
// edges of the view.
func (v *Viewport) CanScroll() (leading, trailing bool) {
	return v.offset > v.min, v.offset < v.max
}

// Column maps a content x to a view column, where origin is the view's
// first column.
func (v *Viewport) Column(origin int, x float64) int {
	return origin + int(math.Round(x-v.offset))
}

// Span maps content [x0, x1) to view columns [c0, c1) using the same
// rounding as Column, so adjacent spans never overlap.
func (v *Viewport) Span(origin int, x0, x1 float64) (c0, c1 int) {
	return v.Column(origin, x0), v.Column(origin, x1)
}
