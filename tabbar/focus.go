package tabbar

import "math"

// FocusRect is the visually active region at a possibly fractional position.
// Position keeps the unclamped value so overscroll can be measured downstream.
type FocusRect struct {
	Rect
	Position float64
	Capacity int
}

// OffsetX returns the focus rect translated horizontally by dx.
func (f FocusRect) OffsetX(dx float64) FocusRect {
	f.Rect = f.Rect.OffsetX(dx)
	return f
}

// FocusFunc resolves a focus rect for a position and capacity.
type FocusFunc func(position float64, capacity int) FocusRect

// FocusRectFor interpolates between the frames of button floor(position) and
// its successor. Origin and size blend independently. At either end of the
// range the edge frame is returned exactly. Capacity beyond the number of
// frames is limited to the frames available.
func FocusRectFor(frames []Rect, position float64, capacity int) FocusRect {
	focus := FocusRect{Position: position, Capacity: capacity}
	count := min(capacity, len(frames))
	if count <= 0 {
		return focus
	}
	p := clampPosition(position, count)
	lower := int(math.Floor(p))
	t := p - float64(lower)
	if lower >= count-1 || t == 0 {
		focus.Rect = frames[lower]
		return focus
	}
	focus.Rect = lerpRect(frames[lower], frames[lower+1], t)
	return focus
}
