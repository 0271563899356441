package tabbar

import "math"

// Point is a location in bar coordinates.
type Point struct {
	X, Y float64
}

// Size is a width and height in bar coordinates.
type Size struct {
	Width, Height float64
}

// Rect is an origin and size in bar coordinates.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect builds a rect from its components.
func NewRect(x, y, width, height float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// MinX returns the leading edge.
func (r Rect) MinX() float64 { return r.Origin.X }

// MidX returns the horizontal center.
func (r Rect) MidX() float64 { return r.Origin.X + r.Size.Width/2 }

// MaxX returns the trailing edge.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// Width returns the rect width.
func (r Rect) Width() float64 { return r.Size.Width }

// IsZero reports whether the rect has no origin and no size.
func (r Rect) IsZero() bool { return r == Rect{} }

// OffsetX returns the rect translated horizontally by dx.
func (r Rect) OffsetX(dx float64) Rect {
	r.Origin.X += dx
	return r
}

// ContainsX reports whether x falls within [MinX, MaxX).
func (r Rect) ContainsX(x float64) bool {
	return x >= r.MinX() && x < r.MaxX()
}

// EdgeInsets are distances inset from each edge.
type EdgeInsets struct {
	Top, Left, Bottom, Right float64
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

func lerpRect(from, to Rect, t float64) Rect {
	return Rect{
		Origin: Point{X: lerp(from.Origin.X, to.Origin.X, t), Y: lerp(from.Origin.Y, to.Origin.Y, t)},
		Size:   Size{Width: lerp(from.Size.Width, to.Size.Width, t), Height: lerp(from.Size.Height, to.Size.Height, t)},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampPosition limits position to [0, capacity-1]; capacity <= 0 yields 0.
func clampPosition(position float64, capacity int) float64 {
	if capacity <= 0 || math.IsNaN(position) {
		return 0
	}
	return clamp(position, 0, float64(capacity-1))
}
