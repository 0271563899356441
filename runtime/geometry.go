package runtime

// Size is a width and height in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Rect is a cell-aligned rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersection returns the overlap of r and other, or an empty rect.
func (r Rect) Intersection(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Row returns the one-cell-high strip of r at offset dy.
func (r Rect) Row(dy int) Rect {
	return Rect{X: r.X, Y: r.Y + dy, Width: r.Width, Height: 1}
}

// Constraints bound the size a widget may measure to.
type Constraints struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// Tight returns constraints that allow exactly size.
func Tight(size Size) Constraints {
	return Constraints{MinWidth: size.Width, MaxWidth: size.Width, MinHeight: size.Height, MaxHeight: size.Height}
}

// Loose returns constraints that allow anything up to size.
func Loose(size Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// MaxSize returns the largest allowed size.
func (c Constraints) MaxSize() Size {
	return Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

// Constrain clamps size to the constraints.
func (c Constraints) Constrain(size Size) Size {
	return Size{
		Width:  max(c.MinWidth, min(c.MaxWidth, size.Width)),
		Height: max(c.MinHeight, min(c.MaxHeight, size.Height)),
	}
}
