package tabbar

// ContentMode controls button widths.
type ContentMode int

const (
	// ContentIntrinsic sizes each button to its measured width.
	ContentIntrinsic ContentMode = iota
	// ContentFit divides the available width equally between buttons.
	ContentFit
)

// LayoutButtons places buttons left to right in layout-local coordinates and
// returns their frames plus the total layout size. available is only used by
// ContentFit; a non-positive value falls back to intrinsic widths.
func LayoutButtons(sizes []Size, spacing float64, mode ContentMode, available float64) ([]Rect, Size) {
	if len(sizes) == 0 {
		return nil, Size{}
	}
	if spacing < 0 {
		spacing = 0
	}
	gaps := spacing * float64(len(sizes)-1)
	fitWidth := -1.0
	if mode == ContentFit && available > gaps {
		fitWidth = (available - gaps) / float64(len(sizes))
	}

	frames := make([]Rect, len(sizes))
	var total Size
	x := 0.0
	for i, size := range sizes {
		width := size.Width
		if fitWidth >= 0 {
			width = fitWidth
		}
		if width < 0 {
			width = 0
		}
		frames[i] = NewRect(x, 0, width, size.Height)
		x += width
		if i < len(sizes)-1 {
			x += spacing
		}
		if size.Height > total.Height {
			total.Height = size.Height
		}
	}
	total.Width = x
	for i := range frames {
		frames[i].Size.Height = total.Height
	}
	return frames, total
}
