package tabbar

// OffsetRange returns the valid scroll offsets. Pinned accessories shrink the
// viewport but not the content. When content is narrower than the viewport
// the range collapses to its lower bound.
func OffsetRange(boundsWidth float64, contentSize Size, insets EdgeInsets, pinnedWidths ...float64) (lo, hi float64) {
	viewport := boundsWidth
	for _, w := range pinnedWidths {
		viewport -= w
	}
	lo = -insets.Left
	hi = contentSize.Width - viewport + insets.Right
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Offset centers focus within the bounds, corrects by offCenterDelta, and
// clamps to OffsetRange.
func Offset(focus Rect, boundsWidth float64, contentSize Size, insets EdgeInsets, offCenterDelta float64, pinnedWidths ...float64) float64 {
	x := focus.MidX() - boundsWidth/2 - offCenterDelta
	lo, hi := OffsetRange(boundsWidth, contentSize, insets, pinnedWidths...)
	return clamp(x, lo, hi)
}
