package widgets

import (
	"math"

	"github.com/odvcencio/furry-tabs/backend"
	"github.com/odvcencio/furry-tabs/runtime"
	"github.com/odvcencio/furry-tabs/tabbar"
)

const (
	glyphLineFull  = '━'
	glyphLineLeft  = '╸'
	glyphLineRight = '╺'
)

// LineIndicator draws the selection indicator as a heavy line under the
// buttons. Half-covered cells use half-line glyphs so fractional positions
// stay visible.
type LineIndicator struct {
	minX *AnimatedValue
	maxX *AnimatedValue
}

// NewLineIndicator creates an indicator whose edges spring through animator.
func NewLineIndicator(animator *SpringAnimator) *LineIndicator {
	return &LineIndicator{minX: animator.Value(0), maxX: animator.Value(0)}
}

// SetFrame moves the indicator to frame, in scroll content coordinates.
func (l *LineIndicator) SetFrame(frame tabbar.Rect) {
	l.minX.Set(frame.MinX())
	l.maxX.Set(frame.MaxX())
}

// Extent returns the current, possibly in-flight, horizontal extent.
func (l *LineIndicator) Extent() (x0, x1 float64) {
	return l.minX.Value(), l.maxX.Value()
}

// Draw renders the indicator on row y. origin is the screen column of
// content x 0.
func (l *LineIndicator) Draw(buf *runtime.Buffer, y int, origin float64, clip runtime.Rect, style backend.Style) {
	x0, x1 := l.Extent()
	left, right := origin+x0, origin+x1
	if right <= left {
		return
	}
	for c := int(math.Floor(left)); float64(c) < right; c++ {
		if !clip.Contains(c, y) {
			continue
		}
		lo := math.Max(left, float64(c))
		hi := math.Min(right, float64(c+1))
		switch cover := hi - lo; {
		case cover >= 0.75:
			buf.Set(c, y, glyphLineFull, style)
		case cover < 0.25:
		case lo > float64(c):
			buf.Set(c, y, glyphLineRight, style)
		default:
			buf.Set(c, y, glyphLineLeft, style)
		}
	}
}
