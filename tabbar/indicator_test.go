package tabbar

import "testing"

func TestIndicatorFrameOverscroll(t *testing.T) {
	frames := equalFrames(3, 10)
	resolve := func(p float64, c int) FocusRect { return FocusRectFor(frames, p, c) }

	tests := []struct {
		name       string
		position   float64
		overscroll OverscrollBehavior
		want       Rect
	}{
		{"in range", 1, OverscrollCompress, frames[1]},
		{"leading compress", -0.5, OverscrollCompress, NewRect(0, 0, 5, 1)},
		{"trailing compress", 2.25, OverscrollCompress, NewRect(22.5, 0, 7.5, 1)},
		{"leading none", -0.5, OverscrollNone, NewRect(-5, 0, 10, 1)},
		{"trailing none", 2.5, OverscrollNone, NewRect(25, 0, 10, 1)},
		{"clamp", 3, OverscrollClamp, frames[2]},
		{"compress past one item", -4, OverscrollCompress, NewRect(0, 0, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndicatorFrame(resolve(tt.position, 3), true, tt.overscroll, resolve)
			if got != tt.want {
				t.Fatalf("frame = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIndicatorFrameNonProgressive(t *testing.T) {
	frames := equalFrames(3, 10)
	resolve := func(p float64, c int) FocusRect { return FocusRectFor(frames, p, c) }

	got := IndicatorFrame(resolve(0.4, 3), false, OverscrollCompress, resolve)
	if got != frames[0] {
		t.Fatalf("p=0.4 frame = %+v, want %+v", got, frames[0])
	}
	got = IndicatorFrame(resolve(1.6, 3), false, OverscrollCompress, resolve)
	if got != frames[2] {
		t.Fatalf("p=1.6 frame = %+v, want %+v", got, frames[2])
	}
}
