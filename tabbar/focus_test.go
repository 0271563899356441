package tabbar

import "testing"

func equalFrames(n int, width float64) []Rect {
	frames := make([]Rect, n)
	for i := range frames {
		frames[i] = NewRect(float64(i)*width, 0, width, 1)
	}
	return frames
}

func TestFocusRectForWholePosition(t *testing.T) {
	frames := equalFrames(5, 10)
	focus := FocusRectFor(frames, 2, 5)
	if focus.Rect != frames[2] {
		t.Fatalf("focus = %+v, want %+v", focus.Rect, frames[2])
	}
}

func TestFocusRectForMidpoint(t *testing.T) {
	frames := equalFrames(5, 10)
	focus := FocusRectFor(frames, 2.5, 5)
	want := NewRect(25, 0, 10, 1)
	if focus.Rect != want {
		t.Fatalf("focus = %+v, want %+v", focus.Rect, want)
	}
}

func TestFocusRectForBlendsWidth(t *testing.T) {
	frames := []Rect{NewRect(0, 0, 10, 1), NewRect(10, 0, 20, 1)}
	focus := FocusRectFor(frames, 0.5, 2)
	if !approx(focus.MinX(), 5) || !approx(focus.Width(), 15) {
		t.Fatalf("focus = %+v, want x=5 width=15", focus.Rect)
	}
}

func TestFocusRectForClampsToEdges(t *testing.T) {
	frames := equalFrames(3, 10)
	if got := FocusRectFor(frames, -0.4, 3); got.Rect != frames[0] {
		t.Fatalf("leading overscroll = %+v, want %+v", got.Rect, frames[0])
	}
	got := FocusRectFor(frames, 7, 3)
	if got.Rect != frames[2] {
		t.Fatalf("trailing overscroll = %+v, want %+v", got.Rect, frames[2])
	}
	if got.Position != 7 {
		t.Fatalf("raw position = %v, want 7", got.Position)
	}
}

func TestFocusRectForCapacity(t *testing.T) {
	frames := equalFrames(5, 10)
	if got := FocusRectFor(frames, 4, 2); got.Rect != frames[1] {
		t.Fatalf("capacity 2 focus = %+v, want %+v", got.Rect, frames[1])
	}
	if got := FocusRectFor(frames, 1, 0); !got.IsZero() {
		t.Fatalf("capacity 0 focus = %+v, want zero", got.Rect)
	}
	if got := FocusRectFor(nil, 1, 3); !got.IsZero() {
		t.Fatalf("empty frames focus = %+v, want zero", got.Rect)
	}
	if got := FocusRectFor(frames, 9, 20); got.Rect != frames[4] {
		t.Fatalf("oversized capacity focus = %+v, want %+v", got.Rect, frames[4])
	}
}

func TestLayoutButtonsIntrinsic(t *testing.T) {
	frames, size := LayoutButtons([]Size{{Width: 4, Height: 1}, {Width: 6, Height: 2}}, 1, ContentIntrinsic, 100)
	if len(frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(frames))
	}
	if frames[1].MinX() != 5 || frames[1].Width() != 6 {
		t.Fatalf("second frame = %+v, want x=5 width=6", frames[1])
	}
	if size != (Size{Width: 11, Height: 2}) {
		t.Fatalf("size = %+v, want 11x2", size)
	}
	if frames[0].Size.Height != 2 {
		t.Fatalf("frame height = %v, want row height 2", frames[0].Size.Height)
	}
}

func TestLayoutButtonsFit(t *testing.T) {
	sizes := []Size{{Width: 4, Height: 1}, {Width: 20, Height: 1}, {Width: 1, Height: 1}}
	frames, size := LayoutButtons(sizes, 3, ContentFit, 36)
	for i, frame := range frames {
		if frame.Width() != 10 {
			t.Fatalf("frame %d width = %v, want 10", i, frame.Width())
		}
	}
	if size.Width != 36 {
		t.Fatalf("width = %v, want 36", size.Width)
	}

	frames, _ = LayoutButtons(sizes, 3, ContentFit, 0)
	if frames[1].Width() != 20 {
		t.Fatalf("fit without room width = %v, want intrinsic 20", frames[1].Width())
	}
}
