package scroll

import "testing"

func TestViewportClampOffset(t *testing.T) {
	v := NewViewport()
	v.SetRange(-4, 20)

	v.SetContentOffset(100)
	if got := v.Offset(); got != 20 {
		t.Fatalf("offset clamp = %v, want 20", got)
	}
	v.SetContentOffset(-50)
	if got := v.Offset(); got != -4 {
		t.Fatalf("offset clamp negative = %v, want -4", got)
	}

	v.SetRange(5, 1)
	if lo, hi := v.Range(); lo != 5 || hi != 5 || v.Offset() != 5 {
		t.Fatalf("inverted range = [%v, %v] offset %v, want collapsed to 5", lo, hi, v.Offset())
	}
}

func TestViewportOnChange(t *testing.T) {
	v := NewViewport()
	v.SetRange(0, 10)
	var seen []float64
	v.SetOnChange(func(x float64) { seen = append(seen, x) })

	v.ScrollBy(3)
	v.ScrollBy(0)
	v.SetContentOffset(3)
	if len(seen) != 1 || seen[0] != 3 {
		t.Fatalf("changes = %v, want [3]", seen)
	}
	if leading, trailing := v.CanScroll(); !leading || !trailing {
		t.Fatalf("can scroll = %v/%v, want true/true", leading, trailing)
	}
}

func TestViewportColumns(t *testing.T) {
	v := NewViewport()
	v.SetRange(0, 40)
	v.SetContentOffset(10.4)
	if got := v.Column(2, 12); got != 4 {
		t.Fatalf("column = %d, want 4", got)
	}
	c0, c1 := v.Span(0, 20, 30)
	_, d1 := v.Span(0, 10, 20)
	if d1 != c0 || c1-c0 != 10 {
		t.Fatalf("spans [%d %d) after [.. %d) overlap or resize", c0, c1, d1)
	}
}
