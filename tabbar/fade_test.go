package tabbar

import "testing"

func TestEdgeFade(t *testing.T) {
	tests := []struct {
		name              string
		offset, lo, hi, w float64
		leading, trailing float64
	}{
		{name: "at start", offset: 0, lo: 0, hi: 20, w: 4, leading: 0, trailing: 1},
		{name: "partly scrolled", offset: 2, lo: 0, hi: 20, w: 4, leading: 0.5, trailing: 1},
		{name: "near end", offset: 19, lo: 0, hi: 20, w: 4, leading: 1, trailing: 0.25},
		{name: "at end", offset: 20, lo: 0, hi: 20, w: 4, leading: 1, trailing: 0},
		{name: "no scroll range", offset: -3, lo: -3, hi: -3, w: 4, leading: 0, trailing: 0},
		{name: "fading off", offset: 5, lo: 0, hi: 20, w: 0, leading: 0, trailing: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leading, trailing := EdgeFade(tt.offset, tt.lo, tt.hi, tt.w)
			if leading != tt.leading || trailing != tt.trailing {
				t.Fatalf("EdgeFade = %v, %v, want %v, %v", leading, trailing, tt.leading, tt.trailing)
			}
		})
	}
}
