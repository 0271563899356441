package backend

import "testing"

func TestStyleBuilders(t *testing.T) {
	base := DefaultStyle()
	s := base.Foreground(ColorRed).Background(ColorRGB(1, 2, 3)).Bold(true).Italic(true)
	if base != DefaultStyle() {
		t.Fatalf("builder mutated receiver")
	}
	if s.Fg() != ColorRed {
		t.Fatalf("fg = %v, want red", s.Fg())
	}
	if s.Attrs() != AttrBold|AttrItalic {
		t.Fatalf("attrs = %b, want bold|italic", s.Attrs())
	}
	if s.Bold(false).Attrs() != AttrItalic {
		t.Fatalf("bold(false) attrs = %b, want italic", s.Bold(false).Attrs())
	}
	r, g, b := s.Bg().RGB()
	if !s.Bg().IsRGB() || r != 1 || g != 2 || b != 3 {
		t.Fatalf("bg = %d,%d,%d rgb=%v, want 1,2,3", r, g, b, s.Bg().IsRGB())
	}
}

func TestColorPalette(t *testing.T) {
	if idx, ok := ColorBrightWhite.Palette(); !ok || idx != 15 {
		t.Fatalf("bright white = %d %v, want 15 true", idx, ok)
	}
	if _, ok := ColorRGB(0, 0, 0).Palette(); ok {
		t.Fatalf("rgb black reported as palette")
	}
	if !ColorDefault.IsDefault() || ColorBlack.IsDefault() {
		t.Fatalf("default detection wrong")
	}
}
