package backend

// Color is a terminal color. The zero value is the terminal default.
type Color uint32

const (
	colorPalette Color = 1 << 24
	colorRGB     Color = 1 << 25
)

// ColorDefault leaves the terminal color unchanged.
const ColorDefault Color = 0

// The sixteen ANSI palette colors.
const (
	ColorBlack Color = colorPalette | iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// ColorRGB returns a 24-bit color.
func ColorRGB(r, g, b uint8) Color {
	return colorRGB | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool { return c == ColorDefault }

// IsRGB reports whether c is a 24-bit color.
func (c Color) IsRGB() bool { return c&colorRGB != 0 }

// Palette returns the ANSI palette index and true for palette colors.
func (c Color) Palette() (int, bool) {
	if c&colorPalette == 0 {
		return 0, false
	}
	return int(c & 0xff), true
}

// RGB returns the components of a 24-bit color.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// AttrMask is a set of text attributes.
type AttrMask uint8

const (
	AttrBold AttrMask = 1 << iota
	AttrDim
	AttrItalic
	AttrReverse
	AttrUnderline
)

// Style is an immutable cell style. Builder methods return a modified copy.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle returns the terminal default style.
func DefaultStyle() Style { return Style{} }

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// Bold toggles bold text.
func (s Style) Bold(on bool) Style { return s.attr(AttrBold, on) }

// Dim toggles dim text.
func (s Style) Dim(on bool) Style { return s.attr(AttrDim, on) }

// Italic toggles italic text.
func (s Style) Italic(on bool) Style { return s.attr(AttrItalic, on) }

// Reverse toggles reverse video.
func (s Style) Reverse(on bool) Style { return s.attr(AttrReverse, on) }

// Underline toggles underlined text.
func (s Style) Underline(on bool) Style { return s.attr(AttrUnderline, on) }

func (s Style) attr(mask AttrMask, on bool) Style {
	if on {
		s.attrs |= mask
	} else {
		s.attrs &^= mask
	}
	return s
}

// Fg returns the foreground color.
func (s Style) Fg() Color { return s.fg }

// Bg returns the background color.
func (s Style) Bg() Color { return s.bg }

// Attrs returns the attribute set.
func (s Style) Attrs() AttrMask { return s.attrs }
