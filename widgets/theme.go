package widgets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/odvcencio/furry-tabs/backend"
	"github.com/odvcencio/furry-tabs/tabbar"
)

// ErrUnknownTheme is returned when a chroma style name is not registered.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is the palette a tab bar draws with. Unselected buttons use Muted,
// selected ones Selected, and partially selected ones a blend of the two.
type Theme struct {
	Background backend.Color
	Foreground backend.Color
	Muted      backend.Color
	Selected   backend.Color
	Indicator  backend.Color
	Accent     backend.Color
	Code       backend.Color
}

// DefaultTheme returns a dark palette.
func DefaultTheme() Theme {
	return Theme{
		Background: backend.ColorRGB(0x1e, 0x1e, 0x2e),
		Foreground: backend.ColorRGB(0xcd, 0xd6, 0xf4),
		Muted:      backend.ColorRGB(0x6c, 0x70, 0x86),
		Selected:   backend.ColorRGB(0xf5, 0xe0, 0xdc),
		Indicator:  backend.ColorRGB(0x89, 0xb4, 0xfa),
		Accent:     backend.ColorRGB(0xf3, 0x8b, 0xa8),
		Code:       backend.ColorRGB(0xa6, 0xe3, 0xa1),
	}
}

// ThemeFromChroma derives a palette from a registered chroma style.
func ThemeFromChroma(name string) (Theme, error) {
	style, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	theme := DefaultTheme()
	bg := style.Get(chroma.Background)
	if bg.Background.IsSet() {
		theme.Background = chromaColor(bg.Background)
	}
	if bg.Colour.IsSet() {
		theme.Foreground = chromaColor(bg.Colour)
		theme.Selected = theme.Foreground
	}
	pick := func(dst *backend.Color, tokens ...chroma.TokenType) {
		for _, tt := range tokens {
			if entry := style.Get(tt); entry.Colour.IsSet() {
				*dst = chromaColor(entry.Colour)
				return
			}
		}
	}
	pick(&theme.Muted, chroma.Comment, chroma.CommentSingle)
	pick(&theme.Indicator, chroma.Keyword, chroma.NameFunction)
	pick(&theme.Accent, chroma.NameFunction, chroma.LiteralNumber)
	pick(&theme.Code, chroma.LiteralString, chroma.LiteralStringDouble)
	return theme, nil
}

// ThemeNames lists the registered chroma styles.
func ThemeNames() []string {
	return styles.Names()
}

// ButtonStyle returns the label style for an interpolated selection state.
// Emphasized buttons are bold.
func (t Theme) ButtonStyle(state tabbar.ButtonState) backend.Style {
	style := backend.DefaultStyle().
		Foreground(Blend(t.Muted, t.Selected, state.Weight)).
		Background(t.Background)
	if state.Emphasized {
		style = style.Bold(true)
	}
	return style
}

// BarStyle is the style of empty bar cells.
func (t Theme) BarStyle() backend.Style {
	return backend.DefaultStyle().Foreground(t.Foreground).Background(t.Background)
}

// IndicatorStyle is the style of indicator cells.
func (t Theme) IndicatorStyle() backend.Style {
	return backend.DefaultStyle().Foreground(t.Indicator).Background(t.Background)
}

// Fade blends a cell style's foreground toward the background by amount.
func (t Theme) Fade(style backend.Style, amount float64) backend.Style {
	fg := style.Fg()
	if fg.IsDefault() {
		fg = t.Foreground
	}
	return style.Foreground(Blend(fg, t.Background, amount))
}

// Blend interpolates two colors in Lab space. When either side is the
// terminal default the nearer endpoint wins.
func Blend(from, to backend.Color, weight float64) backend.Color {
	switch {
	case weight <= 0:
		return from
	case weight >= 1:
		return to
	}
	a, okA := toColorful(from)
	b, okB := toColorful(to)
	if !okA || !okB {
		if weight < 0.5 {
			return from
		}
		return to
	}
	r, g, bl := a.BlendLab(b, weight).Clamped().RGB255()
	return backend.ColorRGB(r, g, bl)
}

func chromaColor(c chroma.Colour) backend.Color {
	return backend.ColorRGB(c.Red(), c.Green(), c.Blue())
}

// xterm defaults for the sixteen palette colors.
var paletteRGB = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0xcd, 0x00, 0x00}, {0x00, 0xcd, 0x00}, {0xcd, 0xcd, 0x00},
	{0x00, 0x00, 0xee}, {0xcd, 0x00, 0xcd}, {0x00, 0xcd, 0xcd}, {0xe5, 0xe5, 0xe5},
	{0x7f, 0x7f, 0x7f}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x5c, 0x5c, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

func toColorful(c backend.Color) (colorful.Color, bool) {
	if c.IsRGB() {
		r, g, b := c.RGB()
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
	}
	if idx, ok := c.Palette(); ok && idx < len(paletteRGB) {
		rgb := paletteRGB[idx]
		return colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}, true
	}
	return colorful.Color{}, false
}
