package widgets

import (
	"errors"
	"testing"

	"github.com/odvcencio/furry-tabs/backend"
	"github.com/odvcencio/furry-tabs/tabbar"
)

func TestBlend(t *testing.T) {
	black := backend.ColorRGB(0, 0, 0)
	white := backend.ColorRGB(255, 255, 255)
	if got := Blend(black, white, 0); got != black {
		t.Fatalf("blend 0 = %v, want black", got)
	}
	if got := Blend(black, white, 1); got != white {
		t.Fatalf("blend 1 = %v, want white", got)
	}
	mid := Blend(black, white, 0.5)
	if r, _, _ := mid.RGB(); !mid.IsRGB() || r == 0 || r == 255 {
		t.Fatalf("blend 0.5 = %v, want a grey between the endpoints", mid)
	}
	if got := Blend(backend.ColorRed, white, 0.5); !got.IsRGB() {
		t.Fatalf("palette colors should blend through their rgb values")
	}
	if got := Blend(backend.ColorDefault, white, 0.4); got != backend.ColorDefault {
		t.Fatalf("default blend below half = %v, want default", got)
	}
	if got := Blend(backend.ColorDefault, white, 0.6); got != white {
		t.Fatalf("default blend above half = %v, want white", got)
	}
}

func TestButtonStyle(t *testing.T) {
	theme := DefaultTheme()
	off := theme.ButtonStyle(tabbar.ButtonState{})
	on := theme.ButtonStyle(tabbar.ButtonState{Selection: tabbar.Selected, Weight: 1, Emphasized: true})
	if off.Fg() != theme.Muted || on.Fg() != theme.Selected {
		t.Fatalf("fg = %v/%v, want muted/selected", off.Fg(), on.Fg())
	}
	if off.Attrs()&backend.AttrBold != 0 || on.Attrs()&backend.AttrBold == 0 {
		t.Fatalf("only the emphasized button is bold")
	}
}

func TestThemeFromChroma(t *testing.T) {
	theme, err := ThemeFromChroma("Monokai")
	if err != nil {
		t.Fatalf("monokai: %v", err)
	}
	if theme.Background == DefaultTheme().Background {
		t.Fatalf("background not taken from the style")
	}
	if _, err := ThemeFromChroma("no-such-style"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("err = %v, want ErrUnknownTheme", err)
	}
	if len(ThemeNames()) == 0 {
		t.Fatalf("no registered themes")
	}
}
