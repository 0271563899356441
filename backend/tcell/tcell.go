// Package tcell adapts a tcell screen to backend.Backend.
package tcell

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/odvcencio/furry-tabs/backend"
	"github.com/odvcencio/furry-tabs/terminal"
)

// Backend draws through a tcell screen.
type Backend struct {
	screen tcell.Screen
}

// New creates a backend on the controlling terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an existing screen, such as a simulation screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Screen returns the wrapped screen.
func (b *Backend) Screen() tcell.Screen { return b.screen }

func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init tcell screen: %w", err)
	}
	b.screen.EnableMouse()
	b.screen.Clear()
	return nil
}

func (b *Backend) Fini() { b.screen.Fini() }

func (b *Backend) Size() (int, int) { return b.screen.Size() }

func (b *Backend) SetContent(x, y int, mainc rune, combc []rune, style backend.Style) {
	if mainc == 0 {
		// trailing half of a wide rune, already drawn by its leading cell
		return
	}
	b.screen.SetContent(x, y, mainc, combc, convertStyle(style))
}

// SetRow writes a contiguous run of cells on one row.
func (b *Backend) SetRow(y int, startX int, cells []backend.Cell) {
	for i, cell := range cells {
		b.SetContent(startX+i, y, cell.Rune, nil, cell.Style)
	}
}

func (b *Backend) Show() { b.screen.Show() }

func (b *Backend) HideCursor() { b.screen.HideCursor() }

func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if translated := convertEvent(ev); translated != nil {
			return translated
		}
	}
}

func convertStyle(s backend.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(s.Fg())).
		Background(convertColor(s.Bg()))
	attrs := s.Attrs()
	if attrs&backend.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&backend.AttrDim != 0 {
		style = style.Dim(true)
	}
	if attrs&backend.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&backend.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&backend.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	return style
}

func convertColor(c backend.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	if idx, ok := c.Palette(); ok {
		return tcell.PaletteColor(idx)
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

var keyMap = map[tcell.Key]terminal.Key{
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyCtrlC:      terminal.KeyCtrlC,
}

func convertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		mods := e.Modifiers()
		key := terminal.KeyEvent{
			Alt:   mods&tcell.ModAlt != 0,
			Ctrl:  mods&tcell.ModCtrl != 0,
			Shift: mods&tcell.ModShift != 0,
		}
		if e.Key() == tcell.KeyRune {
			key.Key = terminal.KeyRune
			key.Rune = e.Rune()
			return key
		}
		mapped, ok := keyMap[e.Key()]
		if !ok {
			return nil
		}
		key.Key = mapped
		return key
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tcell.EventMouse:
		return convertMouse(e)
	}
	return nil
}

func convertMouse(e *tcell.EventMouse) terminal.Event {
	x, y := e.Position()
	mods := e.Modifiers()
	mouse := terminal.MouseEvent{
		X:      x,
		Y:      y,
		Action: terminal.MousePress,
		Alt:    mods&tcell.ModAlt != 0,
		Ctrl:   mods&tcell.ModCtrl != 0,
		Shift:  mods&tcell.ModShift != 0,
	}
	buttons := e.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		mouse.Button = terminal.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		mouse.Button = terminal.MouseWheelDown
	case buttons&tcell.WheelLeft != 0:
		mouse.Button = terminal.MouseWheelLeft
	case buttons&tcell.WheelRight != 0:
		mouse.Button = terminal.MouseWheelRight
	case buttons&tcell.Button1 != 0:
		mouse.Button = terminal.MouseLeft
	case buttons&tcell.Button3 != 0:
		mouse.Button = terminal.MouseMiddle
	case buttons&tcell.Button2 != 0:
		mouse.Button = terminal.MouseRight
	default:
		mouse.Action = terminal.MouseMove
	}
	return mouse
}
