// Package backend defines the terminal surface widgets render onto.
package backend

import "github.com/odvcencio/furry-tabs/terminal"

// Backend is a terminal that can draw cells and deliver input events.
type Backend interface {
	Init() error
	Fini()
	Size() (width, height int)
	SetContent(x, y int, mainc rune, combc []rune, style Style)
	Show()
	HideCursor()
	// PollEvent blocks until the next event. It returns nil after Fini.
	PollEvent() terminal.Event
}

// RowWriter is an optional optimization for bulk row updates.
type RowWriter interface {
	SetRow(y int, startX int, cells []Cell)
}

// Cell is one terminal cell. A zero Rune marks the trailing half of a wide rune.
type Cell struct {
	Rune  rune
	Style Style
}
