// Package agent drives an application headlessly for tests and scripted
// interaction. It runs the app on a tcell simulation screen, injects keys
// and clicks, and reads back what was drawn.
package agent

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	backendtcell "github.com/odvcencio/furry-tabs/backend/tcell"
	"github.com/odvcencio/furry-tabs/runtime"
)

// Common errors returned by Agent methods.
var (
	ErrTextNotFound = errors.New("text not found")
	ErrTimeout      = errors.New("operation timed out")
	ErrNotRunning   = errors.New("agent is not running")
	ErrRunning      = errors.New("agent is already running")
)

// Agent runs one application on a simulated terminal.
type Agent struct {
	mu       sync.Mutex
	app      *runtime.App
	sim      tcell.SimulationScreen
	tickRate time.Duration
	cancel   context.CancelFunc
	done     chan error
}

// Config configures an Agent.
type Config struct {
	// Root is the widget tree to run.
	Root runtime.Widget

	// Update replaces runtime.DefaultUpdate when set.
	Update runtime.UpdateFunc

	// Width and Height set the terminal dimensions (default 80x24).
	Width, Height int

	// FrameRate is the app tick interval driving animations. Zero disables
	// ticks.
	FrameRate time.Duration

	// TickRate is how long to wait between operations for the UI to settle.
	// Default is 20ms.
	TickRate time.Duration
}

// New creates an agent. The app does not run until Start.
func New(cfg Config) *Agent {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 20 * time.Millisecond
	}

	sim := tcell.NewSimulationScreen("")
	be := &sizedBackend{Backend: backendtcell.NewWithScreen(sim), sim: sim, width: width, height: height}
	app := runtime.NewApp(runtime.AppConfig{
		Backend:  be,
		Root:     cfg.Root,
		Update:   cfg.Update,
		TickRate: cfg.FrameRate,
	})
	return &Agent{app: app, sim: sim, tickRate: tickRate}
}

// sizedBackend fixes the simulated size at Init, before the app reads it.
type sizedBackend struct {
	*backendtcell.Backend
	sim           tcell.SimulationScreen
	width, height int
}

func (b *sizedBackend) Init() error {
	if err := b.Backend.Init(); err != nil {
		return err
	}
	b.sim.SetSize(b.width, b.height)
	return nil
}

// App returns the driven application.
func (a *Agent) App() *runtime.App { return a.app }

// Start runs the app loop in the background.
func (a *Agent) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done != nil {
		return ErrRunning
	}
	ctx, a.cancel = context.WithCancel(ctx)
	a.done = make(chan error, 1)
	go func(done chan<- error) {
		done <- a.app.Run(ctx)
	}(a.done)
	return nil
}

// Stop ends the app loop and waits for it to exit. A canceled run is not an
// error.
func (a *Agent) Stop() error {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done = nil, nil
	a.mu.Unlock()
	if done == nil {
		return ErrNotRunning
	}
	cancel()
	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Tick waits for the UI to process pending events.
func (a *Agent) Tick() {
	time.Sleep(a.tickRate)
}

// SendKey injects a key press.
func (a *Agent) SendKey(key tcell.Key, r rune) {
	a.sim.InjectKey(key, r, tcell.ModNone)
}

// Type injects each rune of text as a key press.
func (a *Agent) Type(text string) {
	for _, r := range text {
		a.SendKey(tcell.KeyRune, r)
	}
}

// Click presses and releases the left button at x, y.
func (a *Agent) Click(x, y int) {
	a.sim.InjectMouse(x, y, tcell.Button1, tcell.ModNone)
	a.sim.InjectMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

// Scroll injects one wheel step at x, y. Positive steps scroll down.
func (a *Agent) Scroll(x, y, steps int) {
	button := tcell.WheelDown
	if steps < 0 {
		button, steps = tcell.WheelUp, -steps
	}
	for range steps {
		a.sim.InjectMouse(x, y, button, tcell.ModNone)
	}
}

// ClickText clicks the middle of the first occurrence of text.
func (a *Agent) ClickText(text string) error {
	x, y := a.FindText(text)
	if x < 0 {
		return ErrTextNotFound
	}
	a.Click(x+len([]rune(text))/2, y)
	return nil
}

// Snapshot captures what the simulated terminal currently shows.
func (a *Agent) Snapshot() Snapshot {
	width, height := a.sim.Size()
	snap := Snapshot{Timestamp: time.Now(), Width: width, Height: height}
	snap.Lines = make([]string, height)
	for y := range height {
		var row strings.Builder
		for x := 0; x < width; {
			mainc, _, _, w := a.sim.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			row.WriteRune(mainc)
			x += max(1, w)
		}
		snap.Lines[y] = row.String()
	}
	snap.Text = strings.Join(snap.Lines, "\n")
	return snap
}

// CaptureText returns the screen as newline separated rows.
func (a *Agent) CaptureText() string {
	return a.Snapshot().Text
}

// ContainsText reports whether text appears on any row.
func (a *Agent) ContainsText(text string) bool {
	x, _ := a.FindText(text)
	return x >= 0
}

// FindText returns the cell position of text on screen, or (-1, -1).
func (a *Agent) FindText(text string) (x, y int) {
	return a.Snapshot().Find(text)
}

// WaitForText polls the screen until text appears or timeout passes.
func (a *Agent) WaitForText(text string, timeout time.Duration) error {
	return a.WaitFor(func(s Snapshot) bool {
		x, _ := s.Find(text)
		return x >= 0
	}, timeout)
}

// WaitFor polls until cond holds for a snapshot or timeout passes.
func (a *Agent) WaitFor(cond func(Snapshot) bool, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if cond(a.Snapshot()) {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		a.Tick()
	}
}
