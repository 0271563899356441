package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/odvcencio/furry-tabs/backend"
	"github.com/odvcencio/furry-tabs/state"
)

// ErrNoBackend is returned by Run when the app has no backend.
var ErrNoBackend = errors.New("backend is required")

// UpdateFunc handles a message and returns true if a render is needed.
type UpdateFunc func(app *App, msg Message) bool

// CommandHandler handles commands the app does not handle itself.
// Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Widget
	Update         UpdateFunc
	CommandHandler CommandHandler
	MessageBuffer  int
	// TickRate drives TickMsg for animations. Zero disables ticks.
	TickRate    time.Duration
	StateQueue  *state.Queue
	FlushPolicy QueueFlushPolicy
	Logger      *slog.Logger
}

// App runs a widget tree against a terminal backend.
type App struct {
	backend        backend.Backend
	screen         *Screen
	root           Widget
	update         UpdateFunc
	commandHandler CommandHandler
	messages       chan Message
	tickRate       time.Duration
	stateQueue     *state.Queue
	queueScheduler *QueueScheduler
	flushPolicy    QueueFlushPolicy
	invalidator    *Invalidator
	logger         *slog.Logger

	taskCtx        context.Context
	taskCancel     context.CancelFunc
	pendingMu      sync.Mutex
	pendingEffects []Effect

	running atomic.Bool
	dirty   bool
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	queue := cfg.StateQueue
	if queue == nil {
		queue = state.NewQueue()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	app := &App{
		backend:        cfg.Backend,
		root:           cfg.Root,
		update:         cfg.Update,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, bufferSize),
		tickRate:       cfg.TickRate,
		stateQueue:     queue,
		flushPolicy:    cfg.FlushPolicy,
		logger:         logger,
	}
	if app.update == nil {
		app.update = DefaultUpdate
	}
	app.queueScheduler = NewQueueScheduler(queue, app.TryPost)
	app.invalidator = NewInvalidator(app.TryPost)
	app.screen = NewScreen(0, 0)
	app.screen.SetServices(app.Services())
	return app
}

// Screen returns the app screen.
func (a *App) Screen() *Screen {
	return a.screen
}

// StateQueue returns the app's state queue.
func (a *App) StateQueue() *state.Queue {
	return a.stateQueue
}

// Invalidate requests a render pass.
func (a *App) Invalidate() {
	a.invalidator.Invalidate()
}

// Spawn starts an effect using the app task context.
// Effects spawned before Run wait until it starts.
func (a *App) Spawn(effect Effect) {
	if effect.Run == nil {
		return
	}
	a.pendingMu.Lock()
	if a.taskCtx == nil {
		a.pendingEffects = append(a.pendingEffects, effect)
		a.pendingMu.Unlock()
		return
	}
	ctx := a.taskCtx
	a.pendingMu.Unlock()
	go effect.Run(ctx, a.TryPost)
}

// SetRoot swaps the root widget.
func (a *App) SetRoot(root Widget) {
	a.root = root
	a.screen.SetRoot(root)
	a.dirty = true
}

// Post sends a message to the event loop, dropping it when the loop is full.
func (a *App) Post(msg Message) {
	if !a.TryPost(msg) {
		a.logger.Warn("dropped message", slog.String("type", fmt.Sprintf("%T", msg)))
	}
}

// TryPost sends a message to the event loop without blocking.
func (a *App) TryPost(msg Message) bool {
	if a == nil || msg == nil {
		return false
	}
	select {
	case a.messages <- msg:
		return true
	default:
		return false
	}
}

// Run starts the event loop until Quit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return ErrNoBackend
	}
	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()
	a.backend.HideCursor()

	w, h := a.backend.Size()
	a.screen.Resize(w, h)
	if a.root != nil && a.screen.Root() != a.root {
		a.screen.SetRoot(a.root)
	}
	a.logger.Debug("app started", slog.Int("width", w), slog.Int("height", h))

	a.running.Store(true)
	a.render()
	a.startTasks(taskCtx, cancel)
	go a.pollEvents()

	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker := time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for a.running.Load() {
		var msg Message
		select {
		case <-ctx.Done():
			a.running.Store(false)
			continue
		case msg = <-a.messages:
		case now := <-ticks:
			msg = TickMsg{Time: now}
		}
		a.step(msg)
	}
	a.logger.Debug("app stopped")
	return ctx.Err()
}

// step runs one message through update, queue flushing and rendering.
func (a *App) step(msg Message) {
	if a.update(a, msg) {
		a.dirty = true
	}
	if !a.running.Load() {
		return
	}
	if a.flushPolicy.flushes(msg) {
		a.queueScheduler.wake.reset()
		if a.stateQueue.Flush() > 0 {
			a.dirty = true
		}
	}
	if _, ok := msg.(InvalidateMsg); ok {
		a.invalidator.wake.reset()
	}
	if a.dirty {
		a.render()
		a.dirty = false
	}
}

// DefaultUpdate handles input messages and widget commands.
func DefaultUpdate(app *App, msg Message) bool {
	switch m := msg.(type) {
	case ResizeMsg:
		app.screen.Resize(m.Width, m.Height)
		return true
	case QueueFlushMsg:
		return false
	case InvalidateMsg:
		return true
	}
	return app.Dispatch(msg)
}

// Dispatch routes msg through the screen and handles resulting commands.
func (a *App) Dispatch(msg Message) bool {
	result := a.screen.HandleMessage(msg)
	dirty := result.Handled
	for _, cmd := range result.Commands {
		if a.ExecuteCommand(cmd) {
			dirty = true
		}
	}
	return dirty
}

// ExecuteCommand runs a command through the app.
func (a *App) ExecuteCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case Quit:
		a.running.Store(false)
		a.cancelTasks()
		return false
	case Refresh:
		a.screen.Buffer().MarkAllDirty()
		return true
	case SendMsg:
		if c.Message != nil {
			a.Post(c.Message)
		}
		return false
	case Effect:
		a.Spawn(c)
		return false
	}
	if a.commandHandler != nil {
		return a.commandHandler(cmd)
	}
	return false
}

func (a *App) pollEvents() {
	for a.running.Load() {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}
		if msg := messageFromEvent(ev); msg != nil {
			a.Post(msg)
		}
	}
}

func (a *App) render() {
	if a.backend == nil {
		return
	}
	a.screen.Render()
	buf := a.screen.Buffer()
	if !buf.IsDirty() {
		return
	}
	cells := buf.Cells()
	w, _ := buf.Size()
	rows, hasRows := a.backend.(backend.RowWriter)
	buf.ForEachDirtySpan(func(y, startX, endX int) {
		row := cells[y*w+startX : y*w+endX]
		if hasRows {
			rows.SetRow(y, startX, row)
			return
		}
		for i, cell := range row {
			a.backend.SetContent(startX+i, y, cell.Rune, nil, cell.Style)
		}
	})
	buf.ClearDirty()
	a.backend.Show()
}

func (a *App) startTasks(ctx context.Context, cancel context.CancelFunc) {
	a.pendingMu.Lock()
	a.taskCtx, a.taskCancel = ctx, cancel
	effects := a.pendingEffects
	a.pendingEffects = nil
	a.pendingMu.Unlock()
	for _, effect := range effects {
		go effect.Run(ctx, a.TryPost)
	}
}

func (a *App) cancelTasks() {
	a.pendingMu.Lock()
	cancel := a.taskCancel
	a.pendingMu.Unlock()
	if cancel != nil {
		cancel()
	}
}
