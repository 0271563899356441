package tabbar

import (
	"log/slog"
	"math"
	"time"
)

// ScrollMode controls whether the bar content can be scrolled directly.
type ScrollMode int

const (
	// ScrollInteractive allows ScrollBy between updates.
	ScrollInteractive ScrollMode = iota
	// ScrollNone ignores ScrollBy.
	ScrollNone
)

// Snapshot is the geometry applied by the most recent update.
// Slices are shared with the bar and must not be modified.
type Snapshot struct {
	Focus          FocusRect
	IndicatorFrame Rect
	// ButtonFrames are in scroll content coordinates.
	ButtonFrames  []Rect
	States        []ButtonState
	ContentOffset float64
	MinOffset     float64
	MaxOffset     float64
	ContentSize   Size
	ContentInset  EdgeInsets
	accessories   [accessoryLocationCount]Rect
}

// AccessoryFrame returns the frame of an accessory slot. Pinned slots are in
// bar coordinates, the others in scroll content coordinates.
func (s Snapshot) AccessoryFrame(loc AccessoryLocation) Rect {
	loc.check()
	return s.accessories[loc]
}

// ViewportMinX returns where the scrolling region starts in bar coordinates.
func (s Snapshot) ViewportMinX() float64 {
	return s.accessories[AccessoryLeadingPinned].MaxX()
}

// Bar is the position-to-layout engine for one tab bar.
// All methods must be called from a single goroutine.
type Bar struct {
	items     *ItemCollection
	source    DataSource
	indicator Indicator
	scroller  Scroller
	animator  Animator
	logger    *slog.Logger
	accessory accessories

	alignment      AlignmentMode
	style          AnimationStyle
	indicatorStyle IndicatorStyle
	spacing        float64
	contentMode    ContentMode
	scrollMode     ScrollMode
	contentInset   EdgeInsets
	safeArea       EdgeInsets
	bounds         Size

	// indicatedPosition is set by every update and read only when a
	// geometry change replays the last position.
	indicatedPosition *float64

	snapshot Snapshot
}

// NewBar creates a bar whose buttons come from factory.
func NewBar(factory ButtonFactory, opts ...Option) *Bar {
	b := &Bar{
		items:          NewItemCollection(factory),
		animator:       immediateAnimator{},
		logger:         slog.Default(),
		indicatorStyle: DefaultIndicatorStyle(),
	}
	b.items.SetWatch(b.watchItem)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Update lays the bar out for position and applies the result.
func (b *Bar) Update(position float64, capacity int, direction Direction, animation Animation) {
	b.update(position, capacity, direction, animation, false)
}

// Reload applies a reload range from the data source and replays the last
// position without animation.
func (b *Bar) Reload(lower, upper int, context ReloadContext) {
	b.items.Reload(lower, upper, context, b.source)
	b.logger.Debug("reloaded bar items",
		slog.String("context", context.String()),
		slog.Int("lower", lower),
		slog.Int("upper", upper),
		slog.Int("count", b.items.Len()),
	)
	b.invalidate("reload")
}

// ReloadAll rebuilds every item from the data source.
func (b *Bar) ReloadAll() {
	if b.source == nil {
		panic("tabbar: reload without a data source")
	}
	count := b.source.ItemCount()
	if count <= 0 {
		b.items.removeRange(0, b.items.Len()-1)
		b.logger.Debug("cleared bar items")
		b.invalidate("reload")
		return
	}
	b.Reload(0, count-1, ReloadFull)
}

// InvalidateLayout replays the last position after button sizes changed.
func (b *Bar) InvalidateLayout() {
	b.invalidate("layout")
}

// ScrollBy moves the content offset directly, clamped to the valid range.
// It reports whether the offset changed.
func (b *Bar) ScrollBy(dx float64) bool {
	if b.scrollMode == ScrollNone || dx == 0 {
		return false
	}
	x := clamp(b.snapshot.ContentOffset+dx, b.snapshot.MinOffset, b.snapshot.MaxOffset)
	if x == b.snapshot.ContentOffset {
		return false
	}
	b.animator.PerformWithoutAnimation(func() {
		if b.scroller != nil {
			b.scroller.SetContentOffset(x)
		}
		b.snapshot.ContentOffset = x
	})
	return true
}

// ButtonIndexAt returns the button under x, measured from the bar's leading
// edge, or -1.
func (b *Bar) ButtonIndexAt(x float64) int {
	snap := b.snapshot
	if x < snap.ViewportMinX() || x >= b.bounds.Width-snap.accessories[AccessoryTrailingPinned].Width() {
		return -1
	}
	contentX := x - snap.ViewportMinX() + snap.ContentOffset
	for i, frame := range snap.ButtonFrames {
		if frame.ContainsX(contentX) {
			return i
		}
	}
	return -1
}

// Snapshot returns the most recently applied geometry.
func (b *Bar) Snapshot() Snapshot {
	return b.snapshot
}

// IndicatedPosition returns the last updated position, if any.
func (b *Bar) IndicatedPosition() (float64, bool) {
	if b.indicatedPosition == nil {
		return 0, false
	}
	return *b.indicatedPosition, true
}

// ItemCount returns the number of items.
func (b *Bar) ItemCount() int { return b.items.Len() }

// Item returns the item at index.
func (b *Bar) Item(index int) *Item { return b.items.Item(index) }

// Button returns the button at index.
func (b *Bar) Button(index int) Button { return b.items.Button(index) }

// Buttons returns all buttons in order.
func (b *Bar) Buttons() []Button { return b.items.Buttons() }

// Bounds returns the bar size.
func (b *Bar) Bounds() Size { return b.bounds }

// Accessory returns the accessory in a slot.
func (b *Bar) Accessory(loc AccessoryLocation) Measurable {
	loc.check()
	return b.accessory[loc]
}

// SetAccessory fills or clears (nil) an accessory slot.
func (b *Bar) SetAccessory(loc AccessoryLocation, accessory Measurable) {
	loc.check()
	b.accessory[loc] = accessory
	b.invalidate("accessory")
}

// SetBounds updates the bar size.
func (b *Bar) SetBounds(size Size) {
	if b.bounds == size {
		return
	}
	b.bounds = size
	b.invalidate("bounds")
}

// SetSafeAreaInsets updates the safe area.
func (b *Bar) SetSafeAreaInsets(insets EdgeInsets) {
	if b.safeArea == insets {
		return
	}
	b.safeArea = insets
	b.invalidate("safe area")
}

// SetContentInset updates the explicit content inset.
func (b *Bar) SetContentInset(insets EdgeInsets) {
	if b.contentInset == insets {
		return
	}
	b.contentInset = insets
	b.invalidate("content inset")
}

// Alignment returns the alignment mode.
func (b *Bar) Alignment() AlignmentMode { return b.alignment }

// SetAlignment switches alignment and recomputes the insets.
func (b *Bar) SetAlignment(mode AlignmentMode) {
	if b.alignment == mode {
		return
	}
	b.alignment = mode
	b.invalidate("alignment")
}

// SetAnimationStyle switches between progressive and snap updates.
func (b *Bar) SetAnimationStyle(style AnimationStyle) {
	b.style = style
}

// SetIndicatorStyle updates indicator placement.
func (b *Bar) SetIndicatorStyle(style IndicatorStyle) {
	if b.indicatorStyle == style {
		return
	}
	b.indicatorStyle = style
	b.invalidate("indicator style")
}

// SetInterButtonSpacing updates the gap between buttons.
func (b *Bar) SetInterButtonSpacing(spacing float64) {
	if b.spacing == spacing {
		return
	}
	b.spacing = spacing
	b.invalidate("spacing")
}

// SetContentMode updates how button widths are chosen.
func (b *Bar) SetContentMode(mode ContentMode) {
	if b.contentMode == mode {
		return
	}
	b.contentMode = mode
	b.invalidate("content mode")
}

// SetScrollMode updates whether ScrollBy is honored.
func (b *Bar) SetScrollMode(mode ScrollMode) {
	b.scrollMode = mode
}

func (b *Bar) update(position float64, capacity int, direction Direction, animation Animation, replay bool) {
	if math.IsNaN(position) || math.IsInf(position, 0) {
		position = 0
	}
	effective, animate := Adapt(position, b.style, animation.Enabled)
	if replay {
		animate = false
	}

	g := b.geometry()
	resolve := func(p float64, c int) FocusRect {
		return FocusRectFor(g.frames, p, c)
	}
	focus := resolve(effective, capacity)
	indicator := IndicatorFrame(focus, b.indicatorStyle.Progressive, b.indicatorStyle.Overscroll, resolve)

	count := b.items.Len()
	active := min(capacity, count)
	var states []ButtonState
	if active > 0 {
		states = ButtonStates(clampPosition(effective, active), count, direction)
	} else {
		states = make([]ButtonState, count)
	}

	pinned := []float64{g.accessories[AccessoryLeadingPinned].Width(), g.accessories[AccessoryTrailingPinned].Width()}
	lo, hi := OffsetRange(b.bounds.Width, g.contentSize, g.insets, pinned...)
	offset := Offset(focus.Rect, b.bounds.Width, g.contentSize, g.insets, g.offCenterDelta, pinned...)

	if !replay && !b.indicatorStyle.Progressive && indicator != b.snapshot.IndicatorFrame {
		animate = true
	}
	duration := animation.Duration
	if animate && duration <= 0 {
		duration = DefaultAnimationDuration
	}

	indicated := position
	b.indicatedPosition = &indicated

	b.apply(Snapshot{
		Focus:          focus,
		IndicatorFrame: indicator,
		ButtonFrames:   g.frames,
		States:         states,
		ContentOffset:  offset,
		MinOffset:      lo,
		MaxOffset:      hi,
		ContentSize:    g.contentSize,
		ContentInset:   g.insets,
		accessories:    g.accessories,
	}, animate, duration)
}

func (b *Bar) apply(snap Snapshot, animate bool, duration time.Duration) {
	body := func() {
		for i, button := range b.items.Buttons() {
			button.UpdateState(snap.States[i])
		}
		if b.indicator != nil {
			b.indicator.SetFrame(snap.IndicatorFrame)
		}
		if b.scroller != nil {
			b.scroller.SetContentOffset(snap.ContentOffset)
		}
		b.snapshot = snap
	}
	if animate {
		b.animator.Animate(duration, body)
		return
	}
	b.animator.PerformWithoutAnimation(body)
}

func (b *Bar) invalidate(reason string) {
	position, ok := b.IndicatedPosition()
	if !ok {
		return
	}
	b.logger.Debug("replaying bar layout", slog.String("reason", reason), slog.Float64("position", position))
	b.update(position, b.items.Len(), DirectionNone, Animation{}, true)
}

func (b *Bar) watchItem(item *Item, button Button) func() {
	return item.observe(func(it *Item) {
		button.Populate(it)
		b.invalidate("item")
	})
}

type geometry struct {
	// frames are button frames in scroll content coordinates.
	frames         []Rect
	contentSize    Size
	insets         EdgeInsets
	offCenterDelta float64
	accessories    [accessoryLocationCount]Rect
}

func (b *Bar) geometry() geometry {
	var g geometry
	leading := b.accessory.size(AccessoryLeading)
	trailing := b.accessory.size(AccessoryTrailing)
	leadingPinned := b.accessory.size(AccessoryLeadingPinned)
	trailingPinned := b.accessory.size(AccessoryTrailingPinned)

	buttons := b.items.Buttons()
	sizes := make([]Size, len(buttons))
	for i, button := range buttons {
		sizes[i] = button.IntrinsicSize()
	}
	viewport := b.bounds.Width - leadingPinned.Width - trailingPinned.Width
	available := viewport - b.contentInset.Horizontal() - b.safeArea.Horizontal() - leading.Width - trailing.Width
	frames, layoutSize := LayoutButtons(sizes, b.spacing, b.contentMode, available)
	for i := range frames {
		frames[i] = frames[i].OffsetX(leading.Width)
	}
	g.frames = frames

	g.contentSize = Size{
		Width:  leading.Width + layoutSize.Width + trailing.Width,
		Height: max(layoutSize.Height, leading.Height, trailing.Height),
	}
	g.accessories[AccessoryLeading] = NewRect(0, 0, leading.Width, leading.Height)
	g.accessories[AccessoryTrailing] = NewRect(leading.Width+layoutSize.Width, 0, trailing.Width, trailing.Height)
	g.accessories[AccessoryLeadingPinned] = NewRect(0, 0, leadingPinned.Width, leadingPinned.Height)
	g.accessories[AccessoryTrailingPinned] = NewRect(b.bounds.Width-trailingPinned.Width, 0, trailingPinned.Width, trailingPinned.Height)

	policy := AlignmentPolicy{
		Mode:         b.alignment,
		BoundsWidth:  b.bounds.Width,
		ContentWidth: g.contentSize.Width,
		SafeArea:     b.safeArea,
		ContentInset: b.contentInset,
	}
	if len(frames) > 0 {
		policy.FirstButtonWidth = frames[0].Width()
		policy.LastButtonWidth = frames[len(frames)-1].Width()
	}
	g.insets = policy.Insets()
	g.offCenterDelta = policy.OffCenterDelta(g.insets)
	return g
}
