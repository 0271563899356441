package tabbar

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

type testButton struct {
	width     float64
	title     string
	populated int
	state     ButtonState
	updates   int
}

func (b *testButton) IntrinsicSize() Size { return Size{Width: b.width, Height: 1} }

func (b *testButton) Populate(item *Item) {
	b.title = item.Title()
	b.populated++
}

func (b *testButton) UpdateState(state ButtonState) {
	b.state = state
	b.updates++
}

// fixedWidth builds buttons of one width.
func fixedWidth(width float64) ButtonFactory {
	return func(*Item) Button { return &testButton{width: width} }
}

type testSource struct {
	items []*Item
}

func newTestSource(titles ...string) *testSource {
	s := &testSource{}
	for _, title := range titles {
		s.items = append(s.items, NewItem(title))
	}
	return s
}

func (s *testSource) ItemCount() int { return len(s.items) }

func (s *testSource) BarItem(index int) *Item { return s.items[index] }

func (s *testSource) insert(index int, titles ...string) {
	added := make([]*Item, 0, len(titles))
	for _, title := range titles {
		added = append(added, NewItem(title))
	}
	tail := append(added, s.items[index:]...)
	s.items = append(s.items[:index:index], tail...)
}

func (s *testSource) remove(lower, upper int) {
	s.items = append(s.items[:lower:lower], s.items[upper+1:]...)
}

type testIndicator struct {
	frame Rect
	sets  int
}

func (i *testIndicator) SetFrame(frame Rect) {
	i.frame = frame
	i.sets++
}

type testScroller struct {
	offset float64
	sets   int
}

func (s *testScroller) SetContentOffset(x float64) {
	s.offset = x
	s.sets++
}

type recordingAnimator struct {
	animated  int
	immediate int
	durations []time.Duration
}

func (a *recordingAnimator) Animate(duration time.Duration, body func()) {
	a.animated++
	a.durations = append(a.durations, duration)
	body()
}

func (a *recordingAnimator) PerformWithoutAnimation(body func()) {
	a.immediate++
	body()
}

type testHarness struct {
	bar       *Bar
	source    *testSource
	indicator *testIndicator
	scroller  *testScroller
	animator  *recordingAnimator
}

func newHarness(t *testing.T, count int, width, bounds float64, opts ...Option) *testHarness {
	t.Helper()
	titles := make([]string, count)
	for i := range titles {
		titles[i] = string(rune('a' + i))
	}
	h := &testHarness{
		source:    newTestSource(titles...),
		indicator: &testIndicator{},
		scroller:  &testScroller{},
		animator:  &recordingAnimator{},
	}
	opts = append([]Option{
		WithDataSource(h.source),
		WithIndicator(h.indicator, DefaultIndicatorStyle()),
		WithScroller(h.scroller),
		WithAnimator(h.animator),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)
	h.bar = NewBar(fixedWidth(width), opts...)
	h.bar.SetBounds(Size{Width: bounds, Height: 2})
	h.bar.ReloadAll()
	return h
}

func (h *testHarness) button(i int) *testButton {
	return h.bar.Button(i).(*testButton)
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
