package tabbar

import (
	"math"
	"reflect"
	"testing"
)

type fixedSize Size

func (s fixedSize) IntrinsicSize() Size { return Size(s) }

func TestBarUpdateWholePosition(t *testing.T) {
	h := newHarness(t, 5, 10, 30)
	h.bar.Update(2, 5, DirectionNone, Animation{})

	if want := NewRect(20, 0, 10, 1); h.indicator.frame != want {
		t.Fatalf("indicator = %+v, want %+v", h.indicator.frame, want)
	}
	if h.scroller.offset != 20 {
		t.Fatalf("offset = %v, want 20", h.scroller.offset)
	}
	for i := 0; i < 5; i++ {
		want := 0.0
		if i == 2 {
			want = 1
		}
		if got := h.button(i).state.Weight; got != want {
			t.Fatalf("weight[%d] = %v, want %v", i, got, want)
		}
	}
	if h.animator.animated != 0 {
		t.Fatalf("animated = %d, want 0", h.animator.animated)
	}
}

func TestBarUpdateMidpoint(t *testing.T) {
	h := newHarness(t, 5, 10, 30)
	h.bar.Update(2.5, 5, DirectionForward, Animation{Enabled: true})

	if want := NewRect(25, 0, 10, 1); h.indicator.frame != want {
		t.Fatalf("indicator = %+v, want %+v", h.indicator.frame, want)
	}
	if h.button(2).state.Weight != 0.5 || h.button(3).state.Weight != 0.5 {
		t.Fatalf("weights = %v/%v, want 0.5/0.5", h.button(2).state.Weight, h.button(3).state.Weight)
	}
	if !h.button(3).state.Emphasized {
		t.Fatalf("forward midpoint should emphasize button 3")
	}
	if h.animator.animated != 1 || h.animator.durations[0] != DefaultAnimationDuration {
		t.Fatalf("animations = %d %v, want one default-duration animation", h.animator.animated, h.animator.durations)
	}
}

func TestBarUpdateIdempotent(t *testing.T) {
	h := newHarness(t, 5, 10, 30)
	h.bar.Update(1.3, 5, DirectionNone, Animation{})
	first := h.bar.Snapshot()
	h.bar.Update(1.3, 5, DirectionNone, Animation{})
	if second := h.bar.Snapshot(); !reflect.DeepEqual(first, second) {
		t.Fatalf("snapshots differ:\n%+v\n%+v", first, second)
	}
}

func TestBarOffsetWithinRange(t *testing.T) {
	for _, mode := range []AlignmentMode{AlignLeading, AlignCenter, AlignCenterDistributed, AlignTrailing} {
		h := newHarness(t, 7, 9, 40, WithAlignment(mode))
		for p := -1.0; p <= 7; p += 0.25 {
			h.bar.Update(p, 7, DirectionNone, Animation{})
			snap := h.bar.Snapshot()
			if snap.ContentOffset < snap.MinOffset || snap.ContentOffset > snap.MaxOffset {
				t.Fatalf("%v p=%v offset %v outside [%v, %v]", mode, p, snap.ContentOffset, snap.MinOffset, snap.MaxOffset)
			}
		}
	}
}

func TestBarCenterAlignment(t *testing.T) {
	h := newHarness(t, 5, 10, 30, WithAlignment(AlignCenter))
	h.bar.Update(0, 5, DirectionNone, Animation{})
	if h.scroller.offset != -10 {
		t.Fatalf("offset at 0 = %v, want -10", h.scroller.offset)
	}
	h.bar.Update(2, 5, DirectionNone, Animation{})
	if h.scroller.offset != 10 {
		t.Fatalf("offset at 2 = %v, want 10", h.scroller.offset)
	}
	if insets := h.bar.Snapshot().ContentInset; insets.Left != 10 || insets.Right != 10 {
		t.Fatalf("insets = %+v, want 10/10", insets)
	}
}

func TestBarSnapForcesAnimation(t *testing.T) {
	h := newHarness(t, 5, 10, 30, WithAnimationStyle(AnimationSnap))
	h.bar.Update(1.4, 5, DirectionForward, Animation{})

	if h.animator.animated != 1 {
		t.Fatalf("animated = %d, want 1", h.animator.animated)
	}
	if want := NewRect(10, 0, 10, 1); h.indicator.frame != want {
		t.Fatalf("indicator = %+v, want %+v", h.indicator.frame, want)
	}
	if h.button(1).state.Selection != Selected {
		t.Fatalf("button 1 = %+v, want selected", h.button(1).state)
	}
	if p, ok := h.bar.IndicatedPosition(); !ok || p != 1.4 {
		t.Fatalf("indicated position = %v %v, want 1.4", p, ok)
	}
}

func TestBarNonProgressiveIndicatorAnimatesOnChange(t *testing.T) {
	indicator := &testIndicator{}
	h := newHarness(t, 5, 10, 30, WithIndicator(indicator, IndicatorStyle{Overscroll: OverscrollCompress}))

	h.bar.Update(0, 5, DirectionNone, Animation{})
	if h.animator.animated != 1 {
		t.Fatalf("first placement animated = %d, want 1", h.animator.animated)
	}
	h.bar.Update(0.3, 5, DirectionForward, Animation{})
	if h.animator.animated != 1 {
		t.Fatalf("unchanged frame animated = %d, want 1", h.animator.animated)
	}
	h.bar.Update(0.6, 5, DirectionForward, Animation{})
	if h.animator.animated != 2 {
		t.Fatalf("changed frame animated = %d, want 2", h.animator.animated)
	}
	if want := NewRect(10, 0, 10, 1); indicator.frame != want {
		t.Fatalf("indicator = %+v, want %+v", indicator.frame, want)
	}
}

func TestBarReplaysOnBoundsChange(t *testing.T) {
	h := newHarness(t, 5, 10, 30)
	h.bar.Update(4, 5, DirectionNone, Animation{Enabled: true})
	if h.scroller.offset != 20 {
		t.Fatalf("offset = %v, want 20", h.scroller.offset)
	}
	animated := h.animator.animated

	h.bar.SetBounds(Size{Width: 60, Height: 2})
	if h.scroller.offset != 0 {
		t.Fatalf("offset after widen = %v, want 0", h.scroller.offset)
	}
	if h.animator.animated != animated {
		t.Fatalf("replay animated")
	}
	if p, _ := h.bar.IndicatedPosition(); p != 4 {
		t.Fatalf("indicated position = %v, want 4", p)
	}
}

func TestBarNoReplayBeforeUpdate(t *testing.T) {
	h := newHarness(t, 3, 10, 30)
	h.bar.SetAlignment(AlignCenter)
	if h.indicator.sets != 0 || h.scroller.sets != 0 {
		t.Fatalf("layout applied before first update")
	}
}

func TestBarZeroCapacity(t *testing.T) {
	h := newHarness(t, 3, 10, 30)
	h.bar.Update(1, 0, DirectionNone, Animation{})
	if !h.indicator.frame.IsZero() {
		t.Fatalf("indicator = %+v, want zero", h.indicator.frame)
	}
	for i := 0; i < 3; i++ {
		if s := h.button(i).state; s.Selection != Unselected || s.Emphasized {
			t.Fatalf("button %d = %+v, want unselected", i, s)
		}
	}
}

func TestBarNaNPosition(t *testing.T) {
	h := newHarness(t, 3, 10, 30)
	h.bar.Update(math.NaN(), 3, DirectionNone, Animation{})
	if want := NewRect(0, 0, 10, 1); h.indicator.frame != want {
		t.Fatalf("indicator = %+v, want %+v", h.indicator.frame, want)
	}
}

func TestBarPinnedAccessory(t *testing.T) {
	h := newHarness(t, 5, 10, 30)
	h.bar.SetAccessory(AccessoryLeadingPinned, fixedSize{Width: 5, Height: 1})
	h.bar.Update(0, 5, DirectionNone, Animation{})

	snap := h.bar.Snapshot()
	if snap.ViewportMinX() != 5 {
		t.Fatalf("viewport min x = %v, want 5", snap.ViewportMinX())
	}
	if snap.MaxOffset != 25 {
		t.Fatalf("max offset = %v, want 25", snap.MaxOffset)
	}
	if got := h.bar.ButtonIndexAt(2); got != -1 {
		t.Fatalf("index inside pinned accessory = %d, want -1", got)
	}
	if got := h.bar.ButtonIndexAt(16); got != 1 {
		t.Fatalf("index at 16 = %d, want 1", got)
	}
}

func TestBarScrollingAccessory(t *testing.T) {
	h := newHarness(t, 3, 10, 30)
	h.bar.SetAccessory(AccessoryLeading, fixedSize{Width: 4, Height: 1})
	h.bar.SetAccessory(AccessoryTrailing, fixedSize{Width: 6, Height: 1})
	h.bar.Update(0, 3, DirectionNone, Animation{})

	snap := h.bar.Snapshot()
	if snap.ButtonFrames[0].MinX() != 4 {
		t.Fatalf("first button x = %v, want 4", snap.ButtonFrames[0].MinX())
	}
	if snap.ContentSize.Width != 40 {
		t.Fatalf("content width = %v, want 40", snap.ContentSize.Width)
	}
	if got := snap.AccessoryFrame(AccessoryTrailing).MinX(); got != 34 {
		t.Fatalf("trailing accessory x = %v, want 34", got)
	}
	mustPanic(t, "invalid location", func() { h.bar.SetAccessory(AccessoryLocation(9), nil) })
}

func TestBarButtonIndexAt(t *testing.T) {
	h := newHarness(t, 5, 10, 30)
	h.bar.Update(0, 5, DirectionNone, Animation{})
	if got := h.bar.ButtonIndexAt(15); got != 1 {
		t.Fatalf("index at 15 = %d, want 1", got)
	}
	if got := h.bar.ButtonIndexAt(-1); got != -1 {
		t.Fatalf("index at -1 = %d, want -1", got)
	}
	h.bar.Update(4, 5, DirectionNone, Animation{})
	if got := h.bar.ButtonIndexAt(29); got != 4 {
		t.Fatalf("scrolled index at 29 = %d, want 4", got)
	}
}

func TestBarScrollBy(t *testing.T) {
	h := newHarness(t, 5, 10, 30)
	h.bar.Update(0, 5, DirectionNone, Animation{})
	if !h.bar.ScrollBy(100) {
		t.Fatalf("scroll by 100 reported no change")
	}
	if h.scroller.offset != 20 {
		t.Fatalf("offset = %v, want 20", h.scroller.offset)
	}
	if h.bar.ScrollBy(5) {
		t.Fatalf("scroll past max reported a change")
	}
	h.bar.SetScrollMode(ScrollNone)
	if h.bar.ScrollBy(-5) {
		t.Fatalf("scroll mode none honored ScrollBy")
	}
}

func TestBarContentFit(t *testing.T) {
	h := newHarness(t, 3, 4, 30, WithContentMode(ContentFit))
	h.bar.Update(0, 3, DirectionNone, Animation{})
	for i, frame := range h.bar.Snapshot().ButtonFrames {
		if frame.Width() != 10 {
			t.Fatalf("frame %d width = %v, want 10", i, frame.Width())
		}
	}
}

func TestBarItemChangeRepopulates(t *testing.T) {
	h := newHarness(t, 3, 10, 30)
	h.bar.Update(1, 3, DirectionNone, Animation{})
	before := h.animator.immediate

	h.bar.Item(1).SetTitle("renamed")
	if got := h.button(1).title; got != "renamed" {
		t.Fatalf("title = %q, want renamed", got)
	}
	if h.button(1).populated != 2 {
		t.Fatalf("populated = %d, want 2", h.button(1).populated)
	}
	if h.animator.immediate != before+1 {
		t.Fatalf("item change did not replay layout")
	}
}

func TestBarReloadInsertion(t *testing.T) {
	h := newHarness(t, 3, 10, 30)
	h.bar.Update(1, 3, DirectionNone, Animation{})
	oldItems := h.bar.items.Items()
	oldButtons := h.bar.Buttons()

	h.source.insert(0, "x", "y")
	h.bar.Reload(0, 1, ReloadInsertion)

	if h.bar.ItemCount() != 5 {
		t.Fatalf("count = %d, want 5", h.bar.ItemCount())
	}
	for i, item := range oldItems {
		if got := item.AssignedIndex(); got != i+2 {
			t.Fatalf("item %d index = %d, want %d", i, got, i+2)
		}
		if h.bar.Button(i+2) != oldButtons[i] {
			t.Fatalf("button %d was recreated", i)
		}
	}
	if got := h.bar.Item(0).Title(); got != "x" {
		t.Fatalf("item 0 = %q, want x", got)
	}
	if states := h.bar.Snapshot().States; len(states) != 5 {
		t.Fatalf("states = %d, want 5 after replay", len(states))
	}
}

func TestBarReloadDeletion(t *testing.T) {
	h := newHarness(t, 3, 10, 30)
	h.bar.Update(0, 3, DirectionNone, Animation{})
	removed := h.bar.Item(1)
	removedButton := h.button(1)
	last := h.bar.Item(2)

	h.source.remove(1, 1)
	h.bar.Reload(1, 1, ReloadDeletion)

	if removed.AssignedIndex() != -1 {
		t.Fatalf("removed index = %d, want -1", removed.AssignedIndex())
	}
	if last.AssignedIndex() != 1 {
		t.Fatalf("last index = %d, want 1", last.AssignedIndex())
	}
	removed.SetTitle("gone")
	if removedButton.populated != 1 {
		t.Fatalf("removed button populated after deletion")
	}
}

func TestBarReloadFull(t *testing.T) {
	h := newHarness(t, 3, 10, 30)
	first := h.bar.Button(0)
	h.source.items = newTestSource("p", "q").items
	h.bar.ReloadAll()
	if h.bar.ItemCount() != 2 || h.bar.Button(0) == first {
		t.Fatalf("full reload kept old buttons")
	}
	h.source.items = nil
	h.bar.ReloadAll()
	if h.bar.ItemCount() != 0 {
		t.Fatalf("count = %d, want 0", h.bar.ItemCount())
	}
}

func TestBarReloadPanics(t *testing.T) {
	h := newHarness(t, 3, 10, 30)
	mustPanic(t, "inverted", func() { h.bar.Reload(2, 1, ReloadInsertion) })
	mustPanic(t, "deletion out of range", func() { h.bar.Reload(3, 3, ReloadDeletion) })
	mustPanic(t, "insertion out of range", func() { h.bar.Reload(5, 5, ReloadInsertion) })
	mustPanic(t, "duplicate", func() { h.bar.Reload(0, 0, ReloadInsertion) })
	mustPanic(t, "unknown context", func() { h.bar.Reload(0, 0, ReloadContext(7)) })

	bare := NewBar(fixedWidth(10))
	mustPanic(t, "no source", func() { bare.ReloadAll() })
}
