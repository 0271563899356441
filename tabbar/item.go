package tabbar

import "github.com/oklog/ulid/v2"

// Item is the data behind one bar button.
// Its identity is fixed at creation; AssignedIndex changes only during reloads.
type Item struct {
	id            ulid.ULID
	assignedIndex int
	title         string
	badge         string
	observer      *itemObserver
}

type itemObserver struct {
	fn func(*Item)
}

// NewItem creates an item with a fresh identity.
func NewItem(title string) *Item {
	return &Item{
		id:            ulid.Make(),
		assignedIndex: -1,
		title:         title,
	}
}

// ID returns the item identity.
func (it *Item) ID() ulid.ULID {
	if it == nil {
		return ulid.ULID{}
	}
	return it.id
}

// AssignedIndex returns the item's position in its bar, or -1 when detached.
func (it *Item) AssignedIndex() int {
	if it == nil {
		return -1
	}
	return it.assignedIndex
}

// Title returns the display title.
func (it *Item) Title() string {
	if it == nil {
		return ""
	}
	return it.title
}

// SetTitle updates the title and notifies the owning bar.
func (it *Item) SetTitle(title string) {
	if it == nil || it.title == title {
		return
	}
	it.title = title
	it.notify()
}

// Badge returns the badge text shown next to the title.
func (it *Item) Badge() string {
	if it == nil {
		return ""
	}
	return it.badge
}

// SetBadge updates the badge and notifies the owning bar.
func (it *Item) SetBadge(badge string) {
	if it == nil || it.badge == badge {
		return
	}
	it.badge = badge
	it.notify()
}

// observe installs the single change observer and returns its removal. A
// removal after the observer was replaced leaves the replacement in place.
func (it *Item) observe(fn func(*Item)) func() {
	obs := &itemObserver{fn: fn}
	it.observer = obs
	return func() {
		if it.observer == obs {
			it.observer = nil
		}
	}
}

func (it *Item) notify() {
	if it.observer != nil {
		it.observer.fn(it)
	}
}
