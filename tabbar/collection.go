package tabbar

import (
	"fmt"
	"slices"
)

// ReloadContext describes how a reload range is applied.
type ReloadContext int

const (
	// ReloadFull discards every item and loads the range from scratch.
	ReloadFull ReloadContext = iota
	// ReloadInsertion inserts the range, shifting later items.
	ReloadInsertion
	// ReloadDeletion removes the range, shifting later items.
	ReloadDeletion
)

// String returns the context name.
func (c ReloadContext) String() string {
	switch c {
	case ReloadFull:
		return "full"
	case ReloadInsertion:
		return "insertion"
	case ReloadDeletion:
		return "deletion"
	}
	return fmt.Sprintf("ReloadContext(%d)", int(c))
}

type entry struct {
	item   *Item
	button Button
	cancel func()
}

// ItemCollection keeps items and their buttons in the same order.
type ItemCollection struct {
	entries []entry
	factory ButtonFactory
	watch   func(item *Item, button Button) func()
}

// NewItemCollection creates an empty collection.
func NewItemCollection(factory ButtonFactory) *ItemCollection {
	return &ItemCollection{factory: factory}
}

// SetWatch installs the hook run for every created button. The returned
// function is called when that button is destroyed.
func (c *ItemCollection) SetWatch(watch func(item *Item, button Button) func()) {
	c.watch = watch
}

// Len returns the number of items.
func (c *ItemCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Item returns the item at index.
func (c *ItemCollection) Item(index int) *Item {
	return c.entries[index].item
}

// Button returns the button at index.
func (c *ItemCollection) Button(index int) Button {
	return c.entries[index].button
}

// Items returns the items in order.
func (c *ItemCollection) Items() []*Item {
	items := make([]*Item, len(c.entries))
	for i, e := range c.entries {
		items[i] = e.item
	}
	return items
}

// Buttons returns the buttons in order.
func (c *ItemCollection) Buttons() []Button {
	buttons := make([]Button, len(c.entries))
	for i, e := range c.entries {
		buttons[i] = e.button
	}
	return buttons
}

// IndexOf returns the index of item, or -1.
func (c *ItemCollection) IndexOf(item *Item) int {
	for i, e := range c.entries {
		if e.item == item {
			return i
		}
	}
	return -1
}

// Reload applies [lower, upper] in the given context, pulling new items from
// source. Ranges outside the collection are caller bugs and panic; a panic
// leaves the collection unchanged.
func (c *ItemCollection) Reload(lower, upper int, context ReloadContext, source DataSource) {
	if upper < lower {
		panic(fmt.Sprintf("tabbar: reload range [%d, %d] is inverted", lower, upper))
	}
	switch context {
	case ReloadFull:
		if lower != 0 {
			panic(fmt.Sprintf("tabbar: full reload range [%d, %d] does not start at 0", lower, upper))
		}
		created := c.build(lower, upper, source, nil)
		c.removeRange(0, len(c.entries)-1)
		c.entries = created
	case ReloadInsertion:
		if lower < 0 || lower > len(c.entries) {
			panic(fmt.Sprintf("tabbar: insertion range [%d, %d] outside [0, %d]", lower, upper, len(c.entries)))
		}
		created := c.build(lower, upper, source, c.entries)
		c.entries = slices.Insert(c.entries, lower, created...)
	case ReloadDeletion:
		if lower < 0 || upper >= len(c.entries) {
			panic(fmt.Sprintf("tabbar: deletion range [%d, %d] outside [0, %d)", lower, upper, len(c.entries)))
		}
		c.removeRange(lower, upper)
	default:
		panic(fmt.Sprintf("tabbar: unknown reload context %d", int(context)))
	}
	c.reassignIndexes()
}

// build pulls [lower, upper] from source and creates their buttons without
// touching the collection. Items already in existing are rejected.
func (c *ItemCollection) build(lower, upper int, source DataSource, existing []entry) []entry {
	if source == nil {
		panic("tabbar: reload without a data source")
	}
	items := make([]*Item, 0, upper-lower+1)
	for index := lower; index <= upper; index++ {
		item := source.BarItem(index)
		if item == nil {
			panic(fmt.Sprintf("tabbar: data source returned nil item at %d", index))
		}
		if slices.Contains(items, item) || slices.ContainsFunc(existing, func(e entry) bool { return e.item == item }) {
			panic(fmt.Sprintf("tabbar: item %s inserted twice", item.ID()))
		}
		items = append(items, item)
	}

	created := make([]entry, 0, len(items))
	done := false
	defer func() {
		if !done {
			for _, e := range created {
				c.destroy(e)
			}
		}
	}()
	for _, item := range items {
		created = append(created, c.create(item))
	}
	done = true
	return created
}

func (c *ItemCollection) removeRange(lower, upper int) {
	if upper < lower {
		return
	}
	for i := upper; i >= lower; i-- {
		c.destroy(c.entries[i])
	}
	c.entries = slices.Delete(c.entries, lower, upper+1)
}

func (c *ItemCollection) create(item *Item) entry {
	button := c.factory(item)
	button.Populate(item)
	e := entry{item: item, button: button}
	if c.watch != nil {
		e.cancel = c.watch(item, button)
	}
	return e
}

func (c *ItemCollection) destroy(e entry) {
	if e.cancel != nil {
		e.cancel()
	}
	e.item.assignedIndex = -1
}

func (c *ItemCollection) reassignIndexes() {
	for i := range c.entries {
		c.entries[i].item.assignedIndex = i
	}
}
