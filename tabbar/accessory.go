package tabbar

import "fmt"

// AccessoryLocation names one of the four accessory slots.
type AccessoryLocation int

const (
	// AccessoryLeading scrolls with the content, before the first button.
	AccessoryLeading AccessoryLocation = iota
	// AccessoryLeadingPinned stays fixed at the leading edge of the bar.
	AccessoryLeadingPinned
	// AccessoryTrailing scrolls with the content, after the last button.
	AccessoryTrailing
	// AccessoryTrailingPinned stays fixed at the trailing edge of the bar.
	AccessoryTrailingPinned

	accessoryLocationCount
)

// String returns the slot name.
func (l AccessoryLocation) String() string {
	switch l {
	case AccessoryLeading:
		return "leading"
	case AccessoryLeadingPinned:
		return "leadingPinned"
	case AccessoryTrailing:
		return "trailing"
	case AccessoryTrailingPinned:
		return "trailingPinned"
	}
	return fmt.Sprintf("AccessoryLocation(%d)", int(l))
}

// IsPinned reports whether the slot is outside the scrollable content.
func (l AccessoryLocation) IsPinned() bool {
	return l == AccessoryLeadingPinned || l == AccessoryTrailingPinned
}

func (l AccessoryLocation) check() {
	if l < 0 || l >= accessoryLocationCount {
		panic(fmt.Sprintf("tabbar: invalid accessory location %d", int(l)))
	}
}

// accessories is the fixed four-slot accessory table.
type accessories [accessoryLocationCount]Measurable

func (a *accessories) size(loc AccessoryLocation) Size {
	if a[loc] == nil {
		return Size{}
	}
	return a[loc].IntrinsicSize()
}
