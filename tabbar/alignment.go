package tabbar

import "fmt"

// AlignmentMode positions the focused button within the bar.
type AlignmentMode int

const (
	// AlignLeading keeps the focused button at the leading edge.
	AlignLeading AlignmentMode = iota
	// AlignCenter centers the focused button, including the first and last.
	AlignCenter
	// AlignCenterDistributed centers the whole row as a block when it is
	// narrower than the bar.
	AlignCenterDistributed
	// AlignTrailing keeps the focused button at the trailing edge.
	AlignTrailing
)

// String returns the mode name.
func (m AlignmentMode) String() string {
	switch m {
	case AlignLeading:
		return "leading"
	case AlignCenter:
		return "center"
	case AlignCenterDistributed:
		return "centerDistributed"
	case AlignTrailing:
		return "trailing"
	}
	return fmt.Sprintf("AlignmentMode(%d)", int(m))
}

// AlignmentPolicy holds every input the content insets depend on.
// Any change to one of them requires a fresh Insets call.
type AlignmentPolicy struct {
	Mode             AlignmentMode
	BoundsWidth      float64
	FirstButtonWidth float64
	LastButtonWidth  float64
	// ContentWidth is the scrollable content width, used by
	// AlignCenterDistributed.
	ContentWidth float64
	SafeArea     EdgeInsets
	ContentInset EdgeInsets
}

// Insets computes the scroll content insets for the policy.
func (p AlignmentPolicy) Insets() EdgeInsets {
	insets := p.ContentInset
	switch p.Mode {
	case AlignTrailing:
		// Negative when the first button is wider than the bounds.
		insets.Left = p.BoundsWidth - p.SafeArea.Left - p.FirstButtonWidth
	case AlignCenter:
		insets.Left = p.BoundsWidth/2 - p.FirstButtonWidth/2 - p.SafeArea.Left - p.ContentInset.Left
		insets.Right = p.BoundsWidth/2 - p.LastButtonWidth/2 - p.SafeArea.Right - p.ContentInset.Right
	case AlignCenterDistributed:
		insets.Left = max(0, p.BoundsWidth/2-p.SafeArea.Left-p.ContentWidth/2)
	}
	return insets
}

// OffCenterDelta is how far insets.Left sits from the inset that would
// center the first button. The offset solver subtracts it so that leading
// and trailing bars rest edge-aligned on their first item while centered
// bars get no correction.
func (p AlignmentPolicy) OffCenterDelta(insets EdgeInsets) float64 {
	return insets.Left - (p.BoundsWidth/2 - p.FirstButtonWidth/2)
}
