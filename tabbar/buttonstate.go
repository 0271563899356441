package tabbar

import (
	"fmt"
	"math"
)

// Direction hints which way the position is travelling.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionReverse
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionForward:
		return "forward"
	case DirectionReverse:
		return "reverse"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionBetween classifies a move from one position to another.
func DirectionBetween(from, to float64) Direction {
	switch {
	case to > from:
		return DirectionForward
	case to < from:
		return DirectionReverse
	}
	return DirectionNone
}

// Selection is the discrete selection class of a button.
type Selection int

const (
	Unselected Selection = iota
	PartiallySelected
	Selected
)

// String returns the selection name.
func (s Selection) String() string {
	switch s {
	case Unselected:
		return "unselected"
	case PartiallySelected:
		return "partial"
	case Selected:
		return "selected"
	}
	return fmt.Sprintf("Selection(%d)", int(s))
}

// ButtonState is the per-button output of an update.
type ButtonState struct {
	Selection Selection
	// Weight in [0, 1] drives interpolated visual properties.
	Weight float64
	// Emphasized marks the single button that owns discrete visual
	// properties such as bold text.
	Emphasized bool
}

// Weight returns max(0, 1-|position-index|).
func Weight(index int, position float64) float64 {
	return clamp(1-math.Abs(position-float64(index)), 0, 1)
}

// StateForWeight classifies a weight.
func StateForWeight(weight float64) ButtonState {
	switch {
	case weight >= 1:
		return ButtonState{Selection: Selected, Weight: 1}
	case weight <= 0:
		return ButtonState{Selection: Unselected}
	}
	return ButtonState{Selection: PartiallySelected, Weight: weight}
}

// ButtonStates computes the state of count buttons for a position already
// limited to the active capacity. At the exact midpoint between two buttons,
// direction picks the entering one for emphasis: the later button when moving
// forward, the earlier one otherwise.
func ButtonStates(position float64, count int, direction Direction) []ButtonState {
	if count <= 0 {
		return nil
	}
	states := make([]ButtonState, count)
	emphasized, best := -1, 0.0
	lower := int(math.Floor(position))
	for i := range states {
		if i < lower || i > lower+1 {
			continue
		}
		w := Weight(i, position)
		states[i] = StateForWeight(w)
		if w <= 0 {
			continue
		}
		switch {
		case w > best:
			emphasized, best = i, w
		case w == best && direction == DirectionForward:
			emphasized = i
		}
	}
	if emphasized >= 0 {
		states[emphasized].Emphasized = true
	}
	return states
}
