// Package tabbar computes tab bar layout from a continuous page position.
//
// A Bar owns an ordered collection of items and their buttons. Each call to
// Update maps a fractional page position onto a focus rect, an indicator
// frame, per-button selection weights and a clamped scroll offset, then
// applies all of them in one transaction through the host Animator.
//
// The package never renders and never runs timers. Hosts supply measured
// button sizes, bounds and an Animator; package widgets is the terminal host.
package tabbar
