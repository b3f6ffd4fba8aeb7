// Package layout defines the pluggable behavior contract for the pad
// and the registry that dispatches classified events to the active
// layout.
package layout

import (
	"macropad/hal"
	"macropad/pad/anim"
	"macropad/pad/event"
)

// ColorPair is the idle and engaged color a layout declares for a key.
type ColorPair struct {
	Resting hal.Color
	Active  hal.Color
}

// Layout is one interchangeable behavior unit. Layouts own no key
// state; timing state lives in the classifier.
type Layout interface {
	Name() string

	// HandleEvent reacts to classified events for one key. It must not
	// block; its only side effects are keystroke and color requests.
	HandleEvent(key int, ev event.Flags) error

	// KeyColors returns one pair per key in index order. Pure.
	KeyColors() []ColorPair

	// Introduce returns the one-shot sequence played when the layout
	// becomes active. May be empty.
	Introduce() anim.Sequence
}
