// Package event defines the classified key events produced by the
// gesture state machine. A single polling cycle can yield several
// events for one key (a release is a KeyUp and may confirm a
// DoublePress at the same time), so events are a bit-flag set.
package event

import "strings"

// Flags is a set of classified events for one key on one cycle.
type Flags uint8

const (
	// SinglePress is one tap, confirmed after the double-press window
	// elapses with no second tap.
	SinglePress Flags = 1 << iota
	// DoublePress is two taps inside the double-press window. It
	// supersedes SinglePress for the same gesture.
	DoublePress
	// LongPress fires once when a hold crosses the long threshold.
	LongPress
	// ExtraLongPress fires once when a hold crosses the extra-long
	// threshold, suppressing LongPress for the same press.
	ExtraLongPress
	// KeyDown is the raw release-to-press level transition.
	KeyDown
	// KeyUp is the raw press-to-release level transition.
	KeyUp
)

// Has reports whether any event in v is set.
func (f Flags) Has(v Flags) bool { return f&v != 0 }

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, e := range [...]struct {
		bit  Flags
		name string
	}{
		{SinglePress, "single-press"},
		{DoublePress, "double-press"},
		{LongPress, "long-press"},
		{ExtraLongPress, "extra-long-press"},
		{KeyDown, "key-down"},
		{KeyUp, "key-up"},
	} {
		if f.Has(e.bit) {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, "+")
}
