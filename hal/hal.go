package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Buttons reads the raw level of every key on the pad.
//
// Read fills pressed[i] with true while key i is physically held. It
// performs no debouncing and keeps no history; a failed read means the
// harness itself is broken and is reported as an error.
type Buttons interface {
	Read(pressed []bool) error
}

// Pixels is the per-key RGB indicator chain.
//
// Set stages a color for one key; Show pushes the staged colors to the
// hardware. Both are called only from the polling loop.
type Pixels interface {
	Set(key int, c Color)
	Show() error
}

// Keys transmits HID keystrokes to the attached host.
type Keys interface {
	// Chord presses all codes together and releases them.
	Chord(codes ...Keycode) error
	// Write types a string using the US layout.
	Write(s string) error
}

// Screen is the optional auxiliary display. Implementations without a
// panel attached may drop summaries silently.
type Screen interface {
	Render(summary string) error
}

// Clock provides the loop's time base.
type Clock interface {
	Now() time.Time
}

// HAL is the only contact point between the pad core and the hardware.
type HAL interface {
	Logger() Logger
	Buttons() Buttons
	Pixels() Pixels
	Keys() Keys
	Screen() Screen
	Clock() Clock
}
