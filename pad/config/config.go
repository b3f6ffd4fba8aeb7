// Package config holds the startup configuration for the pad: gesture
// thresholds, the layout sequence, and the reserved swap trigger.
// Bare-metal builds run on Default; the host build may override it
// from a TOML profile.
package config

import (
	"fmt"
	"time"

	"macropad/pad/event"
)

type Config struct {
	// KeyCount is fixed by the board: 16 keys in a 4x4 grid.
	KeyCount int

	// DoublePressWindow < LongPress < ExtraLongPress is enforced by
	// Validate; gesture precedence is undefined otherwise.
	DoublePressWindow time.Duration
	LongPress         time.Duration
	ExtraLongPress    time.Duration

	// PollInterval is the target cadence of the sampling loop.
	PollInterval time.Duration

	// AnimationBudget caps the total duration of a layout's introduce
	// sequence so a swap never starves key detection for long.
	AnimationBudget time.Duration

	// Layouts is the ordered swap sequence; Initial selects the layout
	// active at startup.
	Layouts []string
	Initial int

	// SwapKey + SwapGesture is the reserved trigger that advances the
	// active layout. It is consumed by the dispatcher, never forwarded.
	SwapKey     int
	SwapGesture event.Flags
}

// Default matches the stock hardware: 16 keys, extra-long press on the
// last key cycles layouts.
func Default() Config {
	return Config{
		KeyCount:          16,
		DoublePressWindow: 250 * time.Millisecond,
		LongPress:         1000 * time.Millisecond,
		ExtraLongPress:    3000 * time.Millisecond,
		PollInterval:      10 * time.Millisecond,
		AnimationBudget:   3 * time.Second,
		Layouts:           []string{"base", "meet", "arena"},
		Initial:           0,
		SwapKey:           15,
		SwapGesture:       event.ExtraLongPress,
	}
}

// Validate fails fast on a configuration the state machines cannot
// run on. It is called before the polling loop starts.
func (c Config) Validate() error {
	if c.KeyCount <= 0 {
		return fmt.Errorf("config: key count %d, want > 0", c.KeyCount)
	}
	if c.DoublePressWindow <= 0 {
		return fmt.Errorf("config: double-press window %v, want > 0", c.DoublePressWindow)
	}
	if c.DoublePressWindow >= c.LongPress || c.LongPress >= c.ExtraLongPress {
		return fmt.Errorf("config: threshold order %v < %v < %v violated",
			c.DoublePressWindow, c.LongPress, c.ExtraLongPress)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("config: poll interval %v, want > 0", c.PollInterval)
	}
	if len(c.Layouts) == 0 {
		return fmt.Errorf("config: empty layout sequence")
	}
	if c.Initial < 0 || c.Initial >= len(c.Layouts) {
		return fmt.Errorf("config: initial layout %d out of range [0,%d)", c.Initial, len(c.Layouts))
	}
	if c.SwapKey < 0 || c.SwapKey >= c.KeyCount {
		return fmt.Errorf("config: swap key %d out of range [0,%d)", c.SwapKey, c.KeyCount)
	}
	if c.SwapGesture == 0 {
		return fmt.Errorf("config: swap gesture unset")
	}
	return nil
}
