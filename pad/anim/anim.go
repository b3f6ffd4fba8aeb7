// Package anim plays short per-key color sequences cooperatively: the
// polling loop steps the player once per cycle, so an animation never
// blocks sampling or dispatch.
package anim

import (
	"time"

	"macropad/hal"
)

// ColorOp stages one key color.
type ColorOp struct {
	Key   int
	Color hal.Color
}

// Frame is a batch of color ops held on screen for Hold.
type Frame struct {
	Ops  []ColorOp
	Hold time.Duration
}

// Sequence is an ordered run of frames.
type Sequence []Frame

// Duration is the total hold time of the sequence.
func (s Sequence) Duration() time.Duration {
	var d time.Duration
	for _, f := range s {
		d += f.Hold
	}
	return d
}

// Clamp drops trailing frames so the sequence fits the budget. The
// first frame is always kept so a clamped intro still repaints.
func (s Sequence) Clamp(budget time.Duration) Sequence {
	if budget <= 0 {
		return s
	}
	var d time.Duration
	for i, f := range s {
		d += f.Hold
		if d > budget && i > 0 {
			return s[:i]
		}
	}
	return s
}

// Fill returns a single frame painting every key the same color.
func Fill(keyCount int, c hal.Color, hold time.Duration) Frame {
	ops := make([]ColorOp, keyCount)
	for i := range ops {
		ops[i] = ColorOp{Key: i, Color: c}
	}
	return Frame{Ops: ops, Hold: hold}
}
