package anim

import (
	"time"

	"macropad/hal"
)

// diagonals of the 4x4 grid, top-left to bottom-right.
var diagonals = [][]int{{0}, {1, 4}, {2, 5, 8}, {3, 6, 9, 12}, {7, 10, 13}, {11, 14}, {15}}

// RainbowSweep snakes the palette down the grid diagonals, repeating
// for loops passes. Ported straight from the pad's stock boot effect.
func RainbowSweep(keyCount int, palette []hal.Color, loops int, hold time.Duration) Sequence {
	if len(palette) == 0 {
		return nil
	}
	seq := Sequence{Fill(keyCount, hal.ColorOff, hold)}
	total := len(palette) * (loops + 1)
	for frame := 1; frame < total; frame++ {
		var ops []ColorOp
		ci := 0
		for snake := frame - len(palette); snake < frame; snake++ {
			if snake >= 0 {
				for _, key := range diagonals[snake%len(diagonals)] {
					ops = append(ops, ColorOp{Key: key, Color: palette[ci]})
				}
			}
			ci++
		}
		seq = append(seq, Frame{Ops: ops, Hold: hold})
	}
	return seq
}

// ColumnWipe reveals a 4x4 image one column at a time, then holds the
// finished image for tail.
func ColumnWipe(image []hal.Color, hold, tail time.Duration) Sequence {
	seq := Sequence{Fill(len(image), hal.ColorOff, hold)}
	for col := 0; col < 4; col++ {
		var ops []ColorOp
		for row := 0; row < 4; row++ {
			key := col*4 + row
			if key < len(image) {
				ops = append(ops, ColorOp{Key: key, Color: image[key]})
			}
		}
		seq = append(seq, Frame{Ops: ops, Hold: hold})
	}
	seq = append(seq, Frame{Hold: tail})
	return seq
}

// Trace lights an image one key at a time in the given order.
func Trace(image []hal.Color, order []int, hold time.Duration) Sequence {
	seq := Sequence{Fill(len(image), hal.ColorOff, hold)}
	for _, key := range order {
		if key < 0 || key >= len(image) {
			continue
		}
		seq = append(seq, Frame{Ops: []ColorOp{{Key: key, Color: image[key]}}, Hold: hold})
	}
	return seq
}
