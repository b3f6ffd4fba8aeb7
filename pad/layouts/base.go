package layouts

import (
	"fmt"
	"time"

	"macropad/hal"
	"macropad/pad/anim"
	"macropad/pad/event"
	"macropad/pad/layout"
)

// base is the idle pad: a rainbow mosaic that echoes gestures to the
// log. Useful for checking the classifier from a serial console.
type base struct {
	log hal.Logger
}

func newBase(log hal.Logger) *base { return &base{log: log} }

func (b *base) Name() string { return "base" }

func (b *base) KeyColors() []layout.ColorPair {
	// Diagonal rainbow bands, white when engaged.
	bands := []hal.Color{
		hal.ColorRed, hal.ColorOrange, hal.ColorYellow, hal.ColorGreen,
		hal.ColorBlue, hal.ColorIndigo, hal.ColorViolet,
	}
	out := make([]layout.ColorPair, 16)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] = layout.ColorPair{
				Resting: bands[row+col],
				Active:  hal.ColorWhite,
			}
		}
	}
	return out
}

func (b *base) Introduce() anim.Sequence {
	return anim.RainbowSweep(16, hal.Rainbow(7), 2, 50*time.Millisecond)
}

func (b *base) HandleEvent(key int, ev event.Flags) error {
	if b.log == nil {
		return nil
	}
	if ev.Has(event.SinglePress | event.DoublePress | event.LongPress | event.ExtraLongPress) {
		b.log.WriteLineString(fmt.Sprintf("base: key %d %s", key, ev))
	}
	return nil
}
