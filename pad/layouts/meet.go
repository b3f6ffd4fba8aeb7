package layouts

import (
	"time"

	"macropad/hal"
	"macropad/pad/anim"
	"macropad/pad/event"
	"macropad/pad/layout"
)

// meet drives meeting controls in the foreground call app: mic toggle,
// camera toggle, and hang-up on the top row.
type meet struct {
	keys hal.Keys
}

// meetImage is the 4x4 logo revealed by the introduction.
var meetImage = []hal.Color{
	hal.ColorWhite, hal.ColorWhite, hal.ColorWhite, hal.ColorWhite,
	hal.ColorWhite, hal.ColorIndigo, hal.ColorIndigo, hal.ColorIndigo,
	hal.ColorWhite, hal.ColorWhite, hal.ColorIndigo, hal.ColorWhite,
	hal.ColorWhite, hal.ColorWhite, hal.ColorIndigo, hal.ColorWhite,
}

func newMeet(keys hal.Keys) *meet { return &meet{keys: keys} }

func (m *meet) Name() string { return "meet" }

func (m *meet) KeyColors() []layout.ColorPair {
	return pairs(meetImage, map[int]hal.Color{
		0:  hal.ColorOrange, // mic
		1:  hal.ColorBlue,   // camera
		2:  hal.ColorRed,    // hang up
		15: hal.ColorYellow, // swap key
	})
}

func (m *meet) Introduce() anim.Sequence {
	return anim.ColumnWipe(meetImage, 150*time.Millisecond, 250*time.Millisecond)
}

func (m *meet) HandleEvent(key int, ev event.Flags) error {
	if !ev.Has(event.SinglePress) {
		return nil
	}
	switch key {
	case 0:
		return m.keys.Chord(hal.KeyGUI, hal.KeyShift, hal.KeyM)
	case 1:
		return m.keys.Chord(hal.KeyGUI, hal.KeyShift, hal.KeyO)
	case 2:
		return m.keys.Chord(hal.KeyGUI, hal.KeyShift, hal.KeyB)
	}
	return nil
}
