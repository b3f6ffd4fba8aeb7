package layouts

import (
	"time"

	"macropad/hal"
	"macropad/pad/anim"
	"macropad/pad/event"
	"macropad/pad/layout"
)

// arena is a game shortcut pad: item slots on the top row, ability
// keys on the second, and a couple of chat macros.
type arena struct {
	keys hal.Keys
}

var arenaImage = []hal.Color{
	hal.ColorWhite, hal.ColorRed, hal.ColorRed, hal.ColorRed,
	hal.ColorRed, hal.ColorRed, hal.ColorWhite, hal.ColorRed,
	hal.ColorRed, hal.ColorWhite, hal.ColorRed, hal.ColorRed,
	hal.ColorRed, hal.ColorRed, hal.ColorRed, hal.ColorWhite,
}

// arenaTrace is the key order of the introduction sweep.
var arenaTrace = []int{10, 9, 5, 6, 7, 11, 15, 14, 13, 12, 8, 4, 0, 1, 2, 3}

func newArena(keys hal.Keys) *arena { return &arena{keys: keys} }

func (a *arena) Name() string { return "arena" }

func (a *arena) KeyColors() []layout.ColorPair {
	return pairs(arenaImage, map[int]hal.Color{15: hal.ColorYellow})
}

func (a *arena) Introduce() anim.Sequence {
	return anim.Trace(arenaImage, arenaTrace, 100*time.Millisecond)
}

func (a *arena) HandleEvent(key int, ev event.Flags) error {
	switch {
	case ev.Has(event.SinglePress):
		switch key {
		case 0, 1, 2, 3:
			// Item slots 1-4.
			return a.keys.Chord(hal.Key1 + hal.Keycode(key))
		case 4:
			return a.keys.Chord(hal.KeyQ)
		case 5:
			return a.keys.Chord(hal.KeyW)
		case 6:
			return a.keys.Chord(hal.KeyE)
		case 7:
			return a.keys.Chord(hal.KeyR)
		}
	case ev.Has(event.DoublePress):
		if key == 12 {
			if err := a.keys.Write("gg wp"); err != nil {
				return err
			}
			return a.keys.Chord(hal.KeyEnter)
		}
	case ev.Has(event.LongPress):
		if key == 8 {
			// Open the scoreboard without holding the key.
			return a.keys.Chord(hal.KeyTab)
		}
	}
	return nil
}
