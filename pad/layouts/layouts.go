// Package layouts provides the stock layouts and builds the swap
// sequence from configured names. The dispatcher never sees concrete
// types; everything here satisfies layout.Layout.
package layouts

import (
	"fmt"

	"macropad/hal"
	"macropad/pad/layout"
)

// New builds a stock layout by name.
func New(name string, keys hal.Keys, log hal.Logger) (layout.Layout, error) {
	switch name {
	case "base":
		return newBase(log), nil
	case "meet":
		return newMeet(keys), nil
	case "arena":
		return newArena(keys), nil
	}
	return nil, fmt.Errorf("layouts: unknown layout %q", name)
}

// Names lists the stock layouts in default swap order.
func Names() []string { return []string{"base", "meet", "arena"} }

// pairs derives resting/active colors from a 4x4 logo image: resting
// is the dimmed image, active is the override where set.
func pairs(image []hal.Color, active map[int]hal.Color) []layout.ColorPair {
	out := make([]layout.ColorPair, len(image))
	for i, c := range image {
		p := layout.ColorPair{Resting: hal.Darken(c), Active: hal.ColorClear}
		if a, ok := active[i]; ok {
			p.Active = a
		}
		out[i] = p
	}
	return out
}
