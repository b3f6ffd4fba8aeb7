//go:build !tinygo

package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"macropad/pad/event"
)

// profile is the on-disk shape of a host config file. Zero fields keep
// the value from the base config, so a profile only states overrides.
type profile struct {
	DoublePressWindowMS int      `toml:"double_press_window_ms"`
	LongPressMS         int      `toml:"long_press_ms"`
	ExtraLongPressMS    int      `toml:"extra_long_press_ms"`
	PollIntervalMS      int      `toml:"poll_interval_ms"`
	AnimationBudgetMS   int      `toml:"animation_budget_ms"`
	Layouts             []string `toml:"layouts"`
	Initial             *int     `toml:"initial"`
	SwapKey             *int     `toml:"swap_key"`
	SwapGesture         string   `toml:"swap_gesture"`
}

// Load applies the TOML profile at path on top of base. The result
// still has to pass Validate.
func Load(path string, base Config) (Config, error) {
	var p profile
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("config: %s: unknown key %q", path, undec[0].String())
	}

	cfg := base
	if p.DoublePressWindowMS > 0 {
		cfg.DoublePressWindow = time.Duration(p.DoublePressWindowMS) * time.Millisecond
	}
	if p.LongPressMS > 0 {
		cfg.LongPress = time.Duration(p.LongPressMS) * time.Millisecond
	}
	if p.ExtraLongPressMS > 0 {
		cfg.ExtraLongPress = time.Duration(p.ExtraLongPressMS) * time.Millisecond
	}
	if p.PollIntervalMS > 0 {
		cfg.PollInterval = time.Duration(p.PollIntervalMS) * time.Millisecond
	}
	if p.AnimationBudgetMS > 0 {
		cfg.AnimationBudget = time.Duration(p.AnimationBudgetMS) * time.Millisecond
	}
	if len(p.Layouts) > 0 {
		cfg.Layouts = p.Layouts
	}
	if p.Initial != nil {
		cfg.Initial = *p.Initial
	}
	if p.SwapKey != nil {
		cfg.SwapKey = *p.SwapKey
	}
	if p.SwapGesture != "" {
		g, err := parseGesture(p.SwapGesture)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
		cfg.SwapGesture = g
	}
	return cfg, nil
}

func parseGesture(name string) (event.Flags, error) {
	switch name {
	case "single-press":
		return event.SinglePress, nil
	case "double-press":
		return event.DoublePress, nil
	case "long-press":
		return event.LongPress, nil
	case "extra-long-press":
		return event.ExtraLongPress, nil
	}
	return 0, fmt.Errorf("unknown swap gesture %q", name)
}
