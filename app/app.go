// Package app wires the pad together: sample the buttons, classify
// each key, dispatch to the active layout, step any running
// introduction, and push the pixels. One cycle per step, no
// concurrency anywhere.
package app

import (
	"fmt"
	"time"

	"macropad/hal"
	"macropad/pad/config"
	"macropad/pad/gesture"
	"macropad/pad/layout"
	"macropad/pad/layouts"
)

// New validates cfg, builds the layout sequence, and returns the step
// closure the platform runner drives once per polling cycle. A
// returned error from the closure is fatal: the keys have already been
// painted the error color.
func New(h hal.HAL, cfg config.Config) (func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seq := make([]layout.Layout, 0, len(cfg.Layouts))
	for _, name := range cfg.Layouts {
		l, err := layouts.New(name, h.Keys(), h.Logger())
		if err != nil {
			return nil, err
		}
		seq = append(seq, l)
	}

	reg, err := layout.NewRegistry(layout.Options{
		Layouts:         seq,
		Initial:         cfg.Initial,
		SwapKey:         cfg.SwapKey,
		SwapGesture:     cfg.SwapGesture,
		KeyCount:        cfg.KeyCount,
		AnimationBudget: cfg.AnimationBudget,
		Pixels:          h.Pixels(),
		Screen:          h.Screen(),
		Log:             h.Logger(),
	})
	if err != nil {
		return nil, err
	}

	cls := gesture.NewClassifier(cfg)
	reg.Start(h.Clock().Now())

	pressed := make([]bool, cfg.KeyCount)
	return func() error {
		now := h.Clock().Now()

		if err := h.Buttons().Read(pressed); err != nil {
			paintError(h, cfg.KeyCount)
			return fmt.Errorf("buttons: %w", err)
		}

		for key := range pressed {
			if ev := cls.Update(key, pressed[key], now); ev != 0 {
				reg.Dispatch(key, ev, now)
			}
		}

		reg.Step(now)

		if err := h.Pixels().Show(); err != nil {
			// A dropped LED refresh is recoverable; the next cycle
			// repaints.
			h.Logger().WriteLineString("pixels: " + err.Error())
		}
		return nil
	}, nil
}

// Run drives the step loop at the configured cadence and blocks
// forever. Bare-metal entrypoint; the host window has its own ticker.
func Run(h hal.HAL, cfg config.Config) {
	step, err := New(h, cfg)
	if err != nil {
		halt(h, cfg.KeyCount, err)
	}
	for {
		if err := step(); err != nil {
			halt(h, cfg.KeyCount, err)
		}
		time.Sleep(cfg.PollInterval)
	}
}

// halt logs the fatal error, paints the error indicator, and parks.
func halt(h hal.HAL, keyCount int, err error) {
	h.Logger().WriteLineString("fatal: " + err.Error())
	paintError(h, keyCount)
	select {}
}

func paintError(h hal.HAL, keyCount int) {
	for i := 0; i < keyCount; i++ {
		h.Pixels().Set(i, hal.ColorError)
	}
	// Best effort; the device may be past caring.
	_ = h.Pixels().Show()
}
