//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"macropad/app"
	"macropad/hal"
	"macropad/pad/config"
)

func main() {
	var headless hal.HeadlessConfig
	var profile string
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Poll rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N cycles in headless mode (0 = run forever).")
	flag.StringVar(&profile, "profile", "", "TOML profile overriding the default configuration.")
	flag.Parse()

	cfg := config.Default()
	if profile != "" {
		var err error
		cfg, err = config.Load(profile, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, cfg)
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
