//go:build tinygo

package main

import (
	"macropad/app"
	"macropad/hal"
	"macropad/pad/config"
)

func main() {
	app.Run(hal.New(), config.Default())
}
