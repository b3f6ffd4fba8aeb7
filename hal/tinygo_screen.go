//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"image/color"
	"machine"

	"tinygo.org/x/drivers/st7789"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// st7789Screen is the optional 1.14" IPS panel used as a layout
// banner. Wiring: SPI1 with SCK GP26 / SDO GP27, CS GP21, DC GP20,
// RST GP22, backlight tied to 3V3.
type st7789Screen struct {
	dev st7789.Device
}

func initScreen() (*st7789Screen, error) {
	spi := machine.SPI1
	if err := spi.Configure(machine.SPIConfig{
		SCK:       machine.GP26,
		SDO:       machine.GP27,
		Frequency: 8_000_000,
	}); err != nil {
		return nil, fmt.Errorf("screen: spi configure: %w", err)
	}

	dev := st7789.New(spi, machine.GP22, machine.GP20, machine.GP21, machine.NoPin)
	dev.Configure(st7789.Config{
		Width:    135,
		Height:   240,
		Rotation: st7789.ROTATION_90,
	})
	s := &st7789Screen{dev: dev}
	s.dev.FillScreen(color.RGBA{A: 0xFF})
	return s, nil
}

func (s *st7789Screen) Render(summary string) error {
	s.dev.FillScreen(color.RGBA{A: 0xFF})
	tinyfont.WriteLine(&s.dev, &freemono.Bold9pt7b, 10, 40, summary,
		color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	return nil
}
