//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"image/color"
	"machine"
	kbd "machine/usb/hid/keyboard"
	"time"

	"tinygo.org/x/drivers/apa102"
)

// Pico RGB Keypad base wiring: the button expander sits on I2C0 and
// the LED chain hangs off a bit-banged SPI pair with a hard-wired
// chip select.
const (
	expanderAddr uint16 = 0x20
	expanderReg  byte   = 0x00
)

// ledBrightness is the 5-bit APA102 global brightness (0-31) carried
// in the alpha channel. Full white at 31 is painful up close.
const ledBrightness = 6

type rgbKeypadHAL struct {
	logger  *uartLogger
	buttons *expanderButtons
	pixels  *ledChain
	keys    *usbKeys
	screen  Screen
	clock   deviceClock
}

// New returns the bare-metal HAL for a Pico on the RGB Keypad base.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	// The LED driver's chip select is wired to GP17 and simply held low.
	cs := machine.GP17
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cs.Low()

	buttons, err := initExpander()
	if err != nil {
		logger.WriteLineString("hal: " + err.Error())
		buttons = nil
	}

	var screen Screen
	if s, err := initScreen(); err == nil {
		screen = s
	} else {
		logger.WriteLineString("hal: " + err.Error())
		screen = nullScreen{}
	}

	return &rgbKeypadHAL{
		logger:  logger,
		buttons: buttons,
		pixels:  newLEDChain(),
		keys:    &usbKeys{port: kbd.Port()},
		screen:  screen,
		clock:   deviceClock{},
	}
}

func (h *rgbKeypadHAL) Logger() Logger { return h.logger }
func (h *rgbKeypadHAL) Buttons() Buttons {
	if h.buttons == nil {
		return brokenButtons{}
	}
	return h.buttons
}
func (h *rgbKeypadHAL) Pixels() Pixels { return h.pixels }
func (h *rgbKeypadHAL) Keys() Keys     { return h.keys }
func (h *rgbKeypadHAL) Screen() Screen { return h.screen }
func (h *rgbKeypadHAL) Clock() Clock   { return h.clock }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// expanderButtons reads the TCA9555 port expander behind the keys.
// One transaction returns all 16 levels; a low bit is a pressed key.
type expanderButtons struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
}

func initExpander() (*expanderButtons, error) {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400_000,
	}); err != nil {
		return nil, fmt.Errorf("keypad: i2c configure: %w", err)
	}

	b := &expanderButtons{i2c: i2c, write: [1]byte{expanderReg}}

	// The expander can be slow to answer right after power-on; probe
	// with bounded retries before giving up.
	const probeTries = 50
	for i := 0; i < probeTries; i++ {
		if err := i2c.Tx(expanderAddr, b.write[:], b.read[:]); err == nil {
			return b, nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, fmt.Errorf("keypad: expander not responding at 0x%02X", expanderAddr)
}

func (b *expanderButtons) Read(pressed []bool) error {
	if err := b.i2c.Tx(expanderAddr, b.write[:], b.read[:]); err != nil {
		return fmt.Errorf("keypad: expander read: %w", err)
	}
	bits := uint16(b.read[0]) | uint16(b.read[1])<<8
	for i := range pressed {
		if i >= 16 {
			pressed[i] = false
			continue
		}
		pressed[i] = bits&(1<<uint(i)) == 0
	}
	return nil
}

// brokenButtons stands in when the expander never probed; the first
// loop cycle then fails fast instead of running a dead pad.
type brokenButtons struct{}

func (brokenButtons) Read([]bool) error {
	return fmt.Errorf("keypad: expander unavailable")
}

// ledChain drives the APA102-compatible chain under the keys over
// software SPI (SCK GP18, SDO GP19).
type ledChain struct {
	dev *apa102.Device
	buf [16]color.RGBA
}

func newLEDChain() *ledChain {
	c := &ledChain{dev: apa102.NewSoftwareSPI(machine.GP18, machine.GP19, 1)}
	for i := range c.buf {
		c.buf[i] = color.RGBA{A: ledBrightness}
	}
	return c
}

func (c *ledChain) Set(key int, col Color) {
	if key < 0 || key >= len(c.buf) {
		return
	}
	r, g, b := col.Channels()
	// Alpha carries the APA102 global brightness, not opacity.
	c.buf[key] = color.RGBA{R: r, G: g, B: b, A: ledBrightness}
}

func (c *ledChain) Show() error {
	if _, err := c.dev.WriteColors(c.buf[:]); err != nil {
		return fmt.Errorf("leds: %w", err)
	}
	return nil
}

type deviceClock struct{}

func (deviceClock) Now() time.Time { return time.Now() }

type nullScreen struct{}

func (nullScreen) Render(string) error { return nil }
