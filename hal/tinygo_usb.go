//go:build tinygo && baremetal

package hal

import (
	"fmt"
	kbd "machine/usb/hid/keyboard"
)

// hidPort is the slice of the TinyGo USB keyboard the sink needs.
// keyboard.Port() returns an unexported type, hence the interface.
type hidPort interface {
	Down(c kbd.Keycode) error
	Up(c kbd.Keycode) error
	Release() error
	Write(b []byte) (n int, err error)
}

// usbKeys transmits keystrokes over the native USB HID endpoint.
type usbKeys struct {
	port hidPort
}

func (k *usbKeys) Chord(codes ...Keycode) error {
	for _, c := range codes {
		tc, ok := usbKeycode(c)
		if !ok {
			_ = k.port.Release()
			return fmt.Errorf("hid: unmapped keycode 0x%02X", uint8(c))
		}
		if err := k.port.Down(tc); err != nil {
			_ = k.port.Release()
			return fmt.Errorf("hid: down: %w", err)
		}
	}
	if err := k.port.Release(); err != nil {
		return fmt.Errorf("hid: release: %w", err)
	}
	return nil
}

func (k *usbKeys) Write(s string) error {
	if _, err := k.port.Write([]byte(s)); err != nil {
		return fmt.Errorf("hid: write: %w", err)
	}
	return nil
}

// usbKeycode translates a HID usage ID into the TinyGo keyboard code.
func usbKeycode(c Keycode) (kbd.Keycode, bool) {
	switch {
	case c >= KeyA && c <= KeyZ:
		return kbd.KeyA + kbd.Keycode(c-KeyA), true
	case c >= Key1 && c <= Key0:
		return kbd.Key1 + kbd.Keycode(c-Key1), true
	}
	switch c {
	case KeyEnter:
		return kbd.KeyEnter, true
	case KeyEsc:
		return kbd.KeyEsc, true
	case KeyBackspace:
		return kbd.KeyBackspace, true
	case KeyTab:
		return kbd.KeyTab, true
	case KeySpace:
		return kbd.KeySpace, true
	case KeyCtrl:
		return kbd.KeyModifierCtrl, true
	case KeyShift:
		return kbd.KeyModifierShift, true
	case KeyAlt:
		return kbd.KeyModifierAlt, true
	case KeyGUI:
		return kbd.KeyModifierGUI, true
	}
	return 0, false
}
