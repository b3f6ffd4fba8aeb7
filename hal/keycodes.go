package hal

// Keycode is a USB HID usage ID from the keyboard usage page.
// Modifiers use their real usage IDs (0xE0..0xE7), so a chord is just
// a list of codes.
type Keycode uint8

const (
	KeyA Keycode = 0x04 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

const (
	Key1 Keycode = 0x1E + iota
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyTab
	KeySpace
)

const (
	KeyCtrl  Keycode = 0xE0
	KeyShift Keycode = 0xE1
	KeyAlt   Keycode = 0xE2
	KeyGUI   Keycode = 0xE3
)
