//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// padKeyCount is the simulated board: a 4x4 grid.
const padKeyCount = 16

type hostHAL struct {
	logger  *hostLogger
	buttons *hostButtons
	pixels  *hostPixels
	keys    *hostKeys
	screen  *hostScreen
	clock   hostClock
}

// New returns the host HAL: the pad simulated in a window (or
// headless), keystrokes echoed to stdout.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger:  logger,
		buttons: &hostButtons{},
		pixels:  &hostPixels{},
		keys:    &hostKeys{logger: logger},
		screen:  &hostScreen{},
		clock:   hostClock{},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Buttons() Buttons { return h.buttons }
func (h *hostHAL) Pixels() Pixels   { return h.pixels }
func (h *hostHAL) Keys() Keys       { return h.keys }
func (h *hostHAL) Screen() Screen   { return h.screen }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostButtons mirrors the window's key state. The window poll writes,
// the app step reads; ebiten runs both on the same goroutine but the
// mutex keeps headless and test use safe too.
type hostButtons struct {
	mu    sync.Mutex
	state [padKeyCount]bool
}

func (b *hostButtons) Read(pressed []bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range pressed {
		if i < len(b.state) {
			pressed[i] = b.state[i]
		} else {
			pressed[i] = false
		}
	}
	return nil
}

func (b *hostButtons) set(state [padKeyCount]bool) {
	b.mu.Lock()
	b.state = state
	b.mu.Unlock()
}

// hostPixels stages colors for the window to draw. Show is a no-op:
// the window samples the staged state each frame.
type hostPixels struct {
	mu    sync.Mutex
	state [padKeyCount]Color
}

func (p *hostPixels) Set(key int, c Color) {
	if key < 0 || key >= len(p.state) {
		return
	}
	p.mu.Lock()
	p.state[key] = c
	p.mu.Unlock()
}

func (p *hostPixels) Show() error { return nil }

func (p *hostPixels) snapshot() [padKeyCount]Color {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// hostKeys echoes would-be HID traffic to the log.
type hostKeys struct {
	logger *hostLogger
}

func (k *hostKeys) Chord(codes ...Keycode) error {
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = keycodeName(c)
	}
	k.logger.WriteLineString("hid: chord " + strings.Join(names, "+"))
	return nil
}

func (k *hostKeys) Write(s string) error {
	k.logger.WriteLineString(fmt.Sprintf("hid: write %q", s))
	return nil
}

func keycodeName(c Keycode) string {
	switch {
	case c >= KeyA && c <= KeyZ:
		return string(rune('a' + c - KeyA))
	case c >= Key1 && c <= Key9:
		return string(rune('1' + c - Key1))
	case c == Key0:
		return "0"
	}
	switch c {
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyBackspace:
		return "backspace"
	case KeyTab:
		return "tab"
	case KeySpace:
		return "space"
	case KeyCtrl:
		return "ctrl"
	case KeyShift:
		return "shift"
	case KeyAlt:
		return "alt"
	case KeyGUI:
		return "gui"
	}
	return fmt.Sprintf("0x%02X", uint8(c))
}

// hostScreen keeps the last layout summary for the window banner.
type hostScreen struct {
	mu      sync.Mutex
	summary string
}

func (s *hostScreen) Render(summary string) error {
	s.mu.Lock()
	s.summary = summary
	s.mu.Unlock()
	return nil
}

func (s *hostScreen) banner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

type hostClock struct{}

func (hostClock) Now() time.Time { return time.Now() }
