package layout

import (
	"errors"
	"strings"
	"testing"
	"time"

	"macropad/hal"
	"macropad/pad/anim"
	"macropad/pad/event"
)

type spyLayout struct {
	name       string
	introduced int
	events     []event.Flags
	keys       []int
	handleErr  error
	panics     bool
	intro      anim.Sequence
}

func (s *spyLayout) Name() string { return s.name }

func (s *spyLayout) HandleEvent(key int, ev event.Flags) error {
	s.keys = append(s.keys, key)
	s.events = append(s.events, ev)
	if s.panics {
		panic("spy layout exploded")
	}
	return s.handleErr
}

func (s *spyLayout) KeyColors() []ColorPair {
	out := make([]ColorPair, 16)
	for i := range out {
		out[i] = ColorPair{Resting: hal.ColorGreen, Active: hal.ColorWhite}
	}
	return out
}

func (s *spyLayout) Introduce() anim.Sequence {
	s.introduced++
	return s.intro
}

type fakePixels struct {
	state map[int]hal.Color
}

func newFakePixels() *fakePixels { return &fakePixels{state: map[int]hal.Color{}} }

func (p *fakePixels) Set(key int, c hal.Color) { p.state[key] = c }
func (p *fakePixels) Show() error              { return nil }

type fakeScreen struct {
	renders []string
}

func (s *fakeScreen) Render(summary string) error {
	s.renders = append(s.renders, summary)
	return nil
}

type fakeLog struct {
	lines []string
}

func (l *fakeLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *fakeLog) contains(sub string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

func testRegistry(t *testing.T, ls ...Layout) (*Registry, *fakePixels, *fakeScreen, *fakeLog) {
	t.Helper()
	px := newFakePixels()
	sc := &fakeScreen{}
	lg := &fakeLog{}
	r, err := NewRegistry(Options{
		Layouts:         ls,
		SwapKey:         15,
		SwapGesture:     event.ExtraLongPress,
		KeyCount:        16,
		AnimationBudget: 3 * time.Second,
		Pixels:          px,
		Screen:          sc,
		Log:             lg,
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r, px, sc, lg
}

func swap(r *Registry, now time.Time) {
	r.Dispatch(15, event.KeyUp|event.ExtraLongPress, now)
}

func TestRegistryRejectsEmptySequence(t *testing.T) {
	_, err := NewRegistry(Options{Pixels: newFakePixels()})
	if err == nil {
		t.Fatal("empty sequence accepted")
	}
}

func TestCyclingWrapsAround(t *testing.T) {
	a := &spyLayout{name: "a"}
	b := &spyLayout{name: "b"}
	c := &spyLayout{name: "c"}
	r, _, sc, _ := testRegistry(t, a, b, c)

	now := time.Unix(0, 0)
	r.Start(now)
	if r.ActiveIndex() != 0 {
		t.Fatalf("initial index %d", r.ActiveIndex())
	}

	for n := 1; n <= 3; n++ {
		swap(r, now)
		if got, want := r.ActiveIndex(), n%3; got != want {
			t.Fatalf("after %d swaps index %d, want %d", n, got, want)
		}
	}

	// Startup entry plus one per swap: a twice, b and c once.
	if a.introduced != 2 || b.introduced != 1 || c.introduced != 1 {
		t.Fatalf("introduce counts a=%d b=%d c=%d", a.introduced, b.introduced, c.introduced)
	}
	if len(sc.renders) != 4 {
		t.Fatalf("screen rendered %d times, want 4", len(sc.renders))
	}
	if sc.renders[len(sc.renders)-1] != "a" {
		t.Fatalf("last render %q, want a", sc.renders[len(sc.renders)-1])
	}
}

func TestSwapTriggerIsConsumed(t *testing.T) {
	a := &spyLayout{name: "a"}
	b := &spyLayout{name: "b"}
	r, _, _, _ := testRegistry(t, a, b)
	now := time.Unix(0, 0)
	r.Start(now)

	swap(r, now)
	if len(a.events) != 0 || len(b.events) != 0 {
		t.Fatal("swap trigger leaked to a layout")
	}

	// Other gestures on the swap key pass through to the now-active b.
	r.Dispatch(15, event.KeyUp|event.SinglePress, now)
	if len(b.events) != 1 || !b.events[0].Has(event.SinglePress) {
		t.Fatalf("events on swap key not forwarded: %v", b.events)
	}
	if len(a.events) != 0 {
		t.Fatal("inactive layout received events")
	}
}

func TestForwardingReachesOnlyActive(t *testing.T) {
	a := &spyLayout{name: "a"}
	b := &spyLayout{name: "b"}
	r, _, _, _ := testRegistry(t, a, b)
	now := time.Unix(0, 0)
	r.Start(now)

	r.Dispatch(3, event.KeyDown, now)
	if len(a.events) != 1 || a.keys[0] != 3 {
		t.Fatalf("active layout events: %v keys: %v", a.events, a.keys)
	}
	if len(b.events) != 0 {
		t.Fatal("inactive layout received events")
	}
}

func TestLayoutPanicIsContained(t *testing.T) {
	bad := &spyLayout{name: "bad", panics: true}
	r, _, _, lg := testRegistry(t, bad)
	now := time.Unix(0, 0)
	r.Start(now)

	r.Dispatch(1, event.KeyDown, now)
	r.Dispatch(2, event.KeyDown, now) // loop survives, next key still dispatched

	if len(bad.keys) != 2 {
		t.Fatalf("dispatch stopped after panic: %v", bad.keys)
	}
	if !lg.contains("panic") {
		t.Fatalf("panic not logged: %v", lg.lines)
	}
}

func TestLayoutErrorIsLogged(t *testing.T) {
	bad := &spyLayout{name: "bad", handleErr: errors.New("usb fell off")}
	r, _, _, lg := testRegistry(t, bad)
	now := time.Unix(0, 0)
	r.Start(now)

	r.Dispatch(0, event.SinglePress|event.KeyUp, now)
	if !lg.contains("usb fell off") {
		t.Fatalf("error not logged: %v", lg.lines)
	}
}

func TestKeyFeedbackColors(t *testing.T) {
	a := &spyLayout{name: "a"}
	r, px, _, _ := testRegistry(t, a)
	now := time.Unix(0, 0)
	r.Start(now)

	// Startup with no introduction paints resting colors.
	if px.state[4] != hal.ColorGreen {
		t.Fatalf("resting color not painted: %v", px.state[4])
	}

	r.Dispatch(4, event.KeyDown, now)
	if px.state[4] != hal.ColorWhite {
		t.Fatalf("active color not painted: %v", px.state[4])
	}

	r.Dispatch(4, event.KeyUp|event.SinglePress, now)
	if px.state[4] != hal.ColorGreen {
		t.Fatalf("resting color not restored: %v", px.state[4])
	}
}

func TestIntroductionOwnsPixelsUntilDone(t *testing.T) {
	intro := anim.Sequence{
		{Ops: []anim.ColorOp{{Key: 0, Color: hal.ColorRed}}, Hold: 100 * time.Millisecond},
	}
	a := &spyLayout{name: "a", intro: intro}
	r, px, _, _ := testRegistry(t, a)

	now := time.Unix(0, 0)
	r.Start(now)
	r.Step(now)
	if !r.Animating() {
		t.Fatal("introduction not running")
	}
	if px.state[0] != hal.ColorRed {
		t.Fatal("intro frame not applied")
	}

	// Key feedback is suppressed while the intro owns the pixels.
	r.Dispatch(4, event.KeyDown, now)
	if px.state[4] == hal.ColorWhite {
		t.Fatal("feedback painted during introduction")
	}

	// Hold elapses: the sequence finishes and resting colors return.
	r.Step(now.Add(150 * time.Millisecond))
	r.Step(now.Add(300 * time.Millisecond))
	if r.Animating() {
		t.Fatal("introduction still running")
	}
	if px.state[0] != hal.ColorGreen || px.state[4] != hal.ColorGreen {
		t.Fatalf("resting repaint missing: %v", px.state)
	}
}

func TestIntroducePanicIsContained(t *testing.T) {
	// A layout whose Introduce panics still becomes active with its
	// resting colors painted.
	bad := &introPanicLayout{}
	r, px, _, lg := testRegistry(t, bad)
	r.Start(time.Unix(0, 0))

	if !lg.contains("introduce panic") {
		t.Fatalf("panic not logged: %v", lg.lines)
	}
	if px.state[0] != hal.ColorGreen {
		t.Fatal("resting colors not painted after introduce panic")
	}
}

type introPanicLayout struct{ spyLayout }

func (l *introPanicLayout) Name() string { return "explosive" }

func (l *introPanicLayout) Introduce() anim.Sequence { panic("boom") }
