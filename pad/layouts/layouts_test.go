package layouts

import (
	"fmt"
	"testing"

	"macropad/hal"
	"macropad/pad/event"
)

type chordRec struct {
	chords [][]hal.Keycode
	writes []string
}

func (r *chordRec) Chord(codes ...hal.Keycode) error {
	r.chords = append(r.chords, codes)
	return nil
}

func (r *chordRec) Write(s string) error {
	r.writes = append(r.writes, s)
	return nil
}

type lineRec struct {
	lines []string
}

func (l *lineRec) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineRec) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func TestStockLayoutsBuild(t *testing.T) {
	keys := &chordRec{}
	log := &lineRec{}

	for _, name := range Names() {
		l, err := New(name, keys, log)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if l.Name() != name {
			t.Errorf("layout %q reports name %q", name, l.Name())
		}
		if got := len(l.KeyColors()); got != 16 {
			t.Errorf("layout %q has %d color pairs, want 16", name, got)
		}
		if len(l.Introduce()) == 0 {
			t.Errorf("layout %q has no introduction", name)
		}
	}
}

func TestUnknownLayoutName(t *testing.T) {
	if _, err := New("dvorak", &chordRec{}, &lineRec{}); err == nil {
		t.Fatal("unknown name accepted")
	}
}

func TestMeetSendsMeetingChords(t *testing.T) {
	keys := &chordRec{}
	l, err := New("meet", keys, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []int{0, 1, 2} {
		if err := l.HandleEvent(key, event.KeyUp|event.SinglePress); err != nil {
			t.Fatalf("key %d: %v", key, err)
		}
	}

	want := [][]hal.Keycode{
		{hal.KeyGUI, hal.KeyShift, hal.KeyM},
		{hal.KeyGUI, hal.KeyShift, hal.KeyO},
		{hal.KeyGUI, hal.KeyShift, hal.KeyB},
	}
	if fmt.Sprint(keys.chords) != fmt.Sprint(want) {
		t.Fatalf("chords %v, want %v", keys.chords, want)
	}

	// KeyDown alone must not type anything.
	keys.chords = nil
	if err := l.HandleEvent(0, event.KeyDown); err != nil {
		t.Fatal(err)
	}
	if len(keys.chords) != 0 {
		t.Fatalf("KeyDown sent chords: %v", keys.chords)
	}
}

func TestArenaMacros(t *testing.T) {
	keys := &chordRec{}
	l, err := New("arena", keys, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := l.HandleEvent(2, event.KeyUp|event.SinglePress); err != nil {
		t.Fatal(err)
	}
	if len(keys.chords) != 1 || keys.chords[0][0] != hal.Key3 {
		t.Fatalf("item slot chord %v, want [3]", keys.chords)
	}

	if err := l.HandleEvent(12, event.KeyUp|event.DoublePress); err != nil {
		t.Fatal(err)
	}
	if len(keys.writes) != 1 || keys.writes[0] != "gg wp" {
		t.Fatalf("chat macro writes %v", keys.writes)
	}
	if last := keys.chords[len(keys.chords)-1]; last[0] != hal.KeyEnter {
		t.Fatalf("chat macro not sent with enter: %v", last)
	}
}

func TestBaseEchoesGestures(t *testing.T) {
	log := &lineRec{}
	l, err := New("base", nil, log)
	if err != nil {
		t.Fatal(err)
	}

	if err := l.HandleEvent(7, event.KeyDown); err != nil {
		t.Fatal(err)
	}
	if len(log.lines) != 0 {
		t.Fatalf("raw transition logged: %v", log.lines)
	}

	if err := l.HandleEvent(7, event.KeyUp|event.DoublePress); err != nil {
		t.Fatal(err)
	}
	if len(log.lines) != 1 {
		t.Fatalf("gesture not logged: %v", log.lines)
	}
}
