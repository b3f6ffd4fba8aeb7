package anim

import (
	"testing"
	"time"

	"macropad/hal"
)

type canvas map[int]hal.Color

func (c canvas) set(key int, col hal.Color) { c[key] = col }

func TestPlayerStepsFramesByHold(t *testing.T) {
	seq := Sequence{
		{Ops: []ColorOp{{Key: 0, Color: hal.ColorRed}}, Hold: 100 * time.Millisecond},
		{Ops: []ColorOp{{Key: 1, Color: hal.ColorBlue}}, Hold: 100 * time.Millisecond},
	}

	var p Player
	now := time.Unix(0, 0)
	c := canvas{}

	p.Play(seq)
	if !p.Active() {
		t.Fatal("player idle after Play")
	}

	if p.Step(now, c.set) {
		t.Fatal("finished on first step")
	}
	if c[0] != hal.ColorRed {
		t.Fatalf("frame 0 not applied: %v", c)
	}
	if _, ok := c[1]; ok {
		t.Fatal("frame 1 applied early")
	}

	// Inside the first hold: nothing advances.
	p.Step(now.Add(50*time.Millisecond), c.set)
	if _, ok := c[1]; ok {
		t.Fatal("frame 1 applied during frame 0 hold")
	}

	p.Step(now.Add(110*time.Millisecond), c.set)
	if c[1] != hal.ColorBlue {
		t.Fatal("frame 1 not applied after hold elapsed")
	}

	if !p.Step(now.Add(220*time.Millisecond), c.set) {
		t.Fatal("sequence did not finish")
	}
	if p.Active() {
		t.Fatal("player still active after finish")
	}
}

func TestPlayerEmptySequenceIsIdle(t *testing.T) {
	var p Player
	p.Play(nil)
	if p.Active() {
		t.Fatal("empty sequence armed the player")
	}
	if p.Step(time.Unix(1, 0), func(int, hal.Color) { t.Fatal("set called") }) {
		t.Fatal("idle player reported done")
	}
}

func TestClampDropsTrailingFrames(t *testing.T) {
	seq := Sequence{
		{Hold: 100 * time.Millisecond},
		{Hold: 100 * time.Millisecond},
		{Hold: 100 * time.Millisecond},
	}

	got := seq.Clamp(300 * time.Millisecond)
	if len(got) != 3 {
		t.Fatalf("clamp under budget dropped frames: %d", len(got))
	}

	got = seq.Clamp(250 * time.Millisecond)
	if len(got) != 2 {
		t.Fatalf("clamped to %d frames, want 2", len(got))
	}

	got = seq.Clamp(150 * time.Millisecond)
	if len(got) != 1 {
		t.Fatalf("clamped to %d frames, want 1", len(got))
	}

	// The first frame survives even an impossible budget so a swap
	// still repaints.
	got = seq.Clamp(time.Millisecond)
	if len(got) != 1 {
		t.Fatalf("clamped to %d frames, want 1", len(got))
	}
}

func TestRainbowSweepCoversGrid(t *testing.T) {
	seq := RainbowSweep(16, hal.Rainbow(7), 2, 50*time.Millisecond)
	if len(seq) == 0 {
		t.Fatal("empty sequence")
	}

	c := canvas{}
	for _, f := range seq {
		for _, op := range f.Ops {
			if op.Key < 0 || op.Key > 15 {
				t.Fatalf("op outside grid: key %d", op.Key)
			}
			c.set(op.Key, op.Color)
		}
	}
	if len(c) != 16 {
		t.Fatalf("sweep touched %d keys, want 16", len(c))
	}
}

func TestColumnWipeRevealsWholeImage(t *testing.T) {
	image := make([]hal.Color, 16)
	for i := range image {
		image[i] = hal.ColorGreen
	}

	seq := ColumnWipe(image, 150*time.Millisecond, 250*time.Millisecond)
	c := canvas{}
	for _, f := range seq {
		for _, op := range f.Ops {
			c.set(op.Key, op.Color)
		}
	}
	for i := range image {
		if c[i] != hal.ColorGreen {
			t.Fatalf("key %d never revealed", i)
		}
	}

	// off frame + 4 columns at 150ms each, plus the 250ms tail.
	if d := seq.Duration(); d != 5*150*time.Millisecond+250*time.Millisecond {
		t.Fatalf("duration %v", d)
	}
}

func TestTraceSkipsOutOfRangeKeys(t *testing.T) {
	image := []hal.Color{hal.ColorRed, hal.ColorBlue}
	seq := Trace(image, []int{1, 7, 0}, 10*time.Millisecond)
	// off frame + two valid keys
	if len(seq) != 3 {
		t.Fatalf("got %d frames, want 3", len(seq))
	}
}
