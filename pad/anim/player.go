package anim

import (
	"time"

	"macropad/hal"
)

// Player steps a sequence one frame at a time. It holds no timer of
// its own; the loop passes the current time on every step.
type Player struct {
	seq      Sequence
	idx      int
	deadline time.Time
	active   bool
}

// Play arms the player with a new sequence, replacing any sequence
// still running. An empty sequence leaves the player idle. The first
// frame is applied on the next Step.
func (p *Player) Play(seq Sequence) {
	p.seq = seq
	p.idx = -1
	p.active = len(seq) > 0
}

// Active reports whether a sequence is still running.
func (p *Player) Active() bool { return p.active }

// Step applies the next frame once its predecessor's hold has elapsed.
// It returns true on the step that finishes the sequence.
func (p *Player) Step(now time.Time, set func(key int, c hal.Color)) (done bool) {
	if !p.active {
		return false
	}
	if p.idx >= 0 && now.Before(p.deadline) {
		return false
	}
	p.idx++
	if p.idx >= len(p.seq) {
		p.active = false
		return true
	}
	f := p.seq[p.idx]
	for _, op := range f.Ops {
		set(op.Key, op.Color)
	}
	p.deadline = now.Add(f.Hold)
	return false
}
