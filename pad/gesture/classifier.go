// Package gesture turns raw per-key level samples into classified
// events: level transitions, tap counts, and hold tiers.
package gesture

import (
	"time"

	"macropad/pad/config"
	"macropad/pad/event"
)

// keyState is the per-key bookkeeping between polling cycles. It is
// owned exclusively by the classifier; nothing else mutates it.
type keyState struct {
	down       bool
	pressedAt  time.Time
	releasedAt time.Time
	taps       int
	pendingTap bool        // a released tap waiting out the double-press window
	tier       event.Flags // highest hold tier reported for the current press
}

// Classifier runs one independent state machine per key.
type Classifier struct {
	cfg  config.Config
	keys []keyState
}

func NewClassifier(cfg config.Config) *Classifier {
	return &Classifier{cfg: cfg, keys: make([]keyState, cfg.KeyCount)}
}

// Update feeds one raw sample for one key and returns the events
// produced this cycle, possibly none.
//
// A level change yields KeyDown or KeyUp immediately. Taps resolve on
// release: a second tap inside the double-press window confirms a
// DoublePress on the spot, while a lone tap is held back until the
// window has elapsed with no follow-up, so a true single tap is
// reported one window-length after release. Hold tiers fire at the
// moment a threshold is crossed, each at most once per press, with a
// long hold escalating to ExtraLongPress; a press that earned a hold
// tier is exempt from tap resolution on release.
func (c *Classifier) Update(key int, pressed bool, now time.Time) event.Flags {
	s := &c.keys[key]

	if pressed != s.down {
		s.down = pressed
		if pressed {
			return c.onPress(s, now)
		}
		return c.onRelease(s, now)
	}

	var ev event.Flags
	if s.down && s.tier != event.ExtraLongPress {
		if t := c.holdTier(now.Sub(s.pressedAt)); t != 0 && t != s.tier {
			s.tier = t
			s.taps = 0
			ev |= t
		}
	}
	if !s.down && s.pendingTap && now.Sub(s.releasedAt) >= c.cfg.DoublePressWindow {
		s.pendingTap = false
		s.taps = 0
		ev |= event.SinglePress
	}
	return ev
}

func (c *Classifier) onPress(s *keyState, now time.Time) event.Flags {
	ev := event.KeyDown
	if s.pendingTap {
		if now.Sub(s.releasedAt) < c.cfg.DoublePressWindow {
			s.taps++
		} else {
			// The confirmation cycle has not run yet; report the
			// overdue single tap alongside the new press.
			ev |= event.SinglePress
			s.taps = 1
		}
		s.pendingTap = false
	} else {
		s.taps = 1
	}
	s.pressedAt = now
	s.tier = 0
	return ev
}

func (c *Classifier) onRelease(s *keyState, now time.Time) event.Flags {
	ev := event.KeyUp
	held := now.Sub(s.pressedAt)
	s.releasedAt = now
	switch {
	case s.tier != 0:
		// Hold tier already reported; no tap resolution for this
		// press. The release sample may still complete an escalation
		// crossed since the last poll.
		if t := c.holdTier(held); t == event.ExtraLongPress && t != s.tier {
			ev |= t
		}
		s.taps = 0
	case held >= c.cfg.LongPress:
		// Crossed between the last poll and the release: report only
		// the highest tier reached.
		ev |= c.holdTier(held)
		s.taps = 0
	case s.taps >= 2:
		ev |= event.DoublePress
		s.taps = 0
	default:
		s.pendingTap = true
	}
	return ev
}

func (c *Classifier) holdTier(held time.Duration) event.Flags {
	switch {
	case held >= c.cfg.ExtraLongPress:
		return event.ExtraLongPress
	case held >= c.cfg.LongPress:
		return event.LongPress
	}
	return 0
}
