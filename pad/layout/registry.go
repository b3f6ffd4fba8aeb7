package layout

import (
	"fmt"
	"time"

	"macropad/hal"
	"macropad/pad/anim"
	"macropad/pad/event"
)

// Options configures the registry. Layouts must be non-empty; the
// sequence is fixed for the life of the process.
type Options struct {
	Layouts     []Layout
	Initial     int
	SwapKey     int
	SwapGesture event.Flags

	KeyCount        int
	AnimationBudget time.Duration

	Pixels hal.Pixels
	Screen hal.Screen // optional
	Log    hal.Logger
}

// Registry holds the ordered layout sequence and forwards classified
// events to the active one. The reserved swap gesture is intercepted
// here and advances the active index cyclically; it is never seen by
// a layout. A faulting layout is contained at this boundary so one bad
// handler cannot take down the polling loop.
type Registry struct {
	layouts []Layout
	active  int

	swapKey     int
	swapGesture event.Flags
	keyCount    int
	budget      time.Duration

	pixels hal.Pixels
	screen hal.Screen
	log    hal.Logger

	colors []ColorPair
	player anim.Player
}

func NewRegistry(o Options) (*Registry, error) {
	if len(o.Layouts) == 0 {
		return nil, fmt.Errorf("layout: empty sequence")
	}
	if o.Initial < 0 || o.Initial >= len(o.Layouts) {
		return nil, fmt.Errorf("layout: initial index %d out of range [0,%d)", o.Initial, len(o.Layouts))
	}
	if o.Pixels == nil {
		return nil, fmt.Errorf("layout: nil pixels")
	}
	return &Registry{
		layouts:     o.Layouts,
		active:      o.Initial,
		swapKey:     o.SwapKey,
		swapGesture: o.SwapGesture,
		keyCount:    o.KeyCount,
		budget:      o.AnimationBudget,
		pixels:      o.Pixels,
		screen:      o.Screen,
		log:         o.Log,
	}, nil
}

// Active returns the currently selected layout.
func (r *Registry) Active() Layout { return r.layouts[r.active] }

// ActiveIndex returns the position of the active layout.
func (r *Registry) ActiveIndex() int { return r.active }

// Start enters the initial layout: plays its introduction and paints
// its resting colors.
func (r *Registry) Start(now time.Time) {
	r.enter(now)
}

// Dispatch routes one key's events for this cycle. The reserved swap
// trigger is consumed; everything else goes to the active layout.
func (r *Registry) Dispatch(key int, ev event.Flags, now time.Time) {
	if key == r.swapKey && ev.Has(r.swapGesture) {
		r.active = (r.active + 1) % len(r.layouts)
		r.enter(now)
		return
	}

	r.forward(key, ev)

	// Key feedback: engaged color while down, resting on release.
	// Suppressed while an introduction owns the pixels.
	if r.player.Active() || key >= len(r.colors) {
		return
	}
	if ev.Has(event.KeyDown) {
		r.pixels.Set(key, r.colors[key].Active)
	} else if ev.Has(event.KeyUp) {
		r.pixels.Set(key, r.colors[key].Resting)
	}
}

// Step advances a running introduction by at most one frame. Called
// once per polling cycle.
func (r *Registry) Step(now time.Time) {
	if !r.player.Active() {
		return
	}
	if r.player.Step(now, r.pixels.Set) {
		r.repaint()
	}
}

// Animating reports whether an introduction currently owns the pixels.
func (r *Registry) Animating() bool { return r.player.Active() }

func (r *Registry) enter(now time.Time) {
	l := r.Active()
	r.colors = l.KeyColors()
	r.logf("layout: active %s", l.Name())

	seq := r.introduce(l).Clamp(r.budget)
	r.player.Play(seq)
	if r.player.Active() {
		// Apply the first frame now; later frames ride the loop.
		if r.player.Step(now, r.pixels.Set) {
			r.repaint()
		}
	} else {
		r.repaint()
	}

	if r.screen != nil {
		if err := r.screen.Render(l.Name()); err != nil {
			r.logf("layout %s: screen: %v", l.Name(), err)
		}
	}
}

// introduce calls the layout's Introduce with the same containment as
// event forwarding.
func (r *Registry) introduce(l Layout) (seq anim.Sequence) {
	defer func() {
		if p := recover(); p != nil {
			r.logf("layout %s: introduce panic: %v", l.Name(), p)
			seq = nil
		}
	}()
	return l.Introduce()
}

func (r *Registry) forward(key int, ev event.Flags) {
	l := r.Active()
	defer func() {
		if p := recover(); p != nil {
			r.logf("layout %s: panic on key %d %s: %v", l.Name(), key, ev, p)
		}
	}()
	if err := l.HandleEvent(key, ev); err != nil {
		r.logf("layout %s: key %d %s: %v", l.Name(), key, ev, err)
	}
}

// repaint restores every key to the active layout's resting color.
func (r *Registry) repaint() {
	for i := 0; i < r.keyCount; i++ {
		c := hal.ColorOff
		if i < len(r.colors) {
			c = r.colors[i].Resting
		}
		r.pixels.Set(i, c)
	}
}

func (r *Registry) logf(format string, args ...any) {
	if r.log == nil {
		return
	}
	r.log.WriteLineString(fmt.Sprintf(format, args...))
}
