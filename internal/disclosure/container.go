package disclosure

import (
	"fmt"
	"math"
	"time"
)

// Height is the explicit height style of a container, in rows. Auto sizes
// the container to its content and cannot be transitioned to.
type Height struct {
	Rows int
	Auto bool
}

// AutoHeight is the "auto" sentinel
var AutoHeight = Height{Auto: true}

// Rows returns an explicit height
func Rows(n int) Height {
	return Height{Rows: n}
}

func (h Height) String() string {
	if h.Auto {
		return "auto"
	}
	return fmt.Sprintf("%drows", h.Rows)
}

// TransitionEvent is delivered when a running transition completes. Events
// from elements nested in a container bubble up to the container's
// listeners, so Target is not always the container itself.
type TransitionEvent struct {
	Target   any
	Property string
}

// tween interpolates one numeric style property. A new target starts
// transitioning at the next frame from whatever value is rendered then.
type tween struct {
	value    float64
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	pending  bool
	running  bool
}

func (tw *tween) set(to float64) {
	if tw.pending || tw.running {
		if to == tw.to {
			return
		}
	} else if to == tw.value {
		tw.to = to
		return
	}
	tw.to = to
	tw.pending = true
	tw.running = false
}

func (tw *tween) snap(v float64) {
	tw.value, tw.from, tw.to = v, v, v
	tw.pending, tw.running = false, false
}

func (tw *tween) active() bool {
	return tw.pending || tw.running
}

// advance moves the tween to now and reports whether it just completed
func (tw *tween) advance(now time.Time) bool {
	if tw.pending {
		tw.pending = false
		tw.running = true
		tw.start = now
		tw.from = tw.value
	}
	if !tw.running {
		return false
	}
	p := 1.0
	if tw.duration > 0 {
		p = float64(now.Sub(tw.start)) / float64(tw.duration)
	}
	if p >= 1 {
		tw.value = tw.to
		tw.running = false
		return true
	}
	tw.value = tw.from + (tw.to-tw.from)*easeOut(p)
	return false
}

// easeOut is a cubic ease-out curve
func easeOut(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// Overlay is the bottom-fade element drawn over the last rows of a
// container while it animates
type Overlay struct {
	opacity float64
	tween   tween
}

// SetOpacity sets the opacity style, fading towards it
func (o *Overlay) SetOpacity(v float64) {
	o.opacity = v
	o.tween.set(v)
}

// Opacity returns the opacity style value
func (o *Overlay) Opacity() float64 {
	return o.opacity
}

// Rendered returns the opacity currently on screen
func (o *Overlay) Rendered() float64 {
	return o.tween.value
}

func (o *Overlay) snap(v float64) {
	o.opacity = v
	o.tween.snap(v)
}

type containerListener struct {
	id int
	fn func(TransitionEvent)
}

// Container is the animated wrapper around a panel body. Only the wrapper
// animates; a max-height scroll box inside it is none of its business.
type Container struct {
	height    Height
	tween     tween
	intrinsic func() int
	overlay   *Overlay

	listeners []containerListener
	nextID    int
}

// NewContainer creates a collapsed container. intrinsic reports the natural
// content height in rows.
func NewContainer(intrinsic func() int, t Timing) *Container {
	if intrinsic == nil {
		intrinsic = func() int { return 0 }
	}
	t = t.withDefaults()
	c := &Container{
		height:    Rows(0),
		intrinsic: intrinsic,
		overlay:   &Overlay{},
	}
	c.tween.duration = t.Duration
	c.overlay.tween.duration = t.Fade
	return c
}

// Height returns the height style
func (c *Container) Height() Height {
	return c.height
}

// SetHeight applies a height style. Explicit heights transition from the
// rendered height; auto snaps to the content.
func (c *Container) SetHeight(h Height) {
	if c.height.Auto {
		// Auto follows the content, so that is where a transition starts
		c.tween.snap(float64(c.intrinsic()))
	}
	c.height = h
	if h.Auto {
		c.tween.snap(float64(c.intrinsic()))
		return
	}
	c.tween.set(float64(h.Rows))
}

// ScrollHeight returns the natural content height
func (c *Container) ScrollHeight() int {
	return c.intrinsic()
}

// RenderedRows returns how many rows of the body are visible right now
func (c *Container) RenderedRows() int {
	if c.height.Auto && !c.tween.active() {
		return c.intrinsic()
	}
	return int(math.Round(c.tween.value))
}

// Overlay returns the fade overlay
func (c *Container) Overlay() *Overlay {
	return c.overlay
}

// Transitioning reports whether the height is animating or about to
func (c *Container) Transitioning() bool {
	return c.tween.active()
}

// AddTransitionEndListener registers fn and returns its removal function
func (c *Container) AddTransitionEndListener(fn func(TransitionEvent)) func() {
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, containerListener{id: id, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of attached transition-end listeners
func (c *Container) ListenerCount() int {
	return len(c.listeners)
}

// advance moves both transitions to now and dispatches completion events
func (c *Container) advance(now time.Time) {
	if c.tween.advance(now) {
		c.dispatch(TransitionEvent{Target: c, Property: "height"})
	}
	if c.overlay.tween.advance(now) {
		c.dispatch(TransitionEvent{Target: c.overlay, Property: "opacity"})
	}
}

func (c *Container) dispatch(ev TransitionEvent) {
	ls := append([]containerListener(nil), c.listeners...)
	for _, l := range ls {
		l.fn(ev)
	}
}
