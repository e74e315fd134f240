// Package disclosure animates refinement panels open and closed.
//
// Each panel gets an Animator: a small state machine that turns a boolean
// expansion flag into a height/opacity sequence on its Container. Animators
// never write back to the panel store.
package disclosure

import (
	"time"

	"facetgrip/internal/domain"
)

// State is the disclosure state of one panel
type State int

const (
	IdleClosed State = iota
	Opening
	IdleOpen
	Closing
)

func (s State) String() string {
	switch s {
	case IdleClosed:
		return "idle-closed"
	case Opening:
		return "opening"
	case IdleOpen:
		return "idle-open"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// DefaultDuration matches a 150ms ease-out height transition
const DefaultDuration = 150 * time.Millisecond

// Timing configures transition durations
type Timing struct {
	Duration time.Duration // height transition
	Fade     time.Duration // overlay opacity transition; defaults to Duration
}

func (t Timing) withDefaults() Timing {
	if t.Duration <= 0 {
		t.Duration = DefaultDuration
	}
	if t.Fade <= 0 {
		t.Fade = t.Duration
	}
	return t
}

// Animator sequences the disclosure of a single panel
type Animator struct {
	id        domain.PanelID
	container *Container
	timing    Timing

	state    State
	expanded bool
	mounted  bool
	history  []State

	frame          func(now time.Time) // pending next-frame callback
	removeListener func()
	closeArmed     bool
	closeStart     time.Time
}

// NewAnimator creates an unmounted animator. intrinsic measures the panel
// body's natural height in rows.
func NewAnimator(id domain.PanelID, intrinsic func() int, t Timing) *Animator {
	t = t.withDefaults()
	return &Animator{
		id:        id,
		container: NewContainer(intrinsic, t),
		timing:    t,
		state:     IdleClosed,
		history:   []State{IdleClosed},
	}
}

// Mount attaches the animator to a freshly rendered panel. A panel that is
// already expanded on first paint opens without any transition.
func (a *Animator) Mount(expanded bool) {
	if a.mounted {
		return
	}
	a.mounted = true
	a.expanded = expanded
	if expanded {
		a.container.SetHeight(AutoHeight)
		a.container.overlay.snap(0)
		a.setState(IdleOpen)
	}
}

// Unmount detaches every listener and drops the pending frame. The animator
// ignores all input afterwards.
func (a *Animator) Unmount() {
	a.detach()
	a.frame = nil
	a.closeArmed = false
	a.mounted = false
}

// SetExpanded feeds a new expansion flag. A flip during a running
// transition retargets from the height currently on screen.
func (a *Animator) SetExpanded(expanded bool) {
	if !a.mounted || expanded == a.expanded {
		return
	}
	a.expanded = expanded

	// New cycle: the previous listener and frame must not fire
	a.detach()
	a.frame = nil
	a.closeArmed = false

	if expanded {
		a.open()
	} else {
		a.close()
	}
}

func (a *Animator) open() {
	prev := a.state
	a.container.overlay.SetOpacity(1)
	target := a.container.ScrollHeight()
	if prev == IdleClosed {
		a.container.SetHeight(Rows(0))
	}
	a.removeListener = a.container.AddTransitionEndListener(a.onTransitionEnd)
	a.frame = func(time.Time) {
		a.container.SetHeight(Rows(target))
		if !a.container.Transitioning() {
			// Already at the target height: no transition will end
			a.settleOpen()
		}
	}
	a.setState(Opening)
}

func (a *Animator) close() {
	prev := a.state
	a.container.overlay.SetOpacity(1)
	if prev == IdleOpen {
		a.container.SetHeight(Rows(a.container.ScrollHeight()))
	}
	a.frame = func(now time.Time) {
		a.container.SetHeight(Rows(0))
		a.closeStart = now
		a.closeArmed = true
	}
	a.setState(Closing)
}

func (a *Animator) onTransitionEnd(ev TransitionEvent) {
	if ev.Target != a.container || a.state != Opening {
		return
	}
	a.settleOpen()
}

func (a *Animator) settleOpen() {
	a.detach()
	a.container.SetHeight(AutoHeight)
	a.container.overlay.SetOpacity(0)
	a.setState(IdleOpen)
}

func (a *Animator) detach() {
	if a.removeListener != nil {
		a.removeListener()
		a.removeListener = nil
	}
}

func (a *Animator) setState(s State) {
	if s == a.state {
		return
	}
	a.state = s
	a.history = append(a.history, s)
}

// Tick runs the pending frame callback, advances the container and settles
// a finished close
func (a *Animator) Tick(now time.Time) {
	if !a.mounted {
		return
	}
	if cb := a.frame; cb != nil {
		a.frame = nil
		cb(now)
	}
	a.container.advance(now)
	if a.state == Closing && a.closeArmed && now.Sub(a.closeStart) >= a.timing.Duration {
		a.closeArmed = false
		a.setState(IdleClosed)
	}
}

// Animating reports whether more frames are needed
func (a *Animator) Animating() bool {
	if !a.mounted {
		return false
	}
	return a.frame != nil ||
		a.state == Opening || a.state == Closing ||
		a.container.Transitioning() || a.container.overlay.tween.active()
}

// ID returns the panel id
func (a *Animator) ID() domain.PanelID {
	return a.id
}

// State returns the current disclosure state
func (a *Animator) State() State {
	return a.state
}

// Expanded returns the last flag fed to the animator
func (a *Animator) Expanded() bool {
	return a.expanded
}

// Mounted reports whether the animator is attached to a panel
func (a *Animator) Mounted() bool {
	return a.mounted
}

// Height returns the container's height style
func (a *Animator) Height() Height {
	return a.container.Height()
}

// RenderedRows returns the visible body rows
func (a *Animator) RenderedRows() int {
	return a.container.RenderedRows()
}

// OverlayOpacity returns the fade overlay's opacity style
func (a *Animator) OverlayOpacity() float64 {
	return a.container.overlay.Opacity()
}

// Container exposes the animated wrapper
func (a *Animator) Container() *Container {
	return a.container
}

// History returns every state the animator went through, oldest first
func (a *Animator) History() []State {
	return append([]State(nil), a.history...)
}
