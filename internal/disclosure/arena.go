package disclosure

import (
	"time"

	"facetgrip/internal/domain"
	"facetgrip/internal/panels"
)

// Arena owns one animator per mounted panel
type Arena struct {
	animators map[domain.PanelID]*Animator
	order     []domain.PanelID
	measure   func(domain.PanelID) int
	timing    Timing
}

// NewArena creates an empty arena. measure reports a panel body's natural
// height in rows.
func NewArena(measure func(domain.PanelID) int, t Timing) *Arena {
	if measure == nil {
		measure = func(domain.PanelID) int { return 0 }
	}
	return &Arena{
		animators: make(map[domain.PanelID]*Animator),
		measure:   measure,
		timing:    t.withDefaults(),
	}
}

// Sync reconciles the arena with a registry snapshot. New panels are
// mounted with their current flag, panels that disappeared are unmounted
// and the rest receive their flag.
func (ar *Arena) Sync(entries []panels.Entry) {
	seen := make(map[domain.PanelID]bool, len(entries))
	order := make([]domain.PanelID, 0, len(entries))
	for _, e := range entries {
		seen[e.ID] = true
		order = append(order, e.ID)
		if a, ok := ar.animators[e.ID]; ok {
			a.SetExpanded(e.Expanded)
			continue
		}
		id := e.ID
		a := NewAnimator(id, func() int { return ar.measure(id) }, ar.timing)
		a.Mount(e.Expanded)
		ar.animators[id] = a
	}
	for id, a := range ar.animators {
		if !seen[id] {
			a.Unmount()
			delete(ar.animators, id)
		}
	}
	ar.order = order
}

// Tick advances every animator to now
func (ar *Arena) Tick(now time.Time) {
	for _, id := range ar.order {
		if a, ok := ar.animators[id]; ok {
			a.Tick(now)
		}
	}
}

// Animating reports whether any panel still needs frames
func (ar *Arena) Animating() bool {
	for _, a := range ar.animators {
		if a.Animating() {
			return true
		}
	}
	return false
}

// Get returns the animator of a panel
func (ar *Arena) Get(id domain.PanelID) (*Animator, bool) {
	a, ok := ar.animators[id]
	return a, ok
}

// Len returns the number of mounted animators
func (ar *Arena) Len() int {
	return len(ar.animators)
}

// UnmountAll tears every animator down
func (ar *Arena) UnmountAll() {
	for id, a := range ar.animators {
		a.Unmount()
		delete(ar.animators, id)
	}
	ar.order = nil
}

// SetTiming changes durations for panels mounted from now on
func (ar *Arena) SetTiming(t Timing) {
	ar.timing = t.withDefaults()
}
