// Package panels holds the expansion state of refinement panels.
//
// The registry is a flat, insertion-ordered set of booleans. The only
// cross-panel couplings are the narrow-layout accordion rule in Toggle and
// the expand-all/collapse-all write of the aggregate view.
package panels

import (
	"log"
	"strings"

	"facetgrip/internal/domain"
	"facetgrip/internal/signal"
)

// Entry is one registry slot
type Entry struct {
	ID       domain.PanelID
	Expanded bool
}

// Store owns the panel registry. It is the registry's only writer.
type Store struct {
	wide      signal.Getter[bool]
	order     []domain.PanelID
	expanded  map[domain.PanelID]bool
	configKey string

	listeners []storeListener
	nextID    int
}

type storeListener struct {
	id int
	fn func([]Entry)
}

// NewStore creates an empty store. wide is read at toggle time to pick
// between the independent and the single-open accordion policy.
func NewStore(wide signal.Getter[bool]) *Store {
	if wide == nil {
		wide = signal.Static[bool]{}
	}
	return &Store{
		wide:     wide,
		expanded: make(map[domain.PanelID]bool),
	}
}

// Initialize replaces the registry with one entry per config. Narrow layouts
// start fully collapsed whatever the authored defaults say.
func (s *Store) Initialize(configs []domain.PanelConfig, wide bool) {
	s.order = make([]domain.PanelID, 0, len(configs))
	s.expanded = make(map[domain.PanelID]bool, len(configs))
	for _, cfg := range configs {
		if _, dup := s.expanded[cfg.ID]; !dup {
			s.order = append(s.order, cfg.ID)
		}
		s.expanded[cfg.ID] = wide && cfg.Expanded
	}
	s.configKey = ConfigKey(configs)

	log.Printf("Store: initialized %d panels (wide=%v)", len(s.order), wide)
	s.notify()
}

// Reconfigure initializes the store only when configs differ from the
// configuration applied last. It reports whether the registry was replaced.
func (s *Store) Reconfigure(configs []domain.PanelConfig, wide bool) bool {
	if s.configKey != "" && ConfigKey(configs) == s.configKey {
		return false
	}
	s.Initialize(configs, wide)
	return true
}

// Toggle flips one panel. In the narrow layout every other panel is closed
// first, so at most one panel is ever open there. Unknown ids are stale
// callbacks from a superseded configuration and are ignored.
func (s *Store) Toggle(id domain.PanelID) {
	prev, ok := s.expanded[id]
	if !ok {
		return
	}
	if !s.wide.Get() {
		for _, other := range s.order {
			s.expanded[other] = false
		}
	}
	s.expanded[id] = !prev
	s.notify()
}

// Read returns the expansion flag of id; absent ids read false
func (s *Store) Read(id domain.PanelID) bool {
	return s.expanded[id]
}

// Expanded is the aggregate read: true iff at least one panel is open
func (s *Store) Expanded() bool {
	for _, id := range s.order {
		if s.expanded[id] {
			return true
		}
	}
	return false
}

// SetAllExpanded is the aggregate write. Every panel is forced to v, even
// when the aggregate already reads v.
func (s *Store) SetAllExpanded(v bool) {
	for _, id := range s.order {
		s.expanded[id] = v
	}
	s.notify()
}

// ToggleAll flips the aggregate view: collapse everything when anything is
// open, otherwise expand everything
func (s *Store) ToggleAll() {
	s.SetAllExpanded(!s.Expanded())
}

// Snapshot returns the registry in insertion order
func (s *Store) Snapshot() []Entry {
	entries := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, Entry{ID: id, Expanded: s.expanded[id]})
	}
	return entries
}

// IDs returns panel ids in insertion order
func (s *Store) IDs() []domain.PanelID {
	return append([]domain.PanelID(nil), s.order...)
}

// Len returns the number of configured panels
func (s *Store) Len() int {
	return len(s.order)
}

// Has reports whether id belongs to the current configuration
func (s *Store) Has(id domain.PanelID) bool {
	_, ok := s.expanded[id]
	return ok
}

// Subscribe registers fn to receive a snapshot after every mutation
func (s *Store) Subscribe(fn func([]Entry)) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, storeListener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.Snapshot()
	ls := append([]storeListener(nil), s.listeners...)
	for _, l := range ls {
		l.fn(snap)
	}
}

// ConfigKey identifies a panel configuration. Two configs with the same
// panels and authored defaults, in the same order, share a key.
func ConfigKey(configs []domain.PanelConfig) string {
	var b strings.Builder
	for _, cfg := range configs {
		b.WriteString(string(cfg.ID))
		if cfg.Expanded {
			b.WriteString("=1;")
		} else {
			b.WriteString("=0;")
		}
	}
	return b.String()
}
