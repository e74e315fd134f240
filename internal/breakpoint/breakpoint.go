// Package breakpoint turns terminal widths into the wide/narrow layout class.
package breakpoint

import "facetgrip/internal/signal"

// DefaultWideThreshold is the minimum width, in columns, for the wide layout.
// Below it panels stack in a drawer and behave as a single-open accordion.
const DefaultWideThreshold = 100

// Class is the viewport class for a width
type Class int

const (
	Narrow Class = iota
	Wide
)

// String returns the class name
func (c Class) String() string {
	switch c {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

// ClassForWidth maps a terminal width to a class
func ClassForWidth(width, threshold int) Class {
	if width >= threshold {
		return Wide
	}
	return Narrow
}

// Signal exposes "wide layout active", recomputed on every resize
type Signal struct {
	threshold int
	width     int
	wide      *signal.Value[bool]
}

// New creates a signal. Until the first Update the layout is narrow, which
// matches how panels start collapsed before the first paint.
func New(threshold int) *Signal {
	if threshold <= 0 {
		threshold = DefaultWideThreshold
	}
	return &Signal{
		threshold: threshold,
		wide:      signal.NewValue(false),
	}
}

// Update recomputes the class for a new width. It reports whether the class
// flipped.
func (s *Signal) Update(width int) bool {
	s.width = width
	return s.wide.Set(ClassForWidth(width, s.threshold) == Wide)
}

// SetThreshold changes the breakpoint and reclassifies the last width
func (s *Signal) SetThreshold(threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultWideThreshold
	}
	s.threshold = threshold
	return s.Update(s.width)
}

// Get reports whether the wide layout is active
func (s *Signal) Get() bool {
	return s.wide.Get()
}

// Subscribe registers fn for class changes
func (s *Signal) Subscribe(fn func(bool)) func() {
	return s.wide.Subscribe(fn)
}

// Width returns the last observed width
func (s *Signal) Width() int {
	return s.width
}

// Threshold returns the current breakpoint
func (s *Signal) Threshold() int {
	return s.threshold
}
