// Package pagination decides when another page of results should be loaded.
//
// Scroll-driven loading is capped per search until the user asks for more
// with an explicit click; from then on it is unlimited for that search.
package pagination

import "facetgrip/internal/domain"

// DefaultAutoLimit is how many pages may load automatically per search.
// Setting auto_load_pages = 3 gives the web client's cap, which checks the
// counter with <= 2 and so lets a third page through.
const DefaultAutoLimit = 2

// State is the controller's per-search bookkeeping
type State struct {
	AutoTriggerCount int
	ManualOverride   bool
	Signature        domain.QuerySignature
}

// Option configures a Controller
type Option func(*Controller)

// WithAutoLimit overrides the automatic page cap
func WithAutoLimit(n int) Option {
	return func(c *Controller) {
		if n >= 0 {
			c.limit = n
		}
	}
}

// WithSignature seeds the controller with the active search
func WithSignature(sig domain.QuerySignature) Option {
	return func(c *Controller) {
		c.state.Signature = sig
	}
}

// Controller is the single writer of pagination State. It only decides
// whether to continue; the fetch outcome belongs to the caller.
type Controller struct {
	fetch func(manual bool)
	limit int
	state State
}

// New creates a controller that calls fetch to request the next page
func New(fetch func(manual bool), opts ...Option) *Controller {
	if fetch == nil {
		fetch = func(bool) {}
	}
	c := &Controller{
		fetch: fetch,
		limit: DefaultAutoLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnIntersect handles the sentinel becoming visible. Nothing happens while
// the search is stalled, which keeps page fetches from overlapping. It
// reports whether a page was requested.
func (c *Controller) OnIntersect(stalled bool) bool {
	if stalled {
		return false
	}
	if c.state.AutoTriggerCount >= c.limit && !c.state.ManualOverride {
		return false
	}
	c.fetch(false)
	c.state.AutoTriggerCount++
	return true
}

// OnManualTrigger handles a click on "load more". It always requests a
// page; callers disable the control while stalled.
func (c *Controller) OnManualTrigger() {
	c.state.ManualOverride = true
	c.fetch(true)
}

// OnQueryChanged restarts the limits when a logically new search begins.
// It must run before any trigger of the new search.
func (c *Controller) OnQueryChanged(sig domain.QuerySignature) bool {
	if sig == c.state.Signature {
		return false
	}
	c.state = State{Signature: sig}
	return true
}

// SetAutoLimit changes the automatic page cap. The running search keeps
// its trigger count.
func (c *Controller) SetAutoLimit(n int) {
	if n >= 0 {
		c.limit = n
	}
}

// State returns a copy of the current bookkeeping
func (c *Controller) State() State {
	return c.state
}

// Limit returns the automatic page cap
func (c *Controller) Limit() int {
	return c.limit
}
