// Package intersect reports when a sentinel row scrolls into view.
package intersect

// Entry is one visibility observation
type Entry struct {
	IsIntersecting bool
}

// Observer delivers the first observation and every change after it, the
// way a browser intersection observer does
type Observer struct {
	callback  func(Entry)
	observed  bool
	visible   bool
	connected bool
}

// New creates a connected observer
func New(callback func(Entry)) *Observer {
	return &Observer{callback: callback, connected: true}
}

// Update feeds the sentinel's current visibility
func (o *Observer) Update(visible bool) {
	if !o.connected {
		return
	}
	if o.observed && visible == o.visible {
		return
	}
	o.observed = true
	o.visible = visible
	if o.callback != nil {
		o.callback(Entry{IsIntersecting: visible})
	}
}

// Observe restarts observation, as when the sentinel is laid out again.
// The next Update fires even if visibility did not change.
func (o *Observer) Observe() {
	o.observed = false
}

// Disconnect stops delivery for good
func (o *Observer) Disconnect() {
	o.connected = false
	o.callback = nil
}

// Connected reports whether the observer still delivers entries
func (o *Observer) Connected() bool {
	return o.connected
}

// Visible returns the last observed visibility
func (o *Observer) Visible() bool {
	return o.visible
}
