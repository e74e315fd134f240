// Package signal provides externally-owned observable values. The core
// subscribes to them instead of reaching into shared state, so tests can
// inject synthetic signals.
package signal

// Getter is the read side of a signal
type Getter[T any] interface {
	Get() T
}

// Observable is a signal that can be watched
type Observable[T any] interface {
	Getter[T]
	Subscribe(fn func(T)) func()
}

// Value is a single-writer observable value. It is not safe for concurrent
// use; all reads and writes happen on the UI event loop.
type Value[T comparable] struct {
	current   T
	listeners []listener[T]
	nextID    int
}

type listener[T any] struct {
	id int
	fn func(T)
}

// NewValue creates a signal holding initial
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{current: initial}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	return v.current
}

// Set stores next and notifies subscribers when it differs from the current
// value. It reports whether a change happened.
func (v *Value[T]) Set(next T) bool {
	if next == v.current {
		return false
	}
	v.current = next
	// Copy: a listener may unsubscribe while we iterate
	ls := append([]listener[T](nil), v.listeners...)
	for _, l := range ls {
		l.fn(next)
	}
	return true
}

// Subscribe registers fn for future changes. The returned function removes
// the subscription and is safe to call more than once.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.nextID++
	id := v.nextID
	v.listeners = append(v.listeners, listener[T]{id: id, fn: fn})
	return func() {
		for i, l := range v.listeners {
			if l.id == id {
				v.listeners = append(v.listeners[:i:i], v.listeners[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of live subscriptions
func (v *Value[T]) Subscribers() int {
	return len(v.listeners)
}

// Static is a constant Getter, handy for tests and fixed layouts
type Static[T any] struct{ V T }

// Get returns the constant
func (s Static[T]) Get() T { return s.V }
