package field

import "time"

// Debouncer holds back a value until no newer value has been pushed for the
// configured delay. It is driven by the caller's clock and never starts
// timers of its own.
type Debouncer[T any] struct {
	delay    time.Duration
	pending  T
	lastPush time.Time
	armed    bool
}

func NewDebouncer[T any](delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{delay: delay}
}

// Push replaces any pending value and restarts the quiet period.
func (d *Debouncer[T]) Push(v T, now time.Time) {
	d.pending = v
	d.lastPush = now
	d.armed = true
}

// Poll returns the pending value once the quiet period has elapsed.
func (d *Debouncer[T]) Poll(now time.Time) (T, bool) {
	var zero T
	if !d.armed || now.Sub(d.lastPush) < d.delay {
		return zero, false
	}
	v := d.pending
	d.pending = zero
	d.armed = false
	return v, true
}

