package galaxy

import "time"

const (
	// DefaultThrottle bounds how often camera position reports reach observers.
	DefaultThrottle = 30 * time.Millisecond
	// minTrailingDelay is the shortest delay before a trailing report.
	minTrailingDelay = 10 * time.Millisecond
)

// Throttle coalesces a high-frequency value stream into at most one delivery
// per interval. The first value after a quiet interval is delivered at once;
// values arriving inside the interval are coalesced into one trailing
// delivery of the latest value.
type Throttle struct {
	interval time.Duration
	timers   *Timers
	now      func() time.Time
	deliver  func(float64)

	latest  float64
	last    time.Time
	hasLast bool
	pending *Timer
}

// NewThrottle creates a throttle delivering to fn, scheduling trailing
// deliveries on timers.
func NewThrottle(interval time.Duration, timers *Timers, now func() time.Time, fn func(float64)) *Throttle {
	return &Throttle{interval: interval, timers: timers, now: now, deliver: fn}
}

// Push records v and delivers it now or schedules a trailing delivery.
func (t *Throttle) Push(v float64) {
	t.latest = v
	now := t.now()
	elapsed := now.Sub(t.last)
	if !t.hasLast || elapsed >= t.interval {
		t.last = now
		t.hasLast = true
		t.deliver(v)
		return
	}
	if t.pending != nil {
		return
	}
	t.pending = t.timers.AfterFunc(max(minTrailingDelay, t.interval-elapsed), func() {
		t.pending = nil
		t.last = t.now()
		t.deliver(t.latest)
	})
}

// Cancel drops any scheduled trailing delivery.
func (t *Throttle) Cancel() {
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

// Pending reports whether a trailing delivery is scheduled.
func (t *Throttle) Pending() bool {
	return t.pending != nil
}
