package galaxy

import (
	"time"
)

// Timer is a pending callback registered with Timers.
type Timer struct {
	at      time.Time
	fn      func()
	stopped bool
	owner   *Timers
}

// Stop cancels the timer. It reports whether the call prevented the
// callback from running.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	if t.owner != nil {
		t.owner.remove(t)
	}
	return true
}

// Timers is a single-threaded timer queue. Callbacks run from Fire, which
// the frame loop calls once per update, so they never race with input
// handlers or the camera step.
type Timers struct {
	pending []*Timer
	now     func() time.Time
}

// NewTimers creates a queue that reads the current time from now.
func NewTimers(now func() time.Time) *Timers {
	return &Timers{now: now}
}

// AfterFunc schedules fn to run on the first Fire at or after d from now.
func (q *Timers) AfterFunc(d time.Duration, fn func()) *Timer {
	t := &Timer{at: q.now().Add(d), fn: fn, owner: q}
	q.pending = append(q.pending, t)
	return t
}

// Fire runs every timer that is due, in deadline order. Timers scheduled by
// a callback wait for the next Fire.
func (q *Timers) Fire() {
	if len(q.pending) == 0 {
		return
	}
	now := q.now()
	var due []*Timer
	kept := q.pending[:0]
	for _, t := range q.pending {
		if !t.at.After(now) {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(q.pending); i++ {
		q.pending[i] = nil
	}
	q.pending = kept

	sortTimers(due)
	for _, t := range due {
		if t.stopped {
			continue
		}
		t.stopped = true
		t.fn()
	}
}

// Len returns the number of pending timers.
func (q *Timers) Len() int {
	return len(q.pending)
}

// StopAll cancels every pending timer.
func (q *Timers) StopAll() {
	for _, t := range q.pending {
		t.stopped = true
	}
	clear(q.pending)
	q.pending = q.pending[:0]
}

func (q *Timers) remove(t *Timer) {
	for i, p := range q.pending {
		if p == t {
			copy(q.pending[i:], q.pending[i+1:])
			q.pending[len(q.pending)-1] = nil
			q.pending = q.pending[:len(q.pending)-1]
			return
		}
	}
}

// sortTimers is an insertion sort by deadline; the due list is tiny.
func sortTimers(ts []*Timer) {
	for i := 1; i < len(ts); i++ {
		for j := i; j > 0 && ts[j].at.Before(ts[j-1].at); j-- {
			ts[j], ts[j-1] = ts[j-1], ts[j]
		}
	}
}
