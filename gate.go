package galaxy

// LoadTracker is the "assets still loading" signal: it counts queued and
// finished assets and reports whether loading is active and how far along
// it is.
type LoadTracker struct {
	total    int
	finished int
	failed   int
	started  bool

	changed handlerList[bool]
}

// Add queues n more assets.
func (t *LoadTracker) Add(n int) {
	if n <= 0 {
		return
	}
	was := t.Active()
	t.total += n
	t.started = true
	t.notify(was)
}

// Done marks one asset as finished. Failed assets still count as finished
// so a missing texture never blocks the gate.
func (t *LoadTracker) Done(err error) {
	if t.finished >= t.total {
		return
	}
	was := t.Active()
	t.finished++
	if err != nil {
		t.failed++
	}
	t.notify(was)
}

// Active reports whether any queued asset is still loading.
func (t *LoadTracker) Active() bool {
	return t.finished < t.total
}

// Progress returns the loaded percentage in [0, 100]. Nothing queued counts
// as complete.
func (t *LoadTracker) Progress() float64 {
	if t.total == 0 {
		return 100
	}
	return float64(t.finished) / float64(t.total) * 100
}

// Failed returns how many assets could not be loaded.
func (t *LoadTracker) Failed() int {
	return t.failed
}

// Started reports whether anything was ever queued.
func (t *LoadTracker) Started() bool {
	return t.started
}

// OnChange registers fn to receive the Active value whenever it flips.
func (t *LoadTracker) OnChange(fn func(active bool)) CallbackHandle {
	return t.changed.add(fn)
}

func (t *LoadTracker) notify(was bool) {
	if now := t.Active(); now != was {
		t.changed.fire(now)
	}
}

// GateCamera connects a tracker to a controller: input is gated while the
// tracker is active and the intro hold is released when loading finishes.
// The returned handle detaches the gate.
func GateCamera(t *LoadTracker, c *Controller) CallbackHandle {
	c.SetLoading(t.Active())
	return t.OnChange(c.SetLoading)
}
