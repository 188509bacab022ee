package galaxy

import (
	"math"
	"time"
)

// Preloader defaults.
const (
	DefaultPreloadMin   = 2 * time.Second
	preloadFade         = 500 * time.Millisecond
	preloadMessageEvery = 1400 * time.Millisecond
)

var preloadMessages = []string{
	"Booting thrusters",
	"Plotting orbits",
	"Warming up shaders",
	"Calibrating camera",
	"Loading projects",
}

// Preloader is the loading overlay. It stays up for at least MinDuration
// and until the tracker reports loading finished, then fades out and
// notifies OnHidden subscribers once.
type Preloader struct {
	tracker   *LoadTracker
	timers    *Timers
	now       func() time.Time
	mountedAt time.Time
	min       time.Duration

	fade     *Fader
	ready    bool
	hidden   bool
	msgIndex int

	readyTimer *Timer
	hideTimer  *Timer
	msgTimer   *Timer

	hiddenSubs handlerList[struct{}]

	// Hint is an optional line shown under the progress, e.g. a mode
	// recommendation.
	Hint string
}

// NewPreloader mounts a preloader watching tracker.
func NewPreloader(tracker *LoadTracker, timers *Timers, now func() time.Time, minDuration time.Duration) *Preloader {
	p := &Preloader{
		tracker:   tracker,
		timers:    timers,
		now:       now,
		mountedAt: now(),
		min:       minDuration,
		fade:      NewFader(true, float32(preloadFade.Seconds())),
	}
	p.scheduleMessage()
	return p
}

func (p *Preloader) scheduleMessage() {
	p.msgTimer = p.timers.AfterFunc(preloadMessageEvery, func() {
		if p.ready {
			return
		}
		p.msgIndex = (p.msgIndex + 1) % len(preloadMessages)
		p.scheduleMessage()
	})
}

// Update checks the loading gate and advances the fade.
func (p *Preloader) Update(dt float64) {
	if !p.ready && p.readyTimer == nil && !p.tracker.Active() {
		remaining := max(0, p.min-p.now().Sub(p.mountedAt))
		p.readyTimer = p.timers.AfterFunc(remaining, p.Dismiss)
	}
	p.fade.Update(float32(dt))
}

// Dismiss starts the fade-out immediately, as when the user picks the card
// grid and no 3D assets need to finish.
func (p *Preloader) Dismiss() {
	if p.ready {
		return
	}
	p.ready = true
	p.readyTimer.Stop()
	p.msgTimer.Stop()
	p.fade.Show(false)
	p.hideTimer = p.timers.AfterFunc(preloadFade, func() {
		p.hidden = true
		p.hiddenSubs.fire(struct{}{})
	})
}

// OnHidden registers fn to run once the overlay has fully faded.
func (p *Preloader) OnHidden(fn func()) CallbackHandle {
	return p.hiddenSubs.add(func(struct{}) { fn() })
}

// Ready reports whether the fade-out has begun.
func (p *Preloader) Ready() bool {
	return p.ready
}

// Hidden reports whether the overlay is gone.
func (p *Preloader) Hidden() bool {
	return p.hidden
}

// Alpha returns the overlay opacity.
func (p *Preloader) Alpha() float64 {
	if p.hidden {
		return 0
	}
	return p.fade.Alpha
}

// Percent returns the rounded loading progress.
func (p *Preloader) Percent() int {
	return int(math.Round(p.tracker.Progress()))
}

// Message returns the current rotating status line.
func (p *Preloader) Message() string {
	return preloadMessages[p.msgIndex]
}

// Close cancels all pending timers.
func (p *Preloader) Close() {
	p.readyTimer.Stop()
	p.hideTimer.Stop()
	p.msgTimer.Stop()
	p.hiddenSubs = handlerList[struct{}]{}
}
