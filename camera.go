package galaxy

import (
	"math"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	// NavigationEpsilon is the distance at which a programmatic navigation
	// counts as arrived.
	NavigationEpsilon = 0.01
	// VerticalSmoothing is the per-frame lerp factor of the vertical axis.
	VerticalSmoothing = 0.1
	// FocusSmoothing is the per-frame lerp factor of the horizontal/depth
	// axes, slower than the vertical scroll for a drifting feel.
	FocusSmoothing = 0.02

	// referenceFrame is the frame duration the smoothing factors are tuned for.
	referenceFrame = 1.0 / 60
	// velocityFrameMs normalizes drag velocity to pixels per 16ms frame.
	velocityFrameMs = 16.0
)

// CameraState is the camera's position model for one mounted view.
type CameraState struct {
	// Y is the rendered vertical position.
	Y float64
	// TargetY is the position input handlers steer towards.
	TargetY float64
	// X and Z are the horizontal and depth position.
	X, Z float64
	// Focus is the horizontal/depth target while HasFocus is set.
	Focus    Vec3
	HasFocus bool
	// Bounds is the inclusive clamp range for user-driven TargetY changes.
	Bounds Range
	// Navigating is true while a programmatic navigation is in flight.
	Navigating bool
}

// smoothing converts a per-reference-frame lerp factor into the factor for
// a frame of dt seconds. dt <= 0 uses the raw factor.
func smoothing(factor, dt float64) float64 {
	if dt <= 0 || dt == referenceFrame {
		return factor
	}
	f := 1 - math.Pow(1-factor, dt/referenceFrame)
	if !finite(f) {
		return factor
	}
	return f
}

// Advance is the pure per-frame camera step. Arrival is checked before
// interpolating, so a converged navigation is reported on the frame it
// arrives rather than one frame late. Non-finite results are discarded and
// the previous value kept.
func Advance(s CameraState, dt float64) (CameraState, bool) {
	reached := false
	if s.Navigating && math.Abs(s.Y-s.TargetY) < NavigationEpsilon {
		s.Navigating = false
		reached = true
	}

	if y := lerp(s.Y, s.TargetY, smoothing(VerticalSmoothing, dt)); finite(y) {
		s.Y = y
	}

	if s.HasFocus {
		t := smoothing(FocusSmoothing, dt)
		x := lerp(s.X, s.Focus.X, t)
		z := lerp(s.Z, s.Focus.Z, t)
		if finite(x) && finite(z) {
			s.X, s.Z = x, z
		}
	}
	return s, reached
}

// ControllerConfig tunes a Controller. Zero values are not usable; start
// from DefaultControllerConfig or BoxesControllerConfig.
type ControllerConfig struct {
	// InitialY is the resting position after mount.
	InitialY float64
	// IntroHold pins the camera at InitialY+IntroOffset until ReleaseIntro.
	IntroHold   bool
	IntroOffset float64
	// InitialX and InitialZ place the camera on the other axes.
	InitialX, InitialZ float64

	Bounds Range

	// WheelSensitivity scales wheel deltas into target movement.
	WheelSensitivity float64
	// DragSensitivity scales screen-space drag deltas; the target moves by
	// the negated, scaled delta.
	DragSensitivity float64
	// FlingScale scales the fling velocity applied per step.
	FlingScale float64
	// MinFlingVelocity is the release speed below which no fling starts.
	MinFlingVelocity float64
	// FlingFrequency and FlingDamping define the fling spring.
	FlingFrequency float64
	FlingDamping   float64

	// Throttle bounds how often OnMove observers are notified.
	Throttle time.Duration

	// Coarse disables the fling on touch-only devices.
	Coarse bool

	// Clock times drag velocity and throttling. Nil uses the wall clock.
	Clock clock.Clock
}

// DefaultControllerConfig returns the tuning of the 3D galaxy camera.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		InitialY:         AboutY,
		IntroHold:        true,
		IntroOffset:      3,
		InitialZ:         15,
		Bounds:           Range{Min: emptyMinY, Max: 13},
		WheelSensitivity: -0.02,
		DragSensitivity:  0.015,
		FlingScale:       0.18,
		MinFlingVelocity: 0.01,
		FlingFrequency:   6,
		FlingDamping:     1,
		Throttle:         DefaultThrottle,
	}
}

// dragState tracks the single active pointer.
type dragState struct {
	active   bool
	lastY    float64
	lastT    time.Time
	velocity float64
}

// Controller owns a CameraState and evolves it from input and time. All
// methods must be called from the update thread.
type Controller struct {
	cfg      ControllerConfig
	state    CameraState
	clock    clock.Clock
	timers   *Timers
	throttle *Throttle

	gated     bool
	introHeld bool
	drag      dragState
	fling     *fling
	closed    bool

	reached handlerList[float64]
	moved   handlerList[float64]
}

// NewController mounts a camera with the given tuning.
func NewController(cfg ControllerConfig) *Controller {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	c := &Controller{cfg: cfg, clock: clk}
	c.timers = NewTimers(clk.Now)
	c.throttle = NewThrottle(cfg.Throttle, c.timers, clk.Now, c.moved.fire)

	start := cfg.InitialY
	if cfg.IntroHold {
		start += cfg.IntroOffset
	}
	c.state = CameraState{
		Y:       start,
		TargetY: cfg.InitialY,
		X:       cfg.InitialX,
		Z:       cfg.InitialZ,
		Bounds:  cfg.Bounds,
	}
	if cfg.IntroHold {
		c.state.TargetY = start
		c.introHeld = true
	}
	return c
}

// State returns a copy of the current camera state.
func (c *Controller) State() CameraState {
	return c.state
}

// Y returns the rendered vertical position.
func (c *Controller) Y() float64 {
	return c.state.Y
}

// TargetY returns the vertical target.
func (c *Controller) TargetY() float64 {
	return c.state.TargetY
}

// Navigating reports whether a programmatic navigation is in flight.
func (c *Controller) Navigating() bool {
	return c.state.Navigating
}

// Flinging reports whether inertial motion is still running.
func (c *Controller) Flinging() bool {
	return c.fling != nil && !c.fling.done
}

// Dragging reports whether a pointer drag is active.
func (c *Controller) Dragging() bool {
	return c.drag.active
}

// SetCoarse switches fling behavior for touch-only devices.
func (c *Controller) SetCoarse(coarse bool) {
	c.cfg.Coarse = coarse
}

// SetBounds replaces the clamp range for wheel and drag input.
func (c *Controller) SetBounds(r Range) {
	c.state.Bounds = r
}

// Bounds returns the clamp range.
func (c *Controller) Bounds() Range {
	return c.state.Bounds
}

// SetLoading gates wheel and drag input while assets load. The first report
// of loading finished releases the intro hold.
func (c *Controller) SetLoading(active bool) {
	c.gated = active
	if !active {
		c.ReleaseIntro()
	}
	if active && c.drag.active {
		c.drag.active = false
	}
}

// InputEnabled reports whether wheel and drag input currently apply.
func (c *Controller) InputEnabled() bool {
	return !c.gated && !c.introHeld && !c.closed
}

// IntroHeld reports whether the camera is still pinned above its resting
// position.
func (c *Controller) IntroHeld() bool {
	return c.introHeld
}

// ReleaseIntro lets a held camera settle to InitialY. Only the first call
// has an effect.
func (c *Controller) ReleaseIntro() {
	if !c.introHeld {
		return
	}
	c.introHeld = false
	c.state.TargetY = c.cfg.InitialY
}

func (c *Controller) setTarget(y float64) {
	if !finite(y) {
		return
	}
	c.state.TargetY = c.state.Bounds.Clamp(y)
}

// Scroll applies a wheel delta (DOM convention, positive scrolls down).
func (c *Controller) Scroll(delta float64) {
	if !c.InputEnabled() {
		return
	}
	c.setTarget(c.state.TargetY + delta*c.cfg.WheelSensitivity)
}

// DragStart begins tracking a pointer at screen y. Any running fling stops.
func (c *Controller) DragStart(y float64) {
	c.stopFling()
	if !c.InputEnabled() {
		return
	}
	c.drag = dragState{active: true, lastY: y, lastT: c.clock.Now()}
}

// DragMove moves the target by the inverse of the screen-space delta and
// records the instantaneous velocity.
func (c *Controller) DragMove(y float64) {
	if !c.drag.active || !c.InputEnabled() {
		return
	}
	now := c.clock.Now()
	dy := y - c.drag.lastY
	dtMs := math.Max(1, float64(now.Sub(c.drag.lastT))/float64(time.Millisecond))
	c.drag.velocity = dy / dtMs * velocityFrameMs
	c.drag.lastY = y
	c.drag.lastT = now
	c.setTarget(c.state.TargetY - dy*c.cfg.DragSensitivity)
}

// DragEnd releases the pointer. User interaction cancels any programmatic
// navigation; a fast enough release on a fine pointer starts a fling.
func (c *Controller) DragEnd() {
	if !c.drag.active {
		return
	}
	c.drag.active = false
	c.state.Navigating = false
	if c.cfg.Coarse {
		return
	}
	v := c.drag.velocity
	if math.Abs(v) < c.cfg.MinFlingVelocity || !finite(v) {
		return
	}
	c.fling = newFling(v, c.cfg.FlingFrequency, c.cfg.FlingDamping, c.cfg.MinFlingVelocity)
}

// NavigateTo sets the target directly. Callers pass section anchors, so the
// value is trusted and not clamped. The last request wins.
func (c *Controller) NavigateTo(y float64) {
	if c.closed || !finite(y) {
		return
	}
	c.stopFling()
	c.introHeld = false
	c.state.TargetY = y
	c.state.Navigating = true
}

// FocusOn drifts the camera towards p on the horizontal and depth axes and
// moves the vertical target to p.Y.
func (c *Controller) FocusOn(p Vec3) {
	if c.closed || !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
		return
	}
	c.stopFling()
	c.state.Focus = p
	c.state.HasFocus = true
	c.state.TargetY = p.Y
}

// ClearFocus stops the horizontal/depth drift where it is.
func (c *Controller) ClearFocus() {
	c.state.HasFocus = false
}

func (c *Controller) stopFling() {
	if c.fling != nil {
		c.fling.stop()
		c.fling = nil
	}
}

// Update advances the camera by one frame of dt seconds: due timers fire,
// the fling writes the target, the state advances, and observers are
// notified.
func (c *Controller) Update(dt float64) {
	if c.closed {
		return
	}
	c.timers.Fire()

	if c.fling != nil {
		if !c.fling.advance(dt, func(v float64) {
			c.setTarget(c.state.TargetY - v*c.cfg.FlingScale)
		}) {
			c.fling = nil
		}
	}

	var reached bool
	c.state, reached = Advance(c.state, dt)
	if reached {
		c.reached.fire(c.state.Y)
	}
	c.throttle.Push(c.state.Y)
}

// OnTargetReached registers fn to run once per completed navigation.
func (c *Controller) OnTargetReached(fn func(y float64)) CallbackHandle {
	return c.reached.add(fn)
}

// OnMove registers fn to receive the vertical position, at most once per
// throttle interval.
func (c *Controller) OnMove(fn func(y float64)) CallbackHandle {
	return c.moved.add(fn)
}

// Close unmounts the controller: the fling stops, pending notifications are
// cancelled and every observer is dropped. Later calls are no-ops.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.stopFling()
	c.drag.active = false
	c.throttle.Cancel()
	c.timers.StopAll()
	c.reached = handlerList[float64]{}
	c.moved = handlerList[float64]{}
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	return c.closed
}

// PendingTimers returns the number of scheduled notifications.
func (c *Controller) PendingTimers() int {
	return c.timers.Len()
}
