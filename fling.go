package galaxy

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// flingStep is the fixed integration step of the fling spring.
var flingStep = harmonica.FPS(60)

// fling is the inertial motion left over after a drag. A critically damped
// spring pulls the release velocity to zero; every step the controller
// moves its target by the current velocity.
type fling struct {
	spring harmonica.Spring
	v      float64 // velocity in pixels per 16ms frame
	dv     float64 // rate of change of v
	rest   float64
	acc    float64
	done   bool
}

func newFling(v0, frequency, damping, rest float64) *fling {
	return &fling{
		spring: harmonica.NewSpring(flingStep, frequency, damping),
		v:      v0,
		rest:   rest,
	}
}

// advance integrates the spring over dt seconds and calls apply with the
// velocity after each fixed step. It returns false once the fling has
// settled.
func (f *fling) advance(dt float64, apply func(v float64)) bool {
	if f.done {
		return false
	}
	f.acc += dt
	for f.acc+1e-9 >= flingStep && !f.done {
		f.acc -= flingStep
		f.v, f.dv = f.spring.Update(f.v, f.dv, 0)
		if !finite(f.v) || !finite(f.dv) {
			f.done = true
			return false
		}
		if math.Abs(f.v) < f.rest && math.Abs(f.dv) < f.rest {
			f.v, f.dv = 0, 0
			f.done = true
		}
		apply(f.v)
	}
	return !f.done
}

func (f *fling) stop() {
	f.done = true
}
