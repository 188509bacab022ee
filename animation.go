package galaxy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Call
// Update(dt) each frame; values are written straight into the fields.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g == nil || g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Stop ends the group where it is.
func (g *TweenGroup) Stop() {
	if g != nil {
		g.Done = true
	}
}

// TweenValue animates *field to the target value over duration seconds.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenColor animates all four components of *c to the target color.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}

// Fader drives a 0..1 visibility value towards shown or hidden, restarting
// its tween only when the requested state changes.
type Fader struct {
	Alpha    float64
	Duration float32

	shown bool
	tween *TweenGroup
}

// NewFader creates a fader starting fully shown or hidden.
func NewFader(shown bool, duration float32) *Fader {
	f := &Fader{Duration: duration, shown: shown}
	if shown {
		f.Alpha = 1
	}
	return f
}

// Show requests the visible state.
func (f *Fader) Show(shown bool) {
	if shown == f.shown {
		return
	}
	f.shown = shown
	to := 0.0
	if shown {
		to = 1
	}
	f.tween = TweenValue(&f.Alpha, to, f.Duration, ease.OutQuad)
}

// Shown returns the requested state.
func (f *Fader) Shown() bool {
	return f.shown
}

// Update advances the fade.
func (f *Fader) Update(dt float32) {
	if f.tween != nil {
		f.tween.Update(dt)
		if f.tween.Done {
			f.tween = nil
		}
	}
}

// Visible reports whether anything of the faded element shows.
func (f *Fader) Visible() bool {
	return f.Alpha > 0.001
}
