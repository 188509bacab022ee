package galaxy

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Orbit is a closed path around the galaxy's vertical axis. The orbiter
// bobs up and down at half its angular rate.
type Orbit struct {
	Radius float64
	// Speed is in radians per second.
	Speed   float64
	YOffset float64
}

// stationOrbits are the decorative stations shown once vehicles are on.
var stationOrbits = []Orbit{
	{Radius: 15, Speed: 0.1, YOffset: 5},
	{Radius: 20, Speed: 0.08, YOffset: -5},
}

// At returns the orbiter's position t seconds after vehicles appeared.
func (o Orbit) At(t float64) Vec3 {
	a := t * o.Speed
	return Vec3{
		X: math.Sin(a) * o.Radius,
		Y: math.Sin(a*0.5) * o.YOffset,
		Z: math.Cos(a) * o.Radius,
	}
}

// drawStation draws a station as a hull with two solar panels.
func drawStation(dst *ebiten.Image, cx, cy, scale float64) {
	hw, hh := 0.6*scale, 0.2*scale
	if hw < 1 {
		return
	}
	pw, ph := 0.9*scale, 0.5*scale
	panel := colorAccent.WithAlpha(0.8).toRGBA()
	vector.DrawFilledRect(dst, float32(cx-hw-pw), float32(cy-ph/2), float32(pw), float32(ph), panel, true)
	vector.DrawFilledRect(dst, float32(cx+hw), float32(cy-ph/2), float32(pw), float32(ph), panel, true)
	vector.DrawFilledRect(dst, float32(cx-hw), float32(cy-hh), float32(2*hw), float32(2*hh), colorMuted.toRGBA(), true)
}
