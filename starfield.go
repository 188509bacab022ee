package galaxy

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Star is one background point in world space.
type Star struct {
	Position Vec3
	Size     float64
	Bright   float64
}

// Starfield is the seeded background. Stars fill a box around the content
// so the field parallaxes as the camera scrolls.
type Starfield struct {
	Stars []Star
}

const (
	starSpreadX = 120
	starSpreadZ = 60
	starMargin  = 40
)

// NewStarfield scatters n stars over the vertical range [minY, maxY],
// extended by a margin. The same seed and range always yield the same field.
func NewStarfield(seed string, n int, minY, maxY float64) *Starfield {
	rng := NewSeededSequence(seed)
	lo, hi := minY-starMargin, maxY+starMargin
	f := &Starfield{Stars: make([]Star, n)}
	for i := range f.Stars {
		f.Stars[i] = Star{
			Position: Vec3{
				X: rng.Signed() * starSpreadX,
				Y: lo + rng.Next()*(hi-lo),
				Z: -10 - rng.Next()*starSpreadZ,
			},
			Size:   0.5 + rng.Next(),
			Bright: 0.3 + rng.Next()*0.7,
		}
	}
	return f
}

// Draw projects every visible star through p.
func (f *Starfield) Draw(dst *ebiten.Image, p Projection) {
	for _, s := range f.Stars {
		sx, sy, scale, ok := p.Project(s.Position)
		if !ok {
			continue
		}
		r := float32(max(0.5, s.Size*scale*0.05))
		a := uint8(s.Bright * 255)
		vector.DrawFilledCircle(dst, float32(sx), float32(sy), r, color.RGBA{a, a, a, a}, false)
	}
}
