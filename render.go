package galaxy

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Perspective defaults of the galaxy view.
const (
	DefaultFOV = 75.0
	nearPlane  = 0.1
)

// Projection maps world positions to screen pixels for a perspective
// camera looking down -Z.
type Projection struct {
	Width, Height float64
	// FOV is the vertical field of view in degrees.
	FOV    float64
	Camera Vec3
}

// focal returns the distance, in pixels, of the image plane.
func (p Projection) focal() float64 {
	fov := p.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}
	return (p.Height / 2) / math.Tan(fov*math.Pi/360)
}

// Project returns the screen position of w and the pixels-per-unit scale
// at its depth. ok is false for points behind the near plane.
func (p Projection) Project(w Vec3) (sx, sy, scale float64, ok bool) {
	dz := p.Camera.Z - w.Z
	if dz <= nearPlane {
		return 0, 0, 0, false
	}
	scale = p.focal() / dz
	sx = p.Width/2 + (w.X-p.Camera.X)*scale
	sy = p.Height/2 - (w.Y-p.Camera.Y)*scale
	return sx, sy, scale, true
}

// Unproject returns the world position at depth z under screen point
// (sx, sy). It is the inverse of Project for that plane.
func (p Projection) Unproject(sx, sy, z float64) Vec3 {
	dz := p.Camera.Z - z
	scale := p.focal() / dz
	return Vec3{
		X: p.Camera.X + (sx-p.Width/2)/scale,
		Y: p.Camera.Y - (sy-p.Height/2)/scale,
		Z: z,
	}
}

// uiFace is the font for titles, panels and the preloader.
var uiFace = text.NewGoXFace(basicfont.Face7x13)

// Palette.
var (
	colorBackground = color.RGBA{0x05, 0x06, 0x12, 0xff}
	colorPanel      = Color{R: 0.08, G: 0.09, B: 0.16, A: 0.85}
	colorPanelEdge  = Color{R: 0.35, G: 0.4, B: 0.65, A: 1}
	colorText       = Color{R: 0.92, G: 0.94, B: 1, A: 1}
	colorMuted      = Color{R: 0.6, G: 0.64, B: 0.78, A: 1}
	colorAccent     = Color{R: 0.45, G: 0.7, B: 1, A: 1}
)

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y float64, c Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(
		float32(c.R*alpha), float32(c.G*alpha), float32(c.B*alpha), float32(c.A*alpha),
	)
	op.LineSpacing = 16
	text.Draw(dst, s, uiFace, op)
}

// drawTextCentered draws s horizontally centered on x.
func drawTextCentered(dst *ebiten.Image, s string, x, y float64, c Color, alpha float64) {
	w, _ := text.Measure(s, uiFace, 16)
	drawText(dst, s, x-w/2, y, c, alpha)
}

// drawPanel draws a filled, outlined rectangle.
func drawPanel(dst *ebiten.Image, r Rect, fill, edge Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		fill.WithAlpha(fill.A*alpha).toRGBA(), false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1,
		edge.WithAlpha(edge.A*alpha).toRGBA(), false)
}

// drawPlanet draws an item as a shaded disc with an atmosphere ring.
func drawPlanet(dst *ebiten.Image, cx, cy, r float64, th Theme, highlight bool) {
	if r < 0.5 {
		return
	}
	atmo := th.Atmosphere
	if atmo.A == 0 {
		atmo = colorAccent
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r*1.15), atmo.WithAlpha(0.25).toRGBA(), true)
	surface := th.Surface1
	if surface.A == 0 {
		surface = colorPanelEdge
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), surface.toRGBA(), true)
	if th.Surface2.A > 0 {
		vector.DrawFilledCircle(dst, float32(cx-r*0.25), float32(cy-r*0.25), float32(r*0.55), th.Surface2.WithAlpha(0.6).toRGBA(), true)
	}
	if highlight {
		vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r*1.3), 2, colorText.toRGBA(), true)
	}
}

// drawTexturedPlanet scales img into the disc's bounding square.
func drawTexturedPlanet(dst, img *ebiten.Image, cx, cy, r float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*r/float64(b.Dx()), 2*r/float64(b.Dy()))
	op.GeoM.Translate(cx-r, cy-r)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
