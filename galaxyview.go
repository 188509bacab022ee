package galaxy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Galaxy view tuning.
const (
	boundsMargin = 6.0
	boundsUpper  = 13.0
	// aboutVisibleY is the camera height below which the About panel fades.
	aboutVisibleY = -3.0
	aboutFade     = 0.4
	// focusDepth is how far in front of a planet the camera stops.
	focusDepth = 5.0
	// closeDepth is the camera depth after a project is closed.
	closeDepth = 10.0
)

// galaxyView is the 3D presentation: planets laid out by the layout
// engine, viewed through a perspective camera that scrolls vertically.
type galaxyView struct {
	s      *Scene
	ctrl   *Controller
	layout Layout
	// drawOrder holds the placed items sorted far to near.
	drawOrder []PlacedItem
	stars     *Starfield
	about     *Fader
	handles   []CallbackHandle

	section     string
	focused     string
	selected    string
	selectTimer *Timer
}

func newGalaxyView(s *Scene) *galaxyView {
	cfg := s.cfg.Camera
	cfg.Clock = s.clock
	cfg.Coarse = s.device.Coarse
	v := &galaxyView{
		s:     s,
		ctrl:  NewController(cfg),
		about: NewFader(true, aboutFade),
	}
	v.relayout()
	v.section = v.layout.SectionAt(v.ctrl.Y())

	v.handles = append(v.handles, s.router.Attach(v.ctrl)...)
	v.handles = append(v.handles,
		GateCamera(s.tracker, v.ctrl),
		v.ctrl.OnTargetReached(func(y float64) {
			s.emit(CameraEvent{Type: EventTargetReached, Y: y})
		}),
		v.ctrl.OnMove(v.trackSection),
	)
	return v
}

// relayout recomputes the layout for the current device and updates the
// camera bounds. The layout engine only recomputes when its inputs change.
func (v *galaxyView) relayout() {
	layout, changed := v.s.engine.Compute(v.s.cfg.Items, v.s.compact())
	v.ctrl.SetCoarse(v.s.device.Coarse)
	if !changed && v.stars != nil {
		return
	}
	v.layout = layout
	v.ctrl.SetBounds(layout.Bounds(boundsMargin, boundsUpper))
	v.drawOrder = slices.Clone(layout.Items)
	slices.SortStableFunc(v.drawOrder, func(a, b PlacedItem) int {
		switch {
		case a.Position.Z < b.Position.Z:
			return -1
		case a.Position.Z > b.Position.Z:
			return 1
		}
		return 0
	})
	v.stars = NewStarfield("starfield", v.s.device.StarCount(), layout.MinY(), boundsUpper)
}

func (v *galaxyView) mode() ViewMode          { return ModeGalaxy }
func (v *galaxyView) controller() *Controller { return v.ctrl }
func (v *galaxyView) resize()                 {}

func (v *galaxyView) update(dt float64) {
	v.ctrl.Update(dt)
	v.about.Show(v.ctrl.Y() >= aboutVisibleY)
	v.about.Update(float32(dt))
}

func (v *galaxyView) trackSection(y float64) {
	sec := v.layout.SectionAt(y)
	if sec == v.section {
		return
	}
	v.section = sec
	v.s.emit(CameraEvent{Type: EventSectionChanged, Y: y, Section: sec})
}

func (v *galaxyView) navigate(section string) bool {
	y, ok := v.layout.AnchorY(section)
	if !ok {
		return false
	}
	v.ctrl.NavigateTo(y)
	return true
}

func (v *galaxyView) projection() Projection {
	st := v.ctrl.State()
	return Projection{
		Width:  v.s.width,
		Height: v.s.height,
		FOV:    v.s.cfg.FOV,
		Camera: Vec3{X: st.X, Y: st.Y, Z: st.Z},
	}
}

// click focuses the nearest planet under the pointer.
func (v *galaxyView) click(x, y float64) {
	p := v.projection()
	for i := len(v.drawOrder) - 1; i >= 0; i-- {
		it := v.drawOrder[i]
		if p.Camera.Z-it.Position.Z <= nearPlane {
			continue
		}
		w := p.Unproject(x, y, it.Position.Z)
		dx, dy := w.X-it.Position.X, w.Y-it.Position.Y
		r := PlanetRadius(it.Item)
		if dx*dx+dy*dy <= r*r {
			v.focus(it)
			return
		}
	}
}

// focus zooms towards a planet and opens it once the zoom has played.
func (v *galaxyView) focus(it PlacedItem) {
	v.ctrl.FocusOn(Vec3{X: it.Position.X, Y: it.Position.Y, Z: it.Position.Z + focusDepth})
	v.focused = it.ID
	v.selectTimer.Stop()
	id := it.ID
	v.selectTimer = v.s.timers.AfterFunc(selectDelay, func() {
		v.selected = id
		v.s.emit(CameraEvent{Type: EventItemSelected, Y: v.ctrl.Y(), ItemID: id})
	})
}

func (v *galaxyView) escape() {
	if v.focused == "" && v.selected == "" {
		return
	}
	v.selectTimer.Stop()
	wasOpen := v.selected != ""
	v.focused, v.selected = "", ""
	v.ctrl.FocusOn(Vec3{X: 0, Y: v.ctrl.Y(), Z: closeDepth})
	if wasOpen {
		v.s.emit(CameraEvent{Type: EventItemSelected, Y: v.ctrl.Y()})
	}
}

func (v *galaxyView) close() {
	v.selectTimer.Stop()
	for _, h := range v.handles {
		h.Remove()
	}
	v.handles = nil
	v.ctrl.Close()
}

func (v *galaxyView) draw(dst *ebiten.Image) {
	p := v.projection()
	v.stars.Draw(dst, p)

	for _, it := range v.drawOrder {
		sx, sy, scale, ok := p.Project(it.Position)
		if !ok {
			continue
		}
		r := PlanetRadius(it.Item) * scale
		if sy+r < 0 || sy-r > v.s.height || sx+r < 0 || sx-r > v.s.width {
			continue
		}
		if img, ok := v.s.assets.Image(v.s.textureOf(it.Item)); ok {
			drawTexturedPlanet(dst, img, sx, sy, r)
		} else {
			drawPlanet(dst, sx, sy, r, it.Theme, v.s.effects && it.ID == v.focused)
		}
		drawTextCentered(dst, it.Name, sx, sy+r+6, colorText, 1)
	}

	if v.s.vehicles {
		for _, o := range stationOrbits {
			if sx, sy, scale, ok := p.Project(o.At(v.s.vehicleTime)); ok {
				drawStation(dst, sx, sy, scale)
			}
		}
	}

	for _, t := range v.layout.Titles {
		sx, sy, _, ok := p.Project(t.Position)
		if ok {
			drawTextCentered(dst, strings.ToUpper(t.Title), sx, sy, colorAccent, 1)
		}
	}

	if v.about.Visible() {
		v.drawAnchorPanel(dst, p, AboutY, "About", []string{
			"A galaxy of projects and games.",
			"Scroll or drag to travel. Click a planet to open it.",
			"Keys: A F P G C jump to sections, M switches view.",
		}, v.about.Alpha)
	}
	v.drawAnchorPanel(dst, p, v.layout.ContactY(), "Contact", []string{
		"Say hello.",
	}, 1)

	if v.selected != "" {
		if it, ok := v.layout.Find(v.selected); ok {
			v.drawDetails(dst, it.Item)
		}
	}
}

// drawAnchorPanel draws a text panel centered on the world point (0, y, 0).
func (v *galaxyView) drawAnchorPanel(dst *ebiten.Image, p Projection, y float64, title string, lines []string, alpha float64) {
	sx, sy, _, ok := p.Project(Vec3{Y: y})
	if !ok {
		return
	}
	const w, lineH = 420.0, 18.0
	h := 40 + float64(len(lines))*lineH
	r := Rect{X: sx - w/2, Y: sy - h/2, Width: w, Height: h}
	if r.Y > v.s.height || r.Y+r.Height < 0 {
		return
	}
	drawPanel(dst, r, colorPanel, colorPanelEdge, alpha)
	drawText(dst, title, r.X+16, r.Y+10, colorAccent, alpha)
	for i, l := range lines {
		drawText(dst, l, r.X+16, r.Y+32+float64(i)*lineH, colorText, alpha)
	}
}

// drawDetails draws the open project's card along the bottom edge.
func (v *galaxyView) drawDetails(dst *ebiten.Image, it Item) {
	lines := []string{it.Description}
	if len(it.Tools) > 0 {
		lines = append(lines, "Built with: "+strings.Join(it.Tools, ", "))
	}
	if it.RepoURL != "" {
		lines = append(lines, "Code: "+it.RepoURL)
	}
	if it.LiveURL != "" {
		lines = append(lines, "Live: "+it.LiveURL)
	}
	lines = append(lines, "Esc to close")
	h := 44 + float64(len(lines))*18
	r := Rect{X: 24, Y: v.s.height - h - 24, Width: v.s.width - 48, Height: h}
	drawPanel(dst, r, colorPanel, colorPanelEdge, 1)
	drawText(dst, fmt.Sprintf("%s  (%s)", it.Name, it.Category), r.X+16, r.Y+12, colorAccent, 1)
	for i, l := range lines {
		drawText(dst, l, r.X+16, r.Y+34+float64(i)*18, colorText, 1)
	}
}
