package galaxy

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

const (
	// sectionScrollMargin keeps a little space above a section heading
	// after a jump.
	sectionScrollMargin = 16.0
	// highlightDuration is how long the selected card's outline fades in.
	highlightDuration = 0.25
)

// boxesView is the 2D card grid. It reuses the camera controller in pixel
// units: Y is 0 at the top of the page and decreases as the page scrolls.
type boxesView struct {
	s       *Scene
	ctrl    *Controller
	grid    BoxesLayout
	handles []CallbackHandle

	selected string
	// highlight is the selected card's outline color.
	highlight      Color
	highlightTween *TweenGroup
}

func newBoxesView(s *Scene) *boxesView {
	cfg := BoxesControllerConfig()
	cfg.Clock = s.clock
	cfg.Coarse = s.device.Coarse
	v := &boxesView{s: s, ctrl: NewController(cfg)}
	v.resize()
	v.handles = append(v.handles, s.router.Attach(v.ctrl)...)
	v.handles = append(v.handles, v.ctrl.OnTargetReached(func(y float64) {
		s.emit(CameraEvent{Type: EventTargetReached, Y: y})
	}))
	return v
}

func (v *boxesView) mode() ViewMode          { return ModeBoxes }
func (v *boxesView) controller() *Controller { return v.ctrl }

func (v *boxesView) resize() {
	v.grid = ComputeBoxes(v.s.cfg.Items, v.s.width, v.s.cfg.Layout, v.s.cfg.Boxes)
	v.ctrl.SetBounds(v.grid.ScrollBounds(v.s.height))
}

func (v *boxesView) update(dt float64) {
	v.ctrl.Update(dt)
	v.highlightTween.Update(float32(dt))
}

func (v *boxesView) navigate(section string) bool {
	top, ok := v.grid.SectionTop(strings.ToLower(strings.TrimSpace(section)))
	if !ok {
		return false
	}
	v.ctrl.NavigateTo(v.ctrl.Bounds().Clamp(-(top - sectionScrollMargin)))
	return true
}

func (v *boxesView) click(x, y float64) {
	if c, ok := v.grid.CardAt(x, y-v.ctrl.Y()); ok {
		v.selected = c.Item.ID
		v.highlight = colorPanelEdge
		v.highlightTween = TweenColor(&v.highlight, colorText, highlightDuration, ease.OutQuad)
		v.s.emit(CameraEvent{Type: EventItemSelected, Y: v.ctrl.Y(), ItemID: c.Item.ID})
	}
}

func (v *boxesView) escape() {
	if v.selected == "" {
		return
	}
	v.selected = ""
	v.highlightTween = nil
	v.s.emit(CameraEvent{Type: EventItemSelected, Y: v.ctrl.Y()})
}

func (v *boxesView) close() {
	for _, h := range v.handles {
		h.Remove()
	}
	v.handles = nil
	v.ctrl.Close()
}

func (v *boxesView) draw(dst *ebiten.Image) {
	off := v.ctrl.Y()
	visible := func(r Rect) bool {
		return r.Y+off+r.Height >= 0 && r.Y+off <= v.s.height
	}
	shift := func(r Rect) Rect {
		r.Y += off
		return r
	}
	for _, sec := range v.grid.Sections {
		switch sec.Name {
		case SectionAbout, SectionContact:
			if visible(sec.Body) {
				r := shift(sec.Body)
				drawPanel(dst, r, colorPanel, colorPanelEdge, 1)
				title := "About"
				if sec.Name == SectionContact {
					title = "Contact"
				}
				drawText(dst, title, r.X+24, r.Y+24, colorAccent, 1)
			}
			continue
		}
		if visible(sec.Heading) {
			r := shift(sec.Heading)
			drawText(dst, strings.ToUpper(sec.Title), r.X, r.Y+20, colorAccent, 1)
		}
		for _, c := range sec.Cards {
			if !visible(c.Rect) {
				continue
			}
			r := shift(c.Rect)
			edge := colorPanelEdge
			if c.Item.ID == v.selected {
				edge = v.highlight
			}
			drawPanel(dst, r, colorPanel, edge, 1)
			if img, ok := v.s.assets.Image(v.s.textureOf(c.Item)); ok {
				drawTexturedPlanet(dst, img, r.X+r.Width-56, r.Y+56, 36)
			} else {
				drawPlanet(dst, r.X+r.Width-56, r.Y+56, 36, c.Item.Theme, false)
			}
			drawText(dst, c.Item.Name, r.X+16, r.Y+16, colorText, 1)
			drawText(dst, wrap(c.Item.Description, int((r.Width-32)/7), 6), r.X+16, r.Y+104, colorMuted, 1)
		}
	}
}

// wrap breaks s into lines of at most width characters, keeping at most
// maxLines lines.
func wrap(s string, width, maxLines int) string {
	if width <= 0 {
		return ""
	}
	var lines []string
	var cur strings.Builder
	for _, w := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
			if len(lines) == maxLines {
				return strings.Join(lines, "\n")
			}
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return strings.Join(lines, "\n")
}
