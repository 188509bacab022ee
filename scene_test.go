package galaxy

import (
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

type recordingStore struct {
	events []CameraEvent
}

func (r *recordingStore) EmitEvent(e CameraEvent) {
	r.events = append(r.events, e)
}

func (r *recordingStore) of(typ EventType) []CameraEvent {
	var out []CameraEvent
	for _, e := range r.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func testItems() []Item {
	items := []Item{
		{ID: "stealth-founder", Name: "Stealth Founder", Category: CategoryFeatured, Size: SizeLarge},
		{ID: "library-seat-radar", Name: "Library Seat Radar", Category: CategoryFeatured, Size: SizeLarge},
	}
	items = append(items, makeItems("p", CategoryProjects, 5)...)
	return append(items, makeItems("g", CategoryGames, 3)...)
}

func newTestScene(t *testing.T, mod func(*SceneConfig)) (*Scene, *clock.Mock, *recordingStore) {
	t.Helper()
	mock := clock.NewMock()
	cfg := DefaultSceneConfig()
	cfg.Clock = mock
	cfg.Device = DeviceProfile{Tier: TierHigh}
	cfg.Items = testItems()
	if mod != nil {
		mod(&cfg)
	}
	s := NewScene(cfg)
	rec := &recordingStore{}
	s.SetEventStore(rec)
	t.Cleanup(s.Close)
	return s, mock, rec
}

// runFrames steps the scene headless, one 16ms frame at a time.
func runFrames(s *Scene, mock *clock.Mock, n int) {
	for i := 0; i < n; i++ {
		mock.Add(16 * time.Millisecond)
		s.step(frame, false)
	}
}

func TestScene_StartsInGalaxy(t *testing.T) {
	s, mock, _ := newTestScene(t, nil)
	if s.Mode() != ModeGalaxy {
		t.Fatalf("Mode = %s", s.Mode())
	}
	c := s.Controller()
	if c.IntroHeld() || !c.InputEnabled() {
		t.Error("nothing to load, the intro should be released")
	}
	runFrames(s, mock, 120)
	if math.Abs(c.Y()-AboutY) > NavigationEpsilon {
		t.Errorf("settled at %v, want %v", c.Y(), AboutY)
	}
}

func TestScene_PreloaderAndEffects(t *testing.T) {
	s, mock, _ := newTestScene(t, nil)
	runFrames(s, mock, 10)
	if s.Preloader().Ready() || s.EffectsEnabled() || s.VehiclesEnabled() {
		t.Fatal("preloader dismissed before the minimum duration")
	}
	runFrames(s, mock, 130)
	if !s.Preloader().Ready() {
		t.Fatal("preloader not ready after the minimum duration")
	}
	runFrames(s, mock, 40)
	if !s.Preloader().Hidden() {
		t.Fatal("preloader not hidden after the fade")
	}
	if s.EffectsEnabled() {
		t.Error("effects enabled as soon as the preloader hid")
	}
	runFrames(s, mock, 80)
	if !s.EffectsEnabled() {
		t.Error("effects not enabled after the delay")
	}
	if !s.VehiclesEnabled() || s.vehicleTime <= 0 {
		t.Errorf("vehicles = %v after %vs, want shown and orbiting", s.VehiclesEnabled(), s.vehicleTime)
	}
}

func TestScene_LowEndHint(t *testing.T) {
	s, _, _ := newTestScene(t, func(cfg *SceneConfig) { cfg.Device = DeviceProfile{Tier: TierLow} })
	if s.Preloader().Hint == "" {
		t.Error("low-end device should get the card view hint")
	}
	if s.Mode() != ModeGalaxy {
		t.Error("the hint should not switch modes")
	}

	store := NewMemoryStore()
	_ = store.Set(PreferenceKey, "3d")
	s2, _, _ := newTestScene(t, func(cfg *SceneConfig) {
		cfg.Device = DeviceProfile{Tier: TierLow}
		cfg.Store = store
	})
	if s2.Preloader().Hint != "" {
		t.Error("hint shown despite a stored choice")
	}
}

func TestScene_SetMode(t *testing.T) {
	store := NewMemoryStore()
	s, mock, rec := newTestScene(t, func(cfg *SceneConfig) { cfg.Store = store })
	handlers := s.Router().HandlerCount()
	old := s.Controller()

	s.SetMode(ModeBoxes)
	if s.Mode() != ModeBoxes {
		t.Fatalf("Mode = %s", s.Mode())
	}
	if !old.Closed() {
		t.Error("previous view's controller not closed")
	}
	if got := s.Router().HandlerCount(); got != handlers {
		t.Errorf("router handlers = %d, want %d", got, handlers)
	}
	if v, _, _ := store.Get(PreferenceKey); v != "boxes" {
		t.Errorf("stored = %q", v)
	}
	if ev := rec.of(EventModeChanged); len(ev) != 1 || ev[0].Mode != ModeBoxes {
		t.Errorf("mode events = %+v", ev)
	}
	if !s.Preloader().Ready() {
		t.Error("card view should dismiss the preloader")
	}

	s.ToggleMode()
	runFrames(s, mock, 1)
	if s.Mode() != ModeGalaxy || len(rec.of(EventModeChanged)) != 2 {
		t.Errorf("toggle: mode=%s events=%d", s.Mode(), len(rec.of(EventModeChanged)))
	}
}

func TestScene_StoreUnavailable(t *testing.T) {
	s, mock, rec := newTestScene(t, func(cfg *SceneConfig) {
		cfg.Store = &MemoryStore{Fail: true}
	})
	if s.Mode() != ModeGalaxy {
		t.Fatalf("Mode = %s", s.Mode())
	}
	s.SetMode(ModeBoxes)
	runFrames(s, mock, 2)
	if s.Mode() != ModeBoxes {
		t.Errorf("Mode = %s, the switch should succeed without storage", s.Mode())
	}
	if len(rec.of(EventModeChanged)) != 1 {
		t.Error("mode change not reported")
	}
	s.ToggleMode()
	if s.Mode() != ModeGalaxy {
		t.Errorf("Mode = %s after toggle", s.Mode())
	}
}

func TestScene_QueryOverride(t *testing.T) {
	s, _, _ := newTestScene(t, func(cfg *SceneConfig) { cfg.Query = ParseQuery("boxes=1") })
	if s.Mode() != ModeBoxes {
		t.Errorf("Mode = %s, want boxes", s.Mode())
	}
}

func TestScene_Navigate(t *testing.T) {
	s, mock, rec := newTestScene(t, nil)
	runFrames(s, mock, 5)

	if s.Navigate("blog") {
		t.Error("unknown section accepted")
	}
	if !s.Navigate("Games") {
		t.Fatal("games section not found")
	}
	want, _ := galaxyOf(s).layout.AnchorY("games")
	if s.Controller().TargetY() != want {
		t.Errorf("target = %v, want %v", s.Controller().TargetY(), want)
	}
	runFrames(s, mock, 200)

	reached := rec.of(EventTargetReached)
	if len(reached) != 1 || math.Abs(reached[0].Y-want) >= NavigationEpsilon {
		t.Errorf("target reached events = %+v", reached)
	}
	sections := rec.of(EventSectionChanged)
	if len(sections) == 0 || sections[len(sections)-1].Section != "games" {
		t.Errorf("section events = %+v", sections)
	}
}

func TestScene_ScrollAndDrag(t *testing.T) {
	s, mock, rec := newTestScene(t, nil)
	runFrames(s, mock, 120)
	c := s.Controller()

	s.InjectScroll(250)
	runFrames(s, mock, 1)
	if !approxEqual(c.TargetY(), AboutY-5, epsilon) {
		t.Errorf("target after wheel = %v, want %v", c.TargetY(), AboutY-5)
	}

	before := c.TargetY()
	s.InjectDrag(640, 400, 640, 600, 6)
	runFrames(s, mock, 6)
	if c.TargetY() >= before {
		t.Errorf("dragging down should move the camera down: %v -> %v", before, c.TargetY())
	}
	runFrames(s, mock, 150)
	if len(rec.of(EventItemSelected)) != 0 || galaxyOf(s).focused != "" {
		t.Error("a drag was treated as a click")
	}
}

func galaxyOf(s *Scene) *galaxyView {
	return s.view.(*galaxyView)
}

func TestScene_ClickOpensProject(t *testing.T) {
	s, mock, rec := newTestScene(t, nil)
	runFrames(s, mock, 120)

	g := galaxyOf(s)
	it, ok := g.layout.Find("library-seat-radar")
	if !ok {
		t.Fatal("featured item not placed")
	}
	sx, sy, _, ok := g.projection().Project(it.Position)
	if !ok {
		t.Fatal("featured item behind the camera")
	}

	s.InjectClick(sx, sy)
	runFrames(s, mock, 2)
	if g.focused != it.ID || !s.Controller().State().HasFocus {
		t.Fatalf("focused = %q", g.focused)
	}
	if len(rec.of(EventItemSelected)) != 0 {
		t.Fatal("project opened before the zoom played")
	}

	runFrames(s, mock, 130)
	sel := rec.of(EventItemSelected)
	if len(sel) != 1 || sel[0].ItemID != it.ID {
		t.Fatalf("selection events = %+v", sel)
	}
	st := s.Controller().State()
	if math.Abs(st.Y-it.Position.Y) > 0.05 {
		t.Errorf("camera y = %v, want near %v", st.Y, it.Position.Y)
	}

	s.Escape()
	sel = rec.of(EventItemSelected)
	if len(sel) != 2 || sel[1].ItemID != "" {
		t.Errorf("close event = %+v", sel)
	}
	if f := s.Controller().State().Focus; f.Z != closeDepth || f.X != 0 {
		t.Errorf("focus after escape = %+v", f)
	}
	s.Escape()
	if len(rec.of(EventItemSelected)) != 2 {
		t.Error("second escape emitted an event")
	}
}

func TestScene_ClickMiss(t *testing.T) {
	s, mock, rec := newTestScene(t, nil)
	runFrames(s, mock, 120)
	s.InjectClick(2, 2)
	runFrames(s, mock, 140)
	if galaxyOf(s).focused != "" || len(rec.of(EventItemSelected)) != 0 {
		t.Error("click on empty space focused something")
	}
}

func TestScene_EscapeCancelsPendingOpen(t *testing.T) {
	s, mock, rec := newTestScene(t, nil)
	runFrames(s, mock, 120)
	g := galaxyOf(s)
	it, _ := g.layout.Find("stealth-founder")
	sx, sy, _, _ := g.projection().Project(it.Position)
	s.InjectClick(sx, sy)
	runFrames(s, mock, 2)
	s.Escape()
	runFrames(s, mock, 200)
	if len(rec.of(EventItemSelected)) != 0 {
		t.Errorf("events = %+v, escape should cancel the pending open", rec.of(EventItemSelected))
	}
}

func TestScene_BoxesView(t *testing.T) {
	s, mock, rec := newTestScene(t, func(cfg *SceneConfig) { cfg.Query = ParseQuery("mode=boxes") })
	b := s.view.(*boxesView)
	if b.grid.Columns != 3 {
		t.Errorf("columns = %d at 1280px", b.grid.Columns)
	}

	if !s.Navigate("games") {
		t.Fatal("games section missing")
	}
	if s.Controller().TargetY() >= 0 {
		t.Errorf("target = %v, want scrolled down", s.Controller().TargetY())
	}
	runFrames(s, mock, 200)
	if len(rec.of(EventTargetReached)) != 1 {
		t.Errorf("target reached events = %d", len(rec.of(EventTargetReached)))
	}

	card := b.grid.Sections[len(b.grid.Sections)-2].Cards[0]
	off := s.Controller().Y()
	s.InjectClick(card.Rect.X+10, card.Rect.Y+off+10)
	runFrames(s, mock, 2)
	sel := rec.of(EventItemSelected)
	if len(sel) != 1 || sel[0].ItemID != card.Item.ID {
		t.Fatalf("selection = %+v, want %s", sel, card.Item.ID)
	}
	if r := b.highlight.R; r <= colorPanelEdge.R || r >= colorText.R {
		t.Errorf("outline red = %v, want mid fade", r)
	}
	runFrames(s, mock, 20)
	if !approxEqual(b.highlight.R, colorText.R, 1e-6) || !approxEqual(b.highlight.B, colorText.B, 1e-6) {
		t.Errorf("outline = %+v after the fade, want %+v", b.highlight, colorText)
	}
	s.Escape()
	if sel := rec.of(EventItemSelected); len(sel) != 2 || sel[1].ItemID != "" {
		t.Errorf("close event = %+v", sel)
	}

	s.SetSize(600, 900)
	if b.grid.Columns != 1 {
		t.Errorf("columns = %d at 600px", b.grid.Columns)
	}
	if r := s.Controller().Bounds(); r.Min != -(b.grid.Height - 900) {
		t.Errorf("bounds = %+v after resize", r)
	}
}

func TestScene_CoarseTouch(t *testing.T) {
	s, _, _ := newTestScene(t, nil)
	if s.view.(*galaxyView).layout.InBucket(CategoryFeatured)[0].Position.X == 0 {
		t.Fatal("desktop layout expected first")
	}
	s.noteTouch()
	if !s.Device().Coarse {
		t.Fatal("touch did not mark the device coarse")
	}
	for _, p := range galaxyOf(s).layout.Items {
		if p.Position.X != 0 {
			t.Fatalf("%s at x=%v, want the compact layout", p.ID, p.Position.X)
		}
	}
}

func TestScene_Close(t *testing.T) {
	s, mock, rec := newTestScene(t, nil)
	base := s.Router().HandlerCount() - 4
	s.Navigate("games")
	s.Close()
	if s.Router().HandlerCount() != base {
		t.Errorf("router handlers = %d after close, want %d", s.Router().HandlerCount(), base)
	}
	if s.timers.Len() != 0 {
		t.Errorf("pending timers = %d", s.timers.Len())
	}
	n := len(rec.events)
	mock.Add(time.Minute)
	s.timers.Fire()
	if len(rec.events) != n {
		t.Error("events after close")
	}
}
