package galaxy

import (
	"io/fs"
	"math"
	"net/url"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Scene timing.
const (
	// selectDelay is how long the camera zooms in before a clicked project
	// opens.
	selectDelay = 2 * time.Second
	// vehiclesDelay defers the orbiting stations until after the preloader
	// hides.
	vehiclesDelay = 800 * time.Millisecond
	// effectsDelay defers optional effects until after the preloader hides.
	effectsDelay = 1200 * time.Millisecond
	// clickSlop is the pointer travel, in pixels, that turns a press into a
	// drag instead of a click.
	clickSlop = 4.0
)

// SceneConfig holds everything a Scene needs. Start from
// DefaultSceneConfig and override fields.
type SceneConfig struct {
	Items  []Item
	Layout LayoutConfig
	Boxes  BoxesConfig
	Camera ControllerConfig

	// Store persists the view-mode preference. Nil keeps it in memory.
	Store PreferenceStore
	// Query carries URL-style mode overrides (boxes=1, mode=3d).
	Query url.Values

	Device DeviceProfile
	// Compact forces the compact layout regardless of the device.
	Compact bool

	// Assets is searched for textures; AssetPattern is a doublestar glob
	// of extra files to preload alongside the item textures.
	Assets         fs.FS
	AssetPattern   string
	DefaultTexture string

	Width, Height int
	FOV           float64
	PreloadMin    time.Duration

	// Clock drives every timer. Nil uses the wall clock.
	Clock clock.Clock
	Debug bool
}

// DefaultSceneConfig returns a configuration with the stock layout, camera
// and card grid, and the detected device profile.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Layout:     DefaultLayoutConfig(),
		Boxes:      DefaultBoxesConfig(),
		Camera:     DefaultControllerConfig(),
		Device:     DetectDevice(),
		Width:      1280,
		Height:     800,
		FOV:        DefaultFOV,
		PreloadMin: DefaultPreloadMin,
	}
}

// view is one mounted presentation of the items.
type view interface {
	mode() ViewMode
	controller() *Controller
	update(dt float64)
	draw(dst *ebiten.Image)
	navigate(section string) bool
	click(x, y float64)
	escape()
	resize()
	close()
}

// pressState tracks a pointer press for click detection.
type pressState struct {
	active bool
	x, y   float64
	moved  bool
}

// Scene is the top-level object: it owns the mounted view, the input
// router, the preloader, the preference and the frame timers.
type Scene struct {
	cfg    SceneConfig
	engine *LayoutEngine
	prefs  *Preferences
	device DeviceProfile
	clock  clock.Clock
	timers *Timers

	router InputRouter
	input  EbitenInput
	press  pressState

	tracker   *LoadTracker
	assets    *AssetLoader
	preloader *Preloader
	effects   bool
	vehicles  bool
	// vehicleTime is the seconds elapsed since vehicles appeared.
	vehicleTime float64

	view          view
	width, height float64

	store EventStore
	debug bool
	fps   fpsCounter

	injectQueue     []InputEvent
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is where Screenshot writes its files.
	ScreenshotDir string
}

// NewScene creates a scene and mounts the view selected by the stored
// preference and query overrides.
func NewScene(cfg SceneConfig) *Scene {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	s := &Scene{
		cfg:           cfg,
		engine:        NewLayoutEngine(cfg.Layout),
		device:        cfg.Device,
		clock:         clk,
		timers:        NewTimers(clk.Now),
		tracker:       &LoadTracker{},
		width:         float64(cfg.Width),
		height:        float64(cfg.Height),
		ScreenshotDir: "screenshots",
	}
	s.SetDebugMode(cfg.Debug)

	store := cfg.Store
	if store == nil {
		store = NewMemoryStore()
	}
	s.prefs = NewPreferences(store, cfg.Query)
	if s.prefs.LastError != nil {
		s.debugf("preference read: %v", s.prefs.LastError)
	}

	s.assets = NewAssetLoader(cfg.Assets, s.tracker)
	s.queueAssets()

	s.preloader = NewPreloader(s.tracker, s.timers, clk.Now, cfg.PreloadMin)
	if s.device.RecommendedMode() == ModeBoxes && !s.prefs.HasStored() {
		s.preloader.Hint = "Press M for the lightweight card view"
	}
	s.preloader.OnHidden(func() {
		s.timers.AfterFunc(vehiclesDelay, func() {
			s.vehicles = true
		})
		s.timers.AfterFunc(effectsDelay, func() {
			s.effects = s.device.Effects()
		})
	})

	s.input.OnTouch = s.noteTouch
	s.input.OnMouse = s.device.NoteMouse
	s.router.OnDragStart(func(e InputEvent) {
		s.press = pressState{active: true, x: e.X, y: e.Y}
	})
	s.router.OnDragMove(func(e InputEvent) {
		if s.press.active && math.Hypot(e.X-s.press.x, e.Y-s.press.y) > clickSlop {
			s.press.moved = true
		}
	})
	s.router.OnDragEnd(func(e InputEvent) {
		p := s.press
		s.press = pressState{}
		if p.active && !p.moved && s.view.controller().InputEnabled() {
			s.view.click(p.x, p.y)
		}
	})

	s.prefs.Subscribe(func(m ViewMode) {
		s.mount(m)
		s.emit(CameraEvent{Type: EventModeChanged, Mode: m, Y: s.view.controller().Y()})
	})
	s.mount(s.prefs.Mode())
	return s
}

func (s *Scene) queueAssets() {
	if s.cfg.Assets == nil {
		return
	}
	if s.cfg.AssetPattern != "" {
		if _, err := s.assets.QueueGlob(s.cfg.AssetPattern); err != nil {
			s.debugf("assets: %v", err)
		}
	}
	for _, it := range s.cfg.Items {
		s.assets.Queue(s.textureOf(it))
	}
}

func (s *Scene) textureOf(it Item) string {
	if it.Texture != "" {
		return it.Texture
	}
	return s.cfg.DefaultTexture
}

// compact reports whether the galaxy uses the tighter single-column layout.
func (s *Scene) compact() bool {
	return s.cfg.Compact || s.device.Coarse
}

// noteTouch switches to coarse-pointer behavior on the first touch.
func (s *Scene) noteTouch() {
	if !s.device.NoteTouch() {
		return
	}
	s.debugf("coarse pointer detected")
	if g, ok := s.view.(*galaxyView); ok {
		g.relayout()
	}
}

// mount closes the current view and mounts a new one for m.
func (s *Scene) mount(m ViewMode) {
	if s.view != nil {
		s.view.close()
		s.press = pressState{}
	}
	switch m {
	case ModeBoxes:
		s.view = newBoxesView(s)
		s.preloader.Dismiss()
	default:
		s.view = newGalaxyView(s)
	}
	s.debugf("mounted %s view", m)
}

// Mode returns the mounted view mode.
func (s *Scene) Mode() ViewMode {
	return s.view.mode()
}

// SetMode switches to m and persists the choice. Storage failures are
// logged in debug mode and otherwise ignored.
func (s *Scene) SetMode(m ViewMode) {
	s.prefs.SetMode(m)
	if err := s.prefs.LastError; err != nil {
		s.debugf("preference write: %v", err)
		s.prefs.LastError = nil
	}
}

// ToggleMode switches between the galaxy and the card grid.
func (s *Scene) ToggleMode() {
	if s.Mode() == ModeGalaxy {
		s.SetMode(ModeBoxes)
	} else {
		s.SetMode(ModeGalaxy)
	}
}

// Controller returns the camera of the mounted view.
func (s *Scene) Controller() *Controller {
	return s.view.controller()
}

// Router returns the input router views attach to.
func (s *Scene) Router() *InputRouter {
	return &s.router
}

// Navigate moves the camera to a named section: about, featured, projects,
// games or contact. It reports whether the section exists.
func (s *Scene) Navigate(section string) bool {
	return s.view.navigate(section)
}

// Escape closes the open project, if any.
func (s *Scene) Escape() {
	s.view.escape()
}

// Preloader returns the loading overlay.
func (s *Scene) Preloader() *Preloader {
	return s.preloader
}

// Loader returns the texture loader.
func (s *Scene) Loader() *AssetLoader {
	return s.assets
}

// Device returns the current device profile.
func (s *Scene) Device() DeviceProfile {
	return s.device
}

// EffectsEnabled reports whether optional effects are on.
func (s *Scene) EffectsEnabled() bool {
	return s.effects
}

// VehiclesEnabled reports whether the orbiting stations are shown.
func (s *Scene) VehiclesEnabled() bool {
	return s.vehicles
}

// SetSize updates the viewport size in pixels.
func (s *Scene) SetSize(w, h int) {
	if float64(w) == s.width && float64(h) == s.height {
		return
	}
	s.width, s.height = float64(w), float64(h)
	s.view.resize()
}

// SetEventStore sets the optional ECS bridge.
func (s *Scene) SetEventStore(store EventStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, scene events,
// storage errors and asset failures are logged to stderr and the frame
// rate is drawn in the corner.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update polls input and advances one tick.
func (s *Scene) Update() {
	s.step(1.0/float64(ebiten.TPS()), true)
}

// step advances the scene by dt seconds. Device polling is skipped when
// poll is false so the scene can be driven headless.
func (s *Scene) step(dt float64, poll bool) {
	s.timers.Fire()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if !s.processInjectedInput() && poll {
		s.input.Poll(&s.router)
		s.pollKeys()
	}
	if s.assets.Step() && !s.tracker.Active() && s.tracker.Failed() > 0 {
		s.debugf("assets: %d of %d failed", s.tracker.Failed(), s.tracker.total)
	}
	s.preloader.Update(dt)
	if s.vehicles {
		s.vehicleTime += dt
	}
	s.view.update(dt)
	if s.debug {
		s.fps.update(dt)
	}
}

// sectionKeys maps navigation keys to sections.
var sectionKeys = []struct {
	key     ebiten.Key
	section string
}{
	{ebiten.KeyA, SectionAbout},
	{ebiten.KeyF, "featured"},
	{ebiten.KeyP, "projects"},
	{ebiten.KeyG, "games"},
	{ebiten.KeyC, SectionContact},
}

func (s *Scene) pollKeys() {
	for _, k := range sectionKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			s.Navigate(k.section)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.ToggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Escape()
	}
}

// Draw renders the mounted view, the preloader overlay and any queued
// screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s.view.draw(screen)
	s.drawPreloader(screen)
	if s.debug {
		s.fps.draw(screen, s)
	}
	s.flushScreenshots(screen)
}

func (s *Scene) drawPreloader(dst *ebiten.Image) {
	p := s.preloader
	a := p.Alpha()
	if a <= 0 {
		return
	}
	drawPanel(dst, Rect{Width: s.width, Height: s.height}, Color{A: 1}, Color{A: 0}, a)
	cx, cy := s.width/2, s.height/2
	drawTextCentered(dst, p.Message(), cx, cy-24, colorText, a)
	bar := Rect{X: cx - 120, Y: cy, Width: 240, Height: 6}
	drawPanel(dst, bar, colorPanel, colorPanelEdge, a)
	fill := bar
	fill.Width *= float64(p.Percent()) / 100
	drawPanel(dst, fill, colorAccent, colorAccent, a)
	if p.Hint != "" {
		drawTextCentered(dst, p.Hint, cx, cy+20, colorMuted, a)
	}
}

// Close unmounts the view and stops every timer.
func (s *Scene) Close() {
	s.view.close()
	s.preloader.Close()
	s.timers.StopAll()
}
