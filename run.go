package galaxy

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Resizable lets the user resize the window; the scene relayouts.
	Resizable bool
	// TestScript, if set, is a JSON script run by a TestRunner. The game
	// exits once it completes.
	TestScript []byte
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
}

func (g *game) Update() error {
	g.scene.Update()
	if r := g.scene.testRunner; r != nil && r.Done() && len(g.scene.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(w, h int) (int, int) {
	g.scene.SetSize(w, h)
	return w, h
}

// Run opens a window and drives scene until the window closes.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.TestScript != nil {
		runner, err := LoadTestScript(cfg.TestScript)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		scene.SetSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	defer scene.Close()
	if err := ebiten.RunGame(&game{scene: scene}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
