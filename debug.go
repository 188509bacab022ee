package galaxy

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugOut receives debug logs.
var debugOut io.Writer = os.Stderr

// debugf prints a diagnostic line to stderr when debug mode is on.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[galaxy] "+format+"\n", args...)
}

// fpsRefresh is how often the frame-rate overlay text is rebuilt.
const fpsRefresh = 0.5

// fpsCounter is the debug overlay in the top-left corner: frame rate,
// camera position and loading state, refreshed every half second.
type fpsCounter struct {
	elapsed float64
	label   string
}

func (f *fpsCounter) update(dt float64) {
	f.elapsed += dt
	if f.elapsed < fpsRefresh && f.label != "" {
		return
	}
	f.elapsed = 0
	f.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (f *fpsCounter) draw(dst *ebiten.Image, s *Scene) {
	st := s.Controller().State()
	msg := fmt.Sprintf("%s\nmode: %s\ny: %.2f -> %.2f\nloading: %d%%",
		f.label, s.Mode(), st.Y, st.TargetY, s.preloader.Percent())
	ebitenutil.DebugPrint(dst, msg)
}
