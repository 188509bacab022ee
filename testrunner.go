package galaxy

import (
	"encoding/json"
	"fmt"
)

// testStep is a single action in a test script.
type testStep struct {
	Action  string   `json:"action"`
	Label   string   `json:"label,omitempty"`
	X       float64  `json:"x,omitempty"`
	Y       float64  `json:"y,omitempty"`
	FromX   float64  `json:"fromX,omitempty"`
	FromY   float64  `json:"fromY,omitempty"`
	ToX     float64  `json:"toX,omitempty"`
	ToY     float64  `json:"toY,omitempty"`
	Delta   float64  `json:"delta,omitempty"`
	Frames  int      `json:"frames,omitempty"`
	Section string   `json:"section,omitempty"`
	Mode    ViewMode `json:"mode,omitempty"`
}

// testScript is the top-level JSON structure of a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true,
	"click":      true,
	"drag":       true,
	"scroll":     true,
	"wait":       true,
	"navigate":   true,
	"mode":       true,
	"escape":     true,
}

// TestRunner sequences injected input, navigation and screenshots across
// frames for automated visual testing. Attach it with Scene.SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script such as
//
//	{"steps": [{"action": "navigate", "section": "games"},
//	           {"action": "wait", "frames": 90},
//	           {"action": "screenshot", "label": "games"}]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "mode" && !st.Mode.Valid() {
			return nil, fmt.Errorf("parse test script: step %d: unknown mode %q", i, st.Mode)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner. It advances from Scene.Update before
// input is processed each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Pending injections drain before the next step.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "scroll":
		s.InjectScroll(st.Delta)
	case "navigate":
		if !s.Navigate(st.Section) {
			s.debugf("test script: unknown section %q", st.Section)
		}
	case "mode":
		s.SetMode(st.Mode)
	case "escape":
		s.Escape()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
