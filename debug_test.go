package galaxy

import (
	"bytes"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOut
	debugOut = &buf
	t.Cleanup(func() { debugOut = prev })
	return &buf
}

func TestDebugf(t *testing.T) {
	buf := captureDebug(t)
	s := &Scene{}
	s.debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("logged with debug off: %q", buf.String())
	}
	s.SetDebugMode(true)
	s.debugf("mounted %s view", ModeBoxes)
	if got := buf.String(); got != "[galaxy] mounted boxes view\n" {
		t.Errorf("log = %q", got)
	}
}

func TestDebug_EventsLogged(t *testing.T) {
	buf := captureDebug(t)
	s, _, _ := newTestScene(t, func(cfg *SceneConfig) { cfg.Debug = true })
	s.SetMode(ModeBoxes)
	if !bytes.Contains(buf.Bytes(), []byte("event modeChanged")) {
		t.Errorf("log = %q", buf.String())
	}
}
