package galaxy

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hajimehoshi/ebiten/v2"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		img.Set(i%w, i/w, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func testAssetFS(t *testing.T) fstest.MapFS {
	data := pngBytes(t, 4, 4)
	return fstest.MapFS{
		"textures/planets/moon.png":  {Data: data},
		"textures/planets/mars.png":  {Data: data},
		"textures/skins/broken.png":  {Data: []byte("not a png")},
		"textures/readme.txt":        {Data: []byte("hi")},
		"textures/planets/nested/.k": {Data: []byte{}},
	}
}

func TestAssetLoader_QueueGlob(t *testing.T) {
	var tr LoadTracker
	l := NewAssetLoader(testAssetFS(t), &tr)
	n, err := l.QueueGlob("**/*.png")
	if err != nil {
		t.Fatalf("QueueGlob: %v", err)
	}
	if n != 3 || l.Pending() != 3 || !tr.Active() {
		t.Fatalf("queued %d, pending %d, active %v", n, l.Pending(), tr.Active())
	}
	if n, _ := l.QueueGlob("textures/planets/*.png"); n != 0 {
		t.Errorf("re-queued %d duplicates", n)
	}
}

func TestAssetLoader_BadPattern(t *testing.T) {
	var tr LoadTracker
	l := NewAssetLoader(testAssetFS(t), &tr)
	if _, err := l.QueueGlob("textures/[.png"); !errors.Is(err, doublestar.ErrBadPattern) {
		t.Errorf("err = %v, want ErrBadPattern", err)
	}
	if tr.Started() {
		t.Error("bad pattern queued work")
	}
}

func TestAssetLoader_Step(t *testing.T) {
	var tr LoadTracker
	l := NewAssetLoader(testAssetFS(t), &tr)
	var uploaded []image.Rectangle
	l.upload = func(img image.Image) *ebiten.Image {
		uploaded = append(uploaded, img.Bounds())
		return nil
	}

	l.Queue("textures/planets/moon.png", "./textures/planets/moon.png", "textures/skins/broken.png", "missing.png", "")
	if l.Pending() != 3 {
		t.Fatalf("pending = %d, want 3", l.Pending())
	}

	steps := 0
	for l.Step() {
		steps++
	}
	if steps != 3 || tr.Active() {
		t.Fatalf("steps = %d, active = %v", steps, tr.Active())
	}
	if tr.Failed() != 2 {
		t.Errorf("failed = %d, want 2", tr.Failed())
	}
	if len(uploaded) != 1 || uploaded[0].Dx() != 4 {
		t.Errorf("uploaded = %v", uploaded)
	}
	if _, ok := l.Image("textures/planets/moon.png"); !ok {
		t.Error("moon not loaded")
	}
	if _, ok := l.Image("textures/skins/broken.png"); ok {
		t.Error("broken texture reported as loaded")
	}
	if l.Err("textures/skins/broken.png") == nil || l.Err("missing.png") == nil {
		t.Error("decode and open errors not recorded")
	}
	if n := l.Queue("textures/planets/moon.png"); n != 0 {
		t.Errorf("loaded texture re-queued: %d", n)
	}
}

func TestAssetLoader_NilFS(t *testing.T) {
	var tr LoadTracker
	l := NewAssetLoader(nil, &tr)
	if n := l.Queue("a.png"); n != 0 {
		t.Errorf("queued %d with no file system", n)
	}
	if n, err := l.QueueGlob("**/*.png"); n != 0 || err != nil {
		t.Errorf("QueueGlob = %d, %v", n, err)
	}
	if l.Step() || tr.Started() {
		t.Error("nil loader did work")
	}
}
