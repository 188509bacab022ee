package galaxy

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/webp"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"games", "games"},
		{"cards view", "cards_view"},
		{"a/b\\c", "a_b_c"},
		{"v1.2-final", "v1.2-final"},
		{"héllo", "h_llo"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := sanitizeLabel(tt.in); got != tt.want {
				t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestScreenshotQueue(t *testing.T) {
	s := &Scene{}
	s.Screenshot("one")
	s.Screenshot("two")
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[1] != "two" {
		t.Errorf("queue = %v", s.screenshotQueue)
	}
}

func TestScreenshotStamp(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 2, 0, time.UTC)
	if got := screenshotStamp(ts); got != "20240309_070502" {
		t.Errorf("stamp = %q", got)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255,
		64, 32, 0, 128,
		0, 0, 0, 0,
	}
	img := unpremultiply(pixels, 3, 1)
	tests := []struct {
		x    int
		want color.NRGBA
	}{
		{0, color.NRGBA{255, 0, 0, 255}},
		{1, color.NRGBA{127, 63, 0, 128}},
		{2, color.NRGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, 0); got != tt.want {
			t.Errorf("pixel %d = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestWriteWebP(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 30), uint8(y * 40), 90, 255})
		}
	}
	path := filepath.Join(t.TempDir(), "shot.webp")
	if err := writeWebP(path, img); err != nil {
		t.Fatalf("writeWebP: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := webp.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	r, g, b, _ := got.At(3, 2).RGBA()
	if r>>8 != 90 || g>>8 != 80 || b>>8 != 90 {
		t.Errorf("pixel (3,2) = %d %d %d, want 90 80 90", r>>8, g>>8, b>>8)
	}
}

func TestWriteWebP_BadPath(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if err := writeWebP(filepath.Join(t.TempDir(), "missing", "x.webp"), img); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
