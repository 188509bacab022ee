package galaxy

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ffffff", Color{1, 1, 1, 1}},
		{"#000000", Color{0, 0, 0, 1}},
		{"#f00", Color{1, 0, 0, 1}},
		{"  #00FF00 ", Color{0, 1, 0, 1}},
		{"nope", ColorWhite},
		{"#12345", ColorWhite},
		{"#gggggg", ColorWhite},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseHexColor(tt.in); got != tt.want {
				t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorToRGBA_Premultiplied(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if c.A != 128 || c.R != 128 || c.G != 64 || c.B != 0 {
		t.Errorf("toRGBA = %+v, want {128 64 0 128}", c)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		tag  string
		want Category
	}{
		{"Featured", CategoryFeatured},
		{"games", CategoryGames},
		{"Other", CategoryProjects},
		{"", CategoryProjects},
	}
	for _, tt := range tests {
		if got := ParseCategory(tt.tag); got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestParseSize(t *testing.T) {
	if ParseSize("large") != SizeLarge || ParseSize("Medium") != SizeMedium || ParseSize("?") != SizeSmall {
		t.Error("ParseSize mapping wrong")
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{Min: -26, Max: 13}
	if r.Clamp(20) != 13 || r.Clamp(-30) != -26 || r.Clamp(0) != 0 {
		t.Error("Clamp out of range")
	}
	if !r.Contains(-26) || r.Contains(13.01) {
		t.Error("Contains wrong at edges")
	}
}

func TestViewModeValid(t *testing.T) {
	if !ModeGalaxy.Valid() || !ModeBoxes.Valid() || ViewMode("vr").Valid() {
		t.Error("Valid mismatch")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventTargetReached.String() != "targetReached" {
		t.Errorf("String = %q", EventTargetReached.String())
	}
	if EventType(200).String() != "EventType(200)" {
		t.Errorf("unknown = %q", EventType(200).String())
	}
}
