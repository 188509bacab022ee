package galaxy

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to the premultiplied color.RGBA Ebitengine draws with.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// ParseHexColor parses "#RRGGBB" or "#RGB". Malformed input yields white.
func ParseHexColor(s string) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	var r, g, b uint8
	if len(s) != 6 {
		return ColorWhite
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return ColorWhite
	}
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Vec3 is a position in the galaxy's world space: X horizontal, Y vertical
// (up is positive), Z depth (towards the viewer is positive).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Rect is an axis-aligned rectangle in screen space with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is an inclusive min/max range.
type Range struct {
	Min, Max float64
}

// Clamp restricts v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Contains reports whether v lies within the inclusive range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// lerp moves a towards b by factor t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Category is one of the fixed display buckets items are partitioned into.
type Category uint8

const (
	CategoryFeatured Category = iota // top of the galaxy, capped at two items
	CategoryProjects                 // everything that is neither featured nor a game
	CategoryGames                    // items tagged "Games"
)

// Categories lists the buckets in top-to-bottom display order.
var Categories = [...]Category{CategoryFeatured, CategoryProjects, CategoryGames}

// String returns the display title of the category.
func (c Category) String() string {
	switch c {
	case CategoryFeatured:
		return "Featured"
	case CategoryProjects:
		return "Projects"
	case CategoryGames:
		return "Games"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Slug is the lower-case section name used for navigation.
func (c Category) Slug() string {
	return strings.ToLower(c.String())
}

// ParseCategory maps an item's category tag to a bucket. Unknown tags
// (the catalog uses "Other") fall into Projects.
func ParseCategory(tag string) Category {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "featured":
		return CategoryFeatured
	case "games":
		return CategoryGames
	default:
		return CategoryProjects
	}
}

// Size is the display size hint of an item.
type Size uint8

const (
	SizeSmall  Size = iota // default for unknown hints
	SizeMedium             // mid-sized planet
	SizeLarge              // featured-sized planet
)

// String returns the catalog spelling of the size.
func (s Size) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	default:
		return "small"
	}
}

// ParseSize parses "large", "medium" or "small". Anything else is small.
func ParseSize(s string) Size {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "large":
		return SizeLarge
	case "medium":
		return SizeMedium
	default:
		return SizeSmall
	}
}

// ViewMode selects between the 3D galaxy and the 2D card grid.
type ViewMode string

const (
	ModeGalaxy ViewMode = "3d"
	ModeBoxes  ViewMode = "boxes"
)

// Valid reports whether m is one of the known modes.
func (m ViewMode) Valid() bool {
	return m == ModeGalaxy || m == ModeBoxes
}

// EventType identifies a normalized input event or a camera notification.
type EventType uint8

const (
	EventScroll         EventType = iota // wheel delta, DOM convention (positive scrolls down)
	EventDragStart                       // single pointer pressed
	EventDragMove                        // active pointer moved
	EventDragEnd                         // active pointer released
	EventTargetReached                   // programmatic navigation converged
	EventSectionChanged                  // the section under the camera changed
	EventModeChanged                     // the view mode switched
	EventItemSelected                    // a project was opened
)

// String returns a short name for logs and test scripts.
func (e EventType) String() string {
	switch e {
	case EventScroll:
		return "scroll"
	case EventDragStart:
		return "dragStart"
	case EventDragMove:
		return "dragMove"
	case EventDragEnd:
		return "dragEnd"
	case EventTargetReached:
		return "targetReached"
	case EventSectionChanged:
		return "sectionChanged"
	case EventModeChanged:
		return "modeChanged"
	case EventItemSelected:
		return "itemSelected"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(e))
	}
}
