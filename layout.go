package galaxy

import (
	"math"
	"slices"
	"strings"
)

// Item is one displayable project. Items are immutable for a session.
type Item struct {
	ID          string
	Name        string
	Category    Category
	Size        Size
	Description string
	Tools       []string
	Image       string
	Texture     string
	Theme       Theme
	RepoURL     string
	LiveURL     string
}

// Theme holds the surface and atmosphere colors used to draw an item.
type Theme struct {
	Surface1   Color
	Surface2   Color
	Atmosphere Color
}

// PlacedItem is an Item with its computed world position.
type PlacedItem struct {
	Item
	Bucket   Category
	Position Vec3
}

// CategoryTitle is a bucket heading anchored relative to its items.
type CategoryTitle struct {
	Category Category
	Title    string
	Position Vec3
}

// DepthClamp pulls an item's depth to at most MaxZ (further from the viewer).
type DepthClamp struct {
	MaxZ float64
}

// LayoutConfig holds every constant the layout engine uses.
type LayoutConfig struct {
	FeaturedIDs   []string
	FeaturedCap   int
	FeaturedSlots []Vec3

	ColumnsX      [3]float64
	RowSpacing    float64
	JitterX       float64
	JitterY       float64
	JitterZ       float64
	ClampX        Range
	ProjectsBaseY float64
	SectionGap    float64
	TitleOffsetY  float64

	CompactRowSpacing    float64
	CompactProjectsBaseY float64
	CompactGap           float64
	CompactFeaturedZ     float64

	// DepthOverrides applies per-id composition tweaks after placement.
	DepthOverrides map[string]DepthClamp
}

// DefaultLayoutConfig returns the stock galaxy layout.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		FeaturedIDs:   []string{"stealth-founder", "library-seat-radar"},
		FeaturedCap:   2,
		FeaturedSlots: []Vec3{{-4, 0, -1}, {4, 0, -1}},

		ColumnsX:      [3]float64{-9, 0, 9},
		RowSpacing:    8,
		JitterX:       0,
		JitterY:       1.2,
		JitterZ:       3,
		ClampX:        Range{Min: -8.5, Max: 8.5},
		ProjectsBaseY: -12,
		SectionGap:    6,
		TitleOffsetY:  3,

		CompactRowSpacing:    7,
		CompactProjectsBaseY: -18,
		CompactGap:           6,
		CompactFeaturedZ:     -1,

		DepthOverrides: map[string]DepthClamp{
			"ai-video-generator": {MaxZ: -2},
		},
	}
}

// Layout is the output of the layout engine.
type Layout struct {
	Items  []PlacedItem
	Titles []CategoryTitle
}

// buckets partitions items into Featured, Projects and Games. Featured
// membership is decided by id, not by the item's own category tag.
func (cfg *LayoutConfig) buckets(items []Item) [3][]Item {
	var b [3][]Item
	for _, it := range items {
		switch {
		case slices.Contains(cfg.FeaturedIDs, it.ID):
			b[CategoryFeatured] = append(b[CategoryFeatured], it)
		case it.Category == CategoryGames:
			b[CategoryGames] = append(b[CategoryGames], it)
		default:
			b[CategoryProjects] = append(b[CategoryProjects], it)
		}
	}
	if n := cfg.FeaturedCap; n >= 0 && len(b[CategoryFeatured]) > n {
		b[CategoryFeatured] = b[CategoryFeatured][:n]
	}
	return b
}

// ComputeLayout places items deterministically. compact selects the
// single-column layout used on coarse-pointer devices.
func ComputeLayout(items []Item, compact bool, cfg LayoutConfig) Layout {
	b := cfg.buckets(items)
	var l Layout
	if compact {
		l = cfg.placeCompact(b)
	} else {
		l = cfg.placeScattered(b)
	}
	cfg.applyOverrides(l.Items)
	return l
}

func (cfg *LayoutConfig) placeCompact(b [3][]Item) Layout {
	var l Layout
	spacing := cfg.CompactRowSpacing

	for i, it := range b[CategoryFeatured] {
		l.Items = append(l.Items, PlacedItem{
			Item: it, Bucket: CategoryFeatured,
			Position: Vec3{0, -float64(i) * spacing, cfg.CompactFeaturedZ},
		})
	}
	l.addTitle(CategoryFeatured, len(b[CategoryFeatured]), cfg.TitleOffsetY)

	projectsY := cfg.CompactProjectsBaseY
	for i, it := range b[CategoryProjects] {
		l.Items = append(l.Items, PlacedItem{
			Item: it, Bucket: CategoryProjects,
			Position: Vec3{0, projectsY - float64(i)*spacing, 0},
		})
	}
	l.addTitle(CategoryProjects, len(b[CategoryProjects]), projectsY+cfg.TitleOffsetY)

	gamesY := projectsY - float64(len(b[CategoryProjects]))*spacing - cfg.CompactGap
	for i, it := range b[CategoryGames] {
		l.Items = append(l.Items, PlacedItem{
			Item: it, Bucket: CategoryGames,
			Position: Vec3{0, gamesY - float64(i)*spacing, 0},
		})
	}
	l.addTitle(CategoryGames, len(b[CategoryGames]), gamesY+cfg.TitleOffsetY)
	return l
}

func (cfg *LayoutConfig) placeScattered(b [3][]Item) Layout {
	var l Layout

	for i, it := range b[CategoryFeatured] {
		var pos Vec3
		if n := len(cfg.FeaturedSlots); n > 0 {
			pos = cfg.FeaturedSlots[i%n]
		}
		l.Items = append(l.Items, PlacedItem{Item: it, Bucket: CategoryFeatured, Position: pos})
	}
	l.addTitle(CategoryFeatured, len(b[CategoryFeatured]), cfg.TitleOffsetY)

	projectsY := cfg.ProjectsBaseY
	rows := cfg.placeGrid(&l, b[CategoryProjects], CategoryProjects, projectsY)
	l.addTitle(CategoryProjects, len(b[CategoryProjects]), projectsY+cfg.TitleOffsetY)

	gamesY := projectsY - float64(rows)*cfg.RowSpacing - cfg.SectionGap
	cfg.placeGrid(&l, b[CategoryGames], CategoryGames, gamesY)
	l.addTitle(CategoryGames, len(b[CategoryGames]), gamesY+cfg.TitleOffsetY)
	return l
}

// placeGrid lays items out row-major in three columns with seeded jitter
// and returns the number of rows the bucket occupies (at least one).
func (cfg *LayoutConfig) placeGrid(l *Layout, items []Item, bucket Category, baseY float64) int {
	rng := NewSeededSequence(bucket.String())
	for i, it := range items {
		col := i % 3
		row := i / 3
		x := cfg.ClampX.Clamp(cfg.ColumnsX[col] + rng.Signed()*cfg.JitterX)
		y := baseY - float64(row)*cfg.RowSpacing + rng.Signed()*cfg.JitterY
		z := rng.Signed() * cfg.JitterZ
		l.Items = append(l.Items, PlacedItem{Item: it, Bucket: bucket, Position: Vec3{x, y, z}})
	}
	return max(1, (len(items)+2)/3)
}

func (cfg *LayoutConfig) applyOverrides(items []PlacedItem) {
	for i := range items {
		if o, ok := cfg.DepthOverrides[items[i].ID]; ok {
			items[i].Position.Z = math.Min(items[i].Position.Z, o.MaxZ)
		}
	}
}

func (l *Layout) addTitle(c Category, count int, y float64) {
	if count == 0 {
		return
	}
	l.Titles = append(l.Titles, CategoryTitle{Category: c, Title: c.String(), Position: Vec3{0, y, 0}})
}

// InBucket returns the placed items of one bucket in placement order.
func (l Layout) InBucket(c Category) []PlacedItem {
	var out []PlacedItem
	for _, p := range l.Items {
		if p.Bucket == c {
			out = append(out, p)
		}
	}
	return out
}

// Title returns the title of bucket c, if the bucket is non-empty.
func (l Layout) Title(c Category) (CategoryTitle, bool) {
	for _, t := range l.Titles {
		if t.Category == c {
			return t, true
		}
	}
	return CategoryTitle{}, false
}

// Find returns the placed item with the given id.
func (l Layout) Find(id string) (PlacedItem, bool) {
	for _, p := range l.Items {
		if p.ID == id {
			return p, true
		}
	}
	return PlacedItem{}, false
}

// emptyMinY is the lowest point reported for a layout with no items.
const emptyMinY = -20

// MinY returns the lowest vertical position across all items, never above 0.
func (l Layout) MinY() float64 {
	if len(l.Items) == 0 {
		return emptyMinY
	}
	minY := 0.0
	for _, p := range l.Items {
		minY = math.Min(minY, p.Position.Y)
	}
	return minY
}

// Bounds returns the camera clamp range for this layout:
// [floor(MinY) - margin, upper].
func (l Layout) Bounds(margin, upper float64) Range {
	return Range{Min: math.Floor(l.MinY()) - margin, Max: upper}
}

// Section names that are not buckets.
const (
	SectionAbout   = "about"
	SectionContact = "contact"
)

// Section anchor constants.
const (
	AboutY        = 10.0
	contactMargin = 10.0
)

// Anchor is a named vertical position the camera can navigate to.
type Anchor struct {
	Name string
	Y    float64
}

// ContactY is the anchor of the contact panel below the lowest item.
func (l Layout) ContactY() float64 {
	return math.Floor(l.MinY() - contactMargin)
}

// Anchors returns every navigable section from top to bottom.
func (l Layout) Anchors() []Anchor {
	out := []Anchor{{Name: SectionAbout, Y: AboutY}}
	for _, t := range l.Titles {
		out = append(out, Anchor{Name: t.Category.Slug(), Y: t.Position.Y})
	}
	return append(out, Anchor{Name: SectionContact, Y: l.ContactY()})
}

// AnchorY resolves a section name (case-insensitive) to its vertical anchor.
// Unknown or empty sections resolve to 0, matching a navigation to the top
// of the featured row.
func (l Layout) AnchorY(section string) (float64, bool) {
	section = strings.ToLower(strings.TrimSpace(section))
	for _, a := range l.Anchors() {
		if a.Name == section {
			return a.Y, true
		}
	}
	return 0, false
}

// SectionAt returns the name of the section whose anchor is nearest to y.
func (l Layout) SectionAt(y float64) string {
	best := ""
	bestDist := math.Inf(1)
	for _, a := range l.Anchors() {
		if d := math.Abs(a.Y - y); d < bestDist {
			best, bestDist = a.Name, d
		}
	}
	return best
}

// Base planet radii by size hint.
var planetBaseRadius = [...]float64{
	SizeSmall:  1.5,
	SizeMedium: 2.5,
	SizeLarge:  3.5,
}

// PlanetRadius returns the world-space radius of an item's planet: the
// size hint's base radius with a deterministic per-id jitter of up to 0.6,
// never below 1.
func PlanetRadius(it Item) float64 {
	base := planetBaseRadius[SizeSmall]
	if int(it.Size) < len(planetBaseRadius) {
		base = planetBaseRadius[it.Size]
	}
	jitter := float64(idHash(it.ID)%1000)/1000*2 - 1
	return math.Max(1, base+jitter*0.6)
}

// LayoutEngine memoizes ComputeLayout. A new layout is computed only when
// the item identities or the compact flag change.
type LayoutEngine struct {
	Config LayoutConfig

	key    string
	cached Layout
	valid  bool
}

// NewLayoutEngine creates an engine using cfg.
func NewLayoutEngine(cfg LayoutConfig) *LayoutEngine {
	return &LayoutEngine{Config: cfg}
}

// Compute returns the layout for items, reusing the previous result when
// nothing relevant changed. The second result reports whether a new layout
// was computed.
func (e *LayoutEngine) Compute(items []Item, compact bool) (Layout, bool) {
	key := layoutKey(items, compact)
	if e.valid && key == e.key {
		return e.cached, false
	}
	e.cached = ComputeLayout(items, compact, e.Config)
	e.key = key
	e.valid = true
	return e.cached, true
}

// Invalidate forces the next Compute to recompute.
func (e *LayoutEngine) Invalidate() {
	e.valid = false
}

func layoutKey(items []Item, compact bool) string {
	var b strings.Builder
	if compact {
		b.WriteString("c|")
	} else {
		b.WriteString("d|")
	}
	for _, it := range items {
		b.WriteString(it.ID)
		b.WriteByte(byte('0' + it.Category))
		b.WriteByte(0)
	}
	return b.String()
}
