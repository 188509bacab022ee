package galaxy

import "math"

// BoxesConfig sizes the 2D card-grid fallback. All values are in pixels.
type BoxesConfig struct {
	MaxWidth      float64
	WidthFraction float64
	TopPadding    float64
	BottomPadding float64
	Gap           float64
	CardHeight    float64
	HeadingHeight float64
	SectionGap    float64
	AboutHeight   float64
	ContactHeight float64
	// TwoColumns and ThreeColumns are the viewport widths at which the grid
	// widens.
	TwoColumns   float64
	ThreeColumns float64
}

// DefaultBoxesConfig returns the stock card-grid metrics.
func DefaultBoxesConfig() BoxesConfig {
	return BoxesConfig{
		MaxWidth:      1400,
		WidthFraction: 0.96,
		TopPadding:    80,
		BottomPadding: 128,
		Gap:           20,
		CardHeight:    240,
		HeadingHeight: 56,
		SectionGap:    40,
		AboutHeight:   320,
		ContactHeight: 280,
		TwoColumns:    768,
		ThreeColumns:  1280,
	}
}

// BoxCard is one project card.
type BoxCard struct {
	Item Item
	Rect Rect
}

// BoxSection is a titled block of the card grid. About and Contact have no
// cards; their Body rect holds the panel.
type BoxSection struct {
	Name    string
	Title   string
	Heading Rect
	Body    Rect
	Cards   []BoxCard
}

// BoxesLayout is the computed card grid in content coordinates (Y grows
// downward from the top of the page).
type BoxesLayout struct {
	Sections []BoxSection
	Columns  int
	Width    float64
	Height   float64
}

// Columns returns the grid column count for a viewport width.
func (cfg BoxesConfig) Columns(width float64) int {
	switch {
	case width >= cfg.ThreeColumns:
		return 3
	case width >= cfg.TwoColumns:
		return 2
	default:
		return 1
	}
}

// ComputeBoxes lays out the About panel, the Featured, Projects and Games
// card grids, and the Contact panel for a viewport of the given width.
// Bucketing follows the galaxy layout's rules.
func ComputeBoxes(items []Item, width float64, layout LayoutConfig, cfg BoxesConfig) BoxesLayout {
	cols := cfg.Columns(width)
	contentW := math.Min(width*cfg.WidthFraction, cfg.MaxWidth)
	left := (width - contentW) / 2
	cardW := (contentW - float64(cols-1)*cfg.Gap) / float64(cols)

	out := BoxesLayout{Columns: cols, Width: width}
	y := cfg.TopPadding

	out.Sections = append(out.Sections, BoxSection{
		Name: SectionAbout,
		Body: Rect{X: left, Y: y, Width: contentW, Height: cfg.AboutHeight},
	})
	y += cfg.AboutHeight + cfg.SectionGap

	b := layout.buckets(items)
	for _, c := range Categories {
		group := b[c]
		if len(group) == 0 {
			continue
		}
		sec := BoxSection{
			Name:    c.Slug(),
			Title:   c.String(),
			Heading: Rect{X: left, Y: y, Width: contentW, Height: cfg.HeadingHeight},
		}
		y += cfg.HeadingHeight
		for i, it := range group {
			col := i % cols
			row := i / cols
			sec.Cards = append(sec.Cards, BoxCard{
				Item: it,
				Rect: Rect{
					X:      left + float64(col)*(cardW+cfg.Gap),
					Y:      y + float64(row)*(cfg.CardHeight+cfg.Gap),
					Width:  cardW,
					Height: cfg.CardHeight,
				},
			})
		}
		rows := (len(group) + cols - 1) / cols
		bodyH := float64(rows)*cfg.CardHeight + float64(rows-1)*cfg.Gap
		sec.Body = Rect{X: left, Y: y, Width: contentW, Height: bodyH}
		y += bodyH + cfg.SectionGap
		out.Sections = append(out.Sections, sec)
	}

	out.Sections = append(out.Sections, BoxSection{
		Name: SectionContact,
		Body: Rect{X: left, Y: y, Width: contentW, Height: cfg.ContactHeight},
	})
	y += cfg.ContactHeight + cfg.BottomPadding
	out.Height = y
	return out
}

// SectionTop returns the content Y at which a section starts.
func (b BoxesLayout) SectionTop(name string) (float64, bool) {
	for _, s := range b.Sections {
		if s.Name == name {
			if s.Heading.Height > 0 {
				return s.Heading.Y, true
			}
			return s.Body.Y, true
		}
	}
	return 0, false
}

// ScrollBounds returns the camera range for a viewport of height viewH.
// The boxes camera uses Y up like the galaxy, so scrolling down is
// negative: 0 is the top of the page.
func (b BoxesLayout) ScrollBounds(viewH float64) Range {
	return Range{Min: -math.Max(0, b.Height-viewH), Max: 0}
}

// CardAt returns the card under content point (x, y).
func (b BoxesLayout) CardAt(x, y float64) (BoxCard, bool) {
	for _, s := range b.Sections {
		for _, c := range s.Cards {
			if c.Rect.Contains(x, y) {
				return c, true
			}
		}
	}
	return BoxCard{}, false
}

// BoxesControllerConfig returns camera tuning for the card grid, in
// pixels: the content follows the finger and wheel notches scroll one
// notch's delta.
func BoxesControllerConfig() ControllerConfig {
	cfg := DefaultControllerConfig()
	cfg.InitialY = 0
	cfg.IntroHold = false
	cfg.IntroOffset = 0
	cfg.InitialZ = 0
	cfg.Bounds = Range{Min: 0, Max: 0}
	cfg.WheelSensitivity = -1
	cfg.DragSensitivity = -1
	cfg.FlingScale = -1
	return cfg
}
