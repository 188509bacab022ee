// Package catalog provides the project list shown in the galaxy. The
// default list is embedded; LoadFile reads a replacement from disk.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/phanxgames/galaxy"
	"gopkg.in/yaml.v3"
)

//go:embed projects.yaml
var defaultYAML []byte

// File is the on-disk catalog format.
type File struct {
	Projects []Entry `yaml:"projects"`
}

// Entry is one project as written in YAML.
type Entry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Size        string   `yaml:"size"`
	Description string   `yaml:"description"`
	Tools       []string `yaml:"tools"`
	Image       string   `yaml:"image"`
	Texture     string   `yaml:"texture"`
	Repo        string   `yaml:"repo"`
	Live        string   `yaml:"live"`
	Theme       Theme    `yaml:"theme"`
}

// Theme holds hex colors.
type Theme struct {
	Surface1   string `yaml:"surface1"`
	Surface2   string `yaml:"surface2"`
	Atmosphere string `yaml:"atmosphere"`
}

// Default returns the embedded project list.
func Default() ([]galaxy.Item, error) {
	items, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return items, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) ([]galaxy.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return items, nil
}

// Parse decodes a YAML catalog. Every entry needs a unique, non-empty id.
// Unknown categories are shown with the projects and unknown sizes are
// drawn small.
func Parse(data []byte) ([]galaxy.Item, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	seen := make(map[string]bool, len(f.Projects))
	items := make([]galaxy.Item, 0, len(f.Projects))
	for i, e := range f.Projects {
		if e.ID == "" {
			return nil, fmt.Errorf("project %d: id is required", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("project %d: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = true
		items = append(items, e.Item())
	}
	return items, nil
}

// Item converts the entry to a galaxy item.
func (e Entry) Item() galaxy.Item {
	name := e.Name
	if name == "" {
		name = e.ID
	}
	return galaxy.Item{
		ID:          e.ID,
		Name:        name,
		Category:    galaxy.ParseCategory(e.Category),
		Size:        galaxy.ParseSize(e.Size),
		Description: e.Description,
		Tools:       e.Tools,
		Image:       e.Image,
		Texture:     e.Texture,
		RepoURL:     e.Repo,
		LiveURL:     e.Live,
		Theme: galaxy.Theme{
			Surface1:   parseColor(e.Theme.Surface1),
			Surface2:   parseColor(e.Theme.Surface2),
			Atmosphere: parseColor(e.Theme.Atmosphere),
		},
	}
}

// parseColor leaves missing colors transparent so the renderer falls back
// to its palette.
func parseColor(s string) galaxy.Color {
	if s == "" {
		return galaxy.Color{}
	}
	return galaxy.ParseHexColor(s)
}
