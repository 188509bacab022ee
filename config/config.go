// Package config loads the viewer configuration from YAML and GALAXY_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/phanxgames/galaxy"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nested keys: GALAXY_WINDOW__WIDTH sets window.width.
const EnvPrefix = "GALAXY_"

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Galaxy",
			Width:     1280,
			Height:    800,
			Resizable: true,
		},
		Preferences: PreferenceConfig{
			Backend: "file",
			Path:    "galaxy-prefs.yaml",
		},
		Assets: AssetConfig{
			Pattern:        galaxy.DefaultAssetPattern,
			DefaultTexture: "textures/planets/2k_moon.jpg",
		},
		ScreenshotDir: "screenshots",
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (GALAXY_*). A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// envKey maps GALAXY_CAMERA__FLING_SCALE to camera.fling_scale.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validBackends = map[string]bool{
	"memory": true,
	"file":   true,
	"sqlite": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Mode != "" && !galaxy.ViewMode(c.Mode).Valid() {
		return fmt.Errorf("invalid mode %q: must be 3d or boxes", c.Mode)
	}
	if !validBackends[c.Preferences.Backend] {
		return fmt.Errorf("invalid preferences.backend %q: must be one of memory, file, sqlite", c.Preferences.Backend)
	}
	if c.Preferences.Backend != "memory" && c.Preferences.Path == "" {
		return fmt.Errorf("preferences.path is required for the %s backend", c.Preferences.Backend)
	}
	if c.Camera.ThrottleMs < 0 {
		return fmt.Errorf("camera.throttle_ms must be non-negative")
	}
	if c.Camera.FlingDamping < 0 || c.Camera.FlingFrequency < 0 {
		return fmt.Errorf("camera fling spring must be non-negative")
	}
	if c.Camera.FOV < 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov must be in [0, 180), got %g", c.Camera.FOV)
	}
	return nil
}

// Apply copies the camera overrides onto cfg.
func (c CameraConfig) Apply(cfg *galaxy.ControllerConfig) {
	if c.WheelSensitivity != 0 {
		cfg.WheelSensitivity = c.WheelSensitivity
	}
	if c.DragSensitivity != 0 {
		cfg.DragSensitivity = c.DragSensitivity
	}
	if c.FlingScale != 0 {
		cfg.FlingScale = c.FlingScale
	}
	if c.FlingFrequency != 0 {
		cfg.FlingFrequency = c.FlingFrequency
	}
	if c.FlingDamping != 0 {
		cfg.FlingDamping = c.FlingDamping
	}
	if c.ThrottleMs != 0 {
		cfg.Throttle = time.Duration(c.ThrottleMs) * time.Millisecond
	}
}
