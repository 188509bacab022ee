package config

// Config is the top-level viewer configuration, corresponding to
// galaxy.yml.
type Config struct {
	Window        WindowConfig     `yaml:"window" koanf:"window"`
	Debug         bool             `yaml:"debug" koanf:"debug"`
	Mode          string           `yaml:"mode" koanf:"mode"`
	Preferences   PreferenceConfig `yaml:"preferences" koanf:"preferences"`
	Catalog       string           `yaml:"catalog" koanf:"catalog"`
	Assets        AssetConfig      `yaml:"assets" koanf:"assets"`
	Compact       bool             `yaml:"compact" koanf:"compact"`
	Camera        CameraConfig     `yaml:"camera" koanf:"camera"`
	ScreenshotDir string           `yaml:"screenshot_dir" koanf:"screenshot_dir"`
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Title     string `yaml:"title" koanf:"title"`
	Width     int    `yaml:"width" koanf:"width"`
	Height    int    `yaml:"height" koanf:"height"`
	Resizable bool   `yaml:"resizable" koanf:"resizable"`
}

// PreferenceConfig selects where the view-mode preference is kept.
type PreferenceConfig struct {
	Backend string `yaml:"backend" koanf:"backend"`
	Path    string `yaml:"path" koanf:"path"`
}

// AssetConfig locates textures.
type AssetConfig struct {
	Dir            string `yaml:"dir" koanf:"dir"`
	Pattern        string `yaml:"pattern" koanf:"pattern"`
	DefaultTexture string `yaml:"default_texture" koanf:"default_texture"`
}

// CameraConfig overrides camera tuning. Zero values keep the defaults.
type CameraConfig struct {
	WheelSensitivity float64 `yaml:"wheel_sensitivity" koanf:"wheel_sensitivity"`
	DragSensitivity  float64 `yaml:"drag_sensitivity" koanf:"drag_sensitivity"`
	FlingScale       float64 `yaml:"fling_scale" koanf:"fling_scale"`
	FlingFrequency   float64 `yaml:"fling_frequency" koanf:"fling_frequency"`
	FlingDamping     float64 `yaml:"fling_damping" koanf:"fling_damping"`
	ThrottleMs       int     `yaml:"throttle_ms" koanf:"throttle_ms"`
	FOV              float64 `yaml:"fov" koanf:"fov"`
}
