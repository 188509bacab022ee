package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/phanxgames/galaxy"
	"github.com/phanxgames/galaxy/catalog"
	"github.com/phanxgames/galaxy/config"
	"github.com/phanxgames/galaxy/prefstore"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	verbose    bool
	modeFlag   string
	boxesFlag  bool
	queryFlag  string
	scriptFile string
)

var rootCmd = &cobra.Command{
	Use:   "galaxy",
	Short: "Browse a project portfolio as a scrollable 3D galaxy",
	Long: `Galaxy lays out a portfolio of projects as planets in a vertical
galaxy and opens it in a window. Scroll or drag to travel, click a planet to
open it, press A/F/P/G/C to jump between sections and M to switch to the
lightweight card view. The view choice is remembered between runs.`,
	SilenceUsage: true,
	RunE:         runViewer,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "galaxy.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.Flags().StringVar(&modeFlag, "mode", "", "start in this mode (3d or boxes), overriding the saved preference")
	rootCmd.Flags().BoolVar(&boxesFlag, "boxes", false, "start in the card view")
	rootCmd.Flags().StringVar(&queryFlag, "query", "", "URL-style overrides, e.g. \"mode=boxes\" or \"boxes=1\"")
	rootCmd.Flags().StringVar(&scriptFile, "script", "", "run a JSON test script and exit when it completes")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads and validates the config file and env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadItems returns the configured catalog or the embedded one.
func loadItems(cfg *config.Config) ([]galaxy.Item, error) {
	if cfg.Catalog != "" {
		return catalog.LoadFile(cfg.Catalog)
	}
	return catalog.Default()
}

// modeQuery merges the config mode and the command-line flags into the
// query overrides understood by galaxy.ResolveMode. The config mode only
// applies when neither --mode nor --query names a mode.
func modeQuery(cfg *config.Config) (url.Values, error) {
	q := galaxy.ParseQuery(queryFlag)
	mode := modeFlag
	if mode == "" && q.Get("mode") == "" && q.Get("boxes") == "" {
		mode = cfg.Mode
	}
	if mode != "" {
		if !galaxy.ViewMode(mode).Valid() {
			return nil, fmt.Errorf("invalid mode %q: must be 3d or boxes", mode)
		}
		q.Set("mode", mode)
	}
	if boxesFlag {
		q.Set("boxes", "1")
		q.Del("mode")
	}
	return q, nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	exitOnError(err)

	items, err := loadItems(cfg)
	exitOnError(err)

	query, err := modeQuery(cfg)
	exitOnError(err)

	store, closeStore, err := prefstore.Open(cfg.Preferences.Backend, cfg.Preferences.Path)
	if err != nil {
		if cfg.Debug {
			fmt.Fprintf(os.Stderr, "[galaxy] preferences unavailable, using memory: %v\n", err)
		}
		store = galaxy.NewMemoryStore()
	}
	defer closeStore()

	sc := galaxy.DefaultSceneConfig()
	sc.Items = items
	sc.Store = store
	sc.Query = query
	sc.Compact = cfg.Compact
	sc.Width, sc.Height = cfg.Window.Width, cfg.Window.Height
	sc.Debug = cfg.Debug
	if cfg.Camera.FOV > 0 {
		sc.FOV = cfg.Camera.FOV
	}
	cfg.Camera.Apply(&sc.Camera)
	if cfg.Assets.Dir != "" {
		sc.Assets = os.DirFS(cfg.Assets.Dir)
		sc.AssetPattern = cfg.Assets.Pattern
		sc.DefaultTexture = cfg.Assets.DefaultTexture
	}

	scene := galaxy.NewScene(sc)
	scene.ScreenshotDir = cfg.ScreenshotDir

	rc := galaxy.RunConfig{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Resizable: cfg.Window.Resizable,
	}
	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		rc.TestScript = data
	}
	return galaxy.Run(scene, rc)
}
