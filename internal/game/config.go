package game

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/samdwyer/pixelcrawler/internal/i18n"
)

// Renderer names.
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Renderer   string // RendererTUI or RendererEbiten
	Locale     string
	SaveDir    string
	AssetDir   string // Directory holding the Pixel-Crawler-Pack folder
	Audio      bool
	LogPath    string
	TuningPath string // Optional YAML merged over the embedded tuning
	Dump       bool   // Print the generated map and exit
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Renderer: RendererTUI,
		Locale:   i18n.Default,
		SaveDir:  defaultSaveDir(),
		AssetDir: "assets",
		Audio:    true,
		LogPath:  "pixelcrawler.log",
	}
}

func defaultSaveDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "pixelcrawler")
}

// ConfigFromEnv returns the defaults overridden by PIXELCRAWLER_* variables.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("PIXELCRAWLER_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("PIXELCRAWLER_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("PIXELCRAWLER_AUDIO"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("PIXELCRAWLER_AUDIO: %w", err)
		}
		cfg.Audio = on
	}

	for env, dst := range map[string]*string{
		"PIXELCRAWLER_RENDERER":  &cfg.Renderer,
		"PIXELCRAWLER_LOCALE":    &cfg.Locale,
		"PIXELCRAWLER_SAVE_DIR":  &cfg.SaveDir,
		"PIXELCRAWLER_ASSET_DIR": &cfg.AssetDir,
		"PIXELCRAWLER_LOG":       &cfg.LogPath,
		"PIXELCRAWLER_TUNING":    &cfg.TuningPath,
	} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
	return cfg, nil
}

// RegisterFlags binds command-line flags to c. Current values become the
// flag defaults, so flags override the environment.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "dungeon seed (0 picks one at random)")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "frontend: tui or ebiten")
	fs.StringVar(&c.Locale, "locale", c.Locale, "language: en or ko")
	fs.StringVar(&c.SaveDir, "save-dir", c.SaveDir, "directory for save files")
	fs.StringVar(&c.AssetDir, "asset-dir", c.AssetDir, "directory containing the Pixel-Crawler-Pack folder")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "play sound effects")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "log file")
	fs.StringVar(&c.TuningPath, "tuning", c.TuningPath, "YAML file overriding tuning values")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "print the generated dungeon and exit")
}

// Validate checks option values.
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	if _, err := i18n.New(c.Locale); err != nil {
		return err
	}
	return nil
}
