// Package config loads settings from a YAML file, a .env file and the
// environment, in that order of precedence (later wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Output modes
const (
	OutputAlfred = "alfred"
	OutputJSON   = "json"
	OutputText   = "text"
)

// Icon size bounds
const (
	MinIconSize = 8
	MaxIconSize = 1024
)

// ErrInvalidOutput is returned for an unknown output mode.
var ErrInvalidOutput = errors.New("invalid output mode")

// Config holds runtime settings
type Config struct {
	CacheDir string `yaml:"cache_dir"`
	IconSize int    `yaml:"icon_size"`
	Output   string `yaml:"output"`
	NoIcons  bool   `yaml:"no_icons"`
}

// Default returns the built-in settings. The cache lives in the launcher's
// workflow cache when it provides one.
func Default() Config {
	cacheDir := os.Getenv("alfred_workflow_cache")
	if cacheDir == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			cacheDir = filepath.Join(dir, "colors")
		} else {
			cacheDir = filepath.Join(os.TempDir(), "colors")
		}
	}
	return Config{
		CacheDir: cacheDir,
		IconSize: 64,
		Output:   OutputAlfred,
	}
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "colors", "config.yaml")
}

// Load reads settings from path (DefaultPath when empty), then applies a
// .env file in the working directory and COLORS_* environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return Config{}, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	// Existing environment variables take precedence over .env entries.
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("COLORS_CACHE_DIR"); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv("COLORS_ICON_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.IconSize = n
		}
	}
	if v := os.Getenv("COLORS_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("COLORS_NO_ICONS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing COLORS_NO_ICONS: %w", err)
		}
		c.NoIcons = b
	}
	return nil
}

// Validate checks that settings are usable
func (c Config) Validate() error {
	switch c.Output {
	case OutputAlfred, OutputJSON, OutputText:
	default:
		return fmt.Errorf("%w %q (want %s, %s or %s)", ErrInvalidOutput, c.Output, OutputAlfred, OutputJSON, OutputText)
	}
	if c.IconSize < MinIconSize || c.IconSize > MaxIconSize {
		return fmt.Errorf("icon size %d out of range [%d, %d]", c.IconSize, MinIconSize, MaxIconSize)
	}
	return nil
}
