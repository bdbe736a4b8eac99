package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultSkipSeconds   = 10
	defaultAmbientVolume = 0.4
)

type Config struct {
	MediaRoot   string `koanf:"media_root"`   // base directory for root-relative audio locators
	Catalog     string `koanf:"catalog"`      // optional TOML catalog; built-in lessons when empty
	EnrichTags  *bool  `koanf:"enrich_tags"`  // fill missing titles from audio tags (default: true)
	SkipSeconds int    `koanf:"skip_seconds"` // seek step for skip keys (default: 10)

	Notifications *bool `koanf:"notifications"` // desktop notification on episode start (default: true)
	MPRIS         *bool `koanf:"mpris"`         // media keys over D-Bus (default: true)

	Log     LogConfig     `koanf:"log"`
	Ambient AmbientConfig `koanf:"ambient"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `koanf:"level"`  // "debug", "info", "warn", "error" (default: "info")
	Format string `koanf:"format"` // "console" or "json" (default: "console")
	Path   string `koanf:"path"`   // log file; XDG state dir when empty
}

// AmbientConfig holds the background loops, one per theme.
type AmbientConfig struct {
	Light  string   `koanf:"light"`  // loop heard with the light theme
	Dark   string   `koanf:"dark"`   // loop heard with the dark theme
	Muted  bool     `koanf:"muted"`  // start muted
	Volume *float64 `koanf:"volume"` // 0.0-1.0 (default: 0.4)
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order; later files override earlier
// ones and missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.MediaRoot = expandPath(cfg.MediaRoot)
	cfg.Catalog = expandPath(cfg.Catalog)
	cfg.Log.Path = expandPath(cfg.Log.Path)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Ambient.Light = expandPath(cfg.Ambient.Light)
	cfg.Ambient.Dark = expandPath(cfg.Ambient.Dark)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/decoded/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "decoded", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SkipStep returns the skip distance in seconds.
func (c *Config) SkipStep() float64 {
	if c.SkipSeconds <= 0 {
		return defaultSkipSeconds
	}
	return float64(c.SkipSeconds)
}

// EnrichEnabled reports whether catalog entries are completed from tags.
func (c *Config) EnrichEnabled() bool {
	return boolOr(c.EnrichTags, true)
}

// NotificationsEnabled reports whether desktop notifications are shown.
func (c *Config) NotificationsEnabled() bool {
	return boolOr(c.Notifications, true)
}

// MPRISEnabled reports whether the MPRIS server is started.
func (c *Config) MPRISEnabled() bool {
	return boolOr(c.MPRIS, true)
}

// GetAmbientConfig returns the ambient configuration with defaults applied.
func (c *Config) GetAmbientConfig() AmbientConfig {
	cfg := c.Ambient
	if cfg.Volume == nil || *cfg.Volume < 0 || *cfg.Volume > 1 {
		v := defaultAmbientVolume
		cfg.Volume = &v
	}
	return cfg
}

// AmbientVolume returns the ambient loop level with the default applied.
func (c *Config) AmbientVolume() float64 {
	return *c.GetAmbientConfig().Volume
}

// GetLogConfig returns the logging configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Level = "info"
	}
	if cfg.Format != "json" {
		cfg.Format = "console"
	}
	return cfg
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
