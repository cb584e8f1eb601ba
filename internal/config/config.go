package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultBoxWidth     = 46
	defaultPollInterval = 0.5

	// The status line needs room for "MM:SS / MM:SS" plus a right-justified
	// "Volume: 100%"; narrower boxes would corrupt it.
	minBoxWidth = 26
)

// Config holds the panel geometry and timing constants.
type Config struct {
	BoxWidth      int     `koanf:"box_width"`
	PollInterval  float64 `koanf:"poll_interval"` // seconds
	Notifications *bool   `koanf:"notifications"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BoxWidth:     defaultBoxWidth,
		PollInterval: defaultPollInterval,
	}
}

// Load reads optional config files (last wins) over the defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.BoxWidth < minBoxWidth {
		cfg.BoxWidth = defaultBoxWidth
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	return cfg, nil
}

// Interval returns the ticker period.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.PollInterval * float64(time.Second))
}

// NotificationsEnabled reports whether track-change desktop notifications
// should be sent. Enabled unless explicitly turned off.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/tremolo/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "tremolo", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}
