package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "minihome"

// Config is the decoded config.toml.
type Config struct {
	Owner     string `koanf:"owner" validate:"required"` // shown in the header bar
	AudioRoot string `koanf:"audio_root"`                // directory track sources resolve against
	LogLevel  string `koanf:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Icons     string `koanf:"icons" validate:"omitempty,oneof=nerd unicode none"`

	Player        PlayerConfig        `koanf:"player"`
	MPRIS         MPRISConfig         `koanf:"mpris"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

// PlayerConfig holds playlist player settings.
type PlayerConfig struct {
	Autoplay bool `koanf:"autoplay"` // start the first track at launch
	TickMS   int  `koanf:"tick_ms"`  // time update interval (50-2000, default: 250)
}

// MPRISConfig controls the D-Bus media player integration.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// NotificationsConfig controls desktop "now playing" notifications.
type NotificationsConfig struct {
	Enabled   *bool `koanf:"enabled"`                                         // default: true
	TimeoutMS *int  `koanf:"timeout_ms" validate:"omitempty,gte=0,lte=3600000"` // default: 5000, 0 = never expire
}

// Load reads the default config files in order of priority (last wins).
// A non-empty explicit path replaces the defaults and must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	if explicit != "" {
		if err := k.Load(file.Provider(explicit), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", explicit, err)
		}
	} else {
		for _, path := range getConfigPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
					return nil, fmt.Errorf("load %s: %w", path, err)
				}
			}
		}
	}

	cfg := &Config{
		Owner:    "minihome",
		LogLevel: "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.AudioRoot != "" {
		cfg.AudioRoot = expandPath(cfg.AudioRoot)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that koanf cannot reject while decoding.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/minihome/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// TickInterval returns the engine time update interval with bounds applied.
func (c *Config) TickInterval() time.Duration {
	ms := c.Player.TickMS
	switch {
	case ms <= 0:
		ms = 250
	case ms < 50:
		ms = 50
	case ms > 2000:
		ms = 2000
	}
	return time.Duration(ms) * time.Millisecond
}

// MPRISEnabled returns true unless MPRIS was explicitly disabled.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

// NotificationsEnabled returns true unless notifications were explicitly disabled.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// NotificationTimeout returns the bubble lifetime in milliseconds. An unset
// key means 5000; an explicit 0 keeps the bubble until dismissed.
func (c *Config) NotificationTimeout() int {
	if c.Notifications.TimeoutMS == nil {
		return 5000
	}
	return *c.Notifications.TimeoutMS
}
