// Package config loads termfolio settings from defaults, an optional YAML
// file and TERMFOLIO_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// MinDelay is the smallest accepted per-character animation delay.
const MinDelay = time.Millisecond

// Config holds application configuration.
type Config struct {
	Terminal  TerminalConfig
	Animation AnimationConfig
	Content   ContentConfig
	Render    RenderConfig
	Serve     ServeConfig
	Log       LogConfig
}

// TerminalConfig controls the mount point and the prompt.
type TerminalConfig struct {
	Selector string
	Prompt   string // empty means the catalog's prompt
}

// AnimationConfig holds the typed-command cadence.
type AnimationConfig struct {
	Delay time.Duration
}

// ContentConfig points at an alternative catalog file.
type ContentConfig struct {
	Path string
}

// RenderConfig holds presentation settings.
type RenderConfig struct {
	Style string // glamour style name or JSON style path
}

// ServeConfig holds web snapshot server settings.
type ServeConfig struct {
	Port int
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	File  string
}

// Load reads configuration from file and env. Env var overrides use prefix TERMFOLIO_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("terminal.selector", "#terminal")
	v.SetDefault("terminal.prompt", "")
	v.SetDefault("animation.delay", 50*time.Millisecond)
	v.SetDefault("content.path", "")
	v.SetDefault("render.style", "dark")
	v.SetDefault("serve.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("TERMFOLIO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "termfolio"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TERMFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; a broken or explicitly named one is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Animation.Delay < MinDelay {
		return Config{}, fmt.Errorf("animation.delay must be at least %s, got %s (bare numbers are nanoseconds; write 50ms)", MinDelay, c.Animation.Delay)
	}
	return c, nil
}
