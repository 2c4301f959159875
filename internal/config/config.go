// Package config loads settings for the tuist command.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/grindlemire/tuist"
	"github.com/grindlemire/tuist/internal/board"
)

// Backend names accepted by the backend setting.
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config holds all configuration for the tuist command.
type Config struct {
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	Mouse         bool          `mapstructure:"mouse"`
	Backend       string        `mapstructure:"backend"`
	Board         BoardConfig   `mapstructure:"board"`
	Theme         ThemeConfig   `mapstructure:"theme"`
}

// BoardConfig holds board file settings.
type BoardConfig struct {
	File string `mapstructure:"file"`
}

// ThemeConfig holds color names for the board screen. Empty names keep the
// default color.
type ThemeConfig struct {
	Header   string   `mapstructure:"header"`
	Footer   string   `mapstructure:"footer"`
	Selected string   `mapstructure:"selected"`
	Muted    string   `mapstructure:"muted"`
	Dialog   string   `mapstructure:"dialog"`
	Columns  []string `mapstructure:"columns"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (TUIST_FRAME_INTERVAL, TUIST_BOARD_FILE, ...)
// 2. Project config (.tuist.yaml in current directory or parent)
// 3. User config (~/.config/tuist/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		pv := viper.New()
		pv.SetConfigFile(projectConfig)
		if err := pv.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading project config: %w", err)
		}
		if err := v.MergeConfigMap(pv.AllSettings()); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	return decode(v)
}

// LoadFromPath loads configuration from a specific file, with defaults and
// environment overrides applied.
func LoadFromPath(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return decode(v)
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		FrameInterval: 16 * time.Millisecond,
		Mouse:         true,
		Backend:       BackendANSI,
		Board:         BoardConfig{File: "board.yaml"},
	}
}

// UserConfigPath returns the path to the user config file.
func UserConfigPath() string {
	return filepath.Join(userConfigDir(), "config.yaml")
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive, got %s", c.FrameInterval)
	}
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("backend must be %q or %q, got %q", BackendANSI, BackendTcell, c.Backend)
	}
	if strings.TrimSpace(c.Board.File) == "" {
		return errors.New("board.file is empty")
	}
	return nil
}

// Resolve turns the color names into a board theme on top of the defaults.
func (t ThemeConfig) Resolve() (board.Theme, error) {
	theme := board.DefaultTheme()
	fields := []struct {
		key  string
		name string
		dst  *tuist.Color
	}{
		{"theme.header", t.Header, &theme.Header},
		{"theme.footer", t.Footer, &theme.Footer},
		{"theme.selected", t.Selected, &theme.Selected},
		{"theme.muted", t.Muted, &theme.Muted},
		{"theme.dialog", t.Dialog, &theme.Dialog},
	}
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		c, err := tuist.ParseColor(f.name)
		if err != nil {
			return board.Theme{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = c
	}
	if len(t.Columns) > 0 {
		theme.Columns = make([]tuist.Color, len(t.Columns))
		for i, name := range t.Columns {
			c, err := tuist.ParseColor(name)
			if err != nil {
				return board.Theme{}, fmt.Errorf("theme.columns[%d]: %w", i, err)
			}
			theme.Columns[i] = c
		}
	}
	return theme, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("TUIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Board.File = os.ExpandEnv(cfg.Board.File)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("frame_interval", d.FrameInterval.String())
	v.SetDefault("mouse", d.Mouse)
	v.SetDefault("backend", d.Backend)
	v.SetDefault("board.file", d.Board.File)

	// Registered so AutomaticEnv can override them.
	for _, key := range []string{"header", "footer", "selected", "muted", "dialog"} {
		v.SetDefault("theme."+key, "")
	}
}

// userConfigDir returns the XDG config directory for tuist.
func userConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "tuist")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "tuist")
	}
	return filepath.Join(home, ".config", "tuist")
}

// findProjectConfig searches for .tuist.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		configPath := filepath.Join(cwd, ".tuist.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		parent := filepath.Dir(cwd)
		if parent == cwd {
			return ""
		}
		cwd = parent
	}
}
