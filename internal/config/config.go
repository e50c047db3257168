package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

const (
	DefaultMin uint64 = 1
	DefaultMax uint64 = 100
)

type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	History HistoryConfig `mapstructure:"history"`
}

type GameConfig struct {
	Min uint64 `mapstructure:"min"`
	Max uint64 `mapstructure:"max"`
}

type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// envOverrides is applied on top of the file. Nil pointers mean unset.
type envOverrides struct {
	Min            *uint64 `env:"GUESS_MIN"`
	Max            *uint64 `env:"GUESS_MAX"`
	HistoryEnabled *bool   `env:"GUESS_HISTORY_ENABLED"`
	HistoryPath    string  `env:"GUESS_HISTORY_PATH"`
}

func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "guessing-game"), nil
}

func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the YAML file at path (or the default location when empty),
// then applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("game.min", DefaultMin)
	v.SetDefault("game.max", DefaultMax)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	ov.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (o envOverrides) apply(cfg *Config) {
	if o.Min != nil {
		cfg.Game.Min = *o.Min
	}
	if o.Max != nil {
		cfg.Game.Max = *o.Max
	}
	if o.HistoryEnabled != nil {
		cfg.History.Enabled = *o.HistoryEnabled
	}
	if o.HistoryPath != "" {
		cfg.History.Path = o.HistoryPath
	}
}

func (c *Config) Validate() error {
	if c.Game.Min > c.Game.Max {
		return fmt.Errorf("game.min (%d) must not exceed game.max (%d)", c.Game.Min, c.Game.Max)
	}
	return nil
}
