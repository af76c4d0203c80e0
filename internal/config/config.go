// Package config loads editor settings from a YAML file and environment
// variables. Command line flags override whatever is loaded here.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Display defaults and legal ranges, matching the -o and -g flags.
const (
	DefaultOctetsPerLine = 16
	MinOctetsPerLine     = 16
	MaxOctetsPerLine     = 64

	DefaultGrouping = 4
	MinGrouping     = 2
	MaxGrouping     = 16
)

// Config is the root configuration structure.
type Config struct {
	OctetsPerLine int       `mapstructure:"octets_per_line"`
	Grouping      int       `mapstructure:"grouping"`
	Log           LogConfig `mapstructure:"log"`
}

// LogConfig holds file-logging preferences.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from the given file, or from
// $HOME/.config/hx/config.yaml when path is empty, with HX_* environment
// variables layered on top. A missing default config file is not an error.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME/.config/hx")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("HX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("octets_per_line", DefaultOctetsPerLine)
	viper.SetDefault("grouping", DefaultGrouping)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return &cfg, nil
}

// Normalize falls back to the defaults for values outside their legal
// range, and forces the grouping to divide the row width so group
// separators always align.
func (c *Config) Normalize() {
	if c.OctetsPerLine < MinOctetsPerLine || c.OctetsPerLine > MaxOctetsPerLine {
		c.OctetsPerLine = DefaultOctetsPerLine
	}
	if c.Grouping < MinGrouping || c.Grouping > MaxGrouping {
		c.Grouping = DefaultGrouping
	}
	if c.OctetsPerLine%c.Grouping != 0 {
		c.Grouping = DefaultGrouping
		if c.OctetsPerLine%c.Grouping != 0 {
			c.OctetsPerLine = DefaultOctetsPerLine
		}
	}
}
