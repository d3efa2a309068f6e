// Package config loads session settings from an optional YAML file, the
// environment and built-in defaults, in increasing order of precedence:
// defaults < file < environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SCHEMAREPL_FORMAT=json.
const EnvPrefix = "SCHEMAREPL"

// Config holds session settings. Records are never read from or written to it.
type Config struct {
	Prompt      string `mapstructure:"prompt"`
	Format      string `mapstructure:"format"`
	HistoryFile string `mapstructure:"history_file"`
	Debug       bool   `mapstructure:"debug"`
	Banner      bool   `mapstructure:"banner"`
	Color       bool   `mapstructure:"color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Prompt: ">>> ",
		Format: "text",
		Banner: true,
		Color:  true,
	}
}

// Load reads settings. An empty path skips the file layer; a path that
// cannot be read is an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("prompt", def.Prompt)
	v.SetDefault("format", def.Format)
	v.SetDefault("history_file", def.HistoryFile)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("banner", def.Banner)
	v.SetDefault("color", def.Color)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
