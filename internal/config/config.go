package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvConfig = "TERMBG_CONFIG" // path to an explicit config file
	envPrefix = "TERMBG"
)

// Config holds the resolved settings for the termbg CLI.
type Config struct {
	// --- Queries ---
	Timeout        time.Duration `mapstructure:"timeout" json:"timeout"`
	LatencyTimeout time.Duration `mapstructure:"latency_timeout" json:"latency_timeout"`
	PollInterval   time.Duration `mapstructure:"poll_interval" json:"poll_interval"`
	DrainInterval  time.Duration `mapstructure:"drain_interval" json:"drain_interval"`

	// --- Output ---
	LogLevel string `mapstructure:"log_level" json:"log_level"`
	Format   string `mapstructure:"format" json:"format"`
	Verbose  bool   `mapstructure:"verbose" json:"verbose"`

	// --- Palettes ---
	DarkTheme  string `mapstructure:"dark_theme" json:"dark_theme"`
	LightTheme string `mapstructure:"light_theme" json:"light_theme"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `mapstructure:"-" json:"config_file,omitempty"`
}

// Defaults applied before any file or environment override.
var defaults = map[string]any{
	"timeout":         "100ms",
	"latency_timeout": "1s",
	"poll_interval":   "100ms",
	"drain_interval":  "10ms",
	"log_level":       "warn",
	"format":          "text",
	"verbose":         false,
	"dark_theme":      "midnight",
	"light_theme":     "paper",
}

// Load resolves configuration with the precedence
// defaults → config file → TERMBG_* environment variables.
func Load() (*Config, error) {
	v := viper.New()
	return load(v)
}

// LoadViper is Load on a caller-supplied viper instance, so command-line
// flags bound to v take part in resolution.
func LoadViper(v *viper.Viper) (*Config, error) {
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if path := os.Getenv(EnvConfig); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file from %s: %w", EnvConfig, err)
		}
		v.SetConfigFile(path)
	} else {
		if dir := GetConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		v.SetConfigName("termbg")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetConfigDir returns the global config directory.
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "termbg")
}

// String renders the configuration as indented JSON with durations spelled
// out.
func (c *Config) String() string {
	out := struct {
		Timeout        string `json:"timeout"`
		LatencyTimeout string `json:"latency_timeout"`
		PollInterval   string `json:"poll_interval"`
		DrainInterval  string `json:"drain_interval"`
		LogLevel       string `json:"log_level"`
		Format         string `json:"format"`
		Verbose        bool   `json:"verbose"`
		DarkTheme      string `json:"dark_theme"`
		LightTheme     string `json:"light_theme"`
		ConfigFile     string `json:"config_file,omitempty"`
	}{
		c.Timeout.String(), c.LatencyTimeout.String(), c.PollInterval.String(), c.DrainInterval.String(),
		c.LogLevel, c.Format, c.Verbose, c.DarkTheme, c.LightTheme, c.ConfigFile,
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	return string(data)
}
