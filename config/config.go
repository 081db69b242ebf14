// Package config loads application settings and the search scenario from
// a YAML file through viper, with GRIDPATH_* environment overrides.
//
// The log and server sections are unmarshalled by viper directly. The
// scenario section is re-encoded and decoded with yaml.v3 so that cell
// coordinates may be written either as "r,c" or as [r, c].
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to upper-cased, underscore-joined keys, e.g.
// GRIDPATH_SERVER_ADDR or GRIDPATH_SCENARIO_ALGORITHM.
const EnvPrefix = "GRIDPATH"

// ErrInvalidConfig wraps every decoding or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full application configuration.
type Config struct {
	Log      LogConfig    `mapstructure:"log" yaml:"log"`
	Server   ServerConfig `mapstructure:"server" yaml:"server"`
	Scenario Scenario     `mapstructure:"-" yaml:"scenario"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
	// Format is text or json.
	Format string `mapstructure:"format" yaml:"format"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// Defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultAddr      = ":8080"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:      LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Server:   ServerConfig{Addr: DefaultAddr},
		Scenario: DefaultScenario(),
	}
}

// Load reads path (YAML) and applies environment overrides. An empty path
// yields Default with environment overrides only.
func Load(path string) (*Config, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	// Defaults double as the key registry AutomaticEnv consults on Unmarshal.
	vp.SetDefault("log.level", DefaultLogLevel)
	vp.SetDefault("log.format", DefaultLogFormat)
	vp.SetDefault("server.addr", DefaultAddr)

	if path != "" {
		vp.SetConfigFile(path)
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
		}
	}

	cfg := Default()
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// Round-trip the scenario section through yaml.v3 for custom decoders.
	if raw := vp.Get("scenario"); raw != nil {
		doc, err := yaml.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: scenario: %v", ErrInvalidConfig, err)
		}
		if err = yaml.Unmarshal(doc, &cfg.Scenario); err != nil {
			return nil, fmt.Errorf("%w: scenario: %v", ErrInvalidConfig, err)
		}
	}
	if err := cfg.Scenario.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be rejected while decoding.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q must be 'text' or 'json'", ErrInvalidConfig, c.Log.Format)
	}
	return c.Scenario.Validate()
}

// envName maps a dotted key to its environment variable.
func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
