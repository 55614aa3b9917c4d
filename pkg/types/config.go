// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// StaticDir holds index.html and the assets served under /static/.
	StaticDir string `json:"static_dir" yaml:"static_dir" mapstructure:"static_dir"`

	// APIKey, when set, is required as a bearer token on the generation routes.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	ReadTimeout     time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `json:"idle_timeout" yaml:"idle_timeout" mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// NamesConfig holds settings for brand-name synthesis.
type NamesConfig struct {
	// MaxAttempts caps the number of prefix/suffix draws per call (default 1000).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts" mapstructure:"max_attempts"`

	// Seed makes the random source deterministic when non-zero.
	Seed uint64 `json:"seed" yaml:"seed" mapstructure:"seed"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is console or json (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all brandcraft settings.
type Config struct {
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
	Names  NamesConfig  `json:"names" yaml:"names" mapstructure:"names"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`

	// CatalogFile optionally overrides the embedded catalog tables.
	CatalogFile string `json:"catalog_file,omitempty" yaml:"catalog_file,omitempty" mapstructure:"catalog_file"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8000",
			StaticDir:       "frontend",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Names: NamesConfig{
			MaxAttempts: 1000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
