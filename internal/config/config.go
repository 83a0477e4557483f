// Package config loads the export service configuration from an optional
// YAML file with environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/guidepress/guidepress"
	"github.com/guidepress/guidepress/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigRead  = errors.New("failed to read config file")
	ErrConfigParse = errors.New("failed to parse config")
	ErrInvalid     = errors.New("invalid configuration")
)

// Config holds all service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig defines HTTP server options.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// ExportConfig defines export pipeline options.
type ExportConfig struct {
	// Timeout bounds one export's layout and serialization work.
	Timeout time.Duration `yaml:"timeout"`
	// Workers is the exporter pool size; 0 means auto (GOMAXPROCS-based).
	Workers int `yaml:"workers"`
	// Filename is the default suggested filename for downloads.
	Filename string `yaml:"filename"`
}

// LogConfig defines logging options.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns the configuration used when no file or overrides apply.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8085",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
		},
		Export: ExportConfig{
			Timeout:  60 * time.Second,
			Workers:  0,
			Filename: guidepress.DefaultFilename,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- operator-provided path
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrConfigRead, err)
		}
		if err := yamlutil.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr cannot be empty", ErrInvalid)
	}
	if c.Export.Timeout <= 0 {
		return fmt.Errorf("%w: export.timeout must be positive", ErrInvalid)
	}
	if c.Export.Workers < 0 {
		return fmt.Errorf("%w: export.workers cannot be negative", ErrInvalid)
	}
	if c.Export.Filename == "" {
		return fmt.Errorf("%w: export.filename cannot be empty", ErrInvalid)
	}
	return nil
}

// applyEnv overrides file values from the environment.
func applyEnv(cfg *Config) {
	cfg.Server.Addr = envOr("GUIDEPRESS_ADDR", cfg.Server.Addr)
	cfg.Export.Timeout = envDuration("GUIDEPRESS_EXPORT_TIMEOUT", cfg.Export.Timeout)
	cfg.Export.Workers = envInt("GUIDEPRESS_WORKERS", cfg.Export.Workers)
	cfg.Export.Filename = envOr("GUIDEPRESS_FILENAME", cfg.Export.Filename)
	cfg.Log.Level = envOr("GUIDEPRESS_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Pretty = envBool("GUIDEPRESS_LOG_PRETTY", cfg.Log.Pretty)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
