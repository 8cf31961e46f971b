// Package config - Loader configuration: where the sample images live, which
// decoder backend reads them and how chatty the logs are.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvDataDir  = "SAMPLEDATA_DIR"
	EnvBackend  = "SAMPLEDATA_BACKEND"
	EnvLogLevel = "SAMPLEDATA_LOG_LEVEL"
)

// Config represents the configuration of a sample image loader.
type Config struct {
	// DataDir is the directory holding the bundled sample images.
	DataDir string `json:"data_dir" yaml:"data_dir" validate:"required"`
	// Backend is the registered decoder backend name. Unknown names are
	// reported when the backend is opened.
	Backend string `json:"backend" yaml:"backend" validate:"required"`
	// LogLevel is one of error, warn, info, debug or trace.
	LogLevel string `json:"log_level" yaml:"log_level" validate:"required,oneof=error warn info debug trace"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns a configuration using the native backend and info logging.
// DataDir is left empty and must be supplied.
func Default() Config {
	return Config{
		Backend:  "native",
		LogLevel: "info",
	}
}

// Load reads a configuration file on top of Default. Files ending in .json are
// parsed as JSON, everything else as YAML. The result is not validated.
//
// Arguments:
// - path: Path to the configuration file.
//
// Returns:
// - The configuration.
// - error if the file cannot be read or parsed.
//
// @example
//
//	cfg, err := config.Load("sampledata.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.ApplyEnv()
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Relative data directories are relative to the config file.
	if cfg.DataDir != "" && !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(filepath.Dir(path), cfg.DataDir)
	}
	return cfg, nil
}

// ApplyEnv overrides fields with any non-empty SAMPLEDATA_* variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

// Validate checks required fields and allowed values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML, or JSON when path ends in .json.
func (c Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
