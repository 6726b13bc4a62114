package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. LVROOT_SOLVER_TOLERANCE.
const EnvPrefix = "LVROOT_"

// Load reads a configuration file over the defaults, applies environment
// overrides, and validates the result. An empty path skips the file layer.
//
// The format is chosen by extension: .yaml/.yml use YAML, .toml uses TOML.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Read assembles the default, file and environment layers without
// validating, so a caller can add its own layer (flags) before Validate.
//
// The file is decoded over Default(), so keys it omits keep their defaults
// while explicit values, zeros included, reach Validate unchanged.
func Read(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from LVROOT_* environment variables. Variables
// that are not set leave the field untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// decodeFile reads path into cfg according to its extension.
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported configuration format %q (want .yaml, .yml or .toml)", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	return nil
}
