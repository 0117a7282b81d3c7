package config

import (
	"fmt"
	"os"

	"github.com/limaJavier/threemul/pkg/dataset"
)

// Loads the configuration: defaults, then the file at path (JSON or YAML, skipped if path is empty), then
// THREEMUL_* environment variables. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
		raw, err := dataset.DecodeDocument(path, content)
		if err != nil {
			return nil, fmt.Errorf("cannot parse config file %v: %w", path, err)
		}
		if err := dataset.Decode(raw, cfg); err != nil {
			return nil, fmt.Errorf("cannot decode config file %v: %w", path, err)
		}
	}

	if err := applyEnvironmentOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}
