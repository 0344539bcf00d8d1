// Package config loads default run parameters from a JSON tuning file.
// Values from the file fill in for flags the caller left at their
// defaults, so a site can pin its preferred parameters without passing
// them on every invocation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultConfigPath is the path to the canonical tuning defaults file.
const DefaultConfigPath = "config/tuning.defaults.json"

// TuningConfig holds optional overrides for clustering run parameters.
// Nil fields mean "no opinion"; only set fields are applied.
type TuningConfig struct {
	Splits    *int     `json:"splits,omitempty"`
	Eps       *float64 `json:"eps,omitempty"`
	MinPts    *int     `json:"min_pts,omitempty"`
	Workers   *int     `json:"workers,omitempty"`
	MaxRounds *int     `json:"max_rounds,omitempty"`
	DBPath    *string  `json:"db_path,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with all fields set to nil.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig reads a tuning file. A missing file is not an error;
// it yields an empty config so flag defaults stand.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return EmptyTuningConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tuning config: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse tuning config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the clustering engine would refuse anyway, so
// a bad tuning file fails at startup with a pointer to the file.
func (c *TuningConfig) Validate() error {
	if c.Splits != nil && *c.Splits < 1 {
		return fmt.Errorf("splits must be at least 1, got %d", *c.Splits)
	}
	if c.Eps != nil && *c.Eps < 0 {
		return fmt.Errorf("eps must not be negative, got %g", *c.Eps)
	}
	if c.MinPts != nil && *c.MinPts < 1 {
		return fmt.Errorf("min_pts must be at least 1, got %d", *c.MinPts)
	}
	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", *c.Workers)
	}
	if c.MaxRounds != nil && *c.MaxRounds < 0 {
		return fmt.Errorf("max_rounds must not be negative, got %d", *c.MaxRounds)
	}
	return nil
}
