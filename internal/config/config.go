// Package config loads the process configuration for the floorplan tools.
//
// Configuration comes from an optional TOML file with environment variable
// overrides. The output directory is an explicit value handed to callers
// that write artifacts; nothing in the pipeline infers paths from
// process-wide state.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Environment variables recognized as overrides.
const (
	envThinning  = "FLOORPLAN_THINNING"
	envOutputDir = "FLOORPLAN_OUTPUT_DIR"
)

// Config is the full process configuration.
type Config struct {
	// Thinning names the skeletonization strategy, resolved once at
	// startup. Empty selects zhang-suen.
	Thinning string `toml:"thinning"`

	// OutputDir is where CLI artifacts (skeleton and annotated renders)
	// are written. Empty means the input image's directory.
	OutputDir string `toml:"output_dir"`

	// Pipeline holds the default stage parameters.
	Pipeline Pipeline `toml:"pipeline"`
}

// Pipeline carries the per-stage numeric defaults. Zero values are replaced
// by the documented defaults when the pipeline is constructed.
type Pipeline struct {
	Threshold     int     `toml:"threshold"`
	MaxPoints     int     `toml:"max_points"`
	MinQuality    float64 `toml:"min_quality"`
	MinDistance   int     `toml:"min_distance"`
	Clusters      int     `toml:"clusters"`
	VoteThreshold int     `toml:"vote_threshold"`
	MinLineLength int     `toml:"min_line_length"`
	MaxLineGap    int     `toml:"max_line_gap"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Thinning: "zhang-suen",
		Pipeline: Pipeline{
			Threshold:     100,
			MaxPoints:     500,
			MinQuality:    0.001,
			MinDistance:   10,
			Clusters:      20,
			VoteThreshold: 50,
			MinLineLength: 50,
			MaxLineGap:    10,
		},
	}
}

// Load reads the TOML file at path on top of the defaults and then applies
// environment overrides. An empty path skips the file entirely; a missing
// file at an explicit path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envThinning); v != "" {
		cfg.Thinning = v
	}
	if v := os.Getenv(envOutputDir); v != "" {
		cfg.OutputDir = v
	}
}
