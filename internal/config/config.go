// Package config loads the optional yaml tuning file consumed by the
// azx-solver CLI. The library itself never reads files; it takes
// solver.Options built here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rayriffy/azx-service-solver/solver"
)

// Config mirrors solver.Options as a yaml document.
//
// Zero is the "unset" sentinel: ApplyDefaults replaces every zero field
// with the reference default before validation, whether the field was
// omitted or written as an explicit 0. A literal zero is therefore not
// expressible — `small_board_cells: 0` becomes 30, not a zero threshold.
// To disable the wide-beam tier instead set small_beam_width equal to
// medium_beam_width; every other field rejects zero at validation anyway.
type Config struct {
	// Target is the exact sum every move must reach.
	Target int `yaml:"target"`
	// SmallBoardCells is the inclusive tile-count bound for the wide beam.
	SmallBoardCells int `yaml:"small_board_cells"`
	// SmallBeamWidth is the beam width at or below SmallBoardCells.
	SmallBeamWidth int `yaml:"small_beam_width"`
	// MediumBoardCells is the inclusive tile-count bound for the narrow beam.
	MediumBoardCells int `yaml:"medium_board_cells"`
	// MediumBeamWidth is the beam width at or below MediumBoardCells.
	MediumBeamWidth int `yaml:"medium_beam_width"`
	// LookaheadDepth is the greedy fallback's evaluation depth.
	LookaheadDepth int `yaml:"lookahead_depth"`
	// MaxSubsetLen bounds subset-sum input length during enumeration.
	MaxSubsetLen int `yaml:"max_subset_len"`
}

// Load reads and parses a yaml tuning file, applies defaults, and
// validates the result against the solver's option bounds.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults fills every zero field with the reference value. Zero is
// the unset sentinel; see the Config documentation for what that makes
// inexpressible.
func ApplyDefaults(cfg *Config) {
	def := solver.DefaultOptions()
	if cfg.Target == 0 {
		cfg.Target = def.Target
	}
	if cfg.SmallBoardCells == 0 {
		cfg.SmallBoardCells = def.SmallBoardCells
	}
	if cfg.SmallBeamWidth == 0 {
		cfg.SmallBeamWidth = def.SmallBeamWidth
	}
	if cfg.MediumBoardCells == 0 {
		cfg.MediumBoardCells = def.MediumBoardCells
	}
	if cfg.MediumBeamWidth == 0 {
		cfg.MediumBeamWidth = def.MediumBeamWidth
	}
	if cfg.LookaheadDepth == 0 {
		cfg.LookaheadDepth = def.LookaheadDepth
	}
	if cfg.MaxSubsetLen == 0 {
		cfg.MaxSubsetLen = def.MaxSubsetLen
	}
}

// Validate delegates to the solver's option bounds so the CLI and the
// library can never disagree about what is acceptable.
func Validate(cfg *Config) error {
	return cfg.ToSolverOptions().Validate()
}

// ToSolverOptions converts the file representation into solver.Options.
func (c *Config) ToSolverOptions() solver.Options {
	return solver.Options{
		Target:           c.Target,
		SmallBoardCells:  c.SmallBoardCells,
		SmallBeamWidth:   c.SmallBeamWidth,
		MediumBoardCells: c.MediumBoardCells,
		MediumBeamWidth:  c.MediumBeamWidth,
		LookaheadDepth:   c.LookaheadDepth,
		MaxSubsetLen:     c.MaxSubsetLen,
	}
}
