// Package config provides YAML-based calibration loading for the level
// generator: difficulty tiers, accuracy-threshold rules and procedural
// color ranges.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full generator calibration.
type Config struct {
	Generator  GeneratorConfig  `yaml:"generator"`
	Tiers      []TierConfig     `yaml:"tiers"`
	Thresholds ThresholdConfig  `yaml:"thresholds"`
	Procedural ProceduralConfig `yaml:"procedural"`
}

// GeneratorConfig holds global generator limits.
type GeneratorConfig struct {
	LevelsPerTier  int `yaml:"levels_per_tier"`
	MaxPaletteSize int `yaml:"max_palette_size"`

	// MaxRetries is how many times a procedural target is re-rolled when
	// no mix of its palette reaches the threshold.
	MaxRetries int `yaml:"max_retries"`

	// SolverMaxParts is the largest number of drops the solver combines.
	SolverMaxParts int `yaml:"solver_max_parts"`
}

// TierConfig defines one coarse difficulty bucket.
type TierConfig struct {
	PaletteSize int `yaml:"palette_size"`
	MaxAttempts int `yaml:"max_attempts"`
}

// ThresholdConfig holds one rule per procedural challenge.
type ThresholdConfig struct {
	SubtleShade ThresholdRule `yaml:"subtle_shade"`
	Vibrant     ThresholdRule `yaml:"vibrant"`
	ComplexMix  ThresholdRule `yaml:"complex_mix"`
}

// Scale names what a threshold rule steps with.
type Scale string

const (
	ScaleDifficulty Scale = "difficulty" // levels past the curated set
	ScaleTier       Scale = "tier"
)

// ThresholdRule computes base - step*n, floored, where n is the difficulty
// or the tier depending on Scale.
type ThresholdRule struct {
	Base  float64 `yaml:"base"`
	Step  float64 `yaml:"step"`
	Floor float64 `yaml:"floor"`
	Scale Scale   `yaml:"scale"`
}

// ProceduralConfig holds the random ranges used by procedural targets.
type ProceduralConfig struct {
	SubtleShade SubtleShadeConfig `yaml:"subtle_shade"`
	Vibrant     VibrantConfig     `yaml:"vibrant"`
	Muted       MutedConfig       `yaml:"muted"`
}

// SubtleShadeConfig bounds the perturbation applied to a base color.
type SubtleShadeConfig struct {
	HueJitter        float64 `yaml:"hue_jitter"`        // Degrees, applied as ±
	SaturationJitter float64 `yaml:"saturation_jitter"` // Applied as ±
	ValueJitter      float64 `yaml:"value_jitter"`      // Applied as ±
}

// VibrantConfig bounds vibrant targets from below.
type VibrantConfig struct {
	MinSaturation float64 `yaml:"min_saturation"`
	MinValue      float64 `yaml:"min_value"`
}

// MutedConfig bounds muted complex targets.
type MutedConfig struct {
	MinSaturation float64 `yaml:"min_saturation"`
	MaxSaturation float64 `yaml:"max_saturation"`
	MinValue      float64 `yaml:"min_value"`
	MaxValue      float64 `yaml:"max_value"`
}

// MaxTier returns the highest tier number.
func (c Config) MaxTier() int {
	return len(c.Tiers)
}

// Validate checks the invariants the generator relies on.
func (c Config) Validate() error {
	if len(c.Tiers) == 0 {
		return fmt.Errorf("%w: no tiers defined", ErrInvalidConfig)
	}
	if c.Generator.LevelsPerTier < 1 {
		return fmt.Errorf("%w: levels_per_tier must be >= 1, got %d", ErrInvalidConfig, c.Generator.LevelsPerTier)
	}
	if c.Generator.MaxPaletteSize < 2 {
		return fmt.Errorf("%w: max_palette_size must be >= 2, got %d", ErrInvalidConfig, c.Generator.MaxPaletteSize)
	}
	if c.Generator.SolverMaxParts < 1 {
		return fmt.Errorf("%w: solver_max_parts must be >= 1, got %d", ErrInvalidConfig, c.Generator.SolverMaxParts)
	}

	prev := TierConfig{}
	for i, t := range c.Tiers {
		if t.MaxAttempts < 1 {
			return fmt.Errorf("%w: tier %d: max_attempts must be >= 1", ErrInvalidConfig, i+1)
		}
		if t.PaletteSize < 2 || t.PaletteSize > c.Generator.MaxPaletteSize {
			return fmt.Errorf("%w: tier %d: palette_size %d outside [2, %d]",
				ErrInvalidConfig, i+1, t.PaletteSize, c.Generator.MaxPaletteSize)
		}
		if t.PaletteSize < prev.PaletteSize || t.MaxAttempts < prev.MaxAttempts {
			return fmt.Errorf("%w: tier %d is easier than tier %d", ErrInvalidConfig, i+1, i)
		}
		prev = t
	}

	rules := map[string]ThresholdRule{
		"subtle_shade": c.Thresholds.SubtleShade,
		"vibrant":      c.Thresholds.Vibrant,
		"complex_mix":  c.Thresholds.ComplexMix,
	}
	for name, r := range rules {
		if err := r.validate(); err != nil {
			return fmt.Errorf("%w: threshold %s: %v", ErrInvalidConfig, name, err)
		}
	}

	return nil
}

func (r ThresholdRule) validate() error {
	if r.Base <= 0 || r.Base > 1 {
		return fmt.Errorf("base %.3f outside (0, 1]", r.Base)
	}
	if r.Floor <= 0 || r.Floor > r.Base {
		return fmt.Errorf("floor %.3f outside (0, base]", r.Floor)
	}
	if r.Step < 0 {
		return fmt.Errorf("negative step %.3f", r.Step)
	}
	if r.Scale != ScaleDifficulty && r.Scale != ScaleTier {
		return fmt.Errorf("unknown scale %q", r.Scale)
	}
	return nil
}
