package config

import (
	_ "embed"
)

//go:embed defaults/colormix.yaml
var defaultYAML []byte

// Default returns the hard-coded calibration. It matches the embedded
// defaults/colormix.yaml and is used if that file cannot be parsed.
func Default() Config {
	return Config{
		Generator: GeneratorConfig{
			LevelsPerTier:  10,
			MaxPaletteSize: 10,
			MaxRetries:     8,
			SolverMaxParts: 4,
		},
		Tiers: []TierConfig{
			{PaletteSize: 3, MaxAttempts: 3},
			{PaletteSize: 4, MaxAttempts: 4},
			{PaletteSize: 5, MaxAttempts: 5},
			{PaletteSize: 6, MaxAttempts: 6},
			{PaletteSize: 7, MaxAttempts: 7},
		},
		Thresholds: ThresholdConfig{
			SubtleShade: ThresholdRule{Base: 0.90, Step: 0.01, Floor: 0.75, Scale: ScaleDifficulty},
			Vibrant:     ThresholdRule{Base: 1.0, Step: 0.05, Floor: 0.75, Scale: ScaleTier},
			ComplexMix:  ThresholdRule{Base: 0.85, Step: 0.02, Floor: 0.70, Scale: ScaleTier},
		},
		Procedural: ProceduralConfig{
			SubtleShade: SubtleShadeConfig{
				HueJitter:        15,
				SaturationJitter: 0.1,
				ValueJitter:      0.1,
			},
			Vibrant: VibrantConfig{
				MinSaturation: 0.8,
				MinValue:      0.85,
			},
			Muted: MutedConfig{
				MinSaturation: 0.2,
				MaxSaturation: 0.45,
				MinValue:      0.4,
				MaxValue:      0.7,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
