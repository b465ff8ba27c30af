package config

import "math"

// Difficulty maps level numbers onto tiers and threshold rules.
type Difficulty struct {
	cfg Config
}

// NewDifficulty creates a difficulty calculator over cfg.
func NewDifficulty(cfg Config) *Difficulty {
	return &Difficulty{cfg: cfg}
}

// Tier returns the 1-based tier for a level, capped at the last tier.
func (d *Difficulty) Tier(level int) int {
	if level < 1 {
		level = 1
	}
	per := d.cfg.Generator.LevelsPerTier
	if per < 1 {
		per = 1 // Prevent division by zero
	}
	tier := 1 + (level-1)/per
	if last := d.cfg.MaxTier(); tier > last {
		tier = last
	}
	return tier
}

// PaletteSize returns how many colors a level offers.
func (d *Difficulty) PaletteSize(level int) int {
	return d.tier(level).PaletteSize
}

// MaxAttempts returns the attempt budget for a level.
func (d *Difficulty) MaxAttempts(level int) int {
	return d.tier(level).MaxAttempts
}

// Threshold evaluates a rule. difficulty counts levels past the curated set.
func (d *Difficulty) Threshold(rule ThresholdRule, level, difficulty int) float64 {
	n := difficulty
	if rule.Scale == ScaleTier {
		n = d.Tier(level)
	}
	if n < 0 {
		n = 0
	}
	t := rule.Base - float64(n)*rule.Step
	// Two decimals, so 0.90 - 3*0.01 is exactly 0.87.
	t = math.Round(t*100) / 100
	return clampF(t, rule.Floor, 1.0)
}

func (d *Difficulty) tier(level int) TierConfig {
	if len(d.cfg.Tiers) == 0 {
		return TierConfig{PaletteSize: 2, MaxAttempts: 1}
	}
	return d.cfg.Tiers[d.Tier(level)-1]
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
