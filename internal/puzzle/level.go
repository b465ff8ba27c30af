package puzzle

import (
	"slices"

	"github.com/vovakirdan/colormix/internal/color"
)

// Level is the configuration of one puzzle level. It is immutable once
// produced: slice accessors return copies.
type Level struct {
	Type        Type
	Number      int
	Title       string
	Hint        string
	Target      color.RGB
	MaxAttempts int     // >= 1
	Threshold   float64 // Minimum similarity for a match, in (0, 1]
	Tier        int
	Challenge   Challenge

	palette  []color.RGB
	solution []color.RGB
}

// Palette returns the colors offered to the player, in display order.
func (l Level) Palette() []color.RGB {
	return slices.Clone(l.palette)
}

// Solution returns one known combination of palette colors that mixes to
// within the threshold of the target. Repeated entries mean repeated drops.
func (l Level) Solution() []color.RGB {
	return slices.Clone(l.solution)
}

// MixMode returns how selections are combined for this level.
func (l Level) MixMode() color.MixMode {
	return l.Type.MixMode()
}

// Curated reports whether the level is hand-authored.
func (l Level) Curated() bool {
	return l.Challenge == Curated
}

// Result is the outcome of one attempt.
type Result struct {
	Color      color.RGB
	Similarity float64
	Passed     bool
}

// Evaluate mixes an attempt with the level's mode and grades it against the target.
func (l Level) Evaluate(attempt []color.RGB) Result {
	mixed := color.Mix(l.MixMode(), attempt)
	sim := color.Similarity(mixed, l.Target)
	return Result{
		Color:      mixed,
		Similarity: sim,
		Passed:     sim >= l.Threshold,
	}
}
