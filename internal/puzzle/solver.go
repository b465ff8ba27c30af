package puzzle

import (
	"github.com/vovakirdan/colormix/internal/color"
)

// Solve searches multisets of palette colors, up to maxParts drops, for the
// mix closest to target. Smaller multisets win ties, then earlier palette
// entries, so the result is deterministic.
func Solve(palette []color.RGB, target color.RGB, mode color.MixMode, maxParts int) ([]color.RGB, float64) {
	if len(palette) == 0 || maxParts < 1 {
		return nil, color.Similarity(color.Mix(mode, nil), target)
	}

	var (
		best    []color.RGB
		bestSim = -1.0
		picks   = make([]color.RGB, 0, maxParts)
	)

	// Non-decreasing palette indices enumerate each multiset once.
	var walk func(start, remaining int)
	walk = func(start, remaining int) {
		if remaining == 0 {
			sim := color.Similarity(color.Mix(mode, picks), target)
			if sim > bestSim {
				bestSim = sim
				best = append(best[:0:0], picks...)
			}
			return
		}
		for i := start; i < len(palette); i++ {
			picks = append(picks, palette[i])
			walk(i, remaining-1)
			picks = picks[:len(picks)-1]
		}
	}

	for size := 1; size <= maxParts; size++ {
		walk(0, size)
		if bestSim == 1 {
			break
		}
	}

	return best, bestSim
}
