package color

import "math"

// Perceptual channel weights, roughly the eye's luminance sensitivity.
const (
	weightR = 0.30
	weightG = 0.59
	weightB = 0.11
)

// Similarity scores two colors in [0,1]; 1 means identical.
// The distance is a luminance-weighted Euclidean distance over normalized
// RGB deltas, saturating at 1. Opacity is ignored.
func Similarity(a, b RGB) float64 {
	dr := (float64(a.R) - float64(b.R)) / 255
	dg := (float64(a.G) - float64(b.G)) / 255
	db := (float64(a.B) - float64(b.B)) / 255

	d := math.Sqrt(weightR*dr*dr + weightG*dg*dg + weightB*db*db)
	return 1 - clamp01(d)
}

// Matches reports whether user is close enough to target.
func Matches(user, target RGB, threshold float64) bool {
	return Similarity(user, target) >= threshold
}

// Accuracy renders a similarity as a whole percentage.
func Accuracy(similarity float64) int {
	return int(math.Round(clamp01(similarity) * 100))
}
