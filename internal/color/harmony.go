package color

// Defaults for Analogous.
const (
	DefaultAnalogousCount    = 3
	DefaultAnalogousInterval = 30.0
)

// Complementary inverts every channel. Opacity is unchanged.
func Complementary(c RGB) RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// Analogous returns count colors starting with c itself; the i-th color has
// its hue rotated by interval*i degrees. Saturation, value and opacity are kept.
func Analogous(c RGB, count int, interval float64) []RGB {
	if count <= 0 {
		return []RGB{}
	}
	return rotations(c, count, interval)
}

// AnalogousDefault is Analogous with three colors 30° apart.
func AnalogousDefault(c RGB) []RGB {
	return Analogous(c, DefaultAnalogousCount, DefaultAnalogousInterval)
}

// Triadic returns c and the two colors 120° and 240° around the wheel.
func Triadic(c RGB) []RGB {
	return rotations(c, 3, 120)
}

// SplitComplementary returns c and the two neighbours of its complement.
func SplitComplementary(c RGB) []RGB {
	hsv := ToHSV(c)
	return []RGB{c, hsv.Rotate(150).ToRGB(), hsv.Rotate(210).ToRGB()}
}

func rotations(c RGB, count int, step float64) []RGB {
	hsv := ToHSV(c)
	out := make([]RGB, count)
	out[0] = c
	for i := 1; i < count; i++ {
		out[i] = hsv.Rotate(step * float64(i)).ToRGB()
	}
	return out
}
