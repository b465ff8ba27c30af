package puzzle

import (
	"slices"

	"github.com/vovakirdan/colormix/internal/color"
)

// Range is an interval on one HSV channel. The zero Range matches anything.
// Hue ranges are half-open [Min, Max) and wrap through 0 when Min > Max;
// saturation and value ranges are closed.
type Range struct {
	Min, Max float64
}

// Any matches every value.
var Any = Range{}

func (r Range) containsHue(h float64) bool {
	if r == Any {
		return true
	}
	h = color.NormalizeHue(h)
	if r.Min <= r.Max {
		return h >= r.Min && h < r.Max
	}
	return h >= r.Min || h < r.Max
}

func (r Range) contains(v float64) bool {
	if r == Any {
		return true
	}
	return v >= r.Min && v <= r.Max
}

// Band adds Color to a palette when the target's HSV falls inside every range.
type Band struct {
	Name       string
	Hue        Range
	Saturation Range
	Value      Range
	Color      color.RGB
}

// Matches reports whether hsv is inside the band.
func (b Band) Matches(hsv color.HSV) bool {
	return b.Hue.containsHue(hsv.H) && b.Saturation.contains(hsv.S) && b.Value.contains(hsv.V)
}

// chromatic restricts hue bands to targets whose hue means something.
var chromatic = Range{Min: 0.15, Max: 1}

// PigmentBands drive palette selection for subtractive levels, in priority order.
var PigmentBands = []Band{
	{Name: "red hues", Hue: Range{300, 60}, Saturation: chromatic, Color: color.Red},
	{Name: "warm to green hues", Hue: Range{20, 180}, Saturation: chromatic, Color: color.Yellow},
	{Name: "green to azure hues", Hue: Range{90, 210}, Saturation: chromatic, Color: color.Cyan},
	{Name: "blue hues", Hue: Range{180, 300}, Saturation: chromatic, Color: color.Blue},
	{Name: "violet to rose hues", Hue: Range{250, 340}, Saturation: chromatic, Color: color.Magenta},
	{Name: "muted", Saturation: Range{0, 0.6}, Color: color.Brown},
	{Name: "dark", Value: Range{0, 0.6}, Color: color.Black},
	{Name: "pale", Saturation: Range{0, 0.6}, Value: Range{0.75, 1}, Color: color.White},
}

// LightBands drive palette selection for additive levels, in priority order.
var LightBands = []Band{
	{Name: "red hues", Hue: Range{270, 90}, Saturation: chromatic, Color: color.Red},
	{Name: "yellow hues", Hue: Range{30, 90}, Saturation: chromatic, Color: color.Yellow},
	{Name: "green hues", Hue: Range{30, 210}, Saturation: chromatic, Color: color.Green},
	{Name: "cyan hues", Hue: Range{150, 210}, Saturation: chromatic, Color: color.Cyan},
	{Name: "blue hues", Hue: Range{150, 330}, Saturation: chromatic, Color: color.Blue},
	{Name: "magenta hues", Hue: Range{270, 330}, Saturation: chromatic, Color: color.Magenta},
	{Name: "washed out", Saturation: Range{0, 0.6}, Color: color.White},
	{Name: "dim", Value: Range{0, 0.6}, Color: color.Black},
}

// Fallback colors pad a palette when the bands select too few.
var (
	PigmentFallback = []color.RGB{
		color.Red, color.Yellow, color.Blue, color.White, color.Black,
		color.Cyan, color.Magenta, color.Green, color.Orange, color.Purple,
	}
	LightFallback = []color.RGB{
		color.Red, color.Green, color.Blue, color.White, color.Black,
		color.Yellow, color.Cyan, color.Magenta,
	}
)

func bandsFor(mode color.MixMode) ([]Band, []color.RGB) {
	if mode == color.Additive {
		return LightBands, LightFallback
	}
	return PigmentBands, PigmentFallback
}

// BandColors returns the band colors selected for target, deduplicated, in table order.
func BandColors(bands []Band, target color.RGB) []color.RGB {
	hsv := color.ToHSV(target)
	var out []color.RGB
	for _, b := range bands {
		if b.Matches(hsv) && !slices.Contains(out, b.Color) {
			out = append(out, b.Color)
		}
	}
	return out
}

// selectPalette builds the offered palette for a procedural target. Band
// colors are always kept. Fallback colors fill up to size, drawn in shuffled
// order, and the final palette is shuffled. Only band colors may push the
// palette past maxSize.
func selectPalette(target color.RGB, mode color.MixMode, size, maxSize int, rng *SimpleRNG) []color.RGB {
	bands, fallback := bandsFor(mode)
	palette := BandColors(bands, target)

	if size > maxSize {
		size = maxSize
	}

	if len(palette) < size {
		pool := slices.Clone(fallback)
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		for _, c := range pool {
			if len(palette) >= size {
				break
			}
			if !slices.Contains(palette, c) {
				palette = append(palette, c)
			}
		}
	}

	rng.Shuffle(len(palette), func(i, j int) { palette[i], palette[j] = palette[j], palette[i] })
	return palette
}
