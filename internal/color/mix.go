package color

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownMixMode is returned by ParseMixMode for unrecognized names.
var ErrUnknownMixMode = errors.New("color: unknown mix mode")

// MixMode selects how a set of colors is folded into one.
type MixMode uint8

const (
	// Subtractive averages in CMYK space, like pigments.
	Subtractive MixMode = iota
	// Additive averages in RGB space, like light.
	Additive
)

func (m MixMode) String() string {
	switch m {
	case Subtractive:
		return "subtractive"
	case Additive:
		return "additive"
	default:
		return "unknown"
	}
}

// ParseMixMode accepts "subtractive"/"pigment" and "additive"/"light".
func ParseMixMode(s string) (MixMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "subtractive", "pigment", "sub":
		return Subtractive, nil
	case "additive", "light", "add":
		return Additive, nil
	default:
		return Subtractive, fmt.Errorf("%w: %q", ErrUnknownMixMode, s)
	}
}

// Mix folds colors with the given mode.
func Mix(mode MixMode, colors []RGB) RGB {
	if mode == Additive {
		return MixAdditive(colors)
	}
	return MixSubtractive(colors)
}

// MixSubtractive averages the CMYK channels and opacity of colors.
// No colors mix to white; a single color is returned unchanged.
func MixSubtractive(colors []RGB) RGB {
	switch len(colors) {
	case 0:
		return White
	case 1:
		return colors[0]
	}

	var sum CMYK
	for _, c := range canonical(colors) {
		k := ToCMYK(c)
		sum.C += k.C
		sum.M += k.M
		sum.Y += k.Y
		sum.K += k.K
		sum.A += k.A
	}

	n := float64(len(colors))
	avg := CMYK{C: sum.C / n, M: sum.M / n, Y: sum.Y / n, K: sum.K / n, A: sum.A / n}
	return avg.ToRGB()
}

// MixAdditive averages the RGB channels and opacity of colors.
// No colors mix to black; a single color is returned unchanged.
func MixAdditive(colors []RGB) RGB {
	switch len(colors) {
	case 0:
		return Black
	case 1:
		return colors[0]
	}

	var r, g, b, a float64
	for _, c := range canonical(colors) {
		r += float64(c.R)
		g += float64(c.G)
		b += float64(c.B)
		a += clamp01(c.A)
	}

	n := float64(len(colors))
	return RGB{
		R: channel(r / n),
		G: channel(g / n),
		B: channel(b / n),
		A: clamp01(a / n),
	}
}

// canonical returns a sorted copy of colors. Summing in a fixed order keeps
// float accumulation, and therefore rounding, independent of input order.
func canonical(colors []RGB) []RGB {
	sorted := slices.Clone(colors)
	slices.SortFunc(sorted, func(a, b RGB) int {
		if c := cmp.Compare(a.R, b.R); c != 0 {
			return c
		}
		if c := cmp.Compare(a.G, b.G); c != 0 {
			return c
		}
		if c := cmp.Compare(a.B, b.B); c != 0 {
			return c
		}
		return cmp.Compare(a.A, b.A)
	})
	return sorted
}
