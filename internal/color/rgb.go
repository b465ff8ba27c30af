// Package color implements the color model used by the puzzles: RGB, CMYK
// and HSV value types, subtractive and additive mixing, harmony derivation
// and similarity scoring.
//
// Every function here is pure and total over its numeric domain. Out-of-range
// inputs are clamped, never rejected, so the package is safe to call from any
// goroutine without coordination.
package color

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidHex is returned when a hex color string cannot be parsed.
	ErrInvalidHex = errors.New("color: invalid hex color")
	// ErrUnknownColorName is returned by ParseNamed for names outside the palette.
	ErrUnknownColorName = errors.New("color: unknown color name")
)

// RGB is a device color with 8-bit channels and a floating opacity in [0,1].
// It is a plain value: compare with ==.
type RGB struct {
	R, G, B uint8
	A       float64
}

// New returns an opaque RGB color.
func New(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b, A: 1}
}

// NewRGBA returns an RGB color with the given opacity, clamped to [0,1].
func NewRGBA(r, g, b uint8, a float64) RGB {
	return RGB{R: r, G: g, B: b, A: clamp01(a)}
}

// Basic palette used by curated levels and palette heuristics.
var (
	White   = New(255, 255, 255)
	Black   = New(0, 0, 0)
	Red     = New(255, 0, 0)
	Green   = New(0, 255, 0)
	Blue    = New(0, 0, 255)
	Yellow  = New(255, 255, 0)
	Cyan    = New(0, 255, 255)
	Magenta = New(255, 0, 255)
	Orange  = New(255, 128, 0)
	Purple  = New(128, 0, 128)
	Brown   = New(139, 69, 19)
	Gray    = New(128, 128, 128)
)

var named = map[string]RGB{
	"white":   White,
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
	"orange":  Orange,
	"purple":  Purple,
	"brown":   Brown,
	"gray":    Gray,
	"grey":    Gray,
}

// basicNames lists the palette names in display order, one per color.
var basicNames = []string{
	"white", "black", "red", "green", "blue", "yellow",
	"cyan", "magenta", "orange", "purple", "brown", "gray",
}

// Name returns the basic palette name of c, if it has one. Opacity is ignored.
func Name(c RGB) (string, bool) {
	for _, n := range basicNames {
		if b := named[n]; b.R == c.R && b.G == c.G && b.B == c.B {
			return n, true
		}
	}
	return "", false
}

// ParseNamed resolves one of the basic palette names (case-insensitive).
func ParseNamed(name string) (RGB, error) {
	c, ok := named[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q", ErrUnknownColorName, name)
	}
	return c, nil
}

// ParseHex parses "#rrggbb" (the leading # is optional) into an opaque color.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w %q: %v", ErrInvalidHex, s, err)
	}
	r, g, b := c.RGB255()
	return New(r, g, b), nil
}

// Parse accepts either a basic palette name or a hex string.
func Parse(s string) (RGB, error) {
	if c, err := ParseNamed(s); err == nil {
		return c, nil
	}
	return ParseHex(s)
}

// Hex returns the "#rrggbb" form. Opacity is not encoded.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	if c.A == 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", c.R, c.G, c.B, c.A)
}

// WithAlpha returns a copy of c with a different opacity.
func (c RGB) WithAlpha(a float64) RGB {
	c.A = clamp01(a)
	return c
}

// RGB implements Color.
func (c RGB) RGB() RGB { return c }

// Space implements Color.
func (c RGB) Space() Space { return SpaceRGB }

// normalized returns the channels scaled to [0,1].
func (c RGB) normalized() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// channel converts a [0,255] float to a byte, rounding half away from zero.
func channel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
