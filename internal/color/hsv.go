package color

import (
	"fmt"
	"math"
)

// HSV is a cylindrical color: hue in degrees [0,360), saturation and value in [0,1].
type HSV struct {
	H, S, V float64
	A       float64
}

// ToHSV converts a device color to HSV. Achromatic colors get hue 0.
func ToHSV(c RGB) HSV {
	r, g, b := c.normalized()
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	var h float64
	switch {
	case delta == 0:
		h = 0
	case maxC == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case maxC == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	h = NormalizeHue(h)

	var s float64
	if maxC > 0 {
		s = delta / maxC
	}

	return HSV{H: h, S: s, V: maxC, A: clamp01(c.A)}
}

// ToRGB converts back to a device color. Hue wraps modulo 360,
// saturation and value are clamped.
func (c HSV) ToRGB() RGB {
	h := NormalizeHue(c.H)
	s := clamp01(c.S)
	v := clamp01(c.V)

	chroma := v * s
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	m := v - chroma
	return RGB{
		R: channel((r + m) * 255),
		G: channel((g + m) * 255),
		B: channel((b + m) * 255),
		A: clamp01(c.A),
	}
}

// Rotate returns c with its hue shifted by deg degrees.
func (c HSV) Rotate(deg float64) HSV {
	c.H = NormalizeHue(c.H + deg)
	return c
}

// RGB implements Color.
func (c HSV) RGB() RGB { return c.ToRGB() }

// Space implements Color.
func (c HSV) Space() Space { return SpaceHSV }

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.0f°, %.0f%%, %.0f%%)", c.H, c.S*100, c.V*100)
}

// NormalizeHue maps any angle into [0,360).
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to 360.0
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance is the shortest angular distance between two hues, in [0,180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(NormalizeHue(a) - NormalizeHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}
