package color

import (
	"fmt"
	"math"
)

// CMYK is a subtractive color with every channel in [0,1].
type CMYK struct {
	C, M, Y, K float64
	A          float64
}

// ToCMYK converts a device color to CMYK.
// Pure black has no defined chroma, so its C, M and Y are 0.
func ToCMYK(c RGB) CMYK {
	r, g, b := c.normalized()
	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CMYK{K: 1, A: clamp01(c.A)}
	}
	return CMYK{
		C: clamp01((1 - r - k) / (1 - k)),
		M: clamp01((1 - g - k) / (1 - k)),
		Y: clamp01((1 - b - k) / (1 - k)),
		K: k,
		A: clamp01(c.A),
	}
}

// ToRGB converts back to a device color. Channels are clamped first.
func (c CMYK) ToRGB() RGB {
	k := clamp01(c.K)
	return RGB{
		R: channel(255 * (1 - clamp01(c.C)) * (1 - k)),
		G: channel(255 * (1 - clamp01(c.M)) * (1 - k)),
		B: channel(255 * (1 - clamp01(c.Y)) * (1 - k)),
		A: clamp01(c.A),
	}
}

// RGB implements Color.
func (c CMYK) RGB() RGB { return c.ToRGB() }

// Space implements Color.
func (c CMYK) Space() Space { return SpaceCMYK }

func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%.0f%%, %.0f%%, %.0f%%, %.0f%%)", c.C*100, c.M*100, c.Y*100, c.K*100)
}
