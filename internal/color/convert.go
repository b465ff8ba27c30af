package color

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSpace is returned by ParseSpace for unrecognized names.
var ErrUnknownSpace = errors.New("color: unknown color space")

// Space identifies a color representation.
type Space uint8

const (
	SpaceRGB Space = iota
	SpaceCMYK
	SpaceHSV
)

// String returns the lowercase name of the space.
func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "rgb"
	case SpaceCMYK:
		return "cmyk"
	case SpaceHSV:
		return "hsv"
	default:
		return "unknown"
	}
}

// ParseSpace converts "rgb", "cmyk" or "hsv" to a Space.
func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb":
		return SpaceRGB, nil
	case "cmyk":
		return SpaceCMYK, nil
	case "hsv":
		return SpaceHSV, nil
	default:
		return SpaceRGB, fmt.Errorf("%w: %q", ErrUnknownSpace, s)
	}
}

// Color is implemented by RGB, CMYK and HSV.
type Color interface {
	RGB() RGB
	Space() Space
}

// Convert re-expresses c in the target space, going through RGB.
// Converting to the space c is already in returns c unchanged.
func Convert(c Color, to Space) Color {
	if c.Space() == to {
		return c
	}
	rgb := c.RGB()
	switch to {
	case SpaceCMYK:
		return ToCMYK(rgb)
	case SpaceHSV:
		return ToHSV(rgb)
	default:
		return rgb
	}
}
