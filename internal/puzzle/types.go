// Package puzzle generates color-mixing levels: hand-authored levels for the
// opening of each puzzle type and procedural levels beyond them.
// This package is UI-agnostic and deterministic for a given seed.
package puzzle

import (
	"fmt"

	"github.com/vovakirdan/colormix/internal/color"
	"github.com/vovakirdan/colormix/internal/registry"
)

// ErrUnknownPuzzleType is returned when a puzzle-type name is not recognized.
var ErrUnknownPuzzleType = registry.ErrUnknownType

// Type is a puzzle mode.
type Type uint8

const (
	// ColorMatching mixes pigments to match a target.
	ColorMatching Type = iota
	// LightMixing mixes light sources to match a target.
	LightMixing
)

// Types returns every puzzle type.
func Types() []Type {
	return []Type{ColorMatching, LightMixing}
}

func init() {
	for _, t := range Types() {
		registry.Register(t)
	}
}

// ParseType resolves an external puzzle-type name.
// The error wraps ErrUnknownPuzzleType for names that are not registered.
func ParseType(name string) (Type, error) {
	m, err := registry.Lookup(name)
	if err != nil {
		return 0, err
	}
	t, ok := m.(Type)
	if !ok {
		return 0, fmt.Errorf("%w %q: not a puzzle type", ErrUnknownPuzzleType, name)
	}
	return t, nil
}

// ID implements registry.Mode.
func (t Type) ID() string {
	switch t {
	case ColorMatching:
		return "color_matching"
	case LightMixing:
		return "light_mixing"
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// String returns the external identifier.
func (t Type) String() string { return t.ID() }

// Title implements registry.Mode.
func (t Type) Title() string {
	switch t {
	case ColorMatching:
		return "Color Matching"
	case LightMixing:
		return "Light Mixing"
	}
	return "Unknown"
}

// Description implements registry.Mode.
func (t Type) Description() string {
	switch t {
	case ColorMatching:
		return "Mix paint droplets to match the target color."
	case LightMixing:
		return "Blend colored lights to match the target color."
	}
	return ""
}

// MixMode implements registry.Mode.
func (t Type) MixMode() color.MixMode {
	switch t {
	case ColorMatching:
		return color.Subtractive
	case LightMixing:
		return color.Additive
	}
	return color.Subtractive
}

// CuratedCount implements registry.Mode.
func (t Type) CuratedCount() int {
	return len(curated[t])
}

// Challenge classifies how a level's target was produced.
type Challenge uint8

const (
	Curated Challenge = iota
	SubtleShade
	Vibrant
	ComplexMix
)

func (c Challenge) String() string {
	switch c {
	case Curated:
		return "curated"
	case SubtleShade:
		return "subtle_shade"
	case Vibrant:
		return "vibrant"
	case ComplexMix:
		return "complex_mix"
	default:
		return "unknown"
	}
}

// challengeFor picks the procedural challenge by level number.
func challengeFor(level int) Challenge {
	switch level % 3 {
	case 0:
		return SubtleShade
	case 1:
		return Vibrant
	default:
		return ComplexMix
	}
}
