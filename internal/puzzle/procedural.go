package puzzle

import (
	"fmt"

	"github.com/vovakirdan/colormix/internal/color"
	"github.com/vovakirdan/colormix/internal/config"
)

// ComplexKind is the flavour of a ComplexMix target.
type ComplexKind uint8

const (
	Muted ComplexKind = iota
	Earth
	Metallic
)

func (k ComplexKind) String() string {
	switch k {
	case Muted:
		return "muted"
	case Earth:
		return "earth"
	case Metallic:
		return "metallic"
	default:
		return "unknown"
	}
}

// subtleBases are the starting points for SubtleShade targets.
var subtleBases = []color.RGB{
	color.Red, color.Orange, color.Yellow, color.Green,
	color.Cyan, color.Blue, color.Purple, color.Magenta,
}

// target is a procedural target with its display text.
type target struct {
	color color.RGB
	title string
	hint  string
}

func subtleShadeTarget(rng *SimpleRNG, cfg config.SubtleShadeConfig) target {
	base := subtleBases[rng.Intn(len(subtleBases))]
	hsv := color.ToHSV(base)
	hsv.H += rng.Range(-cfg.HueJitter, cfg.HueJitter)
	hsv.S += rng.Range(-cfg.SaturationJitter, cfg.SaturationJitter)
	hsv.V += rng.Range(-cfg.ValueJitter, cfg.ValueJitter)
	hsv.H = color.NormalizeHue(hsv.H)

	return target{
		color: hsv.ToRGB(),
		title: "Subtle Shade",
		hint:  "Close is not enough here. Adjust with a single extra drop at a time.",
	}
}

func vibrantTarget(rng *SimpleRNG, cfg config.VibrantConfig) target {
	hsv := color.HSV{
		H: rng.Range(0, 360),
		S: rng.Range(cfg.MinSaturation, 1),
		V: rng.Range(cfg.MinValue, 1),
		A: 1,
	}
	return target{
		color: hsv.ToRGB(),
		title: "Vibrant Color",
		hint:  "Bright colors come from pure ingredients. Keep dark colors out.",
	}
}

func complexTarget(rng *SimpleRNG, cfg config.MutedConfig) (target, ComplexKind) {
	kind := ComplexKind(rng.Intn(3))

	switch kind {
	case Earth:
		c := color.New(
			uint8(rng.IntRange(100, 180)),
			uint8(rng.IntRange(60, 120)),
			uint8(rng.IntRange(20, 70)),
		)
		return target{
			color: c,
			title: "Earth Tone",
			hint:  "Earth tones start from orange and a touch of black.",
		}, kind

	case Metallic:
		base := rng.IntRange(140, 200)
		c := color.New(
			uint8(base+rng.IntRange(0, 20)),
			uint8(base+rng.IntRange(0, 15)),
			uint8(base+rng.IntRange(0, 25)),
		)
		return target{
			color: c,
			title: "Metallic Tone",
			hint:  "Metals are mostly gray with a hint of color.",
		}, kind

	default:
		hsv := color.HSV{
			H: rng.Range(0, 360),
			S: rng.Range(cfg.MinSaturation, cfg.MaxSaturation),
			V: rng.Range(cfg.MinValue, cfg.MaxValue),
			A: 1,
		}
		return target{
			color: hsv.ToRGB(),
			title: "Muted Tone",
			hint:  "Tone it down: gray, brown or the complement will dull a color.",
		}, Muted
	}
}

// proceduralTarget dispatches on challenge. Curated never reaches here.
func proceduralTarget(ch Challenge, rng *SimpleRNG, cfg config.ProceduralConfig) target {
	switch ch {
	case SubtleShade:
		return subtleShadeTarget(rng, cfg.SubtleShade)
	case Vibrant:
		return vibrantTarget(rng, cfg.Vibrant)
	case ComplexMix:
		t, _ := complexTarget(rng, cfg.Muted)
		return t
	}
	panic(fmt.Sprintf("puzzle: no procedural target for challenge %v", ch))
}
