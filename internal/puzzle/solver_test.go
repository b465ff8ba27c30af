package puzzle

import (
	"slices"
	"testing"

	"github.com/vovakirdan/colormix/internal/color"
	"github.com/vovakirdan/colormix/internal/config"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		name    string
		palette []color.RGB
		target  color.RGB
		mode    color.MixMode
		parts   int
		want    []color.RGB
	}{
		{
			name:    "single color",
			palette: []color.RGB{color.Red, color.Blue},
			target:  color.Blue,
			mode:    color.Subtractive,
			parts:   4,
			want:    []color.RGB{color.Blue},
		},
		{
			name:    "orange from red and yellow",
			palette: []color.RGB{color.Red, color.Yellow, color.Blue},
			target:  color.Orange,
			mode:    color.Subtractive,
			parts:   4,
			want:    []color.RGB{color.Red, color.Yellow},
		},
		{
			name:    "repeated drops",
			palette: []color.RGB{color.Red, color.Yellow},
			target:  color.New(255, 170, 0),
			mode:    color.Subtractive,
			parts:   4,
			want:    []color.RGB{color.Red, color.Yellow, color.Yellow},
		},
		{
			name:    "additive olive",
			palette: []color.RGB{color.Red, color.Green, color.Blue},
			target:  color.New(128, 128, 0),
			mode:    color.Additive,
			parts:   3,
			want:    []color.RGB{color.Red, color.Green},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, sim := Solve(tt.palette, tt.target, tt.mode, tt.parts)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Solve() = %v, want %v", got, tt.want)
			}
			if sim != 1 {
				t.Errorf("similarity = %v, want 1", sim)
			}
		})
	}
}

func TestSolveRespectsMaxParts(t *testing.T) {
	got, sim := Solve([]color.RGB{color.Red, color.Yellow}, color.New(255, 170, 0), color.Subtractive, 2)
	if len(got) > 2 {
		t.Errorf("Solve() used %d drops, limit 2", len(got))
	}
	if sim >= 1 {
		t.Errorf("similarity = %v, exact match needs three drops", sim)
	}
}

func TestSolveEmpty(t *testing.T) {
	got, _ := Solve(nil, color.Red, color.Subtractive, 4)
	if got != nil {
		t.Errorf("Solve(nil) = %v, want nil", got)
	}
	got, _ = Solve([]color.RGB{color.Red}, color.Red, color.Subtractive, 0)
	if got != nil {
		t.Errorf("Solve(maxParts=0) = %v, want nil", got)
	}
}

func TestSimpleRNGDeterministic(t *testing.T) {
	a, b := NewRNG(123), NewRNG(123)
	for range 100 {
		if a.Next() != b.Next() {
			t.Fatal("same seed diverged")
		}
	}
}

func TestSimpleRNGZeroSeed(t *testing.T) {
	if NewRNG(0).Next() == 0 {
		t.Error("zero seed produced a stuck generator")
	}
}

func TestSimpleRNGRanges(t *testing.T) {
	rng := NewRNG(2024)
	for range 1000 {
		if f := rng.Float(); f < 0 || f >= 1 {
			t.Fatalf("Float() = %v outside [0, 1)", f)
		}
		if n := rng.Intn(7); n < 0 || n >= 7 {
			t.Fatalf("Intn(7) = %d", n)
		}
		if r := rng.Range(-15, 15); r < -15 || r >= 15 {
			t.Fatalf("Range(-15, 15) = %v", r)
		}
		if n := rng.IntRange(100, 180); n < 100 || n > 180 {
			t.Fatalf("IntRange(100, 180) = %d", n)
		}
	}

	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
	if rng.Range(5, 5) != 5 {
		t.Error("empty Range should return lo")
	}
	if rng.IntRange(9, 3) != 9 {
		t.Error("inverted IntRange should return lo")
	}
}

func TestSimpleRNGShuffleIsPermutation(t *testing.T) {
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7}
	NewRNG(17).Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })

	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	if !slices.Equal(sorted, []int{0, 1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("Shuffle lost elements: %v", xs)
	}
}

func TestDeriveSeedDistinct(t *testing.T) {
	seen := make(map[uint64]bool)
	for _, typ := range Types() {
		for level := 1; level <= 50; level++ {
			s := deriveSeed(1, typ, level)
			if seen[s] {
				t.Fatalf("deriveSeed collision at %v level %d", typ, level)
			}
			seen[s] = true
		}
	}
	if deriveSeed(1, ColorMatching, 5) == deriveSeed(2, ColorMatching, 5) {
		t.Error("session seed ignored")
	}
}

func TestComplexTargetKinds(t *testing.T) {
	rng := NewRNG(5)
	seen := make(map[ComplexKind]bool)
	for range 60 {
		tgt, kind := complexTarget(rng, config.Default().Procedural.Muted)
		seen[kind] = true
		if tgt.title == "" {
			t.Fatalf("%v target has no title", kind)
		}
		if kind == Metallic {
			hsv := color.ToHSV(tgt.color)
			if hsv.S > 0.25 {
				t.Errorf("metallic %v too saturated (%.2f)", tgt.color, hsv.S)
			}
		}
	}
	for _, k := range []ComplexKind{Muted, Earth, Metallic} {
		if !seen[k] {
			t.Errorf("kind %v never produced", k)
		}
	}
}
