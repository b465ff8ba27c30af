package color

import (
	"errors"
	"math"
	"testing"
)

func TestMixFallbacks(t *testing.T) {
	c := NewRGBA(12, 34, 56, 0.7)

	if got := MixSubtractive(nil); got != White {
		t.Errorf("MixSubtractive(nil) = %v, want white", got)
	}
	if got := MixAdditive(nil); got != Black {
		t.Errorf("MixAdditive(nil) = %v, want black", got)
	}
	if got := MixSubtractive([]RGB{c}); got != c {
		t.Errorf("MixSubtractive single = %v, want %v", got, c)
	}
	if got := MixAdditive([]RGB{c}); got != c {
		t.Errorf("MixAdditive single = %v, want %v", got, c)
	}
}

func TestMixSubtractive(t *testing.T) {
	tests := []struct {
		name   string
		colors []RGB
		want   RGB
	}{
		{"red and yellow make orange", []RGB{Red, Yellow}, New(255, 128, 0)},
		{"red and blue make purple", []RGB{Red, Blue}, New(128, 0, 128)},
		{"cyan and yellow make green", []RGB{Cyan, Yellow}, New(128, 255, 128)},
		{"black and white make gray", []RGB{Black, White}, New(128, 128, 128)},
		{"red yellow black make brown", []RGB{Red, Yellow, Black}, New(170, 113, 57)},
		{"duplicates weigh in", []RGB{Red, Yellow, Yellow}, New(255, 170, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MixSubtractive(tt.colors); got != tt.want {
				t.Errorf("MixSubtractive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMixAdditive(t *testing.T) {
	tests := []struct {
		name   string
		colors []RGB
		want   RGB
	}{
		{"red and green", []RGB{Red, Green}, New(128, 128, 0)},
		{"primaries", []RGB{Red, Green, Blue}, New(85, 85, 85)},
		{"white and black", []RGB{White, Black}, New(128, 128, 128)},
		{"opacity averages", []RGB{NewRGBA(0, 0, 0, 1), NewRGBA(0, 0, 0, 0)}, NewRGBA(0, 0, 0, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MixAdditive(tt.colors); got != tt.want {
				t.Errorf("MixAdditive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMixRedYellowIsOrange(t *testing.T) {
	got := MixSubtractive([]RGB{Red, Yellow})

	hue := ToHSV(got).H
	if hue < 20 || hue > 40 {
		t.Errorf("hue of red+yellow = %.1f, want orange band", hue)
	}
	if s := Similarity(got, New(255, 128, 0)); s < 0.85 {
		t.Errorf("similarity to reference orange = %.3f", s)
	}
}

func TestMixOrderIndependent(t *testing.T) {
	colors := []RGB{
		New(200, 30, 90),
		NewRGBA(10, 220, 45, 0.4),
		New(77, 77, 200),
		Black,
		New(255, 250, 3),
	}

	perms := permutations(colors)
	wantSub := MixSubtractive(colors)
	wantAdd := MixAdditive(colors)

	for _, p := range perms {
		if got := MixSubtractive(p); got != wantSub {
			t.Fatalf("MixSubtractive(%v) = %v, want %v", p, got, wantSub)
		}
		if got := MixAdditive(p); got != wantAdd {
			t.Fatalf("MixAdditive(%v) = %v, want %v", p, got, wantAdd)
		}
	}
}

func TestMixDoesNotMutateInput(t *testing.T) {
	colors := []RGB{Yellow, Red, Blue}
	MixSubtractive(colors)
	MixAdditive(colors)
	if colors[0] != Yellow || colors[1] != Red || colors[2] != Blue {
		t.Errorf("input reordered: %v", colors)
	}
}

func TestMixModes(t *testing.T) {
	pair := []RGB{Red, Green}
	if got := Mix(Additive, pair); got != MixAdditive(pair) {
		t.Errorf("Mix(Additive) = %v", got)
	}
	if got := Mix(Subtractive, pair); got != MixSubtractive(pair) {
		t.Errorf("Mix(Subtractive) = %v", got)
	}

	for in, want := range map[string]MixMode{"pigment": Subtractive, "Light": Additive, "additive": Additive} {
		got, err := ParseMixMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMixMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMixMode("multiply"); !errors.Is(err, ErrUnknownMixMode) {
		t.Errorf("ParseMixMode(multiply) error = %v", err)
	}
}

func TestSimilarity(t *testing.T) {
	for _, c := range []RGB{Black, White, Red, New(13, 200, 77)} {
		if s := Similarity(c, c); s != 1 {
			t.Errorf("Similarity(%v, itself) = %v", c, s)
		}
	}

	if s := Similarity(White, Black); math.Abs(s) > 1e-9 {
		t.Errorf("Similarity(white, black) = %v, want ~0", s)
	}

	// Green differences count more than blue ones.
	green := Similarity(Black, New(0, 100, 0))
	blue := Similarity(Black, New(0, 0, 100))
	if green >= blue {
		t.Errorf("green delta %.3f should score lower than blue delta %.3f", green, blue)
	}

	if Similarity(Red, Cyan) != Similarity(Cyan, Red) {
		t.Error("Similarity is not symmetric")
	}
}

func TestMatchesAndAccuracy(t *testing.T) {
	if !Matches(Orange, Orange, 1) {
		t.Error("identical colors should match at threshold 1")
	}
	if Matches(White, Black, 0.1) {
		t.Error("white should not match black")
	}
	if got := Accuracy(0.876); got != 88 {
		t.Errorf("Accuracy(0.876) = %d", got)
	}
	if got := Accuracy(1.4); got != 100 {
		t.Errorf("Accuracy(1.4) = %d", got)
	}
}

func permutations(in []RGB) [][]RGB {
	if len(in) <= 1 {
		return [][]RGB{append([]RGB(nil), in...)}
	}
	var out [][]RGB
	for i := range in {
		rest := make([]RGB, 0, len(in)-1)
		rest = append(rest, in[:i]...)
		rest = append(rest, in[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]RGB{in[i]}, p...))
		}
	}
	return out
}
