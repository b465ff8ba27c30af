package puzzle

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/colormix/internal/color"
)

func TestCuratedLevelsSolvable(t *testing.T) {
	for _, typ := range Types() {
		for _, lvl := range curated[typ] {
			res := lvl.Evaluate(lvl.Solution())
			if !res.Passed {
				t.Errorf("%v level %d %q: solution scores %.3f, threshold %.2f",
					typ, lvl.Number, lvl.Title, res.Similarity, lvl.Threshold)
			}
		}
	}
}

func TestCuratedCounts(t *testing.T) {
	if got := ColorMatching.CuratedCount(); got != 10 {
		t.Errorf("color_matching curated levels = %d, want 10", got)
	}
	if got := LightMixing.CuratedCount(); got != 5 {
		t.Errorf("light_mixing curated levels = %d, want 5", got)
	}
}

func TestCuratedLightMixingUsesAdditive(t *testing.T) {
	lvl := curated[LightMixing][0]
	if lvl.MixMode() != color.Additive {
		t.Fatalf("MixMode = %v, want additive", lvl.MixMode())
	}
	// Red and green light make a dark yellow.
	got := lvl.Evaluate([]color.RGB{color.Red, color.Green}).Color
	if want := color.New(128, 128, 0); got != want {
		t.Errorf("mix = %v, want %v", got, want)
	}
}

func TestLevelAccessorsReturnCopies(t *testing.T) {
	lvl := curated[ColorMatching][0]

	p := lvl.Palette()
	p[0] = color.Black
	if lvl.Palette()[0] == color.Black {
		t.Error("Palette() exposed internal slice")
	}

	s := lvl.Solution()
	s[0] = color.Black
	if lvl.Solution()[0] == color.Black {
		t.Error("Solution() exposed internal slice")
	}
}

func TestParseLevelFile(t *testing.T) {
	data := []byte(`
type: light_mixing
levels:
  - level: 2
    title: "Second"
    target: "#800080"
    palette: [red, blue, green]
    solution: [red, blue]
    max_attempts: 3
    threshold: 0.9
  - level: 1
    title: "First"
    target: "#808000"
    palette: [red, green]
    solution: [red, green]
    max_attempts: 3
    threshold: 0.9
`)

	typ, levels, err := ParseLevelFile(data)
	if err != nil {
		t.Fatalf("ParseLevelFile() error = %v", err)
	}
	if typ != LightMixing {
		t.Errorf("type = %v, want light_mixing", typ)
	}
	if len(levels) != 2 {
		t.Fatalf("len(levels) = %d, want 2", len(levels))
	}
	if levels[0].Title != "First" || levels[1].Title != "Second" {
		t.Errorf("levels not sorted by number: %q, %q", levels[0].Title, levels[1].Title)
	}
	if !levels[0].Curated() {
		t.Error("parsed level should be curated")
	}
}

func TestParseLevelFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "invalid yaml",
			data:    "type: [",
			wantErr: "yaml unmarshal",
		},
		{
			name:    "unknown type",
			data:    "type: sculpting\nlevels: []\n",
			wantErr: "sculpting",
		},
		{
			name: "gap in numbering",
			data: `type: color_matching
levels:
  - {level: 1, target: red, palette: [red, blue], solution: [red], max_attempts: 1, threshold: 0.9}
  - {level: 3, target: red, palette: [red, blue], solution: [red], max_attempts: 1, threshold: 0.9}
`,
			wantErr: "numbered",
		},
		{
			name: "solution not in palette",
			data: `type: color_matching
levels:
  - {level: 1, target: red, palette: [red, blue], solution: [yellow], max_attempts: 1, threshold: 0.9}
`,
			wantErr: "not in the palette",
		},
		{
			name: "bad color",
			data: `type: color_matching
levels:
  - {level: 1, target: "#zzz", palette: [red, blue], solution: [red], max_attempts: 1, threshold: 0.9}
`,
			wantErr: "target",
		},
		{
			name: "no attempts",
			data: `type: color_matching
levels:
  - {level: 1, target: red, palette: [red, blue], solution: [red], max_attempts: 0, threshold: 0.9}
`,
			wantErr: "max_attempts",
		},
		{
			name: "threshold out of range",
			data: `type: color_matching
levels:
  - {level: 1, target: red, palette: [red, blue], solution: [red], max_attempts: 1, threshold: 1.5}
`,
			wantErr: "threshold",
		},
		{
			name: "palette too small",
			data: `type: color_matching
levels:
  - {level: 1, target: red, palette: [red], solution: [red], max_attempts: 1, threshold: 0.9}
`,
			wantErr: "at least 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseLevelFile([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseLevelFileUnknownTypeWraps(t *testing.T) {
	_, _, err := ParseLevelFile([]byte("type: sculpting\n"))
	if !errors.Is(err, ErrUnknownPuzzleType) {
		t.Errorf("error = %v, want ErrUnknownPuzzleType", err)
	}
}

func TestLoadCuratedRejectsDuplicateType(t *testing.T) {
	file := []byte(`type: light_mixing
levels:
  - {level: 1, target: "#808000", palette: [red, green], solution: [red, green], max_attempts: 2, threshold: 0.9}
`)
	fsys := fstest.MapFS{
		"levels/a.yaml": {Data: file},
		"levels/b.yaml": {Data: file},
	}

	_, err := loadCurated(fsys)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("loadCurated() error = %v, want duplicate error", err)
	}
}
