package puzzle

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/colormix/internal/color"
)

//go:embed levels/*.yaml
var levelFiles embed.FS

// YAMLLevelFile represents the YAML structure for a curated level file.
type YAMLLevelFile struct {
	Type   string      `yaml:"type"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single hand-authored level.
type YAMLLevel struct {
	Level       int      `yaml:"level"`
	Title       string   `yaml:"title"`
	Hint        string   `yaml:"hint"`
	Target      string   `yaml:"target"`
	Palette     []string `yaml:"palette"`
	Solution    []string `yaml:"solution"`
	MaxAttempts int      `yaml:"max_attempts"`
	Threshold   float64  `yaml:"threshold"`
}

// curated holds the hand-authored levels of each type, ordered by level number.
var curated = mustLoadCurated(levelFiles)

func mustLoadCurated(fsys fs.FS) map[Type][]Level {
	levels, err := loadCurated(fsys)
	if err != nil {
		panic(fmt.Sprintf("puzzle: embedded levels: %v", err))
	}
	return levels
}

func loadCurated(fsys fs.FS) (map[Type][]Level, error) {
	paths, err := fs.Glob(fsys, "levels/*.yaml")
	if err != nil {
		return nil, err
	}

	out := make(map[Type][]Level)
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", path, err)
		}
		t, levels, err := ParseLevelFile(data)
		if err != nil {
			return nil, fmt.Errorf("parsing file %s: %w", path, err)
		}
		if _, dup := out[t]; dup {
			return nil, fmt.Errorf("parsing file %s: duplicate levels for %s", path, t)
		}
		out[t] = levels
	}
	return out, nil
}

// ParseLevelFile parses a curated level file. Levels must be numbered
// 1..n without gaps.
func ParseLevelFile(data []byte) (Type, []Level, error) {
	var yf YAMLLevelFile
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return 0, nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	t, err := typeByID(yf.Type)
	if err != nil {
		return 0, nil, err
	}

	levels := make([]Level, 0, len(yf.Levels))
	for _, yl := range yf.Levels {
		lvl, err := yl.toLevel(t)
		if err != nil {
			return 0, nil, fmt.Errorf("level %d: %w", yl.Level, err)
		}
		levels = append(levels, lvl)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Number < levels[j].Number
	})
	for i, lvl := range levels {
		if lvl.Number != i+1 {
			return 0, nil, fmt.Errorf("levels must be numbered 1..%d, found %d at position %d", len(levels), lvl.Number, i+1)
		}
	}

	return t, levels, nil
}

func (yl YAMLLevel) toLevel(t Type) (Level, error) {
	target, err := color.Parse(yl.Target)
	if err != nil {
		return Level{}, fmt.Errorf("target: %w", err)
	}
	palette, err := parseColors(yl.Palette)
	if err != nil {
		return Level{}, fmt.Errorf("palette: %w", err)
	}
	solution, err := parseColors(yl.Solution)
	if err != nil {
		return Level{}, fmt.Errorf("solution: %w", err)
	}

	if len(palette) < 2 {
		return Level{}, fmt.Errorf("palette needs at least 2 colors, got %d", len(palette))
	}
	for _, c := range solution {
		if !slices.Contains(palette, c) {
			return Level{}, fmt.Errorf("solution color %s is not in the palette", c.Hex())
		}
	}
	if yl.MaxAttempts < 1 {
		return Level{}, fmt.Errorf("max_attempts must be >= 1, got %d", yl.MaxAttempts)
	}
	if yl.Threshold <= 0 || yl.Threshold > 1 {
		return Level{}, fmt.Errorf("threshold %.3f outside (0, 1]", yl.Threshold)
	}

	return Level{
		Type:        t,
		Number:      yl.Level,
		Title:       yl.Title,
		Hint:        yl.Hint,
		Target:      target,
		MaxAttempts: yl.MaxAttempts,
		Threshold:   yl.Threshold,
		Challenge:   Curated,
		palette:     palette,
		solution:    solution,
	}, nil
}

func parseColors(names []string) ([]color.RGB, error) {
	out := make([]color.RGB, 0, len(names))
	for _, n := range names {
		c, err := color.Parse(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// typeByID resolves a type without the registry, which is filled in init()
// after this package's variables are initialized.
func typeByID(id string) (Type, error) {
	for _, t := range Types() {
		if t.ID() == id {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownPuzzleType, id)
}
