package puzzle

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colormix/internal/color"
	"github.com/vovakirdan/colormix/internal/config"
)

// Generator produces levels. Output is a pure function of (seed, type, level)
// unless fresh variety is enabled. A Generator is safe for concurrent use.
type Generator struct {
	cfg        config.Config
	difficulty *config.Difficulty
	seed       uint64
	logger     *log.Logger

	fresh bool

	// Non-nil only with WithFreshVariety; guarded by mu.
	mu      sync.Mutex
	session *SimpleRNG
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the session seed. The default seed is 0.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.seed = seed }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithFreshVariety makes repeated requests for the same procedural level
// return different targets. The sequence is still reproducible for a given
// seed and call order.
func WithFreshVariety() Option {
	return func(g *Generator) { g.fresh = true }
}

// NewGenerator creates a generator over a validated calibration.
func NewGenerator(cfg config.Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}

	g := &Generator{
		cfg:        cfg,
		difficulty: config.NewDifficulty(cfg),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.fresh {
		g.session = NewRNG(g.seed ^ 0x5DEECE66D)
	}
	return g, nil
}

// GenerateLevel resolves an external puzzle-type name and generates a level.
// Unknown names fail with an error wrapping ErrUnknownPuzzleType.
func (g *Generator) GenerateLevel(name string, level int) (Level, error) {
	t, err := ParseType(name)
	if err != nil {
		return Level{}, err
	}
	return g.Generate(t, level), nil
}

// Generate returns the level configuration for t. Levels below 1 are treated
// as level 1. Levels past the curated set are generated procedurally.
func (g *Generator) Generate(t Type, level int) Level {
	if level < 1 {
		level = 1
	}

	if set := curated[t]; level <= len(set) {
		lvl := set[level-1]
		lvl.Tier = g.difficulty.Tier(level)
		return lvl
	}

	return g.procedural(t, level)
}

func (g *Generator) procedural(t Type, level int) Level {
	difficulty := level - t.CuratedCount()
	challenge := challengeFor(level)
	tier := g.difficulty.Tier(level)
	mode := t.MixMode()
	rng := NewRNG(g.levelSeed(t, level))

	var rule config.ThresholdRule
	switch challenge {
	case SubtleShade:
		rule = g.cfg.Thresholds.SubtleShade
	case Vibrant:
		rule = g.cfg.Thresholds.Vibrant
	case ComplexMix:
		rule = g.cfg.Thresholds.ComplexMix
	}
	threshold := g.difficulty.Threshold(rule, level, difficulty)
	size := g.difficulty.PaletteSize(level)

	var (
		best     Level
		bestSim  = -1.0
		attempts = g.cfg.Generator.MaxRetries + 1
	)

	for try := 0; try < attempts; try++ {
		tgt := proceduralTarget(challenge, rng, g.cfg.Procedural)
		palette := selectPalette(tgt.color, mode, size, g.cfg.Generator.MaxPaletteSize, rng)
		solution, sim := Solve(palette, tgt.color, mode, g.cfg.Generator.SolverMaxParts)

		lvl := Level{
			Type:        t,
			Number:      level,
			Title:       fmt.Sprintf("Level %d: %s", level, tgt.title),
			Hint:        tgt.hint,
			Target:      tgt.color,
			MaxAttempts: g.difficulty.MaxAttempts(level),
			Threshold:   threshold,
			Tier:        tier,
			Challenge:   challenge,
			palette:     palette,
			solution:    solution,
		}

		if sim > bestSim {
			best, bestSim = lvl, sim
		}
		if sim >= threshold {
			break
		}
		g.logger.Debug("target not reachable, re-rolling",
			"type", t, "level", level, "target", tgt.color.Hex(), "best", sim, "threshold", threshold)
	}

	// Out of retries: the closest reachable mix becomes the target.
	if bestSim < threshold {
		snapped := color.Mix(mode, best.solution)
		g.logger.Debug("no reachable target found, snapping to best mix",
			"type", t, "level", level, "target", best.Target.Hex(), "snapped", snapped.Hex(),
			"best", bestSim, "threshold", threshold)
		best.Target = snapped
		bestSim = color.Similarity(snapped, snapped)
	}

	g.logger.Debug("generated level",
		"type", t,
		"level", level,
		"challenge", challenge,
		"tier", tier,
		"target", best.Target.Hex(),
		"palette", len(best.palette),
		"similarity", bestSim,
	)

	return best
}

func (g *Generator) levelSeed(t Type, level int) uint64 {
	seed := deriveSeed(g.seed, t, level)
	if g.session != nil {
		g.mu.Lock()
		seed ^= g.session.Next()
		g.mu.Unlock()
	}
	return seed
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// Default returns a shared generator over config.Default() with seed 0.
func Default() *Generator {
	defaultOnce.Do(func() {
		g, err := NewGenerator(config.Default())
		if err != nil {
			panic(fmt.Sprintf("puzzle: default config invalid: %v", err))
		}
		defaultGen = g
	})
	return defaultGen
}

// GenerateLevel generates a level with the default generator.
func GenerateLevel(name string, level int) (Level, error) {
	return Default().GenerateLevel(name, level)
}
