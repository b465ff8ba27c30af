// colormix is a developer CLI for the color-mixing puzzle library.
//
// Usage:
//
//	colormix list                        - List puzzle types
//	colormix level <type> <n>            - Generate and show a level
//	colormix mix <color>...              - Mix colors
//	colormix harmony <scheme> <color>    - Show a color harmony
//	colormix score <attempt> <target>    - Compare two colors
//	colormix convert <color> --to <space> - Convert between color spaces
//	colormix config                      - Print the effective generator config
//
// Global flags:
//
//	--seed <value>      - Session seed (0 = random based on time)
//	--config <path>     - Generator config YAML
//	--log-level <level> - debug, info, warn or error (default: warn)
//	--plain             - Plain output without borders
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colormix/internal/color"
	"github.com/vovakirdan/colormix/internal/config"
	"github.com/vovakirdan/colormix/internal/puzzle"
	"github.com/vovakirdan/colormix/internal/render"
)

var (
	// Global flags
	flagSeed     uint64
	flagConfig   string
	flagLogLevel string
	flagPlain    bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colormix",
	Short: "colormix - color mixing puzzles and color math",
	Long: `colormix generates color-mixing puzzle levels and exposes the color
math behind them: mixing, harmonies, similarity and conversions.

Available commands:
  list     - Show puzzle types
  level    - Generate a level
  mix      - Mix colors subtractively or additively
  harmony  - Complementary, analogous, triadic and split schemes
  score    - Similarity between two colors
  convert  - Convert between RGB, CMYK and HSV
  config   - Print the effective generator config

Colors are basic names (red, orange, gray...) or hex codes (#ff8000).

Examples:
  colormix list
  colormix level color_matching 12 --seed 42
  colormix mix red yellow
  colormix harmony triadic "#ff8000"
  colormix score "#f08010" orange --threshold 0.9
  colormix convert purple --to cmyk`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Session seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to generator config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Plain output without borders")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(mixCmd)
	rootCmd.AddCommand(harmonyCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "colormix",
		Level:           level,
	})
	return nil
}

// sessionSeed resolves --seed, choosing a time-based seed for 0.
func sessionSeed() uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	seed := uint64(time.Now().UnixNano())
	logger.Info("using time-based seed", "seed", seed)
	return seed
}

// loadConfig loads the generator calibration honoring --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", "path", flagConfig, "tiers", len(cfg.Tiers))
	return cfg, nil
}

// newGenerator builds a generator from the loaded config and global flags.
func newGenerator(opts ...puzzle.Option) (*puzzle.Generator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	opts = append([]puzzle.Option{
		puzzle.WithSeed(sessionSeed()),
		puzzle.WithLogger(logger),
	}, opts...)
	return puzzle.NewGenerator(cfg, opts...)
}

func newRenderer() *render.Renderer {
	if flagPlain {
		return render.New(render.PlainTheme())
	}
	return render.New(render.DefaultTheme())
}

// parseColors parses every argument as a color name or hex code.
func parseColors(args []string) ([]color.RGB, error) {
	out := make([]color.RGB, 0, len(args))
	for _, a := range args {
		c, err := color.Parse(a)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
