package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colormix/internal/puzzle"
	"github.com/vovakirdan/colormix/internal/registry"
)

var (
	flagSolution bool
	flagFresh    bool
	flagCount    int
)

var levelCmd = &cobra.Command{
	Use:   "level <type> <n>",
	Short: "Generate a level",
	Long: `Generate the configuration of level n for a puzzle type.

The first levels of each type are hand-authored. Later levels are generated
from the session seed, so the same --seed always yields the same level.

Examples:
  colormix level color_matching 1
  colormix level color_matching 12 --seed 42 --solution
  colormix level light_mixing 20 --count 3`,
	Args: cobra.ExactArgs(2),
	Run:  runLevel,
}

func init() {
	levelCmd.Flags().BoolVar(&flagSolution, "solution", false, "Show a known solution")
	levelCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Vary repeated procedural levels within the session")
	levelCmd.Flags().IntVar(&flagCount, "count", 1, "Number of consecutive levels to generate")
}

func runLevel(cmd *cobra.Command, args []string) {
	typeID := args[0]

	// Check if the puzzle type exists
	if !registry.Exists(typeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle type %q\n", typeID)
		fmt.Fprintln(os.Stderr, "Run 'colormix list' to see available puzzle types.")
		os.Exit(1)
	}

	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		fmt.Fprintf(os.Stderr, "Error: level must be a positive integer, got %q\n", args[1])
		os.Exit(1)
	}

	var opts []puzzle.Option
	if flagFresh {
		opts = append(opts, puzzle.WithFreshVariety())
	}
	gen, err := newGenerator(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r := newRenderer()
	for i := range max(flagCount, 1) {
		lvl, err := gen.GenerateLevel(typeID, n+i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(r.Level(lvl, flagSolution))
	}
}
