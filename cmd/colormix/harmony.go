package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colormix/internal/color"
)

var (
	flagHarmonyCount    int
	flagHarmonyInterval float64
)

var harmonyCmd = &cobra.Command{
	Use:   "harmony <scheme> <color>",
	Short: "Show a color harmony",
	Long: `Derive related colors from a base color.

Schemes:
  complementary  - inverts each RGB channel
  analogous      - count colors stepping by interval degrees
  triadic        - hue + 120 and + 240
  split          - hue + 150 and + 210

Examples:
  colormix harmony complementary red
  colormix harmony analogous "#3080c0" --count 5 --interval 15`,
	Args: cobra.ExactArgs(2),
	RunE: runHarmony,
}

func init() {
	harmonyCmd.Flags().IntVar(&flagHarmonyCount, "count", color.DefaultAnalogousCount, "Number of analogous colors")
	harmonyCmd.Flags().Float64Var(&flagHarmonyInterval, "interval", color.DefaultAnalogousInterval, "Degrees between analogous colors")
}

func runHarmony(cmd *cobra.Command, args []string) error {
	base, err := color.Parse(args[1])
	if err != nil {
		return err
	}

	var (
		title  string
		colors []color.RGB
	)
	switch strings.ToLower(args[0]) {
	case "complementary", "complement":
		title, colors = "Complementary", []color.RGB{color.Complementary(base)}
	case "analogous":
		title, colors = "Analogous", color.Analogous(base, flagHarmonyCount, flagHarmonyInterval)
	case "triadic":
		title, colors = "Triadic", color.Triadic(base)
	case "split", "split-complementary":
		title, colors = "Split Complementary", color.SplitComplementary(base)
	default:
		return fmt.Errorf("unknown harmony %q (want complementary, analogous, triadic or split)", args[0])
	}

	fmt.Println(newRenderer().Colors(title, base, colors))
	return nil
}
