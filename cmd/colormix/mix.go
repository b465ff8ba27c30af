package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colormix/internal/color"
)

var flagMode string

var mixCmd = &cobra.Command{
	Use:   "mix <color>...",
	Short: "Mix colors",
	Long: `Mix colors as pigments (subtractive, the default) or as light (additive).
Repeat a color to add more of it.

Examples:
  colormix mix red yellow
  colormix mix red yellow yellow
  colormix mix --mode additive red green`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMix,
}

func init() {
	mixCmd.Flags().StringVar(&flagMode, "mode", "subtractive", "Mix mode: subtractive (pigment) or additive (light)")
}

func runMix(cmd *cobra.Command, args []string) error {
	mode, err := color.ParseMixMode(flagMode)
	if err != nil {
		return err
	}
	colors, err := parseColors(args)
	if err != nil {
		return err
	}

	result := color.Mix(mode, colors)
	logger.Debug("mixed", "mode", mode, "inputs", len(colors), "result", result.Hex())

	fmt.Println(newRenderer().Mix(mode, colors, result))
	return nil
}
