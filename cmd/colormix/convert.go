package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colormix/internal/color"
)

var flagTo string

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color between spaces",
	Long: `Convert a color to RGB, CMYK or HSV. Without --to, all three are shown.

Examples:
  colormix convert purple --to cmyk
  colormix convert "#3080c0"`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&flagTo, "to", "", "Target space: rgb, cmyk or hsv")
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := color.Parse(args[0])
	if err != nil {
		return err
	}

	spaces := []color.Space{color.SpaceRGB, color.SpaceCMYK, color.SpaceHSV}
	if flagTo != "" {
		s, err := color.ParseSpace(flagTo)
		if err != nil {
			return err
		}
		spaces = []color.Space{s}
	}

	r := newRenderer()
	for _, s := range spaces {
		fmt.Println(r.Converted(color.Convert(c, s)))
	}
	return nil
}
