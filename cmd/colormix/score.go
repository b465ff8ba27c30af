package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagThreshold float64

var scoreCmd = &cobra.Command{
	Use:   "score <attempt> <target>",
	Short: "Compare two colors",
	Long: `Score how close an attempt is to a target, from 0% to 100%, and
whether it clears the match threshold.

Examples:
  colormix score "#f08010" orange
  colormix score gray "#777777" --threshold 0.95`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().Float64Var(&flagThreshold, "threshold", 0.9, "Minimum similarity for a match, in (0, 1]")
}

func runScore(cmd *cobra.Command, args []string) error {
	if flagThreshold <= 0 || flagThreshold > 1 {
		return fmt.Errorf("threshold %.2f outside (0, 1]", flagThreshold)
	}
	colors, err := parseColors(args)
	if err != nil {
		return err
	}

	fmt.Println(newRenderer().Score(colors[0], colors[1], flagThreshold))
	return nil
}
