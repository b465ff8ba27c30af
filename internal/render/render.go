package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/colormix/internal/color"
	"github.com/vovakirdan/colormix/internal/puzzle"
)

// Renderer turns colors, mixes and levels into styled strings.
type Renderer struct {
	theme Theme
}

// New creates a renderer with the given theme.
func New(theme Theme) *Renderer {
	if theme.SwatchWidth < 1 {
		theme.SwatchWidth = 1
	}
	return &Renderer{theme: theme}
}

// Swatch renders a solid block of c.
func (r *Renderer) Swatch(c color.RGB) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(contrast(c)).
		Render(strings.Repeat(" ", r.theme.SwatchWidth))
}

// Chip renders a swatch followed by the hex code and the color's name, if any.
func (r *Renderer) Chip(c color.RGB) string {
	s := r.Swatch(c) + " " + r.theme.Value.Render(c.Hex())
	if name, ok := color.Name(c); ok {
		s += " " + r.theme.Muted.Render(name)
	}
	return s
}

// Palette renders one numbered chip per line.
func (r *Renderer) Palette(colors []color.RGB) string {
	lines := make([]string, len(colors))
	for i, c := range colors {
		lines[i] = fmt.Sprintf("%s %s", r.theme.Label.Render(fmt.Sprintf("%2d.", i+1)), r.Chip(c))
	}
	return strings.Join(lines, "\n")
}

// Level renders a level card. The solution is only shown when requested.
func (r *Renderer) Level(lvl puzzle.Level, showSolution bool) string {
	var sb strings.Builder

	sb.WriteString(r.theme.Title.Render(lvl.Title))
	sb.WriteString("\n")
	sb.WriteString(r.field("Type", fmt.Sprintf("%s (%s mixing)", lvl.Type.Title(), lvl.MixMode())))
	sb.WriteString(r.field("Challenge", lvl.Challenge.String()))
	sb.WriteString(r.field("Tier", fmt.Sprintf("%d", lvl.Tier)))
	sb.WriteString(r.field("Attempts", fmt.Sprintf("%d", lvl.MaxAttempts)))
	sb.WriteString(r.field("Match", fmt.Sprintf("%d%% or better", color.Accuracy(lvl.Threshold))))
	sb.WriteString(r.field("Target", r.Chip(lvl.Target)))
	sb.WriteString("\n")
	sb.WriteString(r.theme.Label.Render("Palette"))
	sb.WriteString("\n")
	sb.WriteString(r.Palette(lvl.Palette()))

	if lvl.Hint != "" {
		sb.WriteString("\n\n")
		sb.WriteString(r.theme.Hint.Render(lvl.Hint))
	}

	if showSolution {
		res := lvl.Evaluate(lvl.Solution())
		sb.WriteString("\n\n")
		sb.WriteString(r.field("Solution", r.sequence(lvl.Solution())))
		sb.WriteString(r.field("Result", fmt.Sprintf("%s %s", r.Chip(res.Color), r.verdict(res.Similarity, res.Passed))))
	}

	return r.theme.Box.Render(strings.TrimRight(sb.String(), "\n"))
}

// Mix renders inputs and their combined result.
func (r *Renderer) Mix(mode color.MixMode, inputs []color.RGB, result color.RGB) string {
	var sb strings.Builder
	sb.WriteString(r.field("Mode", mode.String()))
	sb.WriteString(r.field("Inputs", r.sequence(inputs)))
	sb.WriteString(r.field("Result", r.Chip(result)))
	return strings.TrimRight(sb.String(), "\n")
}

// Score renders a comparison between an attempt and a target.
func (r *Renderer) Score(attempt, target color.RGB, threshold float64) string {
	sim := color.Similarity(attempt, target)
	var sb strings.Builder
	sb.WriteString(r.field("Attempt", r.Chip(attempt)))
	sb.WriteString(r.field("Target", r.Chip(target)))
	sb.WriteString(r.field("Score", r.verdict(sim, sim >= threshold)))
	return strings.TrimRight(sb.String(), "\n")
}

// Colors renders a titled list of chips, such as a harmony.
func (r *Renderer) Colors(title string, base color.RGB, colors []color.RGB) string {
	var sb strings.Builder
	sb.WriteString(r.theme.Title.Render(title))
	sb.WriteString("\n")
	sb.WriteString(r.field("Base", r.Chip(base)))
	sb.WriteString(r.Palette(colors))
	return sb.String()
}

// Converted renders a color in another space next to its device color.
func (r *Renderer) Converted(c color.Color) string {
	return fmt.Sprintf("%s %s", r.Swatch(c.RGB()), r.theme.Value.Render(fmt.Sprint(c)))
}

func (r *Renderer) field(label, value string) string {
	return fmt.Sprintf("%s %s\n", r.theme.Label.Render(fmt.Sprintf("%-10s", label+":")), value)
}

func (r *Renderer) sequence(colors []color.RGB) string {
	if len(colors) == 0 {
		return r.theme.Muted.Render("(none)")
	}
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = r.Chip(c)
	}
	return strings.Join(parts, r.theme.Muted.Render(r.theme.Separator))
}

func (r *Renderer) verdict(sim float64, passed bool) string {
	pct := fmt.Sprintf("%d%%", color.Accuracy(sim))
	if passed {
		return r.theme.Pass.Render(pct + " match")
	}
	return r.theme.Fail.Render(pct + " miss")
}

// contrast picks black or white text for legibility on c.
func contrast(c color.RGB) lipgloss.Color {
	l, _, _ := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Lab()
	if l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
