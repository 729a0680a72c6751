package components

import (
	"fmt"
	"strings"

	"stucash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a simple progress bar with percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	// Color gradient based on progress
	var barColor lipgloss.Color
	switch {
	case pct >= 0.8:
		barColor = t.AccentBright
	case pct >= 0.5:
		barColor = t.Accent
	default:
		barColor = t.Cyan
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", pct*100))
}

// ColorForShare returns green/yellow/red based on an expense's share of income.
// Thresholds match the pressure flag bands.
func ColorForShare(share float64) string {
	t := theme.Active
	switch {
	case share > 0.35:
		return string(t.Red)
	case share > 0.25:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// ColorForScore returns the color matching a health score band.
func ColorForScore(score int) string {
	t := theme.Active
	switch {
	case score >= 80:
		return string(t.Green)
	case score >= 60:
		return string(t.Blue)
	case score >= 40:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// ScoreBar renders a labeled health score bar out of 100.
func ScoreBar(label string, score, labelW, barWidth int) string {
	t := theme.Active

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	pct := float64(score) / 100

	bar := progress.New(
		progress.WithSolidFill(ColorForScore(score)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	scoreStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForScore(score))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		scoreStyle.Render(fmt.Sprintf("%3d/100", score))
}

// ShareBar renders a labeled bar showing an expense's share of income.
func ShareBar(label string, share float64, labelW, barWidth int) string {
	t := theme.Active

	pct := share
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForShare(share)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForShare(share))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", share*100))
}
