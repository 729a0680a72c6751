package tui

import (
	"fmt"
	"strings"

	"stucash/internal/cli"
	"stucash/internal/tui/components"
	"stucash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCompareTab(cw, contentH int) string {
	t := theme.Active

	if len(a.stats) == 0 {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return "\n" + hintStyle.Render("  No cities to compare.")
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	negStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	posStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var body strings.Builder
	fmt.Fprintf(&body, "%s\n",
		labelStyle.Render(fmt.Sprintf("  %-16s %6s %10s %10s %10s %8s %6s",
			"City", "Months", "Income", "Expenses", "Balance", "Deficit", "Score")))

	// Keep the table inside the content area; the chart needs the rest.
	maxRows := contentH - 16
	if maxRows < 4 {
		maxRows = 4
	}
	rows := a.stats
	offset := 0
	if a.compareCursor >= maxRows {
		offset = a.compareCursor - maxRows + 1
	}
	if offset+maxRows > len(rows) {
		offset = len(rows) - maxRows
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + maxRows
	if end > len(rows) {
		end = len(rows)
	}

	for i := offset; i < end; i++ {
		cs := rows[i]
		balStyle := posStyle
		if cs.AvgBalance < 0 {
			balStyle = negStyle
		}

		line := fmt.Sprintf("%-16s %6d %10s %10s %10s %7.0f%% %6d",
			truncStr(cs.City, 16), cs.Months,
			cli.FormatMoney(cs.AvgIncome), cli.FormatMoney(cs.AvgExpenses),
			cli.FormatMoneyDelta(cs.AvgBalance),
			cs.DeficitShare*100, cs.AvgScore)

		if i == a.compareCursor {
			fmt.Fprintf(&body, "%s\n", selectedStyle.Render("▸ "+line))
		} else {
			fmt.Fprintf(&body, "  %s %s %s\n",
				valueStyle.Render(fmt.Sprintf("%-16s %6d %10s %10s",
					truncStr(cs.City, 16), cs.Months,
					cli.FormatMoney(cs.AvgIncome), cli.FormatMoney(cs.AvgExpenses))),
				balStyle.Render(fmt.Sprintf("%10s", cli.FormatMoneyDelta(cs.AvgBalance))),
				valueStyle.Render(fmt.Sprintf("%7.0f%% %6d", cs.DeficitShare*100, cs.AvgScore)))
		}
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("City Comparison · avg per month", strings.TrimRight(body.String(), "\n"), cw))
	b.WriteString("\n")

	// Average health score chart (always non-negative)
	n := end - offset
	values := make([]float64, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		values[i] = float64(rows[offset+i].AvgScore)
		labels[i] = truncStr(rows[offset+i].City, 8)
	}
	chart := components.BarChart(values, labels, t.Accent, components.CardInnerWidth(cw), 8)
	b.WriteString(components.ContentCard("Average Health Score", chart, cw))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("  j/k select · Enter opens the city's overview"))

	return b.String()
}
