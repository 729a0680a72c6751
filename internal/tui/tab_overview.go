package tui

import (
	"fmt"
	"strings"

	"stucash/internal/cli"
	"stucash/internal/model"
	"stucash/internal/tui/components"
	"stucash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active

	if !a.haveRec {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return "\n" + hintStyle.Render("  No cost records loaded. Point stucash at a data directory with city CSV files.")
	}

	var b strings.Builder

	// Metric card row: the monthly bottom line
	cards := []struct{ Label, Value, Delta string }{
		{"Income", cli.FormatMoney(a.fin.Income), ""},
		{"Expenses", cli.FormatMoney(a.fin.Expenses), ""},
		{"Balance", cli.FormatMoneyDelta(a.fin.Balance), a.fin.Status.String()},
		{"Health", fmt.Sprintf("%d/100", a.health.Score), string(model.ScoreLabelFor(a.health.Score))},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Health Score", a.renderHealthBreakdown(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard(fmt.Sprintf("Balance Trend · %s", a.current.City), a.renderTrendBody(components.CardInnerWidth(cw)), cw))
	} else {
		widths := components.LayoutRow(cw, 2)
		left := components.ContentCard("Health Score", a.renderHealthBreakdown(components.CardInnerWidth(widths[0])), widths[0])
		right := components.ContentCard(fmt.Sprintf("Balance Trend · %s", a.current.City), a.renderTrendBody(components.CardInnerWidth(widths[1])), widths[1])
		b.WriteString(components.CardRow([]string{left, right}))
	}

	return b.String()
}

func (a App) renderHealthBreakdown(w int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	barW := w - 20
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	b.WriteString(components.ScoreBar("Score", a.health.Score, 8, barW))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Balance", fmt.Sprintf("%d/40", a.health.BalancePoints)},
		{"Rent load", fmt.Sprintf("%d/25", a.health.RentPoints)},
		{"Savings", fmt.Sprintf("%d/20", a.health.SavingsPoints)},
		{"Buffer", fmt.Sprintf("%d/15", a.health.BufferPoints)},
		{"Rent ratio", cli.FormatRatio(a.health.RentRatio)},
		{"Savings rate", cli.FormatRatio(a.health.SavingsRate)},
		{"Buffer months", fmt.Sprintf("%.2f", a.health.BufferMonths)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-14s", r.label)),
			valueStyle.Render(r.value))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderTrendBody(w int) string {
	t := theme.Active

	if len(a.trend) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No history for this city.")
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	// Sparkline needs non-negative values; shift so the minimum sits at zero.
	min := a.trend[0].Balance
	for _, p := range a.trend[1:] {
		if p.Balance < min {
			min = p.Balance
		}
	}
	values := make([]float64, len(a.trend))
	for i, p := range a.trend {
		values[i] = (p.Balance - min).Dollars()
	}

	sparkW := w
	if len(values) > sparkW && sparkW > 0 {
		// Downsample to fit
		sampled := make([]float64, sparkW)
		for i := range sampled {
			sampled[i] = values[i*(len(values)-1)/(sparkW-1)]
		}
		values = sampled
	}

	first := a.trend[0]
	last := a.trend[len(a.trend)-1]

	var b strings.Builder
	b.WriteString(components.Sparkline(values, t.Accent))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s %s",
		labelStyle.Render(first.Label),
		valueStyle.Render(cli.FormatMoneyDelta(first.Balance)),
		labelStyle.Render("→ "+last.Label),
		valueStyle.Render(cli.FormatMoneyDelta(last.Balance)))

	return b.String()
}
