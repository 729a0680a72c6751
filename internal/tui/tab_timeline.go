package tui

import (
	"fmt"
	"strings"

	"stucash/internal/cli"
	"stucash/internal/tui/components"
	"stucash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTimelineTab(cw int) string {
	t := theme.Active

	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if a.plan == nil {
		return "\n" + hintStyle.Render("  No plan file. Create one and point stucash at it with --plan\n"+
			"  or set plan_file in the config. See `stucash timeline --help`.")
	}

	rep := a.timeline
	if len(rep.Phases) == 0 {
		return "\n" + hintStyle.Render(fmt.Sprintf(
			"  Plan has no phases. Starting cash stays at %s.", cli.FormatMoney(rep.StartingCash)))
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	negStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	posStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	worstStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)

	var b strings.Builder

	// Phase table
	var body strings.Builder
	fmt.Fprintf(&body, "%s\n",
		labelStyle.Render(fmt.Sprintf("%-16s %6s %12s %12s %12s", "Phase", "Months", "Net/mo", "Impact", "End")))
	for i, p := range rep.Phases {
		name := truncStr(p.Phase.Name, 16)
		nameStyled := valueStyle.Render(fmt.Sprintf("%-16s", name))
		if i == rep.WorstPhaseIndex {
			nameStyled = worstStyle.Render(fmt.Sprintf("%-16s", name))
		}
		endStyle := posStyle
		if p.EndBalance < 0 {
			endStyle = negStyle
		}
		fmt.Fprintf(&body, "%s %s %s %s %s\n",
			nameStyled,
			valueStyle.Render(fmt.Sprintf("%6d", p.Phase.Months)),
			valueStyle.Render(fmt.Sprintf("%12s", cli.FormatMoneyDelta(p.MonthlyNet))),
			valueStyle.Render(fmt.Sprintf("%12s", cli.FormatMoneyDelta(p.PhaseImpact))),
			endStyle.Render(fmt.Sprintf("%12s", cli.FormatMoneyDelta(p.EndBalance))))
	}

	body.WriteString("\n")
	fmt.Fprintf(&body, "%s %s   %s %s   %s %s\n",
		labelStyle.Render("Start"), valueStyle.Render(cli.FormatMoney(rep.StartingCash)),
		labelStyle.Render("Low"), valueStyle.Render(cli.FormatMoneyDelta(rep.MinEndBalance)),
		labelStyle.Render("Final"), valueStyle.Render(cli.FormatMoneyDelta(rep.FinalEndBalance)))

	// Advisories
	var advisories []string
	if rep.RequiredExtraCash > 0 {
		advisories = append(advisories,
			fmt.Sprintf("Needs %s more starting cash to stay above zero.", cli.FormatMoney(rep.RequiredExtraCash)))
	}
	if rep.NegativeMonthlyNet {
		advisories = append(advisories, "Worst phase burns cash every month.")
	}
	if rep.OneTimeCostDip {
		advisories = append(advisories, "Worst phase carries a one-time cost.")
	}
	if rep.RecoversLater {
		advisories = append(advisories, "Balance dips below zero but recovers by the end.")
	}
	if len(advisories) > 0 {
		body.WriteString("\n")
		for _, adv := range advisories {
			fmt.Fprintf(&body, "%s %s\n", worstStyle.Render("!"), valueStyle.Render(adv))
		}
	}

	b.WriteString(components.ContentCard("Cash-Flow Timeline", strings.TrimRight(body.String(), "\n"), cw))
	b.WriteString("\n")

	// End-balance chart (shifted non-negative so dips still read)
	minBal := rep.StartingCash
	for _, p := range rep.Phases {
		if p.EndBalance < minBal {
			minBal = p.EndBalance
		}
	}
	offset := 0.0
	if minBal < 0 {
		offset = -minBal.Dollars()
	}
	values := make([]float64, len(rep.Phases))
	labels := make([]string, len(rep.Phases))
	for i, p := range rep.Phases {
		values[i] = p.EndBalance.Dollars() + offset
		labels[i] = truncStr(p.Phase.Name, 8)
	}

	chartW := components.CardInnerWidth(cw)
	chart := components.BarChart(values, labels, t.Accent, chartW, 10)
	chartTitle := "End Balance by Phase"
	if offset > 0 {
		chartTitle += fmt.Sprintf(" (shifted +%s)", cli.FormatMoney(-minBal))
	}
	b.WriteString(components.ContentCard(chartTitle, chart, cw))

	return b.String()
}
