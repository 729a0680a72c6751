package tui

import (
	"fmt"
	"strings"

	"stucash/internal/cli"
	"stucash/internal/engine"
	"stucash/internal/model"
	"stucash/internal/tui/components"
	"stucash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDebtTab(cw int) string {
	t := theme.Active

	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if a.plan == nil {
		return "\n" + hintStyle.Render("  No plan file. Debt projections need a [debt] section in your plan.")
	}

	d := a.plan.Debt
	principal := engine.DebtAtGraduation(d)

	if principal == 0 && d.LoanPrincipal == 0 {
		return "\n" + hintStyle.Render("  Plan has no debt inputs; nothing to project.")
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)

	var b strings.Builder

	// Cost summary cards
	cards := []struct{ Label, Value, Delta string }{
		{"Tuition", cli.FormatMoney(d.TuitionTotal), ""},
		{"Living", cli.FormatMoney(d.LivingTotal), ""},
		{"Scholarships", cli.FormatMoney(d.ScholarshipsTotal), ""},
		{"Debt at graduation", cli.FormatMoney(principal), ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	var body strings.Builder

	if a.plan.TermYears > 0 {
		payment := engine.MonthlyPayment(principal, d.AnnualRatePct, a.plan.TermYears)
		fmt.Fprintf(&body, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-22s", fmt.Sprintf("Payment over %.0fy", a.plan.TermYears))),
			valueStyle.Render(cli.FormatMoney(payment)),
			labelStyle.Render("/mo"))
	}

	if a.plan.MonthlyContribution > 0 {
		horizon := engine.YearsToPay(principal, d.AnnualRatePct, a.plan.MonthlyContribution)
		line := fmt.Sprintf("%s %s",
			labelStyle.Render(fmt.Sprintf("%-22s", fmt.Sprintf("Payoff at %s/mo", cli.FormatMoney(a.plan.MonthlyContribution)))),
			valueStyle.Render(cli.FormatYears(horizon)))
		if horizon.NeverPaysOff {
			line = fmt.Sprintf("%s %s",
				labelStyle.Render(fmt.Sprintf("%-22s", fmt.Sprintf("Payoff at %s/mo", cli.FormatMoney(a.plan.MonthlyContribution)))),
				warnStyle.Render(cli.FormatYears(horizon)))
		}
		body.WriteString(line)
		body.WriteString("\n")
	}

	if d.ExpectedSalaryAnnual > 0 {
		monthlySalary := d.ExpectedSalaryAnnual / 12
		fmt.Fprintf(&body, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-22s", "Expected salary")),
			valueStyle.Render(cli.FormatMoney(monthlySalary)),
			labelStyle.Render("/mo"))

		// Payoff at standard salary shares
		for _, share := range []float64{0.10, 0.15, 0.20} {
			contribution := model.FromDollars(monthlySalary.Dollars() * share)
			if contribution <= 0 {
				continue
			}
			horizon := engine.YearsToPay(principal, d.AnnualRatePct, contribution)
			style := valueStyle
			if horizon.NeverPaysOff {
				style = warnStyle
			}
			fmt.Fprintf(&body, "%s %s\n",
				labelStyle.Render(fmt.Sprintf("%-22s", fmt.Sprintf("  %.0f%% of salary", share*100))),
				style.Render(cli.FormatYears(horizon)))
		}
	}

	fmt.Fprintf(&body, "\n%s %s",
		labelStyle.Render(fmt.Sprintf("%-22s", "Annual rate")),
		valueStyle.Render(cli.FormatPercent(d.AnnualRatePct/100)))

	b.WriteString(components.ContentCard("Payoff Projections", strings.TrimRight(body.String(), "\n"), cw))

	return b.String()
}
