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

func (a App) renderPressureTab(cw int) string {
	t := theme.Active

	if !a.haveRec {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return "\n" + hintStyle.Render("  No cost records loaded.")
	}

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	inner := components.CardInnerWidth(cw)
	barW := inner - 34
	if barW < 10 {
		barW = 10
	}

	var body strings.Builder
	if a.fin.Income <= 0 {
		body.WriteString(hintStyle.Render("No income this month; shares are undefined."))
		body.WriteString("\n\n")
	}

	for _, row := range a.pressure {
		flagStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(flagColor(row.Flag))).
			Background(t.Surface).
			Bold(true)

		body.WriteString(components.ShareBar(row.Name, row.ShareOfIncome, 16, barW))
		body.WriteString(" ")
		body.WriteString(valueStyle.Render(fmt.Sprintf("%10s", cli.FormatMoney(row.Amount))))
		body.WriteString(" ")
		body.WriteString(flagStyle.Render(string(row.Flag)))
		body.WriteString("\n")
	}

	body.WriteString("\n")
	fmt.Fprintf(&body, "%s %s",
		labelStyle.Render("Monthly income"),
		valueStyle.Render(cli.FormatMoney(a.fin.Income)))

	title := fmt.Sprintf("Expense Pressure · %s %s", a.current.City, a.current.Label)
	card := components.ContentCard(title, strings.TrimRight(body.String(), "\n"), cw)

	legend := hintStyle.Render("  share of income: ≤25% Healthy · ≤35% Risky · >35% Danger")

	return card + "\n" + legend
}

func flagColor(f model.PressureFlag) string {
	t := theme.Active
	switch f {
	case model.FlagDanger:
		return string(t.Red)
	case model.FlagRisky:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}
