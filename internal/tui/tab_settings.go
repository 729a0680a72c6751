package tui

import (
	"fmt"
	"strconv"
	"strings"

	"stucash/internal/config"
	"stucash/internal/tui/components"
	"stucash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldDataDir = iota
	settingsFieldDefaultCity
	settingsFieldPlanFile
	settingsFieldHourlyRate
	settingsFieldWeeksPerMonth
	settingsFieldBaseWeeklyHours
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldDataDir:
		ti.Placeholder = "data"
		ti.SetValue(cfg.General.DataDir)
	case settingsFieldDefaultCity:
		ti.Placeholder = "Boston"
		ti.SetValue(cfg.General.DefaultCity)
	case settingsFieldPlanFile:
		ti.Placeholder = "~/.config/stucash/plan.toml"
		ti.SetValue(cfg.General.PlanFile)
	case settingsFieldHourlyRate:
		ti.Placeholder = "15"
		ti.SetValue(strconv.FormatFloat(cfg.Wage.HourlyRate, 'f', -1, 64))
	case settingsFieldWeeksPerMonth:
		ti.Placeholder = "4"
		ti.SetValue(strconv.FormatFloat(cfg.Wage.WeeksPerMonth, 'f', -1, 64))
	case settingsFieldBaseWeeklyHours:
		ti.Placeholder = "20"
		ti.SetValue(strconv.FormatFloat(cfg.Wage.BaseWeeklyHours, 'f', -1, 64))
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
		ti.SetValue(cfg.Appearance.Theme)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldDataDir:
		cfg.General.DataDir = val
		if val != "" {
			a.dataDir = val
		}
	case settingsFieldDefaultCity:
		cfg.General.DefaultCity = val
		if val != "" {
			a.selectCity(val)
			a.recompute()
		}
	case settingsFieldPlanFile:
		cfg.General.PlanFile = val
	case settingsFieldHourlyRate:
		if f, err := strconv.ParseFloat(val, 64); err == nil && f > 0 {
			cfg.Wage.HourlyRate = f
		}
	case settingsFieldWeeksPerMonth:
		if f, err := strconv.ParseFloat(val, 64); err == nil && f > 0 {
			cfg.Wage.WeeksPerMonth = f
		}
	case settingsFieldBaseWeeklyHours:
		if f, err := strconv.ParseFloat(val, 64); err == nil && f >= 0 {
			cfg.Wage.BaseWeeklyHours = f
		}
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	}

	a.settings.saveErr = config.Save(cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	dataDirDisplay := cfg.General.DataDir
	if dataDirDisplay == "" {
		dataDirDisplay = "(data)"
	}
	cityDisplay := cfg.General.DefaultCity
	if cityDisplay == "" {
		cityDisplay = "(first city in dataset)"
	}
	planDisplay := cfg.General.PlanFile
	if planDisplay == "" {
		planDisplay = "(default location)"
	}

	fields := []struct {
		label string
		value string
	}{
		{"Data directory", dataDirDisplay},
		{"Default city", cityDisplay},
		{"Plan file", planDisplay},
		{"Hourly wage", fmt.Sprintf("%.2f", cfg.Wage.HourlyRate)},
		{"Weeks per month", fmt.Sprintf("%.1f", cfg.Wage.WeeksPerMonth)},
		{"Base weekly hours", fmt.Sprintf("%.1f", cfg.Wage.BaseWeeklyHours)},
		{"Theme", cfg.Appearance.Theme},
	}

	var body strings.Builder
	for i, f := range fields {
		if i == a.settings.cursor && a.settings.editing {
			fmt.Fprintf(&body, "%s %s %s\n",
				markerStyle.Render("▸"),
				selectedLabelStyle.Render(fmt.Sprintf("%-18s", f.label)),
				a.settings.input.View())
			continue
		}
		if i == a.settings.cursor {
			fmt.Fprintf(&body, "%s %s %s\n",
				markerStyle.Render("▸"),
				selectedLabelStyle.Render(fmt.Sprintf("%-18s", f.label)),
				selectedStyle.Render(f.value))
			continue
		}
		fmt.Fprintf(&body, "  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-18s", f.label)),
			valueStyle.Render(f.value))
	}

	body.WriteString("\n")
	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		body.WriteString(warnStyle.Render(fmt.Sprintf("Could not save: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		body.WriteString(greenStyle.Render("Saved to " + config.Path()))
	} else {
		body.WriteString(accentStyle.Render("j/k to move · Enter to edit · Esc to cancel"))
	}

	return components.ContentCard("Settings", strings.TrimRight(body.String(), "\n"), cw)
}
