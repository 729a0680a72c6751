package tui

import (
	"fmt"
	"strings"

	"stucash/internal/config"
	"stucash/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	dataDir   string
	city      string
	themeName string
}

// newSetupForm builds the first-run configuration form. cities comes from
// the freshly loaded dataset so the default-city select offers real data.
func newSetupForm(recordCount int, dataDir string, cities []string, vals *setupValues) *huh.Form {
	if vals.dataDir == "" {
		vals.dataDir = dataDir
	}
	if vals.themeName == "" {
		vals.themeName = theme.Active.Name
	}
	if vals.city == "" && len(cities) > 0 {
		vals.city = cities[0]
	}

	themeNames := make([]string, len(theme.All))
	for i, t := range theme.All {
		themeNames[i] = t.Name
	}

	cityOptions := cities
	if len(cityOptions) == 0 {
		cityOptions = []string{""}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to stucash!").
				Description(fmt.Sprintf("Found %d cost records in %s.\nA few questions to get started.", recordCount, dataDir)),

			huh.NewInput().
				Title("Data directory").
				Description("Where your city cost CSV files live.").
				Value(&vals.dataDir),

			huh.NewSelect[string]().
				Title("Default city").
				Description("Shown first on the overview tab.").
				Options(huh.NewOptions(cityOptions...)...).
				Value(&vals.city),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(themeNames...)...).
				Value(&vals.themeName),
		),
	)
}

// saveSetupConfig persists the form answers and applies the theme.
func (a *App) saveSetupConfig() error {
	cfg := loadConfigOrDefault()

	if dir := strings.TrimSpace(a.setupVals.dataDir); dir != "" {
		cfg.General.DataDir = dir
		a.dataDir = dir
	}
	if city := strings.TrimSpace(a.setupVals.city); city != "" {
		cfg.General.DefaultCity = city
	}
	if a.setupVals.themeName != "" {
		cfg.Appearance.Theme = a.setupVals.themeName
		theme.SetActive(a.setupVals.themeName)
	}

	return config.Save(cfg)
}
