// Package tui provides the interactive Bubble Tea dashboard for stucash.
package tui

import (
	"fmt"
	"strings"
	"time"

	"stucash/internal/cli"
	"stucash/internal/config"
	"stucash/internal/engine"
	"stucash/internal/model"
	"stucash/internal/pipeline"
	"stucash/internal/store"
	"stucash/internal/tui/components"
	"stucash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the data pipeline finishes.
type DataLoadedMsg struct {
	Records   []model.CostRecord
	RowErrors int
	LoadTime  time.Duration
}

// ProgressMsg reports file parsing progress.
type ProgressMsg struct {
	Current int
	Total   int
}

// RefreshDataMsg is sent when a background data refresh completes.
type RefreshDataMsg struct {
	Records   []model.CostRecord
	RowErrors int
	LoadTime  time.Duration
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	records   []model.CostRecord
	rowErrors int
	loaded    bool
	loadTime  time.Duration

	refreshing bool

	// Navigation through the dataset
	cities   []string
	months   []string // months for the selected city
	cityIdx  int
	monthIdx int

	// Pre-computed for the current city/month selection
	current  model.CostRecord
	haveRec  bool
	fin      model.MonthlyFinancials
	health   model.HealthScoreBreakdown
	pressure []model.ExpensePressureRow
	stats    []pipeline.CityStats
	trend    []pipeline.TrendPoint

	// Plan-derived projections (zero-valued when no plan file exists)
	plan     *config.Plan
	timeline model.TimelineReport

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	compareCursor int
	settings      settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	// Loading — channel-based progress subscription
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg // progress + completion messages from loader goroutine

	// Inputs for the pipeline
	dataDir  string
	planPath string
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5 // minimum content area height
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model.
func NewApp(dataDir, city, planPath string) App {
	needSetup := !config.Exists()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AA99F")).Background(theme.Active.Surface)

	a := App{
		dataDir:   dataDir,
		planPath:  planPath,
		needSetup: needSetup,
		spinner:   sp,
		loadSub:   make(chan tea.Msg, 1),
	}

	// Plan is optional; projections degrade to hints without one.
	if plan, err := config.LoadPlan(planPath); err == nil {
		a.plan = &plan
	}

	// Seed city selection from the flag or config default; applied on load.
	a.setupVals.city = city
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.dataDir, a.loadSub),
		a.spinner.Tick,
	)
}

func (a *App) recompute() {
	a.cities = pipeline.Cities(a.records)
	a.stats = pipeline.CompareCities(a.records)
	a.haveRec = false

	if len(a.cities) == 0 {
		a.months = nil
		a.trend = nil
	} else {
		if a.cityIdx >= len(a.cities) {
			a.cityIdx = len(a.cities) - 1
		}
		if a.cityIdx < 0 {
			a.cityIdx = 0
		}
		city := a.cities[a.cityIdx]

		a.months = pipeline.MonthsForCity(a.records, city)
		if a.monthIdx >= len(a.months) || a.monthIdx < 0 {
			a.monthIdx = len(a.months) - 1 // most recent month
		}

		if a.monthIdx >= 0 {
			if rec, ok := pipeline.FindRecord(a.records, city, a.months[a.monthIdx]); ok {
				a.current = rec
				a.haveRec = true
				a.fin = pipeline.Financials(rec)
				a.health = pipeline.HealthFor(rec)
				a.pressure = engine.ClassifyPressure(a.fin.Income, pipeline.ExpenseItems(rec))
			}
		}

		a.trend = pipeline.BalanceTrend(a.records, city)
	}

	if a.plan != nil {
		a.timeline = engine.ProjectTimeline(a.plan.StartingCash, a.plan.Phases)
	}

	if a.compareCursor >= len(a.stats) {
		a.compareCursor = len(a.stats) - 1
	}
	if a.compareCursor < 0 {
		a.compareCursor = 0
	}
}

// selectCity moves the city selection to the named city if present.
func (a *App) selectCity(city string) {
	for i, c := range a.cities {
		if strings.EqualFold(c, city) {
			a.cityIdx = i
			a.monthIdx = -1 // snap to most recent month
			return
		}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == 4 && a.compareCursor > 0 {
				a.compareCursor--
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == 4 && a.compareCursor < len(a.stats)-1 {
				a.compareCursor++
			}
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Settings tab has its own keybindings (text input)
		if a.activeTab == 5 && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Compare tab list navigation
		if a.activeTab == 4 {
			switch key {
			case "j", "down":
				if a.compareCursor < len(a.stats)-1 {
					a.compareCursor++
				}
				return a, nil
			case "k", "up":
				if a.compareCursor > 0 {
					a.compareCursor--
				}
				return a, nil
			case "enter":
				// Jump to the highlighted city's overview
				if a.compareCursor < len(a.stats) {
					a.selectCity(a.stats[a.compareCursor].City)
					a.recompute()
					a.activeTab = 0
				}
				return a, nil
			}
		}

		// Settings tab navigation (non-editing mode)
		if a.activeTab == 5 {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		// City/month selection (overview + pressure tabs)
		switch key {
		case "h", "left":
			if key == "h" || a.activeTab <= 1 {
				if len(a.cities) > 0 {
					a.cityIdx = (a.cityIdx - 1 + len(a.cities)) % len(a.cities)
					a.monthIdx = -1
					a.recompute()
					return a, nil
				}
			}
		case "l", "right":
			if key == "l" || a.activeTab <= 1 {
				if len(a.cities) > 0 {
					a.cityIdx = (a.cityIdx + 1) % len(a.cities)
					a.monthIdx = -1
					a.recompute()
					return a, nil
				}
			}
		case "j", "down":
			if a.monthIdx > 0 {
				a.monthIdx--
				a.recompute()
			}
			return a, nil
		case "k", "up":
			if a.monthIdx < len(a.months)-1 {
				a.monthIdx++
				a.recompute()
			}
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Manual refresh
		if key == "r" && !a.refreshing {
			a.refreshing = true
			return a, refreshDataCmd(a.dataDir)
		}

		// Tab navigation
		if idx := components.TabIdxByKey(keyRune(key)); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
		switch key {
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		}
		return a, nil

	case DataLoadedMsg:
		a.records = msg.Records
		a.rowErrors = msg.RowErrors
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.recompute()

		// Apply the preferred city once cities are known
		if a.setupVals.city != "" {
			a.selectCity(a.setupVals.city)
			a.recompute()
		}

		// Activate first-run setup after data loads
		if a.needSetup {
			a.setupForm = newSetupForm(len(a.records), a.dataDir, a.cities, &a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}

		return a, nil

	case ProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case RefreshDataMsg:
		a.refreshing = false
		if msg.Records != nil {
			a.records = msg.Records
			a.rowErrors = msg.RowErrors
			a.loadTime = msg.LoadTime
			a.recompute()
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func keyRune(key string) rune {
	if len(key) == 1 {
		return rune(key[0])
	}
	return 0
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		_ = a.saveSetupConfig()
		a.selectCity(a.setupVals.city)
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  stucash needs at least %d columns.\n  Current width: %d\n",
		a.width,
		minTerminalWidth,
		a.width,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	countStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ stucash"))
	b.WriteString(subtitleStyle.Render(" · Student Cost Planner"))
	b.WriteString("\n\n")

	if a.progressMax > 0 {
		barW := 40
		if barW > w-30 {
			barW = w - 30
		}
		if barW < 20 {
			barW = 20
		}
		pct := float64(a.progress) / float64(a.progressMax)
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Parsing cost files\n\n"))
		b.WriteString(components.ProgressBar(pct, barW))
		b.WriteString("\n")
		b.WriteString(countStyle.Render(cli.FormatNumber(int64(a.progress))))
		b.WriteString(subtitleStyle.Render(" / "))
		b.WriteString(countStyle.Render(cli.FormatNumber(int64(a.progressMax))))
	} else {
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Discovering cost files..."))
	}

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o p t d c x", "Jump to tab"},
		{"Tab S-Tab", "Next / Previous tab"},
		{"h l", "Previous / Next city"},
		{"j k", "Earlier / Later month, move in lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-11s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Enter", "Open highlighted city / Confirm"},
		{"Esc", "Back / Cancel"},
		{"r", "Reload data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-11s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Render header (tab bar + selection pill)
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	selStr := pillStyle.Render(" ")
	if len(a.cities) > 0 {
		selStr += pillAccentStyle.Render(a.cities[a.cityIdx])
		if a.monthIdx >= 0 && a.monthIdx < len(a.months) {
			selStr += pillStyle.Render(" │ ") + pillAccentStyle.Render(a.months[a.monthIdx])
		}
	} else {
		selStr += pillAccentStyle.Render("no data")
	}
	if a.rowErrors > 0 {
		selStr += pillStyle.Render(" │ ") +
			pillAccentStyle.Render(fmt.Sprintf("%d bad rows", a.rowErrors))
	}
	selStr += pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(selStr)

	// 2. Render status bar
	dataAge := fmt.Sprintf("%.1fs", a.loadTime.Seconds())
	statusBar := components.RenderStatusBar(w, dataAge, a.refreshing)

	// 3. Calculate content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Render tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderPressureTab(cw)
	case 2:
		content = a.renderTimelineTab(cw)
	case 3:
		content = a.renderDebtTab(cw)
	case 4:
		content = a.renderCompareTab(cw, contentH)
	case 5:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	// 9. Ensure entire terminal is filled with background
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Data loading ───────────────────────────────────────────────

// loadDataCmd starts the data loading pipeline in a background goroutine.
// It streams ProgressMsg updates and a final DataLoadedMsg through sub.
func loadDataCmd(dataDir string, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			start := time.Now()

			// Progress callback: non-blocking send so workers aren't stalled.
			// If the channel is full, we skip this update — the next one catches up.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}

			// Try cached load
			cache, err := storeOpen()
			if err == nil {
				cr, loadErr := pipeline.LoadWithCache(dataDir, cache, progressFn)
				_ = cache.Close()
				if loadErr == nil {
					sub <- DataLoadedMsg{
						Records:   cr.Records,
						RowErrors: cr.RowErrors,
						LoadTime:  time.Since(start),
					}
					return
				}
			}

			// Fallback: uncached load
			result, err := pipeline.Load(dataDir, progressFn)
			if err != nil {
				sub <- DataLoadedMsg{LoadTime: time.Since(start)}
				return
			}
			sub <- DataLoadedMsg{
				Records:   result.Records,
				RowErrors: result.RowErrors,
				LoadTime:  time.Since(start),
			}
		}()

		// Block until the first message (either ProgressMsg or DataLoadedMsg)
		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

func storeOpen() (*store.Cache, error) {
	return store.Open(pipeline.CachePath())
}

// refreshDataCmd reloads the dataset in the background (no progress UI).
func refreshDataCmd(dataDir string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		cache, err := storeOpen()
		if err == nil {
			cr, loadErr := pipeline.LoadWithCache(dataDir, cache, nil)
			_ = cache.Close()
			if loadErr == nil {
				return RefreshDataMsg{
					Records:   cr.Records,
					RowErrors: cr.RowErrors,
					LoadTime:  time.Since(start),
				}
			}
		}

		result, err := pipeline.Load(dataDir, nil)
		if err != nil {
			return RefreshDataMsg{LoadTime: time.Since(start)}
		}
		return RefreshDataMsg{
			Records:   result.Records,
			RowErrors: result.RowErrors,
			LoadTime:  time.Since(start),
		}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Two-space separator between tabs.
		if i < len(components.Tabs)-1 {
			pos += 2
		}
	}
	return -1
}
