package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"stucash/internal/config"
	"stucash/internal/dataset"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	dir := dataDir()
	files, _ := dataset.ScanDir(dir)

	fmt.Println()
	fmt.Println("  Welcome to stucash!")
	fmt.Println()
	if len(files) > 0 {
		fmt.Printf("  Found %d cost files in %s\n\n", len(files), dir)
	}

	// 1. Data directory
	fmt.Println("  1. Cost data directory")
	fmt.Println("     Where your city cost CSV files live.")
	if cfg.General.DataDir != "" {
		fmt.Printf("     Current: %s\n", cfg.General.DataDir)
	}
	fmt.Print("     > ")
	dataDirIn, _ := reader.ReadString('\n')
	dataDirIn = strings.TrimSpace(dataDirIn)
	if dataDirIn != "" {
		cfg.General.DataDir = dataDirIn
	}
	fmt.Println()

	// 2. Default city
	fmt.Println("  2. Default city")
	fmt.Println("     Used when --city is not given.")
	if cfg.General.DefaultCity != "" {
		fmt.Printf("     Current: %s\n", cfg.General.DefaultCity)
	}
	fmt.Print("     > ")
	city, _ := reader.ReadString('\n')
	city = strings.TrimSpace(city)
	if city != "" {
		cfg.General.DefaultCity = city
	}
	fmt.Println()

	// 3. Campus job wage
	fmt.Printf("  3. Hourly wage for what-if scenarios [%.2f]\n", cfg.Wage.HourlyRate)
	fmt.Print("     > ")
	wage, _ := reader.ReadString('\n')
	wage = strings.TrimSpace(wage)
	if wage != "" {
		if f, err := strconv.ParseFloat(wage, 64); err == nil && f > 0 {
			cfg.Wage.HourlyRate = f
		}
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `stucash setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
