// Package cmd implements the stucash CLI commands.
package cmd

import (
	"fmt"

	"stucash/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	if cfg.General.DefaultCity != "" {
		fmt.Printf("    Default city:   %s\n", cfg.General.DefaultCity)
	} else {
		fmt.Println("    Default city:   not set (first city in dataset)")
	}
	if cfg.General.PlanFile != "" {
		fmt.Printf("    Plan file:      %s\n", cfg.General.PlanFile)
	} else {
		fmt.Printf("    Plan file:      %s (default)\n", config.PlanPath("", cfg))
	}
	fmt.Println()

	fmt.Println("  [Wage]")
	fmt.Printf("    Hourly rate:       %.2f\n", cfg.Wage.HourlyRate)
	fmt.Printf("    Weeks per month:   %.1f\n", cfg.Wage.WeeksPerMonth)
	fmt.Printf("    Base weekly hours: %.1f\n", cfg.Wage.BaseWeeklyHours)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `stucash setup` to reconfigure.")
	return nil
}
