package cmd

import (
	"fmt"
	"os"

	"stucash/internal/config"
	"stucash/internal/pipeline"
	"stucash/internal/session"

	"github.com/spf13/cobra"
)

var flagOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved monthly calculations as CSV",
	Long: `Compute and export a calculation per month for the selected city.

History is capped at the most recent 12 saved calculations, matching the
in-app session history.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		return fmt.Errorf("no cost records in %s", dataDir())
	}

	city := flagCity
	if city == "" {
		cfg, _ := config.Load()
		city = cfg.General.DefaultCity
	}
	if city == "" {
		city = pipeline.Cities(result.Records)[0]
	}

	months := pipeline.MonthsForCity(result.Records, city)
	if len(months) == 0 {
		return fmt.Errorf("no records for city %q", city)
	}
	if flagMonth != "" {
		months = []string{flagMonth}
	}

	sess := session.New()
	for _, month := range months {
		rec, ok := pipeline.FindRecord(result.Records, city, month)
		if !ok {
			return fmt.Errorf("no record for %s %s", city, month)
		}
		sess.Save(rec.City, rec.Label, pipeline.Financials(rec), rec.Rent)
	}

	out := os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagOut, err)
		}
		defer f.Close()
		out = f
	}

	if err := session.WriteCSV(out, sess.List()); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	if flagOut != "" && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %d calculations to %s\n", sess.Len(), flagOut)
	}
	return nil
}
