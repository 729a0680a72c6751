package cmd

import (
	"fmt"
	"strings"

	"stucash/internal/cli"
	"stucash/internal/config"
	"stucash/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagWindow int

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Monthly balance trend for a city",
	RunE:  runTrend,
}

func init() {
	trendCmd.Flags().IntVarP(&flagWindow, "window", "w", 3, "Rolling mean window in months")
	rootCmd.AddCommand(trendCmd)
}

func runTrend(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		fmt.Println("\n  No cost records found.")
		return nil
	}

	city := flagCity
	if city == "" {
		cfg, _ := config.Load()
		city = cfg.General.DefaultCity
	}
	if city == "" {
		city = pipeline.Cities(result.Records)[0]
	}

	trend := pipeline.BalanceTrend(result.Records, city)
	if len(trend) == 0 {
		return fmt.Errorf("no records for city %q (have: %v)", city, pipeline.Cities(result.Records))
	}

	values := make([]float64, len(trend))
	for i, p := range trend {
		values[i] = p.Balance.Dollars()
	}
	smoothed := pipeline.RollingMean(values, flagWindow)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BALANCE TREND  %s", strings.ToUpper(city))))
	fmt.Println()

	rows := make([][]string, 0, len(trend))
	for i, p := range trend {
		rows = append(rows, []string{
			p.Label,
			cli.FormatMoneyDelta(p.Balance),
			fmt.Sprintf("%+.0f", smoothed[i]),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Balance", fmt.Sprintf("Mean (%dmo)", flagWindow)},
		Rows:    rows,
	}))

	warnRowErrors(result)
	return nil
}
