package cmd

import (
	"fmt"

	"stucash/internal/cli"
	"stucash/internal/pipeline"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare cities by average monthly finances",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		fmt.Println("\n  No cost records found.")
		return nil
	}

	stats := pipeline.CompareCities(result.Records)

	fmt.Println()
	fmt.Println(cli.RenderTitle("CITY COMPARISON  avg per month"))
	fmt.Println()

	rows := make([][]string, 0, len(stats))
	for _, cs := range stats {
		rows = append(rows, []string{
			cs.City,
			cli.FormatMonths(cs.Months),
			cli.FormatMoney(cs.AvgIncome),
			cli.FormatMoney(cs.AvgExpenses),
			cli.FormatMoneyDelta(cs.AvgBalance),
			cli.FormatPercent(cs.DeficitShare),
			fmt.Sprintf("%d", cs.AvgScore),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"City", "History", "Income", "Expenses", "Balance", "Deficit", "Score"},
		Rows:    rows,
	}))

	warnRowErrors(result)
	return nil
}
