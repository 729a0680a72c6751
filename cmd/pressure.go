package cmd

import (
	"fmt"

	"stucash/internal/cli"
	"stucash/internal/engine"
	"stucash/internal/pipeline"

	"github.com/spf13/cobra"
)

var pressureCmd = &cobra.Command{
	Use:   "pressure",
	Short: "Rank expenses by share of income",
	RunE:  runPressure,
}

func init() {
	rootCmd.AddCommand(pressureCmd)
}

func runPressure(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		fmt.Println("\n  No cost records found.")
		return nil
	}

	rec, err := pickRecord(result.Records)
	if err != nil {
		return err
	}

	fin := pipeline.Financials(rec)
	pressureRows := engine.ClassifyPressure(fin.Income, pipeline.ExpenseItems(rec))

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSE PRESSURE  %s %s", rec.City, rec.Label)))
	fmt.Println()

	if fin.Income <= 0 {
		fmt.Println("  No income this month; shares are undefined.")
		fmt.Println()
	}

	rows := make([][]string, 0, len(pressureRows)+2)
	for _, r := range pressureRows {
		rows = append(rows, []string{
			r.Name,
			cli.FormatMoney(r.Amount),
			cli.FormatPercent(r.ShareOfIncome),
			cli.RenderFlag(r.Flag),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Income", cli.FormatMoney(fin.Income), "", ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Expense", "Amount", "Share", "Flag"},
		Rows:    rows,
	}))

	warnRowErrors(result)
	return nil
}
