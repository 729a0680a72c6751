package cmd

import (
	"fmt"

	"stucash/internal/cli"
	"stucash/internal/engine"
	"stucash/internal/model"
	"stucash/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagIncome   float64
	flagExpenses float64
	flagRent     float64
	flagBalance  float64
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Monthly financial health score",
	Long: `Score a month's finances from 0 to 100.

Reads the selected city/month from the dataset, or takes explicit inputs:

  stucash score --income 1400 --expenses 1350 --rent 850`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().Float64Var(&flagIncome, "income", 0, "Monthly income (skips the dataset)")
	scoreCmd.Flags().Float64Var(&flagExpenses, "expenses", 0, "Monthly expenses")
	scoreCmd.Flags().Float64Var(&flagRent, "rent", 0, "Monthly rent (component of expenses)")
	scoreCmd.Flags().Float64Var(&flagBalance, "balance", 0, "Override balance (default income - expenses)")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	// Explicit inputs bypass the dataset entirely.
	if cmd != nil && (cmd.Flags().Changed("income") || cmd.Flags().Changed("expenses")) {
		income := model.FromDollars(flagIncome)
		expenses := model.FromDollars(flagExpenses)
		rent := model.FromDollars(flagRent)

		fin := engine.Financials(income, expenses)
		balance := fin.Balance
		if cmd.Flags().Changed("balance") {
			balance = model.FromDollars(flagBalance)
		}
		health := engine.HealthScore(income, expenses, rent, balance)

		printScore("HEALTH SCORE", fin, health)
		return nil
	}

	result, err := loadData()
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		fmt.Println("\n  No cost records found.")
		fmt.Println("  Drop city CSV files in the data directory, then come back!")
		return nil
	}

	rec, err := pickRecord(result.Records)
	if err != nil {
		return err
	}

	printScore(fmt.Sprintf("HEALTH SCORE  %s %s", rec.City, rec.Label),
		pipeline.Financials(rec), pipeline.HealthFor(rec))

	warnRowErrors(result)
	return nil
}

func printScore(title string, fin model.MonthlyFinancials, health model.HealthScoreBreakdown) {
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := [][]string{
		{"Income", cli.FormatMoney(fin.Income)},
		{"Expenses", cli.FormatMoney(fin.Expenses)},
		{"Balance", cli.FormatMoneyDelta(fin.Balance)},
		{"Status", cli.RenderStatus(fin.Status)},
		{"---"},
		{"Balance points", fmt.Sprintf("%d/40", health.BalancePoints)},
		{"Rent points", fmt.Sprintf("%d/25", health.RentPoints)},
		{"Savings points", fmt.Sprintf("%d/20", health.SavingsPoints)},
		{"Buffer points", fmt.Sprintf("%d/15", health.BufferPoints)},
		{"---"},
		{"Rent ratio", cli.FormatRatio(health.RentRatio)},
		{"Savings rate", cli.FormatRatio(health.SavingsRate)},
		{"Buffer months", fmt.Sprintf("%.2f", health.BufferMonths)},
		{"---"},
		{"Score", fmt.Sprintf("%d/100  %s", health.Score, cli.RenderLabel(model.ScoreLabelFor(health.Score)))},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
}
