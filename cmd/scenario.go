package cmd

import (
	"fmt"

	"stucash/internal/cli"
	"stucash/internal/config"
	"stucash/internal/engine"
	"stucash/internal/model"
	"stucash/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagExtraHours  float64
	flagRentDelta   float64
	flagExtraIncome float64
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "What-if analysis against a baseline month",
	Long: `Evaluate a perturbed version of a baseline month.

Examples:
  stucash scenario --extra-hours 5
  stucash scenario --rent-delta -150 --extra-income 200`,
	RunE: runScenario,
}

func init() {
	scenarioCmd.Flags().Float64Var(&flagExtraHours, "extra-hours", 0, "Extra weekly work hours")
	scenarioCmd.Flags().Float64Var(&flagRentDelta, "rent-delta", 0, "Rent change per month (negative for cheaper housing)")
	scenarioCmd.Flags().Float64Var(&flagExtraIncome, "extra-income", 0, "Extra monthly income")
	rootCmd.AddCommand(scenarioCmd)
}

func runScenario(_ *cobra.Command, _ []string) error {
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

	cfg, _ := config.Load()

	base := model.ScenarioBase{
		Financials:    pipeline.Financials(rec),
		HourlyWage:    model.FromDollars(cfg.Wage.HourlyRate),
		WeeksPerMonth: cfg.Wage.WeeksPerMonth,
		Rent:          rec.Rent,
	}
	p := model.Perturbation{
		ExtraHours:  flagExtraHours,
		RentDelta:   model.FromDollars(flagRentDelta),
		ExtraIncome: model.FromDollars(flagExtraIncome),
	}

	res := engine.EvaluateScenario(base, p)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SCENARIO  %s %s", rec.City, rec.Label)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Baseline", "Scenario", "Delta"},
		Rows: [][]string{
			{"Income", cli.FormatMoney(base.Financials.Income), cli.FormatMoney(res.Income.Value), cli.FormatMoneyDelta(res.Income.Delta)},
			{"Expenses", cli.FormatMoney(base.Financials.Expenses), cli.FormatMoney(res.Expenses.Value), cli.FormatMoneyDelta(res.Expenses.Delta)},
			{"Balance", cli.FormatMoneyDelta(base.Financials.Balance), cli.FormatMoneyDelta(res.Balance.Value), cli.FormatMoneyDelta(res.Balance.Delta)},
			{"Status", cli.RenderStatus(base.Financials.Status), cli.RenderStatus(res.Status), ""},
		},
	}))

	warnRowErrors(result)
	return nil
}
