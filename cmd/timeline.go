package cmd

import (
	"fmt"

	"stucash/internal/cli"
	"stucash/internal/engine"

	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Project cash balance across plan phases",
	Long: `Project your cash balance through the phases of a plan file.

The plan file is TOML:

  [plan]
  starting_cash = 5000

  [[phase]]
  name = "Semester 1"
  months = 4
  monthly_income = 1200
  monthly_expenses = 1500
  one_time_costs = 800`,
	RunE: runTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(_ *cobra.Command, _ []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}

	rep := engine.ProjectTimeline(plan.StartingCash, plan.Phases)

	fmt.Println()
	fmt.Println(cli.RenderTitle("CASH-FLOW TIMELINE"))
	fmt.Println()

	if len(rep.Phases) == 0 {
		fmt.Printf("  Plan has no phases. Starting cash stays at %s.\n", cli.FormatMoney(rep.StartingCash))
		return nil
	}

	rows := make([][]string, 0, len(rep.Phases))
	for i, p := range rep.Phases {
		name := p.Phase.Name
		if i == rep.WorstPhaseIndex {
			name = "▸ " + name
		}
		rows = append(rows, []string{
			name,
			cli.FormatMonths(p.Phase.Months),
			cli.FormatMoneyDelta(p.MonthlyNet),
			cli.FormatMoneyDelta(p.PhaseImpact),
			cli.FormatMoneyDelta(p.EndBalance),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Phase", "Length", "Net/mo", "Impact", "End Balance"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Start %s   Low %s   Final %s\n",
		cli.FormatMoney(rep.StartingCash),
		cli.FormatMoneyDelta(rep.MinEndBalance),
		cli.FormatMoneyDelta(rep.FinalEndBalance))

	if rep.RequiredExtraCash > 0 {
		fmt.Printf("\n  ! Needs %s more starting cash to stay above zero.\n", cli.FormatMoney(rep.RequiredExtraCash))
	}
	if rep.NegativeMonthlyNet {
		fmt.Println("  ! Worst phase burns cash every month.")
	}
	if rep.OneTimeCostDip {
		fmt.Println("  ! Worst phase carries a one-time cost.")
	}
	if rep.RecoversLater {
		fmt.Println("  ! Balance dips below zero but recovers by the end.")
	}

	return nil
}
