package cmd

import (
	"fmt"

	"stucash/internal/cli"
	"stucash/internal/engine"
	"stucash/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagContribution float64
	flagTermYears    float64
)

var debtCmd = &cobra.Command{
	Use:   "debt",
	Short: "Loan payoff and debt-at-graduation projections",
	RunE:  runDebt,
}

func init() {
	debtCmd.Flags().Float64Var(&flagContribution, "contribution", 0, "Monthly payoff contribution (overrides plan)")
	debtCmd.Flags().Float64Var(&flagTermYears, "term", 0, "Repayment term in years (overrides plan)")
	rootCmd.AddCommand(debtCmd)
}

func runDebt(_ *cobra.Command, _ []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}

	d := plan.Debt
	principal := engine.DebtAtGraduation(d)

	contribution := plan.MonthlyContribution
	if flagContribution > 0 {
		contribution = model.FromDollars(flagContribution)
	}
	termYears := plan.TermYears
	if flagTermYears > 0 {
		termYears = flagTermYears
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DEBT PROJECTION"))
	fmt.Println()

	rows := [][]string{
		{"Tuition", cli.FormatMoney(d.TuitionTotal)},
		{"Living costs", cli.FormatMoney(d.LivingTotal)},
		{"Scholarships", cli.FormatMoney(d.ScholarshipsTotal)},
	}
	if d.LoanPrincipal > 0 {
		rows = append(rows, []string{"Loan principal", cli.FormatMoney(d.LoanPrincipal) + "  (overrides net cost)"})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Debt at graduation", cli.FormatMoney(principal)},
		[]string{"Annual rate", cli.FormatPercent(d.AnnualRatePct / 100)},
	)

	if termYears > 0 {
		payment := engine.MonthlyPayment(principal, d.AnnualRatePct, termYears)
		rows = append(rows, []string{
			fmt.Sprintf("Payment over %.0fy", termYears),
			cli.FormatMoney(payment) + "/mo",
		})
	}

	if contribution > 0 {
		horizon := engine.YearsToPay(principal, d.AnnualRatePct, contribution)
		rows = append(rows, []string{
			fmt.Sprintf("Payoff at %s/mo", cli.FormatMoney(contribution)),
			cli.FormatYears(horizon),
		})
	}

	if d.ExpectedSalaryAnnual > 0 {
		monthlySalary := d.ExpectedSalaryAnnual / 12
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Expected salary", cli.FormatMoney(monthlySalary) + "/mo"})
		for _, share := range []float64{0.10, 0.15, 0.20} {
			c := model.FromDollars(monthlySalary.Dollars() * share)
			if c <= 0 {
				continue
			}
			horizon := engine.YearsToPay(principal, d.AnnualRatePct, c)
			rows = append(rows, []string{
				fmt.Sprintf("  %.0f%% of salary", share*100),
				cli.FormatYears(horizon),
			})
		}
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	return nil
}
