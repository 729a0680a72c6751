package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"stucash/internal/model"
)

// Plan is the user's multi-phase cash-flow plan plus debt inputs, loaded
// from a TOML plan file. Money values in the file are whole currency
// units and are converted to minor units on load.
type Plan struct {
	StartingCash model.Money
	Phases       []model.TimelinePhase
	Debt         model.DebtProfile

	// Debt command inputs.
	MonthlyContribution model.Money
	TermYears           float64
}

type rawPlan struct {
	Plan   rawPlanHeader `toml:"plan"`
	Phases []rawPhase    `toml:"phase"`
	Debt   rawDebt       `toml:"debt"`
}

type rawPlanHeader struct {
	StartingCash float64 `toml:"starting_cash"`
}

type rawPhase struct {
	Name            string  `toml:"name"`
	Months          int     `toml:"months"`
	MonthlyIncome   float64 `toml:"monthly_income"`
	MonthlyExpenses float64 `toml:"monthly_expenses"`
	OneTimeCosts    float64 `toml:"one_time_costs"`
}

type rawDebt struct {
	TuitionTotal         float64 `toml:"tuition_total"`
	LivingTotal          float64 `toml:"living_total"`
	ScholarshipsTotal    float64 `toml:"scholarships_total"`
	LoanPrincipal        float64 `toml:"loan_principal"`
	AnnualRatePct        float64 `toml:"annual_rate_pct"`
	ExpectedSalaryAnnual float64 `toml:"expected_salary_annual"`
	MonthlyContribution  float64 `toml:"monthly_contribution"`
	TermYears            float64 `toml:"term_years"`
}

// PlanPath returns the plan file location: explicit path if given,
// config override second, default under the config dir last.
func PlanPath(explicit string, cfg Config) string {
	if explicit != "" {
		return explicit
	}
	if cfg.General.PlanFile != "" {
		return cfg.General.PlanFile
	}
	return filepath.Join(Dir(), "plan.toml")
}

// LoadPlan reads and validates a plan file.
func LoadPlan(path string) (Plan, error) {
	var plan Plan

	data, err := os.ReadFile(path)
	if err != nil {
		return plan, fmt.Errorf("reading plan: %w", err)
	}

	var raw rawPlan
	if err := toml.Unmarshal(data, &raw); err != nil {
		return plan, fmt.Errorf("parsing plan: %w", err)
	}

	plan.StartingCash = model.FromDollars(raw.Plan.StartingCash)

	for i, rp := range raw.Phases {
		if rp.Months < 1 {
			return plan, fmt.Errorf("phase %d (%q): months must be at least 1", i+1, rp.Name)
		}
		if rp.MonthlyIncome < 0 || rp.MonthlyExpenses < 0 || rp.OneTimeCosts < 0 {
			return plan, fmt.Errorf("phase %d (%q): money fields must be non-negative", i+1, rp.Name)
		}
		plan.Phases = append(plan.Phases, model.TimelinePhase{
			Name:            rp.Name,
			Months:          rp.Months,
			MonthlyIncome:   model.FromDollars(rp.MonthlyIncome),
			MonthlyExpenses: model.FromDollars(rp.MonthlyExpenses),
			OneTimeCosts:    model.FromDollars(rp.OneTimeCosts),
		})
	}

	if raw.Debt.AnnualRatePct < 0 {
		return plan, fmt.Errorf("debt: annual_rate_pct must be non-negative")
	}

	plan.Debt = model.DebtProfile{
		TuitionTotal:         model.FromDollars(raw.Debt.TuitionTotal),
		LivingTotal:          model.FromDollars(raw.Debt.LivingTotal),
		ScholarshipsTotal:    model.FromDollars(raw.Debt.ScholarshipsTotal),
		LoanPrincipal:        model.FromDollars(raw.Debt.LoanPrincipal),
		AnnualRatePct:        raw.Debt.AnnualRatePct,
		ExpectedSalaryAnnual: model.FromDollars(raw.Debt.ExpectedSalaryAnnual),
	}
	plan.MonthlyContribution = model.FromDollars(raw.Debt.MonthlyContribution)
	plan.TermYears = raw.Debt.TermYears

	return plan, nil
}
