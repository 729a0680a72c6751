package engine

import "stucash/internal/model"

// EvaluateScenario recomputes the monthly financials under a perturbation
// and reports each value alongside its delta versus the baseline.
//
// The perturbed rent is floored at zero; no other field is clamped.
func EvaluateScenario(base model.ScenarioBase, p model.Perturbation) model.ScenarioResult {
	extraWages := model.FromDollars(p.ExtraHours * base.WeeksPerMonth * base.HourlyWage.Dollars())

	newRent := base.Rent + p.RentDelta
	if newRent < 0 {
		newRent = 0
	}

	income := base.Financials.Income + extraWages + p.ExtraIncome
	expenses := base.Financials.Expenses - base.Rent + newRent
	balance := income - expenses

	return model.ScenarioResult{
		Income:   model.ScenarioMetric{Value: income, Delta: income - base.Financials.Income},
		Expenses: model.ScenarioMetric{Value: expenses, Delta: expenses - base.Financials.Expenses},
		Balance:  model.ScenarioMetric{Value: balance, Delta: balance - base.Financials.Balance},
		Status:   StatusOf(balance),
	}
}
