package model

// ScenarioBase holds the baseline financials plus the raw inputs needed to
// price a perturbation: the wage for extra work hours and the rent that a
// rent delta applies to.
type ScenarioBase struct {
	Financials    MonthlyFinancials
	HourlyWage    Money
	WeeksPerMonth float64
	Rent          Money
}

// Perturbation is a what-if adjustment applied to a baseline.
type Perturbation struct {
	ExtraHours  float64 // additional work hours per week
	RentDelta   Money   // may be negative; perturbed rent is floored at 0
	ExtraIncome Money   // flat additional monthly income
}

// ScenarioMetric is one projected value alongside its delta vs baseline.
type ScenarioMetric struct {
	Value Money
	Delta Money
}

// ScenarioResult holds the recomputed financials under a perturbation.
type ScenarioResult struct {
	Income   ScenarioMetric
	Expenses ScenarioMetric
	Balance  ScenarioMetric
	Status   Status
}
