// Package engine implements the pure financial projection calculations:
// monthly status, health scoring, expense pressure, phase timelines, debt
// amortization, and what-if scenarios. Every function is referentially
// transparent and holds no state.
package engine

import "stucash/internal/model"

// StatusOf classifies a balance. The break-even test is exact; Money is
// integer minor units so equality with zero is well-defined.
func StatusOf(balance model.Money) model.Status {
	switch {
	case balance > 0:
		return model.StatusSurplus
	case balance == 0:
		return model.StatusBreakEven
	default:
		return model.StatusDeficit
	}
}

// Financials derives a MonthlyFinancials record from totals.
func Financials(income, expenses model.Money) model.MonthlyFinancials {
	balance := income - expenses
	return model.MonthlyFinancials{
		Income:   income,
		Expenses: expenses,
		Balance:  balance,
		Status:   StatusOf(balance),
	}
}

// Clamp bounds n to [low, high]. low > high is the caller's problem.
func Clamp(n, low, high float64) float64 {
	if n < low {
		return low
	}
	if n > high {
		return high
	}
	return n
}
