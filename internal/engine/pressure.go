package engine

import (
	"sort"

	"stucash/internal/model"
)

// Pressure band boundaries, inclusive on the lower side: a share of
// exactly 0.25 is Healthy, exactly 0.35 is Risky.
const (
	pressureHealthyMax = 0.25
	pressureRiskyMax   = 0.35
)

// PressureFlagFor classifies an expense-to-income share.
func PressureFlagFor(share float64) model.PressureFlag {
	switch {
	case share <= pressureHealthyMax:
		return model.FlagHealthy
	case share <= pressureRiskyMax:
		return model.FlagRisky
	default:
		return model.FlagDanger
	}
}

// ClassifyPressure ranks expenses by their share of income, highest
// pressure first. Ties keep input order. With non-positive income every
// share is zero. An empty input yields an empty, non-nil result.
func ClassifyPressure(income model.Money, items []model.ExpenseItem) []model.ExpensePressureRow {
	rows := make([]model.ExpensePressureRow, 0, len(items))

	for _, it := range items {
		share := 0.0
		if income > 0 {
			share = float64(it.Amount) / float64(income)
		}
		rows = append(rows, model.ExpensePressureRow{
			Name:          it.Name,
			Amount:        it.Amount,
			ShareOfIncome: share,
			Flag:          PressureFlagFor(share),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ShareOfIncome > rows[j].ShareOfIncome
	})

	return rows
}
