package engine

import (
	"math"

	"stucash/internal/model"
)

// Health score weights and thresholds.
const (
	balanceMaxPoints = 40
	rentMaxPoints    = 25
	savingsMaxPoints = 20
	bufferMaxPoints  = 15

	rentRatioFull = 0.35 // full rent points at or below this ratio
	rentRatioZero = 0.60 // zero rent points at or above this ratio
	savingsFull   = 0.10 // full savings points at this savings rate
)

// HealthScore computes the weighted 0-100 financial health breakdown.
//
// With non-positive income the score is zero across the board and both
// ratios stay nil: division by a non-positive income is never attempted.
func HealthScore(income, expenses, rent, balance model.Money) model.HealthScoreBreakdown {
	var hs model.HealthScoreBreakdown

	if income <= 0 {
		return hs
	}

	rentRatio := float64(rent) / float64(income)
	savingsRate := float64(balance) / float64(income)
	hs.RentRatio = &rentRatio
	hs.SavingsRate = &savingsRate

	// Binary credit for a positive balance, no partial score.
	if balance > 0 {
		hs.BalancePoints = balanceMaxPoints
	}

	// Linear from full credit at 35% down to zero at 60%.
	hs.RentPoints = int(math.Round(Clamp(
		rentMaxPoints*(rentRatioZero-rentRatio)/(rentRatioZero-rentRatioFull),
		0, rentMaxPoints)))

	// Linear up to full credit at a 10% savings rate.
	hs.SavingsPoints = int(math.Round(Clamp(
		savingsMaxPoints*(savingsRate/savingsFull),
		0, savingsMaxPoints)))

	if expenses > 0 {
		hs.BufferMonths = float64(balance) / float64(expenses)
	}
	hs.BufferPoints = int(math.Round(Clamp(
		bufferMaxPoints*hs.BufferMonths,
		0, bufferMaxPoints)))

	sum := hs.BalancePoints + hs.RentPoints + hs.SavingsPoints + hs.BufferPoints
	hs.Score = int(Clamp(float64(sum), 0, 100))

	return hs
}
