package model

import "time"

// SavedCalculation is an immutable snapshot of a completed monthly
// calculation plus its health metrics, keyed by a generated id. Snapshots
// are append-only; they are never mutated after creation.
type SavedCalculation struct {
	ID        string
	CreatedAt time.Time

	City  string
	Month string // "YYYY-MM"

	Financials MonthlyFinancials
	Health     HealthScoreBreakdown
	Label      ScoreLabel

	Rent Money
}
