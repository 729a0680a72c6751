// Package model defines the plain value records shared across the engine,
// pipeline, and presentation layers.
package model

// Money is an amount in minor currency units (cents). Using integer minor
// units keeps balance arithmetic exact, so the break-even comparison
// against zero is well-defined.
type Money int64

// Dollars returns the amount in whole currency units.
func (m Money) Dollars() float64 {
	return float64(m) / 100
}

// FromDollars converts a whole-unit amount to Money, rounding half away
// from zero.
func FromDollars(d float64) Money {
	if d >= 0 {
		return Money(d*100 + 0.5)
	}
	return Money(d*100 - 0.5)
}

// Status classifies a monthly balance.
type Status int

const (
	StatusDeficit Status = iota
	StatusBreakEven
	StatusSurplus
)

// String returns the display name for a status.
func (s Status) String() string {
	switch s {
	case StatusSurplus:
		return "Surplus"
	case StatusBreakEven:
		return "Break-even"
	default:
		return "Deficit"
	}
}

// MonthlyFinancials holds the derived income/expense summary for one month.
// Status is always recomputed from Balance, never stored independently.
type MonthlyFinancials struct {
	Income   Money
	Expenses Money
	Balance  Money
	Status   Status
}
