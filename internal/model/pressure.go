package model

// PressureFlag is the three-tier risk classification for a single expense
// relative to income.
type PressureFlag string

const (
	FlagHealthy PressureFlag = "Healthy"
	FlagRisky   PressureFlag = "Risky"
	FlagDanger  PressureFlag = "Danger"
)

// ExpenseItem is a named expense amount. Classifier input is an ordered
// slice rather than a map so that ties in share keep caller order.
type ExpenseItem struct {
	Name   string
	Amount Money
}

// ExpensePressureRow is one classified expense, ranked by its share of
// income.
type ExpensePressureRow struct {
	Name          string
	Amount        Money
	ShareOfIncome float64 // 0-1; zero when income is non-positive
	Flag          PressureFlag
}
