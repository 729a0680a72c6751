package model

import "time"

// CostRecord is one row of the historical cost dataset: a city, a month,
// two income sources, and six essential expense categories.
type CostRecord struct {
	City  string
	Month time.Time // first day of the month
	Label string    // raw "YYYY-MM" as it appeared in the dataset

	CampusJobIncome Money
	StipendIncome   Money

	Rent          Money
	Utilities     Money
	Food          Money
	Transport     Money
	PhoneInternet Money
	MiscBasic     Money
}

// ExpenseColumns lists the dataset expense fields in canonical order.
var ExpenseColumns = []string{
	"rent", "utilities", "food", "transport", "phone_internet", "misc_basic",
}
