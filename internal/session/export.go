package session

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"stucash/internal/model"
)

// ExportHeaders are the stable column names for exported calculations.
// Units: money columns are whole currency units, so sub-unit precision
// does not survive a round trip; ratio columns are 0-1 floats, empty
// when undefined; score is 0-100.
var ExportHeaders = []string{
	"id", "created_at", "city", "month",
	"total_income", "total_expenses", "balance", "status",
	"rent", "rent_ratio", "savings_rate", "buffer_months",
	"score", "label",
}

// ExportRow flattens one saved calculation into a CSV row matching
// ExportHeaders.
func ExportRow(c model.SavedCalculation) []string {
	ratio := func(r *float64) string {
		if r == nil {
			return ""
		}
		return strconv.FormatFloat(*r, 'f', 4, 64)
	}

	wholeUnits := func(m model.Money) string {
		return strconv.FormatInt(int64(math.Round(m.Dollars())), 10)
	}

	return []string{
		c.ID,
		c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		c.City,
		c.Month,
		wholeUnits(c.Financials.Income),
		wholeUnits(c.Financials.Expenses),
		wholeUnits(c.Financials.Balance),
		c.Financials.Status.String(),
		wholeUnits(c.Rent),
		ratio(c.Health.RentRatio),
		ratio(c.Health.SavingsRate),
		strconv.FormatFloat(c.Health.BufferMonths, 'f', 4, 64),
		strconv.Itoa(c.Health.Score),
		string(c.Label),
	}
}

// WriteCSV writes saved calculations as CSV, one row per calculation.
func WriteCSV(w io.Writer, calcs []model.SavedCalculation) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ExportHeaders); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, c := range calcs {
		if err := cw.Write(ExportRow(c)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
