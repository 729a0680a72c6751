package pipeline

import (
	"sort"
	"strings"

	"stucash/internal/engine"
	"stucash/internal/model"
)

// Financials derives the monthly summary for one cost record: income is
// campus job plus stipend, expenses are the six essential categories.
func Financials(r model.CostRecord) model.MonthlyFinancials {
	income := r.CampusJobIncome + r.StipendIncome
	expenses := r.Rent + r.Utilities + r.Food + r.Transport + r.PhoneInternet + r.MiscBasic
	return engine.Financials(income, expenses)
}

// ExpenseItems returns a record's expenses as an ordered slice, in the
// dataset's canonical column order so pressure ties rank predictably.
func ExpenseItems(r model.CostRecord) []model.ExpenseItem {
	return []model.ExpenseItem{
		{Name: "rent", Amount: r.Rent},
		{Name: "utilities", Amount: r.Utilities},
		{Name: "food", Amount: r.Food},
		{Name: "transport", Amount: r.Transport},
		{Name: "phone_internet", Amount: r.PhoneInternet},
		{Name: "misc_basic", Amount: r.MiscBasic},
	}
}

// HealthFor scores one cost record.
func HealthFor(r model.CostRecord) model.HealthScoreBreakdown {
	f := Financials(r)
	return engine.HealthScore(f.Income, f.Expenses, r.Rent, f.Balance)
}

// FilterCity returns records for a city (case-insensitive).
func FilterCity(records []model.CostRecord, city string) []model.CostRecord {
	var out []model.CostRecord
	for _, r := range records {
		if strings.EqualFold(r.City, city) {
			out = append(out, r)
		}
	}
	return out
}

// FilterMonth returns records for a "YYYY-MM" month label.
func FilterMonth(records []model.CostRecord, label string) []model.CostRecord {
	var out []model.CostRecord
	for _, r := range records {
		if r.Label == label {
			out = append(out, r)
		}
	}
	return out
}

// FindRecord returns the record for a city/month pair, if present.
func FindRecord(records []model.CostRecord, city, label string) (model.CostRecord, bool) {
	for _, r := range records {
		if r.Label == label && strings.EqualFold(r.City, city) {
			return r, true
		}
	}
	return model.CostRecord{}, false
}

// Cities returns the distinct cities, sorted.
func Cities(records []model.CostRecord) []string {
	seen := make(map[string]struct{})
	var cities []string
	for _, r := range records {
		if _, ok := seen[r.City]; !ok {
			seen[r.City] = struct{}{}
			cities = append(cities, r.City)
		}
	}
	sort.Strings(cities)
	return cities
}

// MonthsForCity returns the distinct month labels for a city, sorted
// ascending (labels are YYYY-MM so lexical order is chronological).
func MonthsForCity(records []model.CostRecord, city string) []string {
	seen := make(map[string]struct{})
	var months []string
	for _, r := range FilterCity(records, city) {
		if _, ok := seen[r.Label]; !ok {
			seen[r.Label] = struct{}{}
			months = append(months, r.Label)
		}
	}
	sort.Strings(months)
	return months
}

// CityStats holds per-city averages over the historical dataset.
type CityStats struct {
	City          string
	Months        int
	AvgIncome     model.Money
	AvgExpenses   model.Money
	AvgBalance    model.Money
	DeficitShare  float64 // fraction of months in deficit
	AvgScore      int
}

// CompareCities aggregates every city's history into comparable averages,
// sorted by average balance descending.
func CompareCities(records []model.CostRecord) []CityStats {
	byCity := make(map[string]*CityStats)

	for _, r := range records {
		f := Financials(r)

		cs, ok := byCity[r.City]
		if !ok {
			cs = &CityStats{City: r.City}
			byCity[r.City] = cs
		}

		cs.Months++
		cs.AvgIncome += f.Income
		cs.AvgExpenses += f.Expenses
		cs.AvgBalance += f.Balance
		if f.Status == model.StatusDeficit {
			cs.DeficitShare++
		}
		cs.AvgScore += HealthFor(r).Score
	}

	stats := make([]CityStats, 0, len(byCity))
	for _, cs := range byCity {
		n := model.Money(cs.Months)
		cs.AvgIncome /= n
		cs.AvgExpenses /= n
		cs.AvgBalance /= n
		cs.DeficitShare /= float64(cs.Months)
		cs.AvgScore /= cs.Months
		stats = append(stats, *cs)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].AvgBalance != stats[j].AvgBalance {
			return stats[i].AvgBalance > stats[j].AvgBalance
		}
		return stats[i].City < stats[j].City
	})

	return stats
}

// TrendPoint is one month in a city's balance history.
type TrendPoint struct {
	Label   string
	Balance model.Money
}

// BalanceTrend returns a city's balance series in chronological order.
func BalanceTrend(records []model.CostRecord, city string) []TrendPoint {
	cityRecs := FilterCity(records, city)
	sort.Slice(cityRecs, func(i, j int) bool {
		return cityRecs[i].Month.Before(cityRecs[j].Month)
	})

	points := make([]TrendPoint, 0, len(cityRecs))
	for _, r := range cityRecs {
		points = append(points, TrendPoint{Label: r.Label, Balance: Financials(r).Balance})
	}
	return points
}

// RollingMean smooths a series with a trailing window. The first
// window-1 points average whatever history exists so the output keeps
// the input's length.
func RollingMean(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}

	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}
