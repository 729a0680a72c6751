package pipeline

import (
	"math"
	"testing"
	"time"

	"stucash/internal/model"
)

func record(city, label string, campus, stipend, rent, utilities, food, transport, phone, misc model.Money) model.CostRecord {
	month, _ := time.Parse("2006-01", label)
	return model.CostRecord{
		City: city, Month: month, Label: label,
		CampusJobIncome: campus, StipendIncome: stipend,
		Rent: rent, Utilities: utilities, Food: food,
		Transport: transport, PhoneInternet: phone, MiscBasic: misc,
	}
}

func sampleRecords() []model.CostRecord {
	return []model.CostRecord{
		record("Boston", "2024-01", 900_00, 400_00, 850_00, 120_00, 320_00, 90_00, 60_00, 80_00),
		record("Boston", "2024-02", 900_00, 400_00, 850_00, 130_00, 310_00, 90_00, 60_00, 75_00),
		record("Toronto", "2024-01", 800_00, 500_00, 700_00, 100_00, 230_00, 110_00, 55_00, 70_00),
		record("Toronto", "2024-02", 800_00, 500_00, 700_00, 100_00, 240_00, 110_00, 55_00, 70_00),
	}
}

func TestFinancials(t *testing.T) {
	f := Financials(sampleRecords()[0])

	if f.Income != 1300_00 {
		t.Errorf("income = %d, want 130000", f.Income)
	}
	if f.Expenses != 1520_00 {
		t.Errorf("expenses = %d, want 152000", f.Expenses)
	}
	if f.Balance != -220_00 {
		t.Errorf("balance = %d, want -22000", f.Balance)
	}
	if f.Status != model.StatusDeficit {
		t.Errorf("status = %v, want Deficit", f.Status)
	}
}

func TestExpenseItemsCanonicalOrder(t *testing.T) {
	items := ExpenseItems(sampleRecords()[0])

	if len(items) != len(model.ExpenseColumns) {
		t.Fatalf("items = %d, want %d", len(items), len(model.ExpenseColumns))
	}
	for i, col := range model.ExpenseColumns {
		if items[i].Name != col {
			t.Errorf("items[%d] = %s, want %s", i, items[i].Name, col)
		}
	}
}

func TestFiltersAndListings(t *testing.T) {
	recs := sampleRecords()

	if got := len(FilterCity(recs, "boston")); got != 2 {
		t.Errorf("FilterCity(boston) = %d records, want 2 (case-insensitive)", got)
	}
	if got := len(FilterMonth(recs, "2024-01")); got != 2 {
		t.Errorf("FilterMonth(2024-01) = %d records, want 2", got)
	}

	cities := Cities(recs)
	if len(cities) != 2 || cities[0] != "Boston" || cities[1] != "Toronto" {
		t.Errorf("Cities = %v, want [Boston Toronto]", cities)
	}

	months := MonthsForCity(recs, "Toronto")
	if len(months) != 2 || months[0] != "2024-01" {
		t.Errorf("MonthsForCity = %v", months)
	}

	if _, ok := FindRecord(recs, "Boston", "2024-02"); !ok {
		t.Error("FindRecord missed an existing record")
	}
	if _, ok := FindRecord(recs, "Boston", "2030-01"); ok {
		t.Error("FindRecord matched a missing month")
	}
}

func TestCompareCities(t *testing.T) {
	stats := CompareCities(sampleRecords())

	if len(stats) != 2 {
		t.Fatalf("stats = %d, want 2", len(stats))
	}

	// Toronto runs a surplus every month, Boston a deficit; Toronto
	// must rank first on average balance.
	if stats[0].City != "Toronto" {
		t.Fatalf("top city = %s, want Toronto", stats[0].City)
	}
	if stats[0].DeficitShare != 0 {
		t.Errorf("Toronto deficit share = %v, want 0", stats[0].DeficitShare)
	}
	if stats[1].DeficitShare != 1 {
		t.Errorf("Boston deficit share = %v, want 1", stats[1].DeficitShare)
	}
	if stats[1].Months != 2 {
		t.Errorf("Boston months = %d, want 2", stats[1].Months)
	}

	// Boston averages: income 1300, expenses (1520+1515)/2 = 1517.50.
	if stats[1].AvgIncome != 1300_00 {
		t.Errorf("Boston avg income = %d, want 130000", stats[1].AvgIncome)
	}
	if stats[1].AvgExpenses != 1517_50 {
		t.Errorf("Boston avg expenses = %d, want 151750", stats[1].AvgExpenses)
	}
}

func TestBalanceTrendChronological(t *testing.T) {
	recs := sampleRecords()
	// Shuffle input order; trend must sort by month.
	recs[0], recs[1] = recs[1], recs[0]

	trend := BalanceTrend(recs, "Boston")
	if len(trend) != 2 {
		t.Fatalf("trend = %d points, want 2", len(trend))
	}
	if trend[0].Label != "2024-01" || trend[1].Label != "2024-02" {
		t.Errorf("trend order = [%s %s], want chronological", trend[0].Label, trend[1].Label)
	}
}

func TestRollingMean(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	got := RollingMean(values, 3)

	want := []float64{1, 1.5, 2, 3, 4}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("RollingMean[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if out := RollingMean(nil, 3); len(out) != 0 {
		t.Errorf("empty input should yield empty output, got %v", out)
	}
}
