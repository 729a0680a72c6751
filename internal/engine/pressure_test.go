package engine

import (
	"testing"

	"stucash/internal/model"
)

func TestPressureFlagBoundaries(t *testing.T) {
	cases := []struct {
		share float64
		want  model.PressureFlag
	}{
		{0.0, model.FlagHealthy},
		{0.25, model.FlagHealthy},
		{0.250001, model.FlagRisky},
		{0.35, model.FlagRisky},
		{0.350001, model.FlagDanger},
		{0.9, model.FlagDanger},
	}

	for _, tc := range cases {
		if got := PressureFlagFor(tc.share); got != tc.want {
			t.Errorf("PressureFlagFor(%v) = %v, want %v", tc.share, got, tc.want)
		}
	}
}

func TestClassifyPressureSortsDescending(t *testing.T) {
	rows := ClassifyPressure(1000_00, []model.ExpenseItem{
		{Name: "food", Amount: 200_00},
		{Name: "rent", Amount: 450_00},
		{Name: "transport", Amount: 60_00},
	})

	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].Name != "rent" || rows[1].Name != "food" || rows[2].Name != "transport" {
		t.Fatalf("order = [%s %s %s], want [rent food transport]",
			rows[0].Name, rows[1].Name, rows[2].Name)
	}
	if rows[0].Flag != model.FlagDanger {
		t.Errorf("rent flag = %v, want Danger", rows[0].Flag)
	}
	if rows[1].Flag != model.FlagHealthy {
		t.Errorf("food flag = %v, want Healthy", rows[1].Flag)
	}
}

func TestClassifyPressureTiesKeepInputOrder(t *testing.T) {
	rows := ClassifyPressure(1000_00, []model.ExpenseItem{
		{Name: "utilities", Amount: 100_00},
		{Name: "phone_internet", Amount: 100_00},
		{Name: "food", Amount: 100_00},
	})

	want := []string{"utilities", "phone_internet", "food"}
	for i, w := range want {
		if rows[i].Name != w {
			t.Fatalf("rows[%d] = %s, want %s (stable sort)", i, rows[i].Name, w)
		}
	}
}

func TestClassifyPressureZeroIncome(t *testing.T) {
	rows := ClassifyPressure(0, []model.ExpenseItem{{Name: "rent", Amount: 450_00}})

	if rows[0].ShareOfIncome != 0 {
		t.Errorf("share = %v, want 0 with zero income", rows[0].ShareOfIncome)
	}
	if rows[0].Flag != model.FlagHealthy {
		t.Errorf("flag = %v, want Healthy at zero share", rows[0].Flag)
	}
}

func TestClassifyPressureEmptyInput(t *testing.T) {
	rows := ClassifyPressure(1000_00, nil)
	if rows == nil {
		t.Fatal("rows = nil, want empty non-nil slice")
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}
}
