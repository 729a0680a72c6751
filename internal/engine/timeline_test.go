package engine

import (
	"reflect"
	"testing"

	"stucash/internal/model"
)

func TestProjectTimelineFold(t *testing.T) {
	phases := []model.TimelinePhase{
		{Name: "Semester 1", Months: 4, MonthlyIncome: 800_00, MonthlyExpenses: 1100_00, OneTimeCosts: 500_00},
		{Name: "Internship", Months: 3, MonthlyIncome: 2400_00, MonthlyExpenses: 1200_00},
		{Name: "Semester 2", Months: 4, MonthlyIncome: 800_00, MonthlyExpenses: 1100_00},
	}

	r := ProjectTimeline(2000_00, phases)

	// 2000 - (300*4 + 500) = 300; 300 + 1200*3 = 3900; 3900 - 1200 = 2700
	wantEnds := []model.Money{300_00, 3900_00, 2700_00}
	for i, want := range wantEnds {
		if r.Phases[i].EndBalance != want {
			t.Errorf("phase %d EndBalance = %d, want %d", i, r.Phases[i].EndBalance, want)
		}
	}

	if r.MinEndBalance != 300_00 || r.WorstPhaseIndex != 0 {
		t.Errorf("min = %d at phase %d, want 30000 at phase 0", r.MinEndBalance, r.WorstPhaseIndex)
	}
	if r.MaxEndBalance != 3900_00 {
		t.Errorf("max = %d, want 390000", r.MaxEndBalance)
	}
	if r.FinalEndBalance != 2700_00 {
		t.Errorf("final = %d, want 270000", r.FinalEndBalance)
	}
}

func TestProjectTimelineOrderingSensitivity(t *testing.T) {
	burn := model.TimelinePhase{Name: "A", Months: 3, MonthlyIncome: 0, MonthlyExpenses: 100_00}
	earn := model.TimelinePhase{Name: "B", Months: 3, MonthlyIncome: 200_00, MonthlyExpenses: 0}

	forward := ProjectTimeline(0, []model.TimelinePhase{burn, earn})
	reversed := ProjectTimeline(0, []model.TimelinePhase{earn, burn})

	if forward.Phases[0].EndBalance != -300_00 || forward.Phases[1].EndBalance != 300_00 {
		t.Fatalf("forward ends = [%d %d], want [-30000 30000]",
			forward.Phases[0].EndBalance, forward.Phases[1].EndBalance)
	}

	// Same final balance either way; the worst phase shifts with order.
	if forward.FinalEndBalance != reversed.FinalEndBalance {
		t.Errorf("final differs: %d vs %d", forward.FinalEndBalance, reversed.FinalEndBalance)
	}
	if forward.WorstPhaseIndex != 0 {
		t.Errorf("forward worst phase = %d, want 0", forward.WorstPhaseIndex)
	}
	if reversed.MinEndBalance != 300_00 {
		t.Errorf("reversed min = %d, want 30000 (never dips)", reversed.MinEndBalance)
	}
}

func TestProjectTimelineAdvisories(t *testing.T) {
	phases := []model.TimelinePhase{
		{Name: "Arrival", Months: 2, MonthlyIncome: 0, MonthlyExpenses: 900_00, OneTimeCosts: 1500_00},
		{Name: "Working", Months: 6, MonthlyIncome: 1800_00, MonthlyExpenses: 1000_00},
	}

	r := ProjectTimeline(1000_00, phases)

	// 1000 - 1800 - 1500 = -2300, then -2300 + 4800 = 2500
	if r.MinEndBalance != -2300_00 {
		t.Fatalf("min = %d, want -230000", r.MinEndBalance)
	}
	if r.RequiredExtraCash != 2300_00 {
		t.Errorf("RequiredExtraCash = %d, want 230000", r.RequiredExtraCash)
	}
	if !r.NegativeMonthlyNet {
		t.Error("NegativeMonthlyNet = false, want true (worst phase burns cash)")
	}
	if !r.OneTimeCostDip {
		t.Error("OneTimeCostDip = false, want true")
	}
	if !r.RecoversLater {
		t.Error("RecoversLater = false, want true (ends positive)")
	}
}

func TestProjectTimelineMinTiesKeepFirst(t *testing.T) {
	flat := model.TimelinePhase{Name: "flat", Months: 1, MonthlyIncome: 100_00, MonthlyExpenses: 100_00}
	r := ProjectTimeline(500_00, []model.TimelinePhase{flat, flat, flat})

	if r.WorstPhaseIndex != 0 {
		t.Errorf("WorstPhaseIndex = %d, want 0 (first occurrence on ties)", r.WorstPhaseIndex)
	}
}

func TestProjectTimelineEmpty(t *testing.T) {
	r := ProjectTimeline(-750_00, nil)

	if len(r.Phases) != 0 {
		t.Fatalf("phases = %d, want 0", len(r.Phases))
	}
	if r.FinalEndBalance != -750_00 || r.MinEndBalance != -750_00 || r.MaxEndBalance != -750_00 {
		t.Errorf("empty projection should pin min/max/final to starting cash, got %+v", r)
	}
	if r.WorstPhaseIndex != -1 {
		t.Errorf("WorstPhaseIndex = %d, want -1", r.WorstPhaseIndex)
	}
}

func TestProjectTimelineIdempotent(t *testing.T) {
	phases := []model.TimelinePhase{
		{Name: "a", Months: 2, MonthlyIncome: 500_00, MonthlyExpenses: 700_00},
		{Name: "b", Months: 5, MonthlyIncome: 1500_00, MonthlyExpenses: 900_00, OneTimeCosts: 200_00},
	}

	first := ProjectTimeline(100_00, phases)
	second := ProjectTimeline(100_00, phases)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated projection over the same inputs produced different reports")
	}
}
