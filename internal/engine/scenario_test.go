package engine

import (
	"testing"

	"stucash/internal/model"
)

func baseScenario() model.ScenarioBase {
	return model.ScenarioBase{
		Financials:    Financials(1200_00, 1100_00),
		HourlyWage:    15_00,
		WeeksPerMonth: 4.0,
		Rent:          500_00,
	}
}

func TestEvaluateScenarioExtraHours(t *testing.T) {
	r := EvaluateScenario(baseScenario(), model.Perturbation{ExtraHours: 5})

	// 5 h/wk * 4 wk * 15 = 300 extra income.
	if r.Income.Value != 1500_00 || r.Income.Delta != 300_00 {
		t.Fatalf("Income = %+v, want value 150000 delta 30000", r.Income)
	}
	if r.Expenses.Delta != 0 {
		t.Errorf("Expenses delta = %d, want 0", r.Expenses.Delta)
	}
	if r.Balance.Value != 400_00 || r.Balance.Delta != 300_00 {
		t.Errorf("Balance = %+v, want value 40000 delta 30000", r.Balance)
	}
	if r.Status != model.StatusSurplus {
		t.Errorf("Status = %v, want Surplus", r.Status)
	}
}

func TestEvaluateScenarioRentDelta(t *testing.T) {
	r := EvaluateScenario(baseScenario(), model.Perturbation{RentDelta: -150_00})

	if r.Expenses.Value != 950_00 || r.Expenses.Delta != -150_00 {
		t.Fatalf("Expenses = %+v, want value 95000 delta -15000", r.Expenses)
	}
	if r.Balance.Delta != 150_00 {
		t.Errorf("Balance delta = %d, want 15000", r.Balance.Delta)
	}
}

func TestEvaluateScenarioRentFloorsAtZero(t *testing.T) {
	// Rent is 500; a -800 delta floors perturbed rent at 0, not -300.
	r := EvaluateScenario(baseScenario(), model.Perturbation{RentDelta: -800_00})

	if r.Expenses.Value != 600_00 {
		t.Fatalf("Expenses = %d, want 60000 (rent floored at zero)", r.Expenses.Value)
	}
}

func TestEvaluateScenarioCombined(t *testing.T) {
	r := EvaluateScenario(baseScenario(), model.Perturbation{
		ExtraHours:  2,
		RentDelta:   100_00,
		ExtraIncome: 50_00,
	})

	// income: 1200 + 2*4*15 + 50 = 1370; expenses: 1100 + 100 = 1200.
	if r.Income.Value != 1370_00 {
		t.Errorf("Income = %d, want 137000", r.Income.Value)
	}
	if r.Expenses.Value != 1200_00 {
		t.Errorf("Expenses = %d, want 120000", r.Expenses.Value)
	}
	if r.Balance.Value != 170_00 || r.Balance.Delta != 70_00 {
		t.Errorf("Balance = %+v, want value 17000 delta 7000", r.Balance)
	}
}

func TestEvaluateScenarioNoPerturbationIsIdentity(t *testing.T) {
	base := baseScenario()
	r := EvaluateScenario(base, model.Perturbation{})

	if r.Income.Delta != 0 || r.Expenses.Delta != 0 || r.Balance.Delta != 0 {
		t.Fatalf("zero perturbation produced non-zero deltas: %+v", r)
	}
	if r.Income.Value != base.Financials.Income {
		t.Errorf("Income = %d, want baseline %d", r.Income.Value, base.Financials.Income)
	}
}
