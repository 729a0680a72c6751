package engine

import (
	"testing"

	"stucash/internal/model"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		balance model.Money
		want    model.Status
	}{
		{1, model.StatusSurplus},
		{250_00, model.StatusSurplus},
		{0, model.StatusBreakEven},
		{-1, model.StatusDeficit},
		{-1200_00, model.StatusDeficit},
	}

	for _, tc := range cases {
		if got := StatusOf(tc.balance); got != tc.want {
			t.Errorf("StatusOf(%d) = %v, want %v", tc.balance, got, tc.want)
		}
	}
}

func TestFinancialsDerivesStatusFromBalance(t *testing.T) {
	f := Financials(1500_00, 1500_00)
	if f.Balance != 0 {
		t.Fatalf("Balance = %d, want 0", f.Balance)
	}
	if f.Status != model.StatusBreakEven {
		t.Fatalf("Status = %v, want BreakEven", f.Status)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %v, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %v, want 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42,0,10) = %v, want 10", got)
	}
}
