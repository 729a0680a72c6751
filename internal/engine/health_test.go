package engine

import (
	"math"
	"testing"

	"stucash/internal/model"
)

func TestHealthScoreReferenceVector(t *testing.T) {
	// income 1000, expenses 600, rent 350, balance 400
	hs := HealthScore(1000_00, 600_00, 350_00, 400_00)

	if hs.RentRatio == nil || math.Abs(*hs.RentRatio-0.35) > 1e-9 {
		t.Fatalf("RentRatio = %v, want 0.35", hs.RentRatio)
	}
	if hs.SavingsRate == nil || math.Abs(*hs.SavingsRate-0.40) > 1e-9 {
		t.Fatalf("SavingsRate = %v, want 0.40", hs.SavingsRate)
	}

	if hs.BalancePoints != 40 {
		t.Errorf("BalancePoints = %d, want 40", hs.BalancePoints)
	}
	// Exactly at the 35% boundary: full rent credit.
	if hs.RentPoints != 25 {
		t.Errorf("RentPoints = %d, want 25", hs.RentPoints)
	}
	// 40% savings rate clamps down to max credit.
	if hs.SavingsPoints != 20 {
		t.Errorf("SavingsPoints = %d, want 20", hs.SavingsPoints)
	}
	// 400/600 months of buffer -> round(15 * 0.667) = 10.
	if hs.BufferPoints != 10 {
		t.Errorf("BufferPoints = %d, want 10", hs.BufferPoints)
	}

	if hs.Score != 95 {
		t.Errorf("Score = %d, want 95", hs.Score)
	}
}

func TestHealthScoreNonPositiveIncome(t *testing.T) {
	for _, income := range []model.Money{0, -500_00} {
		hs := HealthScore(income, 600_00, 350_00, -600_00)

		if hs.Score != 0 {
			t.Errorf("income %d: Score = %d, want 0", income, hs.Score)
		}
		if hs.BalancePoints != 0 || hs.RentPoints != 0 || hs.SavingsPoints != 0 || hs.BufferPoints != 0 {
			t.Errorf("income %d: point fields not all zero: %+v", income, hs)
		}
		if hs.RentRatio != nil || hs.SavingsRate != nil {
			t.Errorf("income %d: ratios should stay undefined, got %+v", income, hs)
		}
	}
}

func TestHealthScoreRentBands(t *testing.T) {
	cases := []struct {
		name string
		rent int64 // cents, against income 1000.00
		want int
	}{
		{"below full-credit boundary", 200_00, 25},
		{"at full-credit boundary", 350_00, 25},
		{"midpoint", 475_00, 13}, // ratio 0.475 -> 25*(0.125/0.25) = 12.5, rounds to 13
		{"at zero boundary", 600_00, 0},
		{"above zero boundary", 800_00, 0},
	}

	for _, tc := range cases {
		hs := HealthScore(1000_00, 900_00, model.Money(tc.rent), 100_00)
		if hs.RentPoints != tc.want {
			t.Errorf("%s: RentPoints = %d, want %d", tc.name, hs.RentPoints, tc.want)
		}
	}
}

func TestHealthScoreZeroExpensesBuffer(t *testing.T) {
	hs := HealthScore(1000_00, 0, 0, 1000_00)
	if hs.BufferMonths != 0 {
		t.Errorf("BufferMonths = %v, want 0 with zero expenses", hs.BufferMonths)
	}
	if hs.BufferPoints != 0 {
		t.Errorf("BufferPoints = %d, want 0 with zero expenses", hs.BufferPoints)
	}
}

func TestScoreBandsClampTo100(t *testing.T) {
	// Best case on every component: 40+25+20+15 = 100.
	hs := HealthScore(1000_00, 100_00, 0, 900_00)
	if hs.Score != 100 {
		t.Errorf("Score = %d, want 100", hs.Score)
	}
}
