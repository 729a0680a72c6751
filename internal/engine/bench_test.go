package engine

import (
	"testing"

	"stucash/internal/model"
)

func BenchmarkProjectTimeline(b *testing.B) {
	phases := make([]model.TimelinePhase, 48)
	for i := range phases {
		phases[i] = model.TimelinePhase{
			Name:            "phase",
			Months:          3,
			MonthlyIncome:   model.Money(1000_00 + i*10_00),
			MonthlyExpenses: 1100_00,
			OneTimeCosts:    model.Money(i%4) * 250_00,
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := ProjectTimeline(2000_00, phases)
		_ = r
	}
}

func BenchmarkHealthScore(b *testing.B) {
	for i := 0; i < b.N; i++ {
		hs := HealthScore(1000_00, 600_00, 350_00, 400_00)
		_ = hs
	}
}
