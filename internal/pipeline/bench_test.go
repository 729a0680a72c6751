package pipeline

import (
	"fmt"
	"testing"

	"stucash/internal/model"
)

func syntheticRecords(cities, months int) []model.CostRecord {
	var recs []model.CostRecord
	for c := 0; c < cities; c++ {
		for m := 0; m < months; m++ {
			recs = append(recs, record(
				fmt.Sprintf("City-%02d", c),
				fmt.Sprintf("2024-%02d", m%12+1),
				900_00, 400_00, 850_00, 120_00, 320_00, 90_00, 60_00, 80_00,
			))
		}
	}
	return recs
}

func BenchmarkCompareCities(b *testing.B) {
	recs := syntheticRecords(40, 24)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		stats := CompareCities(recs)
		_ = stats
	}
}

func BenchmarkBalanceTrend(b *testing.B) {
	recs := syntheticRecords(40, 24)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trend := BalanceTrend(recs, "City-00")
		_ = trend
	}
}
