package model

// HealthScoreBreakdown holds the 0-100 financial health score and its
// weighted sub-components. RentRatio and SavingsRate are nil when income
// is non-positive; a nil ratio is "undefined", distinct from a legitimate
// zero.
type HealthScoreBreakdown struct {
	BalancePoints int // 0-40, binary on balance sign
	RentPoints    int // 0-25, linear between 35% and 60% rent ratio
	SavingsPoints int // 0-20, linear up to a 10% savings rate
	BufferPoints  int // 0-15, linear up to one month of buffer

	RentRatio    *float64
	SavingsRate  *float64
	BufferMonths float64

	Score int // clamp(sum of the four point fields, 0, 100)
}

// ScoreLabel classifies a health score into a coarse band.
type ScoreLabel string

const (
	LabelExcellent ScoreLabel = "Excellent"
	LabelGood      ScoreLabel = "Good"
	LabelRisky     ScoreLabel = "Risky"
	LabelCritical  ScoreLabel = "Critical"
)

// ScoreLabelFor returns the band for a score. Thresholds are descending;
// first match wins.
func ScoreLabelFor(score int) ScoreLabel {
	switch {
	case score >= 80:
		return LabelExcellent
	case score >= 60:
		return LabelGood
	case score >= 40:
		return LabelRisky
	default:
		return LabelCritical
	}
}
