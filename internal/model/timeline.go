package model

// TimelinePhase is one contiguous span of a multi-stage cash-flow plan:
// constant monthly income/expenses over a fixed number of months, plus an
// optional one-time cost paid within the phase.
type TimelinePhase struct {
	Name            string
	Months          int
	MonthlyIncome   Money
	MonthlyExpenses Money
	OneTimeCosts    Money
}

// PhaseProjection is the derived trajectory entry for one phase, computed
// strictly in sequence order: each EndBalance feeds the next phase.
type PhaseProjection struct {
	Phase       TimelinePhase
	MonthlyNet  Money
	PhaseImpact Money
	EndBalance  Money
}

// TimelineReport summarizes a projected phase sequence.
//
// With an empty phase list there is no trajectory: Min/Max/Final all equal
// the starting cash and WorstPhaseIndex is -1.
type TimelineReport struct {
	StartingCash Money
	Phases       []PhaseProjection

	MinEndBalance   Money
	MaxEndBalance   Money
	FinalEndBalance Money
	WorstPhaseIndex int // first phase producing the minimum; -1 when empty

	// Advisory decision rules.
	RequiredExtraCash  Money // abs(min) when min < 0, else 0
	NegativeMonthlyNet bool  // worst phase burns cash month over month
	OneTimeCostDip     bool  // worst phase carried a one-time cost
	RecoversLater      bool  // dips below zero but ends positive
}
