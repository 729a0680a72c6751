package model

// DebtProfile holds study-cost and loan inputs for the payoff engine.
// An explicit positive LoanPrincipal overrides the computed net study
// cost; the two are never summed.
type DebtProfile struct {
	TuitionTotal         Money
	LivingTotal          Money
	ScholarshipsTotal    Money
	LoanPrincipal        Money
	AnnualRatePct        float64
	ExpectedSalaryAnnual Money
}

// PayoffHorizon is the result of a payoff-time calculation. NeverPaysOff
// is set when the monthly contribution does not cover accruing interest,
// so the balance grows without bound. Callers must branch on it rather
// than format Years.
type PayoffHorizon struct {
	Years        float64
	NeverPaysOff bool
}
