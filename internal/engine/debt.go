package engine

import (
	"math"

	"stucash/internal/model"
)

// monthlyRate converts an annual percentage rate to a monthly fraction.
func monthlyRate(annualRatePct float64) float64 {
	return annualRatePct / 12 / 100
}

// MonthlyPayment returns the fixed monthly payment that amortizes
// principal over the given term. Zero for a non-positive principal or
// term; straight-line for an interest-free loan. Rounding happens only on
// the final result, never mid-formula.
func MonthlyPayment(principal model.Money, annualRatePct, years float64) model.Money {
	n := math.Floor(years * 12)
	if principal <= 0 || n <= 0 {
		return 0
	}

	r := monthlyRate(annualRatePct)
	p := float64(principal)

	if r <= 0 {
		return model.Money(math.Round(p / n))
	}

	payment := p * r / (1 - math.Pow(1+r, -n))
	return model.Money(math.Round(payment))
}

// YearsToPay inverts the amortization formula for a fixed monthly
// contribution. When the contribution does not exceed the interest that
// accrues each month the balance never shrinks, and the result is the
// NeverPaysOff sentinel rather than a number.
func YearsToPay(principal model.Money, annualRatePct float64, contribution model.Money) model.PayoffHorizon {
	if principal <= 0 || contribution <= 0 {
		return model.PayoffHorizon{}
	}

	r := monthlyRate(annualRatePct)
	p := float64(principal)
	c := float64(contribution)

	if r <= 0 {
		return model.PayoffHorizon{Years: p / (c * 12)}
	}

	if c <= p*r {
		return model.PayoffHorizon{NeverPaysOff: true}
	}

	months := -math.Log(1-p*r/c) / math.Log(1+r)
	return model.PayoffHorizon{Years: months / 12}
}

// DebtAtGraduation returns the projected debt when studies end. An
// explicit positive loan principal overrides the computed net study cost;
// otherwise the net cost is tuition plus living minus scholarships,
// floored at zero.
func DebtAtGraduation(p model.DebtProfile) model.Money {
	if p.LoanPrincipal > 0 {
		return p.LoanPrincipal
	}
	net := p.TuitionTotal + p.LivingTotal - p.ScholarshipsTotal
	if net < 0 {
		return 0
	}
	return net
}
