package engine

import (
	"math"
	"testing"

	"stucash/internal/model"
)

func TestMonthlyPaymentInterestFree(t *testing.T) {
	// 10,000 over 10 years, no interest: straight line 83.33/mo.
	got := MonthlyPayment(10_000_00, 0, 10)
	if got != 83_33 {
		t.Fatalf("MonthlyPayment = %d, want 8333", got)
	}
}

func TestMonthlyPaymentStandardAmortization(t *testing.T) {
	// 10,000 at 6% over 10 years: 111.02/mo by the closed form.
	got := MonthlyPayment(10_000_00, 6.0, 10)
	if got < 111_01 || got > 111_03 {
		t.Fatalf("MonthlyPayment = %d, want ~11102", got)
	}
}

func TestMonthlyPaymentDegenerate(t *testing.T) {
	if got := MonthlyPayment(0, 6.0, 10); got != 0 {
		t.Errorf("zero principal: payment = %d, want 0", got)
	}
	if got := MonthlyPayment(-500_00, 6.0, 10); got != 0 {
		t.Errorf("negative principal: payment = %d, want 0", got)
	}
	if got := MonthlyPayment(10_000_00, 6.0, 0); got != 0 {
		t.Errorf("zero term: payment = %d, want 0", got)
	}
}

func TestYearsToPayInterestFree(t *testing.T) {
	// 10,000 at 200/mo, no interest: 4.1667 years.
	h := YearsToPay(10_000_00, 0, 200_00)
	if h.NeverPaysOff {
		t.Fatal("unexpected NeverPaysOff for interest-free loan")
	}
	if math.Abs(h.Years-10_000.0/(200*12)) > 1e-9 {
		t.Fatalf("Years = %v, want 4.1667", h.Years)
	}
}

func TestYearsToPayContributionEqualsInterest(t *testing.T) {
	// 10,000 at 6% accrues exactly 50/mo of interest; a 50/mo
	// contribution never touches the principal.
	h := YearsToPay(10_000_00, 6.0, 50_00)
	if !h.NeverPaysOff {
		t.Fatal("contribution == monthly interest must diverge")
	}
}

func TestYearsToPayContributionBelowInterest(t *testing.T) {
	h := YearsToPay(10_000_00, 6.0, 30_00)
	if !h.NeverPaysOff {
		t.Fatal("contribution below monthly interest must diverge")
	}
}

func TestYearsToPayConvergent(t *testing.T) {
	// 10,000 at 6%, 200/mo: -ln(0.75)/ln(1.005) = 57.68 months.
	h := YearsToPay(10_000_00, 6.0, 200_00)
	if h.NeverPaysOff {
		t.Fatal("unexpected NeverPaysOff")
	}
	if math.Abs(h.Years-4.807) > 0.01 {
		t.Fatalf("Years = %v, want ~4.807", h.Years)
	}
}

func TestYearsToPayDegenerate(t *testing.T) {
	if h := YearsToPay(0, 6.0, 200_00); h.Years != 0 || h.NeverPaysOff {
		t.Errorf("zero principal: %+v, want zero horizon", h)
	}
	if h := YearsToPay(10_000_00, 6.0, 0); h.Years != 0 || h.NeverPaysOff {
		t.Errorf("zero contribution: %+v, want zero horizon", h)
	}
}

func TestDebtAtGraduation(t *testing.T) {
	base := model.DebtProfile{
		TuitionTotal:      30_000_00,
		LivingTotal:       18_000_00,
		ScholarshipsTotal: 12_000_00,
	}

	if got := DebtAtGraduation(base); got != 36_000_00 {
		t.Errorf("net cost = %d, want 3600000", got)
	}

	// An explicit loan principal replaces the net cost, it does not add.
	withLoan := base
	withLoan.LoanPrincipal = 20_000_00
	if got := DebtAtGraduation(withLoan); got != 20_000_00 {
		t.Errorf("loan override = %d, want 2000000", got)
	}

	// Scholarships above cost floor at zero, never negative debt.
	funded := base
	funded.ScholarshipsTotal = 60_000_00
	if got := DebtAtGraduation(funded); got != 0 {
		t.Errorf("over-funded = %d, want 0", got)
	}
}
