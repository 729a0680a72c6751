package engine

import "stucash/internal/model"

// ProjectTimeline folds a phase sequence into a running-balance report.
//
// Phases are processed strictly left to right: each phase's end balance is
// the next phase's starting point, so order is significant. The minimum
// tracks its first occurrence on ties.
func ProjectTimeline(startingCash model.Money, phases []model.TimelinePhase) model.TimelineReport {
	report := model.TimelineReport{
		StartingCash:    startingCash,
		MinEndBalance:   startingCash,
		MaxEndBalance:   startingCash,
		FinalEndBalance: startingCash,
		WorstPhaseIndex: -1,
	}

	if len(phases) == 0 {
		return report
	}

	report.Phases = make([]model.PhaseProjection, 0, len(phases))

	balance := startingCash
	for i, ph := range phases {
		net := ph.MonthlyIncome - ph.MonthlyExpenses
		impact := net*model.Money(ph.Months) - ph.OneTimeCosts
		balance += impact

		report.Phases = append(report.Phases, model.PhaseProjection{
			Phase:       ph,
			MonthlyNet:  net,
			PhaseImpact: impact,
			EndBalance:  balance,
		})

		if i == 0 || balance < report.MinEndBalance {
			report.MinEndBalance = balance
			report.WorstPhaseIndex = i
		}
		if i == 0 || balance > report.MaxEndBalance {
			report.MaxEndBalance = balance
		}
	}
	report.FinalEndBalance = balance

	if report.MinEndBalance < 0 {
		report.RequiredExtraCash = -report.MinEndBalance
	}

	worst := report.Phases[report.WorstPhaseIndex]
	report.NegativeMonthlyNet = worst.MonthlyNet < 0
	report.OneTimeCostDip = worst.Phase.OneTimeCosts > 0
	report.RecoversLater = report.MinEndBalance < 0 && report.FinalEndBalance > 0

	return report
}
