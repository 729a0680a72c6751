// Package session holds the in-process application state for one
// interactive user: a bounded history of saved calculations. Nothing here
// is persisted; snapshots live only as long as the process.
package session

import (
	"time"

	"github.com/google/uuid"

	"stucash/internal/engine"
	"stucash/internal/model"
)

// HistoryCap bounds the saved-calculation history. Saving past the cap
// evicts the oldest snapshot, ring-buffer style.
const HistoryCap = 12

// Session owns the saved-calculation history. It is designed for a
// single interactive user; callers that share one across goroutines need
// their own locking.
type Session struct {
	calcs []model.SavedCalculation
}

// New creates an empty session.
func New() *Session {
	return &Session{}
}

// Save snapshots a completed calculation and appends it to the history.
// The returned snapshot is immutable: it is never modified afterwards,
// only evicted once HistoryCap newer snapshots exist.
func (s *Session) Save(city, month string, f model.MonthlyFinancials, rent model.Money) model.SavedCalculation {
	calc := model.SavedCalculation{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now(),
		City:       city,
		Month:      month,
		Financials: f,
		Health:     engine.HealthScore(f.Income, f.Expenses, rent, f.Balance),
		Rent:       rent,
	}
	calc.Label = model.ScoreLabelFor(calc.Health.Score)

	s.calcs = append(s.calcs, calc)
	if len(s.calcs) > HistoryCap {
		s.calcs = s.calcs[len(s.calcs)-HistoryCap:]
	}

	return calc
}

// List returns the saved history, oldest first. The slice is a copy;
// mutating it cannot touch the stored snapshots.
func (s *Session) List() []model.SavedCalculation {
	out := make([]model.SavedCalculation, len(s.calcs))
	copy(out, s.calcs)
	return out
}

// Get returns a saved calculation by id.
func (s *Session) Get(id string) (model.SavedCalculation, bool) {
	for _, c := range s.calcs {
		if c.ID == id {
			return c, true
		}
	}
	return model.SavedCalculation{}, false
}

// Len returns the number of saved calculations.
func (s *Session) Len() int {
	return len(s.calcs)
}
