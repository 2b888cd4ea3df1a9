package timeentry

import (
	"time"
)

// CalcStatus tracks the pay-calculation state of a closed entry.
// Entries close as pending; the shift-close trigger moves them to
// calculated or failed. Failed entries are terminal for the trigger and
// are picked up by the reconciliation job instead of being retried inline.
type CalcStatus string

const (
	CalcPending    CalcStatus = "pending"
	CalcCalculated CalcStatus = "calculated"
	CalcFailed     CalcStatus = "failed"
)

type TimeEntry struct {
	ID                 string
	BusinessID         string
	LocationID         string
	UserID             string
	ClockInAt          time.Time
	ClockOutAt         *time.Time
	CalculatedHours    *float64
	CalculatedPayCents *int64
	CalcStatus         CalcStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	LocationTimezone *string
}

func (e TimeEntry) Closed() bool {
	return e.ClockOutAt != nil
}

// NeedsCalculation reports whether closing (or editing) this entry should
// fire the pay calculation: the clock-out is set and no calculated pay
// exists yet. Already-calculated entries require the explicit
// recalculation path, never an automatic re-run.
func (e TimeEntry) NeedsCalculation() bool {
	return e.ClockOutAt != nil && e.CalculatedPayCents == nil
}
