package timeentry

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access for time entries.
// All methods include businessID to prevent cross-tenant data access.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id string, businessID string) (TimeEntry, error)
	// GetOpenEntry returns the worker's current open entry, if any.
	GetOpenEntry(ctx context.Context, userID string, businessID string) (TimeEntry, error)
	Update(ctx context.Context, entry TimeEntry) error
	List(ctx context.Context, businessID string, filter EntryFilter) ([]TimeEntry, int64, error)
	// ListForUserWindow returns entries whose clock-in falls in [from, to).
	ListForUserWindow(ctx context.Context, userID string, businessID string, from, to time.Time) ([]TimeEntry, error)
	// ListUncalculated returns closed entries still awaiting calculation
	// (pending or failed), oldest first, for the reconciliation job.
	ListUncalculated(ctx context.Context, limit int) ([]TimeEntry, error)
	// SetCalculation writes the computed hours/pay and status back onto
	// the entry.
	SetCalculation(ctx context.Context, id string, hours float64, payCents int64, status CalcStatus) error
	SetCalcStatus(ctx context.Context, id string, status CalcStatus) error
}
