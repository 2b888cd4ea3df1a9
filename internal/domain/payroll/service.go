package payroll

import (
	"context"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/timeentry"
)

type PayrollService interface {
	// GetReport computes hours and pay over an arbitrary reporting window.
	// Interactive path: errors propagate to the caller.
	GetReport(ctx context.Context, req ReportRequest) (ReportResponse, error)

	// HandleShiftClose runs the calculation for a freshly closed entry,
	// persists hours/pay onto the entry and merges the daily summary.
	// Never returns an error: payroll failures must not fail a clock-out.
	HandleShiftClose(ctx context.Context, entry timeentry.TimeEntry)

	// Recalculate re-runs the shift-close calculation for a closed entry
	// that has no calculated pay yet. Used by the reconciliation job and
	// the manual recalculation path; errors propagate.
	Recalculate(ctx context.Context, entry timeentry.TimeEntry) error

	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
	ListDailySummaries(ctx context.Context, filter SummaryFilter) ([]DailySummaryResponse, error)
}
