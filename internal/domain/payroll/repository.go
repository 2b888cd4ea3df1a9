package payroll

import (
	"context"
	"time"
)

// DailySummaryRepository defines data access for per-day aggregates.
// All methods include businessID to prevent cross-tenant data access.
type DailySummaryRepository interface {
	GetByKey(ctx context.Context, userID string, date time.Time, businessID string) (DailySummary, error)
	// GetByKeyForUpdate locks the summary row for the duration of the
	// surrounding transaction. Must be called inside WithTransaction.
	GetByKeyForUpdate(ctx context.Context, userID string, date time.Time, businessID string) (DailySummary, error)
	Create(ctx context.Context, summary DailySummary) (DailySummary, error)
	Update(ctx context.Context, summary DailySummary) error
	List(ctx context.Context, businessID string, filter SummaryFilter) ([]DailySummary, error)
}

// OvertimeSettingsRepository persists business-level overtime configuration.
type OvertimeSettingsRepository interface {
	GetByBusinessID(ctx context.Context, businessID string) (OvertimeSettings, error)
	Upsert(ctx context.Context, settings OvertimeSettings) (OvertimeSettings, error)
}
