package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/timeentry"
)

const reconcileBatchSize = 100

// PayrollJobs contains payroll-related cron jobs
type PayrollJobs struct {
	entryRepo  timeentry.TimeEntryRepository
	payrollSvc payroll.PayrollService
}

func NewPayrollJobs(entryRepo timeentry.TimeEntryRepository, payrollSvc payroll.PayrollService) *PayrollJobs {
	return &PayrollJobs{
		entryRepo:  entryRepo,
		payrollSvc: payrollSvc,
	}
}

// RegisterJobs registers all payroll-related cron jobs
func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.Register(Job{
		Name:    "reconcile_uncalculated_entries",
		Every:   15 * time.Minute,
		Timeout: 5 * time.Minute,
		Run:     j.ReconcileUncalculatedEntries,
	})
}

// ReconcileUncalculatedEntries re-runs the pay calculation for closed entries
// that never got calculated, including entries parked in failed state by the
// shift-close trigger. One bad entry does not block the rest of the batch.
func (j *PayrollJobs) ReconcileUncalculatedEntries(ctx context.Context) error {
	entries, err := j.entryRepo.ListUncalculated(ctx, reconcileBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list uncalculated entries: %w", err)
	}

	if len(entries) == 0 {
		return nil
	}

	slog.Info("Cron: Reconciling uncalculated entries", "count", len(entries))

	reconciled := 0
	for _, entry := range entries {
		if err := j.payrollSvc.Recalculate(ctx, entry); err != nil {
			slog.Error("Cron: Failed to reconcile entry",
				"entry_id", entry.ID,
				"business_id", entry.BusinessID,
				"error", err,
			)
			continue
		}
		reconciled++
	}

	slog.Info("Cron: Reconciliation finished", "reconciled", reconciled, "total", len(entries))
	return nil
}
