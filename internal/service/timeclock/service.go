package timeclock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/location"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/timeentry"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/database"
)

type TimeClockServiceImpl struct {
	db           *database.DB
	entryRepo    timeentry.TimeEntryRepository
	locationRepo location.LocationRepository
	payrollSvc   payroll.PayrollService
}

func NewTimeClockService(
	db *database.DB,
	entryRepo timeentry.TimeEntryRepository,
	locationRepo location.LocationRepository,
	payrollSvc payroll.PayrollService,
) timeentry.TimeClockService {
	return &TimeClockServiceImpl{
		db:           db,
		entryRepo:    entryRepo,
		locationRepo: locationRepo,
		payrollSvc:   payrollSvc,
	}
}

func getClaimsFromContext(ctx context.Context) (businessID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	businessID, ok := claims["business_id"].(string)
	if !ok || businessID == "" {
		return "", "", fmt.Errorf("business_id claim is missing or invalid")
	}

	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return businessID, userID, nil
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

// ClockIn implements timeentry.TimeClockService.
func (t *TimeClockServiceImpl) ClockIn(ctx context.Context, req timeentry.ClockInRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	businessID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if _, err := t.locationRepo.GetByID(ctx, req.LocationID, businessID); err != nil {
		if errors.Is(err, location.ErrLocationNotFound) {
			return timeentry.TimeEntryResponse{}, location.ErrLocationNotFound
		}
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get location: %w", err)
	}

	_, err = t.entryRepo.GetOpenEntry(ctx, userID, businessID)
	if err == nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrAlreadyClockedIn
	}
	if !errors.Is(err, timeentry.ErrEntryNotFound) && !errors.Is(err, pgx.ErrNoRows) {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to check open entry: %w", err)
	}

	entry := timeentry.TimeEntry{
		BusinessID: businessID,
		LocationID: req.LocationID,
		UserID:     userID,
		ClockInAt:  time.Now().UTC(),
		CalcStatus: timeentry.CalcPending,
	}

	created, err := t.entryRepo.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return mapEntryToResponse(created), nil
}

// ClockOut implements timeentry.TimeClockService. Setting the clock-out is
// the shift close: the entry is persisted first, then the payroll trigger
// fires. The trigger swallows its own failures, so a broken rate lookup can
// never bounce a worker's clock-out.
func (t *TimeClockServiceImpl) ClockOut(ctx context.Context) (timeentry.TimeEntryResponse, error) {
	businessID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := t.entryRepo.GetOpenEntry(ctx, userID, businessID)
	if err != nil {
		if errors.Is(err, timeentry.ErrEntryNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntryResponse{}, timeentry.ErrNotClockedIn
		}
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get open entry: %w", err)
	}

	nowUTC := time.Now().UTC()
	entry.ClockOutAt = &nowUTC

	if err := t.entryRepo.Update(ctx, entry); err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to update time entry: %w", err)
	}

	t.payrollSvc.HandleShiftClose(ctx, entry)

	updated, err := t.entryRepo.GetByID(ctx, entry.ID, businessID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get updated time entry: %w", err)
	}

	return mapEntryToResponse(updated), nil
}

// Get implements timeentry.TimeClockService.
func (t *TimeClockServiceImpl) Get(ctx context.Context, id string) (timeentry.TimeEntryResponse, error) {
	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := t.entryRepo.GetByID(ctx, id, businessID)
	if err != nil {
		if errors.Is(err, timeentry.ErrEntryNotFound) {
			return timeentry.TimeEntryResponse{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return mapEntryToResponse(entry), nil
}

// List implements timeentry.TimeClockService.
func (t *TimeClockServiceImpl) List(ctx context.Context, filter timeentry.EntryFilter) (timeentry.ListTimeEntriesResponse, error) {
	if err := filter.Validate(); err != nil {
		return timeentry.ListTimeEntriesResponse{}, err
	}

	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.ListTimeEntriesResponse{}, err
	}

	entries, total, err := t.entryRepo.List(ctx, businessID, filter)
	if err != nil {
		return timeentry.ListTimeEntriesResponse{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, mapEntryToResponse(e))
	}

	return timeentry.ListTimeEntriesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Entries:    responses,
	}, nil
}

// Update implements timeentry.TimeClockService.
// This allows managers/owners to fix wrong clock times. Entries that were
// already calculated stay untouched by the trigger; corrections to those go
// through the explicit recalculation path instead of firing automatically.
func (t *TimeClockServiceImpl) Update(ctx context.Context, req timeentry.UpdateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := t.entryRepo.GetByID(ctx, req.ID, businessID)
	if err != nil {
		if errors.Is(err, timeentry.ErrEntryNotFound) {
			return timeentry.TimeEntryResponse{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	if req.ClockInAt != nil && *req.ClockInAt != "" {
		parsed, err := time.Parse(time.RFC3339, *req.ClockInAt)
		if err == nil {
			entry.ClockInAt = parsed.UTC()
		}
	}

	if req.ClockOutAt != nil && *req.ClockOutAt != "" {
		parsed, err := time.Parse(time.RFC3339, *req.ClockOutAt)
		if err == nil {
			utc := parsed.UTC()
			entry.ClockOutAt = &utc
		}
	}

	if entry.ClockOutAt != nil && !entry.ClockOutAt.After(entry.ClockInAt) {
		return timeentry.TimeEntryResponse{}, timeentry.ErrClockOutBeforeIn
	}

	if err := t.entryRepo.Update(ctx, entry); err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to update time entry: %w", err)
	}

	// An admin edit that sets the clock-out on a never-calculated entry is
	// a shift close too.
	if entry.NeedsCalculation() {
		t.payrollSvc.HandleShiftClose(ctx, entry)
	}

	updated, err := t.entryRepo.GetByID(ctx, req.ID, businessID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get updated time entry: %w", err)
	}

	return mapEntryToResponse(updated), nil
}

func mapEntryToResponse(e timeentry.TimeEntry) timeentry.TimeEntryResponse {
	return timeentry.TimeEntryResponse{
		ID:                 e.ID,
		UserID:             e.UserID,
		LocationID:         e.LocationID,
		ClockInAt:          e.ClockInAt.UTC().Format(time.RFC3339),
		ClockOutAt:         timePtrToString(e.ClockOutAt),
		CalculatedHours:    e.CalculatedHours,
		CalculatedPayCents: e.CalculatedPayCents,
		CalcStatus:         string(e.CalcStatus),
	}
}
