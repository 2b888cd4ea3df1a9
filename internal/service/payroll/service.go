package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/location"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payrate"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/timeentry"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftly-hq/timeclock-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

// summaryMergeAttempts bounds transaction retries on the daily summary
// merge. Exhaustion is logged, never propagated to the clock-out path.
const summaryMergeAttempts = 3

type PayrollServiceImpl struct {
	db           *database.DB
	entryRepo    timeentry.TimeEntryRepository
	rateRepo     payrate.PayRateRepository
	summaryRepo  payroll.DailySummaryRepository
	settingsRepo payroll.OvertimeSettingsRepository
	locationRepo location.LocationRepository
}

func NewPayrollService(
	db *database.DB,
	entryRepo timeentry.TimeEntryRepository,
	rateRepo payrate.PayRateRepository,
	summaryRepo payroll.DailySummaryRepository,
	settingsRepo payroll.OvertimeSettingsRepository,
	locationRepo location.LocationRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		entryRepo:    entryRepo,
		rateRepo:     rateRepo,
		summaryRepo:  summaryRepo,
		settingsRepo: settingsRepo,
		locationRepo: locationRepo,
	}
}

// Helper to get business_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (businessID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	businessID, ok := claims["business_id"].(string)
	if !ok || businessID == "" {
		return "", "", fmt.Errorf("business_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return businessID, userID, nil
}

// ========== REPORTING ==========

// GetReport implements payroll.PayrollService. Interactive path: a user
// actively requesting a report needs to see a failure rather than silently
// getting wrong numbers, so errors propagate.
func (s *PayrollServiceImpl) GetReport(ctx context.Context, req payroll.ReportRequest) (payroll.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ReportResponse{}, err
	}

	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ReportResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return payroll.ReportResponse{}, payroll.ErrInvalidReportWindow
	}
	// window is [start, end] inclusive in dates
	windowEnd := end.AddDate(0, 0, 1)

	entries, err := s.entryRepo.ListForUserWindow(ctx, req.UserID, businessID, start, windowEnd)
	if err != nil {
		return payroll.ReportResponse{}, fmt.Errorf("failed to load time entries: %w", err)
	}

	rateRecords, err := s.rateRepo.ListByUser(ctx, req.UserID, businessID)
	if err != nil {
		return payroll.ReportResponse{}, fmt.Errorf("failed to load pay rates: %w", err)
	}

	config, err := s.configForBusiness(ctx, businessID)
	if err != nil {
		return payroll.ReportResponse{}, err
	}

	result := Calculate(rawEntriesFrom(entries), rateRecords, config)

	return payroll.ReportResponse{
		UserID:          req.UserID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		RegularHours:    result.RegularHours,
		OvertimeHours:   result.OvertimeHours,
		DoubleTimeHours: result.DoubleTimeHours,
		TotalHours:      result.TotalHours,
		HourlyRateCents: result.HourlyRateCents,
		RateMissing:     result.RateMissing,
		GrossPayCents:   result.GrossPayCents,
		EntryCount:      len(result.SourceEntryIDs),
	}, nil
}

// ========== SHIFT CLOSE TRIGGER ==========

// HandleShiftClose implements payroll.PayrollService. Fires when an entry
// transitions to closed with no calculated pay yet. Every failure is
// recovered here: the entry stays closed-but-uncalculated (calc_status
// failed) and the reconciliation job picks it up later. A clock-out must
// never fail because payroll math did.
func (s *PayrollServiceImpl) HandleShiftClose(ctx context.Context, entry timeentry.TimeEntry) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("Shift close calculation panicked",
				"entry_id", entry.ID,
				"user_id", entry.UserID,
				"panic", p)
			s.markFailed(ctx, entry.ID)
		}
	}()

	if !entry.NeedsCalculation() {
		return
	}

	if err := s.processEntry(ctx, entry); err != nil {
		slog.Error("Shift close calculation failed",
			"entry_id", entry.ID,
			"user_id", entry.UserID,
			"error", err)
		s.markFailed(ctx, entry.ID)
	}
}

// Recalculate implements payroll.PayrollService. Explicit path for entries
// the trigger left behind (failed or edited before calculation); errors
// propagate to the caller.
func (s *PayrollServiceImpl) Recalculate(ctx context.Context, entry timeentry.TimeEntry) error {
	if !entry.Closed() {
		return timeentry.ErrEntryNotClosed
	}
	if entry.CalculatedPayCents != nil {
		return payroll.ErrEntryAlreadyCalculated
	}
	return s.processEntry(ctx, entry)
}

func (s *PayrollServiceImpl) processEntry(ctx context.Context, entry timeentry.TimeEntry) error {
	rateRecords, err := s.rateRepo.ListByUser(ctx, entry.UserID, entry.BusinessID)
	if err != nil {
		return fmt.Errorf("failed to load pay rates: %w", err)
	}

	config, err := s.configForBusiness(ctx, entry.BusinessID)
	if err != nil {
		return err
	}

	tz, err := s.entryTimezone(ctx, entry)
	if err != nil {
		return err
	}

	result := Calculate(rawEntriesFrom([]timeentry.TimeEntry{entry}), rateRecords, config)

	if err := s.entryRepo.SetCalculation(ctx, entry.ID, result.TotalHours, result.GrossPayCents, timeentry.CalcCalculated); err != nil {
		return fmt.Errorf("failed to persist calculation: %w", err)
	}

	// Aggregate summary failure is logged, not propagated: the entry-level
	// calculation above already stands.
	if err := s.mergeSummary(ctx, entry, tz, DeltaFromResult(result)); err != nil {
		slog.Error("Daily summary merge failed",
			"entry_id", entry.ID,
			"user_id", entry.UserID,
			"error", err)
	}

	return nil
}

// mergeSummary applies the delta to the (worker, local work date) summary
// under a locking transaction. Two concurrent shift closes for the same key
// serialize on the row lock; the insert race on first close surfaces as a
// unique violation and is retried.
func (s *PayrollServiceImpl) mergeSummary(ctx context.Context, entry timeentry.TimeEntry, tz *time.Location, delta payroll.SummaryDelta) error {
	local := entry.ClockInAt.In(tz)
	workDate := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	var lastErr error
	for attempt := 0; attempt < summaryMergeAttempts; attempt++ {
		lastErr = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
			existing, err := s.summaryRepo.GetByKeyForUpdate(txCtx, entry.UserID, workDate, entry.BusinessID)
			if err != nil {
				if errors.Is(err, payroll.ErrSummaryNotFound) {
					fresh := MergeSummary(nil, delta)
					fresh.BusinessID = entry.BusinessID
					fresh.LocationID = entry.LocationID
					fresh.UserID = entry.UserID
					fresh.Date = workDate
					_, err := s.summaryRepo.Create(txCtx, fresh)
					return err
				}
				return err
			}

			merged := MergeSummary(&existing, delta)
			return s.summaryRepo.Update(txCtx, merged)
		})

		if lastErr == nil {
			return nil
		}
		if !retryableTxError(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w: %v", payroll.ErrSummaryMergeConflict, lastErr)
}

func retryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01", "23505": // serialization failure, deadlock, unique violation
		return true
	}
	return false
}

func (s *PayrollServiceImpl) markFailed(ctx context.Context, entryID string) {
	if err := s.entryRepo.SetCalcStatus(ctx, entryID, timeentry.CalcFailed); err != nil {
		slog.Error("Failed to mark entry calculation as failed", "entry_id", entryID, "error", err)
	}
}

func (s *PayrollServiceImpl) entryTimezone(ctx context.Context, entry timeentry.TimeEntry) (*time.Location, error) {
	tzName := ""
	if entry.LocationTimezone != nil {
		tzName = *entry.LocationTimezone
	} else {
		name, err := s.locationRepo.GetTimezoneByID(ctx, entry.LocationID, entry.BusinessID)
		if err != nil {
			return nil, fmt.Errorf("failed to get location timezone: %w", err)
		}
		tzName = name
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		loc = time.UTC
	}
	return loc, nil
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.SettingsResponse, error) {
	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SettingsResponse{}, err
	}

	settings, err := s.settingsRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, payroll.ErrSettingsNotFound) {
			return settingsResponse(businessID, defaultSettings(businessID)), nil
		}
		return payroll.SettingsResponse{}, err
	}

	return settingsResponse(businessID, settings), nil
}

func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdateSettingsRequest) (payroll.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettingsResponse{}, err
	}

	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.SettingsResponse{}, err
	}

	current, err := s.settingsRepo.GetByBusinessID(ctx, businessID)
	if err != nil && !errors.Is(err, payroll.ErrSettingsNotFound) {
		return payroll.SettingsResponse{}, err
	}
	if errors.Is(err, payroll.ErrSettingsNotFound) {
		current = defaultSettings(businessID)
	}

	// Apply updates
	if req.RegularHoursPerWeek != nil {
		current.RegularHoursPerWeek = *req.RegularHoursPerWeek
	}
	if req.OvertimeMultiplier != nil {
		m, _ := decimal.NewFromString(*req.OvertimeMultiplier)
		current.OvertimeMultiplier = m
	}
	if req.DoubleTimeMultiplier != nil {
		m, _ := decimal.NewFromString(*req.DoubleTimeMultiplier)
		current.DoubleTimeMultiplier = m
	}
	if req.DoubleTimeThresholdHours != nil {
		current.DoubleTimeThresholdHours = req.DoubleTimeThresholdHours
	}
	if req.ClearDoubleTimeThreshold {
		current.DoubleTimeThresholdHours = nil
	}

	if current.DoubleTimeThresholdHours != nil && *current.DoubleTimeThresholdHours <= current.RegularHoursPerWeek {
		return payroll.SettingsResponse{}, fmt.Errorf("double_time_threshold_hours must exceed regular_hours_per_week")
	}

	updated, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		return payroll.SettingsResponse{}, err
	}

	return settingsResponse(businessID, updated), nil
}

func (s *PayrollServiceImpl) configForBusiness(ctx context.Context, businessID string) (payroll.OvertimeConfig, error) {
	settings, err := s.settingsRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, payroll.ErrSettingsNotFound) {
			return payroll.DefaultOvertimeConfig(), nil
		}
		return payroll.OvertimeConfig{}, fmt.Errorf("failed to load overtime settings: %w", err)
	}
	return settings.Config(), nil
}

func defaultSettings(businessID string) payroll.OvertimeSettings {
	def := payroll.DefaultOvertimeConfig()
	return payroll.OvertimeSettings{
		BusinessID:               businessID,
		RegularHoursPerWeek:      def.RegularHoursPerWeek,
		OvertimeMultiplier:       def.OvertimeMultiplier,
		DoubleTimeMultiplier:     def.DoubleTimeMultiplier,
		DoubleTimeThresholdHours: def.DoubleTimeThresholdHours,
	}
}

func settingsResponse(businessID string, s payroll.OvertimeSettings) payroll.SettingsResponse {
	return payroll.SettingsResponse{
		BusinessID:               businessID,
		RegularHoursPerWeek:      s.RegularHoursPerWeek,
		OvertimeMultiplier:       s.OvertimeMultiplier.String(),
		DoubleTimeMultiplier:     s.DoubleTimeMultiplier.String(),
		DoubleTimeThresholdHours: s.DoubleTimeThresholdHours,
	}
}

// ========== SUMMARIES ==========

func (s *PayrollServiceImpl) ListDailySummaries(ctx context.Context, filter payroll.SummaryFilter) ([]payroll.DailySummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	businessID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := s.summaryRepo.List(ctx, businessID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily summaries: %w", err)
	}

	result := make([]payroll.DailySummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		result = append(result, payroll.DailySummaryResponse{
			ID:              sum.ID,
			UserID:          sum.UserID,
			LocationID:      sum.LocationID,
			Date:            sum.Date.Format("2006-01-02"),
			TotalHours:      sum.TotalHours,
			RegularHours:    sum.RegularHours,
			OvertimeHours:   sum.OvertimeHours,
			DoubleTimeHours: sum.DoubleTimeHours,
			TotalPayCents:   sum.TotalPayCents,
		})
	}

	return result, nil
}

// rawEntriesFrom maps stored entries to the engine's raw representation.
// Stored clock times are native values; the normalizer still resolves them
// through the same tagged-union path as string and epoch inputs.
func rawEntriesFrom(entries []timeentry.TimeEntry) []payroll.RawEntry {
	raw := make([]payroll.RawEntry, 0, len(entries))
	for _, e := range entries {
		end := payroll.NoTimestamp()
		if e.ClockOutAt != nil {
			end = payroll.NativeTimestamp(*e.ClockOutAt)
		}
		tz := ""
		if e.LocationTimezone != nil {
			tz = *e.LocationTimezone
		}
		raw = append(raw, payroll.RawEntry{
			EntryID:  e.ID,
			Start:    payroll.NativeTimestamp(e.ClockInAt),
			End:      end,
			Timezone: tz,
		})
	}
	return raw
}
