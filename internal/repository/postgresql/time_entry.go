package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/timeentry"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const timeEntryColumns = `
	t.id, t.business_id, t.location_id, t.user_id,
	t.clock_in_at, t.clock_out_at,
	t.calculated_hours, t.calculated_pay_cents, t.calc_status,
	t.created_at, t.updated_at,
	l.timezone AS location_timezone
`

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var e timeentry.TimeEntry
	err := row.Scan(
		&e.ID, &e.BusinessID, &e.LocationID, &e.UserID,
		&e.ClockInAt, &e.ClockOutAt,
		&e.CalculatedHours, &e.CalculatedPayCents, &e.CalcStatus,
		&e.CreatedAt, &e.UpdatedAt,
		&e.LocationTimezone,
	)
	return e, err
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	entry.ID = uuid.NewString()

	query := `
		INSERT INTO time_entries (
			id, business_id, location_id, user_id,
			clock_in_at, clock_out_at, calc_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.BusinessID,
		entry.LocationID,
		entry.UserID,
		entry.ClockInAt,
		entry.ClockOutAt,
		entry.CalcStatus,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetByID implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetByID(ctx context.Context, id string, businessID string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		LEFT JOIN locations l ON l.id = t.location_id
		WHERE t.id = $1 AND t.business_id = $2
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, id, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry by ID: %w", err)
	}

	return entry, nil
}

// GetOpenEntry implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetOpenEntry(ctx context.Context, userID string, businessID string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		LEFT JOIN locations l ON l.id = t.location_id
		WHERE t.user_id = $1
		  AND t.business_id = $2
		  AND t.clock_out_at IS NULL
		ORDER BY t.clock_in_at DESC
		LIMIT 1
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, userID, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get open time entry: %w", err)
	}

	return entry, nil
}

// Update implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Update(ctx context.Context, entry timeentry.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET clock_in_at = $1,
			clock_out_at = $2,
			calculated_hours = $3,
			calculated_pay_cents = $4,
			calc_status = $5,
			updated_at = NOW()
		WHERE id = $6 AND business_id = $7
	`

	tag, err := q.Exec(ctx, query,
		entry.ClockInAt,
		entry.ClockOutAt,
		entry.CalculatedHours,
		entry.CalculatedPayCents,
		entry.CalcStatus,
		entry.ID,
		entry.BusinessID,
	)
	if err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}

	return nil
}

// List implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) List(ctx context.Context, businessID string, filter timeentry.EntryFilter) ([]timeentry.TimeEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"t.business_id = $1"}
	args := []interface{}{businessID}

	if filter.UserID != nil && *filter.UserID != "" {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("t.user_id = $%d", len(args)))
	}
	if filter.LocationID != nil && *filter.LocationID != "" {
		args = append(args, *filter.LocationID)
		conditions = append(conditions, fmt.Sprintf("t.location_id = $%d", len(args)))
	}
	if filter.CalcStatus != nil && *filter.CalcStatus != "" {
		args = append(args, strings.ToLower(*filter.CalcStatus))
		conditions = append(conditions, fmt.Sprintf("t.calc_status = $%d", len(args)))
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("t.clock_in_at >= $%d::date", len(args)))
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("t.clock_in_at < ($%d::date + INTERVAL '1 day')", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM time_entries t WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		LEFT JOIN locations l ON l.id = t.location_id
		WHERE ` + where + `
		ORDER BY t.clock_in_at DESC
	` + fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, total, rows.Err()
}

// ListForUserWindow implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ListForUserWindow(ctx context.Context, userID string, businessID string, from, to time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		LEFT JOIN locations l ON l.id = t.location_id
		WHERE t.user_id = $1
		  AND t.business_id = $2
		  AND t.clock_in_at >= $3
		  AND t.clock_in_at < $4
		ORDER BY t.clock_in_at ASC
	`

	rows, err := q.Query(ctx, query, userID, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries for window: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ListUncalculated implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ListUncalculated(ctx context.Context, limit int) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		LEFT JOIN locations l ON l.id = t.location_id
		WHERE t.clock_out_at IS NOT NULL
		  AND t.calculated_pay_cents IS NULL
		  AND t.calc_status IN ('pending', 'failed')
		ORDER BY t.clock_out_at ASC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list uncalculated entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// SetCalculation implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) SetCalculation(ctx context.Context, id string, hours float64, payCents int64, status timeentry.CalcStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET calculated_hours = $1,
			calculated_pay_cents = $2,
			calc_status = $3,
			updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, hours, payCents, status, id)
	if err != nil {
		return fmt.Errorf("failed to set calculation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}

	return nil
}

// SetCalcStatus implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) SetCalcStatus(ctx context.Context, id string, status timeentry.CalcStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET calc_status = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to set calc status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}

	return nil
}
