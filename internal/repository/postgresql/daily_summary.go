package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/database"
)

type dailySummaryRepository struct {
	db *database.DB
}

func NewDailySummaryRepository(db *database.DB) payroll.DailySummaryRepository {
	return &dailySummaryRepository{db: db}
}

const dailySummaryColumns = `
	id, business_id, location_id, user_id, summary_date,
	total_hours, regular_hours, overtime_hours, double_time_hours,
	total_pay_cents, created_at, updated_at
`

func scanDailySummary(row pgx.Row) (payroll.DailySummary, error) {
	var s payroll.DailySummary
	err := row.Scan(
		&s.ID, &s.BusinessID, &s.LocationID, &s.UserID, &s.Date,
		&s.TotalHours, &s.RegularHours, &s.OvertimeHours, &s.DoubleTimeHours,
		&s.TotalPayCents, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetByKey implements payroll.DailySummaryRepository.
func (r *dailySummaryRepository) GetByKey(ctx context.Context, userID string, date time.Time, businessID string) (payroll.DailySummary, error) {
	return r.getByKey(ctx, userID, date, businessID, false)
}

// GetByKeyForUpdate implements payroll.DailySummaryRepository. The row lock
// serializes concurrent merges for the same (user, date) key; callers must
// hold an ambient transaction or the lock releases immediately.
func (r *dailySummaryRepository) GetByKeyForUpdate(ctx context.Context, userID string, date time.Time, businessID string) (payroll.DailySummary, error) {
	return r.getByKey(ctx, userID, date, businessID, true)
}

func (r *dailySummaryRepository) getByKey(ctx context.Context, userID string, date time.Time, businessID string, forUpdate bool) (payroll.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dailySummaryColumns + `
		FROM daily_summaries
		WHERE user_id = $1 AND summary_date = $2 AND business_id = $3
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	summary, err := scanDailySummary(q.QueryRow(ctx, query, userID, date, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.DailySummary{}, payroll.ErrSummaryNotFound
		}
		return payroll.DailySummary{}, fmt.Errorf("failed to get daily summary: %w", err)
	}

	return summary, nil
}

// Create implements payroll.DailySummaryRepository. A unique constraint on
// (business_id, user_id, summary_date) turns a racing first-merge into a
// 23505, which the service retries as a plain merge.
func (r *dailySummaryRepository) Create(ctx context.Context, summary payroll.DailySummary) (payroll.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	summary.ID = uuid.NewString()

	query := `
		INSERT INTO daily_summaries (
			id, business_id, location_id, user_id, summary_date,
			total_hours, regular_hours, overtime_hours, double_time_hours,
			total_pay_cents
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		summary.ID,
		summary.BusinessID,
		summary.LocationID,
		summary.UserID,
		summary.Date,
		summary.TotalHours,
		summary.RegularHours,
		summary.OvertimeHours,
		summary.DoubleTimeHours,
		summary.TotalPayCents,
	).Scan(&summary.CreatedAt, &summary.UpdatedAt)

	if err != nil {
		return payroll.DailySummary{}, fmt.Errorf("failed to create daily summary: %w", err)
	}

	return summary, nil
}

// Update implements payroll.DailySummaryRepository.
func (r *dailySummaryRepository) Update(ctx context.Context, summary payroll.DailySummary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE daily_summaries
		SET total_hours = $1,
			regular_hours = $2,
			overtime_hours = $3,
			double_time_hours = $4,
			total_pay_cents = $5,
			updated_at = NOW()
		WHERE id = $6 AND business_id = $7
	`

	tag, err := q.Exec(ctx, query,
		summary.TotalHours,
		summary.RegularHours,
		summary.OvertimeHours,
		summary.DoubleTimeHours,
		summary.TotalPayCents,
		summary.ID,
		summary.BusinessID,
	)
	if err != nil {
		return fmt.Errorf("failed to update daily summary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSummaryNotFound
	}

	return nil
}

// List implements payroll.DailySummaryRepository.
func (r *dailySummaryRepository) List(ctx context.Context, businessID string, filter payroll.SummaryFilter) ([]payroll.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"business_id = $1"}
	args := []interface{}{businessID}

	if filter.UserID != nil && *filter.UserID != "" {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.LocationID != nil && *filter.LocationID != "" {
		args = append(args, *filter.LocationID)
		conditions = append(conditions, fmt.Sprintf("location_id = $%d", len(args)))
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("summary_date >= $%d::date", len(args)))
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("summary_date <= $%d::date", len(args)))
	}

	query := `
		SELECT ` + dailySummaryColumns + `
		FROM daily_summaries
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY summary_date DESC, user_id ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily summaries: %w", err)
	}
	defer rows.Close()

	var summaries []payroll.DailySummary
	for rows.Next() {
		summary, err := scanDailySummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
