package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/database"
)

type overtimeSettingsRepository struct {
	db *database.DB
}

func NewOvertimeSettingsRepository(db *database.DB) payroll.OvertimeSettingsRepository {
	return &overtimeSettingsRepository{db: db}
}

// GetByBusinessID implements payroll.OvertimeSettingsRepository.
func (r *overtimeSettingsRepository) GetByBusinessID(ctx context.Context, businessID string) (payroll.OvertimeSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, regular_hours_per_week,
			overtime_multiplier, double_time_multiplier,
			double_time_threshold_hours, created_at, updated_at
		FROM overtime_settings
		WHERE business_id = $1
	`

	var s payroll.OvertimeSettings
	err := q.QueryRow(ctx, query, businessID).Scan(
		&s.ID, &s.BusinessID, &s.RegularHoursPerWeek,
		&s.OvertimeMultiplier, &s.DoubleTimeMultiplier,
		&s.DoubleTimeThresholdHours, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.OvertimeSettings{}, payroll.ErrSettingsNotFound
		}
		return payroll.OvertimeSettings{}, fmt.Errorf("failed to get overtime settings: %w", err)
	}

	return s, nil
}

// Upsert implements payroll.OvertimeSettingsRepository.
func (r *overtimeSettingsRepository) Upsert(ctx context.Context, settings payroll.OvertimeSettings) (payroll.OvertimeSettings, error) {
	q := GetQuerier(ctx, r.db)

	if settings.ID == "" {
		settings.ID = uuid.NewString()
	}

	query := `
		INSERT INTO overtime_settings (
			id, business_id, regular_hours_per_week,
			overtime_multiplier, double_time_multiplier,
			double_time_threshold_hours
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (business_id) DO UPDATE SET
			regular_hours_per_week = EXCLUDED.regular_hours_per_week,
			overtime_multiplier = EXCLUDED.overtime_multiplier,
			double_time_multiplier = EXCLUDED.double_time_multiplier,
			double_time_threshold_hours = EXCLUDED.double_time_threshold_hours,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		settings.ID,
		settings.BusinessID,
		settings.RegularHoursPerWeek,
		settings.OvertimeMultiplier,
		settings.DoubleTimeMultiplier,
		settings.DoubleTimeThresholdHours,
	).Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)

	if err != nil {
		return payroll.OvertimeSettings{}, fmt.Errorf("failed to upsert overtime settings: %w", err)
	}

	return settings, nil
}
