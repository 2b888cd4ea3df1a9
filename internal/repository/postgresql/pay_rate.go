package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payrate"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/database"
)

type payRateRepository struct {
	db *database.DB
}

func NewPayRateRepository(db *database.DB) payrate.PayRateRepository {
	return &payRateRepository{db: db}
}

// Create implements payrate.PayRateRepository.
func (r *payRateRepository) Create(ctx context.Context, record payrate.RateRecord) (payrate.RateRecord, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()

	query := `
		INSERT INTO pay_rates (
			id, business_id, user_id, hourly_rate_cents, effective_from
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.BusinessID,
		record.UserID,
		record.HourlyRateCents,
		record.EffectiveFrom,
	).Scan(&record.CreatedAt)

	if err != nil {
		return payrate.RateRecord{}, fmt.Errorf("failed to create pay rate: %w", err)
	}

	return record, nil
}

// ListByUser implements payrate.PayRateRepository. Records come back in
// insertion order so the resolver's last-write-wins tie break holds.
func (r *payRateRepository) ListByUser(ctx context.Context, userID string, businessID string) ([]payrate.RateRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, user_id, hourly_rate_cents, effective_from, created_at
		FROM pay_rates
		WHERE user_id = $1 AND business_id = $2
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, userID, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay rates: %w", err)
	}
	defer rows.Close()

	var records []payrate.RateRecord
	for rows.Next() {
		var rec payrate.RateRecord
		if err := rows.Scan(
			&rec.ID, &rec.BusinessID, &rec.UserID,
			&rec.HourlyRateCents, &rec.EffectiveFrom, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pay rate: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
