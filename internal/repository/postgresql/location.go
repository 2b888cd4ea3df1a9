package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/location"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/database"
)

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepository{db: db}
}

// Create implements location.LocationRepository.
func (r *locationRepository) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	loc.ID = uuid.NewString()

	query := `
		INSERT INTO locations (id, business_id, name, timezone)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, loc.ID, loc.BusinessID, loc.Name, loc.Timezone).Scan(
		&loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		return location.Location{}, fmt.Errorf("failed to create location: %w", err)
	}

	return loc, nil
}

// GetByID implements location.LocationRepository.
func (r *locationRepository) GetByID(ctx context.Context, id string, businessID string) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, name, timezone, created_at, updated_at
		FROM locations
		WHERE id = $1 AND business_id = $2
	`

	var loc location.Location
	err := q.QueryRow(ctx, query, id, businessID).Scan(
		&loc.ID, &loc.BusinessID, &loc.Name, &loc.Timezone,
		&loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to get location by ID: %w", err)
	}

	return loc, nil
}

// GetTimezoneByID implements location.LocationRepository.
func (r *locationRepository) GetTimezoneByID(ctx context.Context, id string, businessID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT timezone
		FROM locations
		WHERE id = $1 AND business_id = $2
	`

	var tz string
	err := q.QueryRow(ctx, query, id, businessID).Scan(&tz)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", location.ErrLocationNotFound
		}
		return "", fmt.Errorf("failed to get location timezone: %w", err)
	}

	return tz, nil
}

// List implements location.LocationRepository.
func (r *locationRepository) List(ctx context.Context, businessID string) ([]location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, name, timezone, created_at, updated_at
		FROM locations
		WHERE business_id = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := make([]location.Location, 0)
	for rows.Next() {
		var loc location.Location
		if err := rows.Scan(
			&loc.ID, &loc.BusinessID, &loc.Name, &loc.Timezone,
			&loc.CreatedAt, &loc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}
