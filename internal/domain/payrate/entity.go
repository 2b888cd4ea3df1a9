package payrate

import "time"

// RateRecord - an effective-dated hourly rate in integer cents.
// The collection per worker is append-only: a rate change adds a record and
// never mutates an old one, so historical payroll stays reproducible.
type RateRecord struct {
	ID              string
	BusinessID      string
	UserID          string
	HourlyRateCents int64
	EffectiveFrom   time.Time
	CreatedAt       time.Time
}
