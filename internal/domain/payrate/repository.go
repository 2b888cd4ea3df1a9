package payrate

import "context"

// PayRateRepository is append-only: rate changes insert records, historical
// records are never updated or deleted.
type PayRateRepository interface {
	Create(ctx context.Context, record RateRecord) (RateRecord, error)
	// ListByUser returns all rate records for a worker in insertion order.
	ListByUser(ctx context.Context, userID string, businessID string) ([]RateRecord, error)
}
