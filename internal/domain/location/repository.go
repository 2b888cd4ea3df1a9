package location

import "context"

type LocationRepository interface {
	Create(ctx context.Context, loc Location) (Location, error)
	GetByID(ctx context.Context, id string, businessID string) (Location, error)
	// GetTimezoneByID returns the location's IANA timezone name.
	GetTimezoneByID(ctx context.Context, id string, businessID string) (string, error)
	List(ctx context.Context, businessID string) ([]Location, error)
}
