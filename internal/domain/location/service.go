package location

import "context"

type LocationService interface {
	// CreateLocation registers a work site. The timezone drives which
	// local calendar day its shifts land on.
	CreateLocation(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)
	ListLocations(ctx context.Context) ([]LocationResponse, error)
}
