package location

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/location"
)

type LocationServiceImpl struct {
	locationRepo location.LocationRepository
}

func NewLocationService(locationRepo location.LocationRepository) location.LocationService {
	return &LocationServiceImpl{locationRepo: locationRepo}
}

func getBusinessIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	businessID, ok := claims["business_id"].(string)
	if !ok || businessID == "" {
		return "", fmt.Errorf("business_id claim is missing or invalid")
	}

	return businessID, nil
}

// CreateLocation implements location.LocationService. The timezone is
// validated up front; a bad name here would silently shift every summary
// at this site onto the wrong calendar day.
func (s *LocationServiceImpl) CreateLocation(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	businessID, err := getBusinessIDFromContext(ctx)
	if err != nil {
		return location.LocationResponse{}, err
	}

	created, err := s.locationRepo.Create(ctx, location.Location{
		BusinessID: businessID,
		Name:       req.Name,
		Timezone:   req.Timezone,
	})
	if err != nil {
		return location.LocationResponse{}, fmt.Errorf("failed to create location: %w", err)
	}

	return mapLocationToResponse(created), nil
}

// ListLocations implements location.LocationService.
func (s *LocationServiceImpl) ListLocations(ctx context.Context) ([]location.LocationResponse, error) {
	businessID, err := getBusinessIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.List(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	responses := make([]location.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		responses = append(responses, mapLocationToResponse(loc))
	}

	return responses, nil
}

func mapLocationToResponse(loc location.Location) location.LocationResponse {
	return location.LocationResponse{
		ID:       loc.ID,
		Name:     loc.Name,
		Timezone: loc.Timezone,
	}
}
