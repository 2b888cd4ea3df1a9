package payrate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payrate"
)

type PayRateServiceImpl struct {
	rateRepo payrate.PayRateRepository
}

func NewPayRateService(rateRepo payrate.PayRateRepository) payrate.PayRateService {
	return &PayRateServiceImpl{rateRepo: rateRepo}
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

// CreateRate implements payrate.PayRateService. Rate history is append-only;
// correcting a mistake means inserting a new record with the right value.
func (s *PayRateServiceImpl) CreateRate(ctx context.Context, req payrate.CreateRateRequest) (payrate.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return payrate.RateResponse{}, err
	}

	businessID, err := getBusinessIDFromContext(ctx)
	if err != nil {
		return payrate.RateResponse{}, err
	}

	effectiveFrom, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return payrate.RateResponse{}, fmt.Errorf("failed to parse effective_from: %w", err)
	}

	record := payrate.RateRecord{
		BusinessID:      businessID,
		UserID:          req.UserID,
		HourlyRateCents: req.HourlyRateCents,
		EffectiveFrom:   effectiveFrom.UTC(),
	}

	created, err := s.rateRepo.Create(ctx, record)
	if err != nil {
		return payrate.RateResponse{}, fmt.Errorf("failed to create pay rate: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// ListRates implements payrate.PayRateService.
func (s *PayRateServiceImpl) ListRates(ctx context.Context, userID string) ([]payrate.RateResponse, error) {
	businessID, err := getBusinessIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.rateRepo.ListByUser(ctx, userID, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay rates: %w", err)
	}

	responses := make([]payrate.RateResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return responses, nil
}

func mapRecordToResponse(rec payrate.RateRecord) payrate.RateResponse {
	return payrate.RateResponse{
		ID:              rec.ID,
		UserID:          rec.UserID,
		HourlyRateCents: rec.HourlyRateCents,
		EffectiveFrom:   rec.EffectiveFrom.UTC().Format("2006-01-02"),
	}
}
