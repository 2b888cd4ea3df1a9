package payrate

import "context"

type PayRateService interface {
	CreateRate(ctx context.Context, req CreateRateRequest) (RateResponse, error)
	ListRates(ctx context.Context, userID string) ([]RateResponse, error)
}
