package payrate

import (
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/validator"
)

type CreateRateRequest struct {
	UserID          string `json:"user_id"`
	HourlyRateCents int64  `json:"hourly_rate_cents"`
	EffectiveFrom   string `json:"effective_from"` // YYYY-MM-DD
}

func (r *CreateRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.HourlyRateCents <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate_cents",
			Message: "hourly_rate_cents must be positive",
		})
	}

	if _, valid := validator.IsValidDate(r.EffectiveFrom); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RateResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	HourlyRateCents int64  `json:"hourly_rate_cents"`
	EffectiveFrom   string `json:"effective_from"`
}
