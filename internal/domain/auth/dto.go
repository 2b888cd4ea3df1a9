package auth

import "github.com/shiftly-hq/timeclock-backend-go/internal/pkg/validator"

// ========================================
// KIOSK TOKEN DTOs
// ========================================

// MintKioskTokenRequest issues a worker access token for use on a shared
// kiosk device. The business comes from the requesting manager's claims.
type MintKioskTokenRequest struct {
	UserID string `json:"user_id"`
}

func (r *MintKioskTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type KioskTokenResponse struct {
	UserID    string `json:"user_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type RevokeTokenRequest struct {
	Token string `json:"token"`
}

func (r *RevokeTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
