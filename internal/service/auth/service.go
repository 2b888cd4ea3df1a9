package auth

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/auth"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/jwt"
)

// kioskRole is the role minted onto kiosk tokens. Kiosk devices clock
// workers in and out; they never get manager scope.
const kioskRole = "worker"

type AuthServiceImpl struct {
	jwtService jwt.Service
}

func NewAuthService(jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{jwtService: jwtService}
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

// MintKioskToken implements auth.AuthService.
func (s *AuthServiceImpl) MintKioskToken(ctx context.Context, req auth.MintKioskTokenRequest) (auth.KioskTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.KioskTokenResponse{}, err
	}

	businessID, err := getBusinessIDFromContext(ctx)
	if err != nil {
		return auth.KioskTokenResponse{}, err
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.UserID, businessID, kioskRole)
	if err != nil {
		return auth.KioskTokenResponse{}, fmt.Errorf("failed to mint kiosk token: %w", err)
	}

	return auth.KioskTokenResponse{
		UserID:    req.UserID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// RevokeKioskToken implements auth.AuthService.
func (s *AuthServiceImpl) RevokeKioskToken(ctx context.Context, req auth.RevokeTokenRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	s.jwtService.RevokeToken(req.Token)
	return nil
}
