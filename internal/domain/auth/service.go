package auth

import "context"

type AuthService interface {
	// MintKioskToken issues a worker access token scoped to the caller's
	// business, for enrolling a shared kiosk device.
	MintKioskToken(ctx context.Context, req MintKioskTokenRequest) (KioskTokenResponse, error)
	// RevokeKioskToken invalidates a previously issued token, e.g. when a
	// kiosk device is lost or retired.
	RevokeKioskToken(ctx context.Context, req RevokeTokenRequest) error
}
