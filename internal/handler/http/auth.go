package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/auth"
	"github.com/shiftly-hq/timeclock-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	MintKioskToken(w http.ResponseWriter, r *http.Request)
	RevokeKioskToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// MintKioskToken implements AuthHandler.
func (h *authHandlerImpl) MintKioskToken(w http.ResponseWriter, r *http.Request) {
	var req auth.MintKioskTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.MintKioskToken(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Kiosk token issued", result)
}

// RevokeKioskToken implements AuthHandler.
func (h *authHandlerImpl) RevokeKioskToken(w http.ResponseWriter, r *http.Request) {
	var req auth.RevokeTokenRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.RevokeKioskToken(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}
