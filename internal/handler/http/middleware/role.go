package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftly-hq/timeclock-backend-go/internal/handler/http/response"
)

// ManagerOnly restricts a route to manager and owner tokens. Workers clock
// in and out; corrections, rates and settings belong to management.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (role != "manager" && role != "owner") {
			response.Forbidden(w, "Manager role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
