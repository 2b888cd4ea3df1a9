package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftly-hq/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/jwt"
)

func NewRouter(jwtService jwt.Service, authHandler AuthHandler, timeClockHandler TimeClockHandler, payrollHandler PayrollHandler, locationHandler LocationHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftly-timeclock"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			// Manager only
			r.Route("/auth", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Post("/kiosk-tokens", authHandler.MintKioskToken)
				r.Post("/kiosk-tokens/revoke", authHandler.RevokeKioskToken)
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", locationHandler.List)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", locationHandler.Create)
				})
			})

			r.Route("/timeclock", func(r chi.Router) {
				r.Post("/clock-in", timeClockHandler.ClockIn)
				r.Post("/clock-out", timeClockHandler.ClockOut)

				r.Route("/entries", func(r chi.Router) {
					r.Get("/", timeClockHandler.List)
					r.Get("/{id}", timeClockHandler.Get)

					// Manager only
					r.Group(func(r chi.Router) {
						r.Use(middleware.ManagerOnly)
						r.Put("/{id}", timeClockHandler.Update)
					})
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/report", payrollHandler.GetReport)
				r.Get("/summaries", payrollHandler.ListSummaries)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/settings", payrollHandler.GetSettings)
					r.Put("/settings", payrollHandler.UpdateSettings)
					r.Get("/rates", payrollHandler.ListRates)
					r.Post("/rates", payrollHandler.CreateRate)
				})
			})
		})
	})
	return r
}
