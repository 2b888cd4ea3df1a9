package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shiftly-hq/timeclock-backend-go/internal/config"
	appHTTP "github.com/shiftly-hq/timeclock-backend-go/internal/handler/http"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/cron"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftly-hq/timeclock-backend-go/internal/pkg/jwt"
	"github.com/shiftly-hq/timeclock-backend-go/internal/repository/postgresql"
	authService "github.com/shiftly-hq/timeclock-backend-go/internal/service/auth"
	locationService "github.com/shiftly-hq/timeclock-backend-go/internal/service/location"
	payrateService "github.com/shiftly-hq/timeclock-backend-go/internal/service/payrate"
	payrollService "github.com/shiftly-hq/timeclock-backend-go/internal/service/payroll"
	timeclockService "github.com/shiftly-hq/timeclock-backend-go/internal/service/timeclock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	entryRepo := postgresql.NewTimeEntryRepository(db)
	rateRepo := postgresql.NewPayRateRepository(db)
	summaryRepo := postgresql.NewDailySummaryRepository(db)
	settingsRepo := postgresql.NewOvertimeSettingsRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(jwtService)
	payrollSvc := payrollService.NewPayrollService(db, entryRepo, rateRepo, summaryRepo, settingsRepo, locationRepo)
	timeClockSvc := timeclockService.NewTimeClockService(db, entryRepo, locationRepo, payrollSvc)
	payRateSvc := payrateService.NewPayRateService(rateRepo)
	locationSvc := locationService.NewLocationService(locationRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	timeClockHandler := appHTTP.NewTimeClockHandler(timeClockSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, payRateSvc)
	locationHandler := appHTTP.NewLocationHandler(locationSvc)

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(entryRepo, payrollSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, authHandler, timeClockHandler, payrollHandler, locationHandler)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	<-stop
	fmt.Println("Shutting down...")
	_ = srv.Close()
}
