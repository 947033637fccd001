package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/worktime-th/analytics-backend-go/internal/config"
	appHTTP "github.com/worktime-th/analytics-backend-go/internal/handler/http"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/cron"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/database"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/jwt"
	"github.com/worktime-th/analytics-backend-go/internal/pkg/oauth"
	"github.com/worktime-th/analytics-backend-go/internal/repository/postgresql"
	analyticsService "github.com/worktime-th/analytics-backend-go/internal/service/analytics"
	authService "github.com/worktime-th/analytics-backend-go/internal/service/auth"
	settingsService "github.com/worktime-th/analytics-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var lineService oauth.LineService
	if cfg.LineEnabled() {
		lineService = oauth.NewLineService(cfg.OAuth2Line.ClientID, cfg.OAuth2Line.ClientSecret, cfg.OAuth2Line.RedirectURL, cfg.OAuth2Line.Scopes)
	}

	analyticsSvc := analyticsService.NewAnalyticsService(employeeRepo, attendanceRepo, overtimeRepo, leaveRepo, settingsRepo, loc)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	authSvc := authService.NewAuthService(adminRepo, employeeRepo, JWTService, lineService)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc, loc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)

	scheduler := cron.NewScheduler()
	reportJobs := cron.NewReportJobs(analyticsSvc, settingsRepo, loc)
	reportJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		analyticsHandler,
		settingsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
