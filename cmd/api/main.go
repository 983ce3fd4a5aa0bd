package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/paycheck-labs/payroll-backend-go/internal/config"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/timeclock"
	appHTTP "github.com/paycheck-labs/payroll-backend-go/internal/handler/http"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/database"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/email"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/jwt"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/sse"
	"github.com/paycheck-labs/payroll-backend-go/internal/repository/postgresql"
	authService "github.com/paycheck-labs/payroll-backend-go/internal/service/auth"
	employeeService "github.com/paycheck-labs/payroll-backend-go/internal/service/employee"
	notificationService "github.com/paycheck-labs/payroll-backend-go/internal/service/notification"
	payrollService "github.com/paycheck-labs/payroll-backend-go/internal/service/payroll"
	timeclockService "github.com/paycheck-labs/payroll-backend-go/internal/service/timeclock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	transactor := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	payrollRunRepo := postgresql.NewPayrollRunRepository(db)
	payStubRepo := postgresql.NewPayStubRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()
	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, logger)
	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, positionRepo)
	timeClockSvc := timeclockService.NewTimeClockService(
		transactor,
		punchRepo,
		employeeRepo,
		notificationSvc,
		timeclock.SequenceRules{
			MinimumShift:    cfg.Payroll.MinimumShift,
			DuplicateWindow: cfg.Payroll.DuplicatePunchWindow,
		},
		cfg.Payroll.MealBreakThreshold,
	)
	payrollSvc := payrollService.NewPayrollService(
		transactor,
		payrollRunRepo,
		payStubRepo,
		punchRepo,
		employeeRepo,
		companyRepo,
		notificationSvc,
		emailSvc,
		cfg.Payroll.OvertimeThresholdHours,
		logger,
	)

	router := appHTTP.NewRouter(
		jwtSvc,
		appHTTP.NewAuthHandler(jwtSvc, authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewTimeClockHandler(timeClockSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewNotificationHandler(notificationSvc, jwtSvc, hub),
		[]string{cfg.App.FrontendURL},
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
