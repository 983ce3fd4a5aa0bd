package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/handler/http/middleware"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	timeClockHandler TimeClockHandler,
	payrollHandler PayrollHandler,
	notificationHandler NotificationHandler,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/sse-token", authHandler.SSEToken)
			})
		})

		// The event stream authenticates with its own short-lived token.
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
					r.Get("/{id}/hours", timeClockHandler.HoursSummary)
					r.Get("/{id}/pay-stubs", payrollHandler.EmployeePayStubs)
				})
			})

			r.Route("/positions", func(r chi.Router) {
				r.Get("/", employeeHandler.ListPositions)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", employeeHandler.CreatePosition)
				})
			})

			r.Route("/time-clock", func(r chi.Router) {
				r.Post("/punches", timeClockHandler.Punch)
				r.Get("/status", timeClockHandler.Status)
				r.Get("/punches/my", timeClockHandler.MyPunches)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/punches", timeClockHandler.ListPunches)
					r.Patch("/punches/{id}", timeClockHandler.CorrectPunch)
				})
			})

			r.Route("/payroll-runs", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/", payrollHandler.CreateRun)
				r.Get("/", payrollHandler.ListRuns)
				r.Get("/{id}", payrollHandler.GetRun)
				r.Post("/{id}/calculate", payrollHandler.CalculateRun)
				r.Post("/{id}/process", payrollHandler.ProcessRun)
				r.Patch("/{id}/status", payrollHandler.UpdateRunStatus)
				r.Delete("/{id}", payrollHandler.DeleteRun)
				r.Get("/{id}/pay-stubs", payrollHandler.ListRunPayStubs)
			})

			r.Route("/pay-stubs", func(r chi.Router) {
				r.Get("/my", payrollHandler.MyPayStubs)
				r.Get("/{id}", payrollHandler.GetPayStub)
				r.Get("/{id}/pdf", payrollHandler.PayStubPDF)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Patch("/{id}", payrollHandler.UpdatePayStub)
					r.Delete("/{id}", payrollHandler.DeletePayStub)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Patch("/{id}/read", notificationHandler.MarkRead)
				r.Post("/read-all", notificationHandler.MarkAllRead)
			})
		})
	})

	return r
}
