package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffline/backoffice-go/internal/config"
	"github.com/staffline/backoffice-go/internal/handler/http/middleware"
	"github.com/staffline/backoffice-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Settings   SettingsHandler
	Employee   EmployeeHandler
	Role       RoleHandler
	Catalog    CatalogHandler
	Sale       SaleHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffline-backoffice"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/logout", h.Auth.Logout)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/me", h.Attendance.GetMyAttendance)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/requests", h.Leave.RequestLeave)
				r.Get("/requests/my", h.Leave.ListMyRequests)
				r.Get("/summary", h.Leave.GetMySummary)
				r.Get("/types", h.Leave.ListTypes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission("attendance"))
					r.Get("/requests/pending", h.Leave.ListPending)
					r.Patch("/requests/{id}/status", h.Leave.UpdateStatus)
					r.Post("/types", h.Leave.CreateType)
					r.Put("/types/{id}", h.Leave.UpdateType)
					r.Delete("/types/{id}", h.Leave.DeleteType)
					r.Get("/utilization", h.Leave.GetUtilization)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequirePermission("employees"))
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/roles", func(r chi.Router) {
				r.Use(middleware.RequirePermission("employees"))
				r.Get("/", h.Role.List)
				r.Post("/", h.Role.Create)
				r.Get("/{id}", h.Role.Get)
				r.Put("/{id}", h.Role.Update)
				r.Delete("/{id}", h.Role.Delete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Use(middleware.RequirePermission("products"))
				r.Get("/", h.Catalog.ListCategories)
				r.Post("/", h.Catalog.CreateCategory)
				r.Delete("/{id}", h.Catalog.DeleteCategory)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.Catalog.ListProducts)
				r.Get("/{id}", h.Catalog.GetProduct)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission("products"))
					r.Post("/", h.Catalog.CreateProduct)
					r.Put("/{id}", h.Catalog.UpdateProduct)
					r.Delete("/{id}", h.Catalog.DeleteProduct)
					r.Patch("/{id}/stock", h.Catalog.AdjustStock)
				})
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/my", h.Sale.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission("pos"))
					r.Post("/", h.Sale.Create)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission("sales"))
					r.Get("/", h.Sale.List)
					r.Get("/{id}", h.Sale.Get)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequirePermission("analytics"))
				r.Get("/", h.Payroll.Generate)
				r.Get("/commissions", h.Payroll.Commissions)
				r.Get("/labor", h.Payroll.LaborAnalytics)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission("all"))
					r.Put("/", h.Settings.Update)
				})
			})
		})
	})

	return r
}
