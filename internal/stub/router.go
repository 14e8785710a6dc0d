package stub

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
)

func NewRouter(store *Store, tokens *TokenService) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrsuite-stubd"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
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
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	authHandler := NewAuthHandler(store, tokens)
	employeeHandler := NewEmployeeHandler(store)
	departmentHandler := NewDepartmentHandler(store)
	leaveHandler := NewLeaveHandler(store)
	performanceHandler := NewPerformanceHandler(store)
	payrollHandler := NewPayrollHandler(store)
	chatHandler := NewChatHandler(store)

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokens.JWTAuth()))
			r.Use(AuthRequired(tokens.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.GetByID)
				r.Put("/{id}", employeeHandler.Update)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.List)

				// HR admin only
				r.Group(func(r chi.Router) {
					r.Use(RequireRole(user.RoleHRAdmin))
					r.Post("/", departmentHandler.Create)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/", leaveHandler.List)
				r.Post("/", leaveHandler.Create)

				// Approvers only
				r.Group(func(r chi.Router) {
					r.Use(RequireRole(user.RoleManager, user.RoleHRAdmin))
					r.Put("/{id}/approve", leaveHandler.Approve)
				})
			})

			r.Route("/performance", func(r chi.Router) {
				r.Get("/", performanceHandler.List)
				r.Get("/employee/{id}", performanceHandler.ListByEmployee)

				// Reviewers only
				r.Group(func(r chi.Router) {
					r.Use(RequireRole(user.RoleManager, user.RoleHRAdmin))
					r.Post("/", performanceHandler.Create)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Get("/employee/{id}", payrollHandler.ListByEmployee)

				// HR admin only
				r.Group(func(r chi.Router) {
					r.Use(RequireRole(user.RoleHRAdmin))
					r.Post("/", payrollHandler.Create)
				})
			})

			r.Post("/ai-chat", chatHandler.Send)
		})
	})
	return r
}
