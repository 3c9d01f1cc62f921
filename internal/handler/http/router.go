package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Task      TaskHandler
	Calendar  CalendarHandler
	Timeline  TimelineHandler
	Dashboard DashboardHandler
}

func NewRouter(logger *slog.Logger, allowedOrigins []string, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)
			})

			r.Route("/spaces/{spaceID}", func(r chi.Router) {
				r.Route("/tasks", func(r chi.Router) {
					r.Get("/", h.Task.ListTasks)
					r.Post("/", h.Task.CreateTask)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.Task.GetTask)
						r.Put("/", h.Task.UpdateTask)
						r.Delete("/", h.Task.DeleteTask)
						r.Patch("/status", h.Task.UpdateStatus)
					})
				})

				r.Get("/calendar", h.Calendar.GetMonth)
				r.Get("/timeline", h.Timeline.GetTimeline)

				r.Route("/dashboard", func(r chi.Router) {
					r.Get("/", h.Dashboard.GetDashboard)
					r.Get("/status-chart", h.Dashboard.GetStatusChart)
					r.Get("/priority-chart", h.Dashboard.GetPriorityChart)
					r.Get("/trend", h.Dashboard.GetTrend)
				})
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
