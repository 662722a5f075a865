package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/timesheet-portal/internal/config"
	"github.com/cmlabs-hris/timesheet-portal/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	sessions middleware.SessionLookup,
	sessionHandler SessionHandler,
	worklogHandler WorklogHandler,
	employeeHandler EmployeeHandler,
	adminHandler AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
		Level:       cfg.SlogLevel(),
	})).With(
		slog.String("app", "timesheet-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", middleware.SessionHeader},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Start)
			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", sessionHandler.End)
				r.Get("/events", sessionHandler.Events)
			})
		})

		r.Get("/daily-logs/{id}/changes", worklogHandler.ChangeHistory)

		// Requires a page session
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(sessions))

			r.Route("/week", func(r chi.Router) {
				r.Get("/", worklogHandler.GetWeek)
				r.Put("/", worklogHandler.LoadWeek)
				r.Post("/open", worklogHandler.OpenWeek)
				r.Post("/save", worklogHandler.SaveWeek)

				r.Route("/days/{date}", func(r chi.Router) {
					r.Patch("/times", worklogHandler.SetTime)
					r.Post("/focus", worklogHandler.FocusTime)
					r.Patch("/description", worklogHandler.SetDescription)
					r.Post("/save", worklogHandler.SaveDay)
				})
			})

			r.Route("/hierarchy", func(r chi.Router) {
				r.Get("/", employeeHandler.Hierarchy)
				r.Post("/toggle", employeeHandler.ToggleNode)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Route("/employees", func(r chi.Router) {
				r.Get("/", adminHandler.ListEmployees)
				r.Post("/", adminHandler.CreateEmployee)
				r.Get("/overview", adminHandler.EmployeeOverview)
			})
			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", adminHandler.ListTimesheets)
				r.Get("/{id}/daily-logs", adminHandler.TimesheetDailyLogs)
			})
		})
	})
	return r
}
