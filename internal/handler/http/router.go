package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/lumina-hr/payroll-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	calendarHandler CalendarHandler,
	insuranceHandler InsuranceHandler,
	salaryHandler SalaryHandler,
	bonusHandler BonusHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "lumina-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/import", attendanceHandler.Import)
			r.Get("/summaries", attendanceHandler.MonthlySummaries)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Post("/import", leaveHandler.Import)
			r.Get("/", leaveHandler.List)
		})

		r.Get("/calendar/{year}", calendarHandler.GetYear)

		r.Route("/insurance", func(r chi.Router) {
			r.Get("/premium", insuranceHandler.GetPremium)
			r.Post("/grades/import", insuranceHandler.ImportGrades)
		})

		r.Route("/salaries", func(r chi.Router) {
			r.Post("/generate", salaryHandler.Generate)
			r.Post("/finalize", salaryHandler.Finalize)
			r.Post("/revert", salaryHandler.Revert)
			r.Get("/", salaryHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", salaryHandler.Get)
				r.Put("/items", salaryHandler.AdjustLine)
				r.Delete("/", salaryHandler.Delete)
			})
		})

		r.Route("/salary-items", func(r chi.Router) {
			r.Post("/", salaryHandler.CreateItem)
			r.Get("/", salaryHandler.ListItems)
			r.Put("/{id}", salaryHandler.UpdateItem)
			r.Delete("/{id}", salaryHandler.DeleteItem)
		})

		r.Route("/bonus", func(r chi.Router) {
			r.Post("/bills/import", bonusHandler.ImportBills)
			r.Post("/reconcile", bonusHandler.Reconcile)
		})
	})

	return r
}
