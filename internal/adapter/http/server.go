// Package adapthttp implements the web shell: a JSON API over the
// measurement and charts services.
package adapthttp

import (
	"net/http"

	"bmitracker/internal/app"
	"bmitracker/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	measurements *app.MeasurementService
	charts       *app.ChartsService
	limits       domain.Limits
	metrics      http.Handler
	log          *zap.Logger
}

// New creates a Server wired to the given application services.
func New(ms *app.MeasurementService, cs *app.ChartsService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{measurements: ms, charts: cs, limits: domain.DefaultLimits, log: log}
}

// WithLimits sets the plausibility limits applied to submitted measurements.
func (s *Server) WithLimits(l domain.Limits) *Server {
	s.limits = l
	return s
}

// WithMetrics mounts h at /metrics.
func (s *Server) WithMetrics(h http.Handler) *Server {
	s.metrics = h
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		s.loggingMiddleware,
		withNoCache,
	)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		})
		api.Get("/categories", s.handleCategories)
		api.Post("/bmi", s.handleCalculate)
		api.Post("/records", s.handleRecord)
		api.Get("/users", s.handleUsers)
		api.Route("/users/{user}", func(u chi.Router) {
			u.Get("/history", s.handleHistory)
			u.Get("/trend", s.handleTrend)
			u.Get("/export.xlsx", s.handleExport)
		})
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}
