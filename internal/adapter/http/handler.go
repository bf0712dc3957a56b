package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"adwatch/internal/core/port"
)

// Deps are the use cases and optional extras the HTTP adapter serves.
type Deps struct {
	Scrape     port.ScrapeUseCase
	Reports    port.ReportUseCase
	Businesses port.BusinessUseCase
	// Metrics serves GET /metrics when set.
	Metrics http.Handler
	// Instrument wraps every route when set.
	Instrument func(http.Handler) http.Handler
}

// Handler is the inbound HTTP adapter. Routes are registered on a chi.Router.
type Handler struct {
	deps     Deps
	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(deps Deps, logger *slog.Logger) *Handler {
	h := &Handler{deps: deps, validate: validator.New(validator.WithRequiredStructEnabled()), logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	if deps.Instrument != nil {
		r.Use(deps.Instrument)
	}

	r.Get("/", h.handleLiveness)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/businesses", h.handleListBusinesses)
		r.Post("/businesses", h.handleCreateBusiness)
		r.Delete("/businesses/{pageID}", h.handleDeleteBusiness)

		r.Post("/scrape", h.handleScrape)

		r.Get("/reports/unique", h.handleUniqueReport)
		r.Get("/reports/full", h.handleFullReport)
		r.Get("/reports/full.xlsx", h.handleFullReportXLSX)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("adwatch is running"))
}
