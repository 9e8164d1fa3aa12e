// Package api implements the HTTP simulation API.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/galleykit/galley/pkg/catalog"
	"github.com/galleykit/galley/pkg/observability"
	"github.com/galleykit/galley/pkg/pipeline"
	"github.com/galleykit/galley/pkg/plan"
)

// Server handles HTTP simulation requests. All heavy lifting is
// delegated to the pipeline runner; the server only translates between
// HTTP and pipeline options.
type Server struct {
	Runner *pipeline.Runner
	Logger *log.Logger
}

// NewServer creates a new API server.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{Runner: runner, Logger: logger}
}

// Routes builds the chi router with middleware and all endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(hookRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/simulate", s.handleSimulate)
		r.Get("/catalog", s.handleCatalog)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SimulateRequest is the POST /v1/simulate body. It mirrors the
// pipeline options; unset fields take the CLI defaults.
type SimulateRequest struct {
	pipeline.Options
}

// handleSimulate runs the full pipeline. The JSON artifact is always
// produced and returned as the response body; other requested formats
// are rejected since binary artifacts do not fit a JSON response.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	opts := req.Options
	opts.Logger = s.Logger
	for _, f := range opts.Formats {
		if f != pipeline.FormatJSON && f != pipeline.FormatSVG {
			writeError(w, http.StatusBadRequest, "format "+f+" is not available over the API")
			return
		}
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []string{pipeline.FormatJSON}
	}

	result, err := s.Runner.Execute(r.Context(), opts)
	if err != nil {
		if errors.Is(err, r.Context().Err()) {
			return
		}
		s.Logger.Errorf("simulate failed: %v", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := SimulateResponse{
		Result:   json.RawMessage(result.Artifacts[pipeline.FormatJSON]),
		PlanHash: result.PlanHash,
		Cached:   result.CacheInfo.PlanHit,
	}
	if svg, ok := result.Artifacts[pipeline.FormatSVG]; ok {
		resp.SVG = string(svg)
	}
	writeJSON(w, http.StatusOK, resp)
}

// SimulateResponse wraps the simulation document with cache metadata.
type SimulateResponse struct {
	Result   json.RawMessage `json:"result"`
	SVG      string          `json:"svg,omitempty"`
	PlanHash string          `json:"plan_hash"`
	Cached   bool            `json:"cached"`
}

// CatalogItem is one equipment entry in the catalog listing.
type CatalogItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Width    float64 `json:"width"`
	Depth    float64 `json:"depth"`
}

// handleCatalog lists the equipment catalog, optionally filtered by
// the business query parameter.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	var specs []plan.EquipmentSpec
	if b := r.URL.Query().Get("business"); b != "" {
		specs = catalog.ForBusiness(plan.Business(b))
	} else {
		specs = catalog.All()
	}

	items := make([]CatalogItem, 0, len(specs))
	for _, spec := range specs {
		items = append(items, CatalogItem{
			ID:       spec.ID,
			Name:     spec.Name,
			Category: string(spec.Category),
			Width:    spec.Width,
			Depth:    spec.Depth,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

// hookRequests emits request events to the registered observability hooks.
func hookRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.API().OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		observability.API().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
