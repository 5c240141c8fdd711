package api

import (
	"encoding/json"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/numberleader/reportgen/internal/common"
	"github.com/numberleader/reportgen/internal/llm"
	"github.com/numberleader/reportgen/internal/report"
	"github.com/numberleader/reportgen/internal/store"
)

// Server wires the report pipeline behind the HTTP surface. Each request is
// handled by one synchronous pipeline; the only concurrency is the prompt
// fan-out inside the assembler.
type Server struct {
	router    chi.Router
	store     *store.Store
	provider  llm.Provider
	assembler *report.Assembler
}

// NewServer constructs the API server. The store may be nil, in which case
// the persisting endpoint reports a persistence failure.
func NewServer(st *store.Store, provider llm.Provider) *Server {
	logger := common.Logger()
	providerName := "none"
	if provider != nil {
		providerName = provider.Name()
	}
	srv := &Server{
		router:    chi.NewRouter(),
		store:     st,
		provider:  provider,
		assembler: report.NewAssembler(provider),
	}
	srv.routes()
	logger.Info("api: server ready", "provider", providerName, "persistence", st != nil)
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/", s.handleIndex)
	s.router.Get("/api-health", s.handleHealth)
	s.router.Get("/api/logs", s.handleLogs)
	s.router.Post("/generate-report", s.handleGenerateReport)
	s.router.Post("/api/text-report", s.handleTextReport)
	s.router.Post("/generate-valuation-report", s.handleValuationReport)
	s.router.Post("/generate-business-plan", s.handleBusinessPlan)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeMissingFields emits the 400 contract for absent required fields.
func writeMissingFields(w http.ResponseWriter, missing []string) {
	common.Logger().Warn("api: request rejected", "missing_fields", missing)
	writeJSON(w, http.StatusBadRequest, validationResponse{
		Error:         KindValidation.Message(),
		MissingFields: missing,
	})
}

// writeFailure logs the underlying error and emits the fixed message for
// the kind; the raw error text never reaches the caller.
func writeFailure(w http.ResponseWriter, kind ErrorKind, message string, err error) {
	common.Logger().Error("api: request failed", "status", kind.Status(), "kind", kind.Message(), "error", err)
	writeJSON(w, kind.Status(), errorResponse{
		Status:  "error",
		Message: message,
		Error:   kind.Message(),
	})
}
