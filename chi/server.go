// Package chi provides the HTTP request surface for batch article
// analysis: GET /?urls=u1,u2 returns one JSON result per URL in request
// order.
package chi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fwojciec/jaundice"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxURLs bounds the batch size accepted per request.
const DefaultMaxURLs = 10

// Server exposes a BatchAnalyzer over HTTP. It only parses the request
// and serializes results; all analysis semantics live in the analyzer.
type Server struct {
	analyzer jaundice.BatchAnalyzer
	logger   *slog.Logger
	router   *chi.Mux
	maxURLs  int
}

// Option configures a Server.
type Option func(*Server)

// WithMaxURLs caps the number of URLs accepted per request.
// Defaults to DefaultMaxURLs; 0 disables the cap.
func WithMaxURLs(n int) Option {
	return func(s *Server) {
		s.maxURLs = n
	}
}

// NewServer creates a Server around the analyzer.
func NewServer(analyzer jaundice.BatchAnalyzer, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		analyzer: analyzer,
		logger:   logger,
		maxURLs:  DefaultMaxURLs,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleAnalyze)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// analyzeResponse is the JSON envelope for batch results.
type analyzeResponse struct {
	URLs []jaundice.Analysis `json:"urls"`
}

// errorResponse is the JSON envelope for request-level errors.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("urls")
	if raw == "" {
		s.writeError(w, http.StatusBadRequest, "urls query parameter required")
		return
	}

	urls := splitURLs(raw)
	if s.maxURLs > 0 && len(urls) > s.maxURLs {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("too many urls in request, should be %d or less", s.maxURLs))
		return
	}

	results, err := s.analyzer.AnalyzeBatch(r.Context(), urls)
	if err != nil {
		// The client disconnected or the request was canceled; there is
		// nobody left to answer.
		s.logger.Info("batch aborted", "err", err)
		return
	}

	s.writeJSON(w, http.StatusOK, analyzeResponse{URLs: results})
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writing response", "err", err)
	}
}

// splitURLs parses the comma-separated urls parameter into an ordered
// list. Entries are trimmed but otherwise kept as-is: a malformed entry
// still gets its own result slot downstream.
func splitURLs(raw string) []string {
	parts := strings.Split(raw, ",")
	urls := make([]string, len(parts))
	for i, part := range parts {
		urls[i] = strings.TrimSpace(part)
	}
	return urls
}
