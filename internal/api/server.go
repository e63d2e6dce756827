package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"dramarec/internal/config"
	"dramarec/internal/logging"
	"dramarec/internal/recommend"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Server exposes an Engine over HTTP.
type Server struct {
	bind   string
	engine *recommend.Engine
	limits config.Recommend
	logger *slog.Logger

	handler  http.Handler
	listener net.Listener
	server   *http.Server
}

// NewServer wires routes for engine using the [api] and [recommend] config sections.
func NewServer(cfg *config.Config, engine *recommend.Engine, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("api: config is required")
	}
	if engine == nil {
		return nil, errors.New("api: engine is required")
	}
	bind := strings.TrimSpace(cfg.API.Bind)
	if bind == "" {
		return nil, errors.New("api: bind address is required")
	}

	srv := &Server{
		bind:   bind,
		engine: engine,
		limits: cfg.Recommend,
		logger: logging.NewComponentLogger(logger, "api"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/recommend", srv.handleRecommend)
	mux.HandleFunc("/api/top-rated", srv.handleTopRated)
	mux.HandleFunc("/api/health", srv.handleHealth)
	srv.handler = srv.withRequestID(mux)

	srv.server = &http.Server{
		Handler:           srv.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler returns the routed handler, including request id middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured address and serves until ctx is cancelled
// or Stop is called. It returns once the listener is open.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.ErrorWithContext(s.logger, "api server error", "api_serve_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check bind address and restart dramarec serve"),
			)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening",
		logging.String("address", listener.Addr().String()),
		logging.Int("entries", s.engine.Len()),
	)
	return nil
}

// Addr returns the bound listener address, or the configured bind before Start.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.bind
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	query := r.URL.Query()
	count, err := intParam(query.Get("n"), s.limits.DefaultCount)
	if err != nil || count < 1 || count > s.limits.MaxCount {
		s.writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("n must be an integer between 1 and %d", s.limits.MaxCount))
		return
	}

	q := query.Get("q")
	result := s.engine.Recommend(q, count)
	logging.WithContext(r.Context(), s.logger).Debug("recommendation served",
		logging.String("outcome", string(result.Outcome)),
		logging.Int("hits", len(result.Hits)),
	)
	s.writeJSON(w, http.StatusOK, FromResult(q, result))
}

func (s *Server) handleTopRated(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	query := r.URL.Query()
	page, err := intParam(query.Get("page"), 1)
	if err != nil || page < 1 {
		s.writeError(w, r, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	perPage, err := intParam(query.Get("perPage"), s.limits.PageSize)
	if err != nil || perPage < 1 {
		s.writeError(w, r, http.StatusBadRequest, "perPage must be a positive integer")
		return
	}

	s.writeJSON(w, http.StatusOK, TopRatedResponse{
		Page:       page,
		PerPage:    perPage,
		TotalPages: s.engine.PageCount(perPage),
		Results:    FromRecords(s.engine.TopRated(page, perPage)),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Entries: s.engine.Len(),
		Rated:   s.engine.RatedCount(),
	})
}

// withRequestID tags each request with an id and logs its completion.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := logging.WithRequestID(r.Context(), id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		started := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		logging.WithContext(ctx, s.logger).Info("request served",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", rec.status),
			logging.Duration("elapsed", time.Since(started)),
		)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	id, _ := logging.RequestIDFromContext(r.Context())
	s.writeJSON(w, status, ErrorResponse{Error: message, RequestID: id})
}

func intParam(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
