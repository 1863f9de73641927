// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input decoding, calculator orchestration, output serialization.
// The API NEVER performs pricing logic.
package api

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fabric-price/core/pricing"
	"fabric-price/internal/errors"
)

// Options configure a Server
type Options struct {
	Version string
	Logger  *zap.Logger

	// Metrics exposes GET /metrics
	Metrics bool
}

// Server is the API server
type Server struct {
	router  chi.Router
	handler *Handler
	metrics *Metrics
	logger  *zap.Logger
	version string
}

// NewServer creates a new API server over calc
func NewServer(calc *pricing.Calculator, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var metrics *Metrics
	if opts.Metrics {
		metrics = NewMetrics()
	}

	s := &Server{
		router:  chi.NewRouter(),
		handler: NewHandler(calc, opts.Version, metrics, logger),
		metrics: metrics,
		logger:  logger,
		version: opts.Version,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.router.Use(
		s.requestID,
		middleware.RealIP,
		s.logRequests,
		s.recoverPanics,
	)

	s.router.Route("/api", func(r chi.Router) {
		// Core endpoints
		r.Post("/estimate", s.handler.HandleEstimate)
		r.Post("/quote", s.handler.HandleQuote)

		// Supporting endpoints
		r.Get("/compositions", s.handler.HandleCompositions)
		r.Get("/health", s.handler.HandleHealth)
		r.Get("/version", s.handler.HandleVersion)
	})

	if s.metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.handler.writeError(w, r, errors.NotFound("route", r.URL.Path))
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, &ErrorResponse{Error: ErrorDetail{
			Code:    "METHOD_NOT_ALLOWED",
			Message: r.Method + " is not allowed on " + r.URL.Path,
		}}, http.StatusMethodNotAllowed)
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type requestIDKey struct{}

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID returns the id assigned to the request, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestID reuses a client supplied id or generates one
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)

		s.metrics.observeRequest(route, status, elapsed)
		s.logger.Info("http request",
			zap.String("request_id", RequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", elapsed),
		)
	})
}

// recoverPanics turns a handler panic into a JSON INTERNAL_ERROR response
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			s.logger.Error("handler panicked",
				zap.String("request_id", RequestID(r.Context())),
				zap.Any("panic", rec),
				zap.ByteString("stack", debug.Stack()))
			s.handler.writeError(w, r, errors.Internal("unexpected server error", fmt.Errorf("%v", rec)))
		}()
		next.ServeHTTP(w, r)
	})
}
