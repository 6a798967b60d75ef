// Package serve exposes string parsing and translation validation as a
// small HTTP API, for translation frontends that do not want to link the
// validator directly.
package serve

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/TrueBrain/nile-validator/parser"
	"github.com/TrueBrain/nile-validator/validate"
)

// Server is the validation API server.
type Server struct {
	addr   string
	logger *slog.Logger
}

// Config holds configuration for the API server.
type Config struct {
	// Addr is the listen address, ":8080" style.
	Addr string
	// Logger receives request logs. nil discards them.
	Logger *slog.Logger
}

// NewServer creates an API server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{addr: cfg.Addr, logger: logger}
}

// Routes builds the handler tree. It is exported so tests can drive the API
// without a listener.
func (s *Server) Routes() http.Handler {
	r := chi.NewMux()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Post("/validate", s.handleValidate)
	r.Get("/healthz", s.handleHealth)
	return r
}

// Serve listens on the configured address and blocks until ctx is cancelled
// or the listener fails. Shutdown waits up to five seconds for in-flight
// requests.
func (s *Server) Serve(ctx context.Context) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Routes(),
		BaseContext: func(net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("listening", "addr", s.addr)

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("decode request: %v", err), http.StatusBadRequest)
		return
	}

	resp := ValidateResponse{Issues: []validate.Issue{}}

	base, baseErr := parser.Parse(req.Base)
	if baseErr != nil {
		resp.Issues = append(resp.Issues, parseIssue("base: ", baseErr))
	}
	trans, transErr := parser.Parse(req.Translation)
	if transErr != nil {
		resp.Issues = append(resp.Issues, parseIssue("", transErr))
	}
	if baseErr == nil && transErr == nil {
		resp.Issues = append(resp.Issues, validate.Translation(base, trans, req.Language.context())...)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
