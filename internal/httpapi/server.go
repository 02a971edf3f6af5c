// Package httpapi serves the definitions and candidate validation over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/neume-network/schema"
	"github.com/neume-network/schema/internal/logging"
)

const (
	maxBodyBytes    = 4 << 20
	shutdownTimeout = 5 * time.Second
)

// Server routes schema requests to compiled definitions.
type Server struct {
	router  *mux.Router
	logger  *slog.Logger
	schemas map[string]*schema.Schema
}

// New compiles every definition with opts and registers the routes.
func New(logger *slog.Logger, opts ...schema.CompileOption) (*Server, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{
		router:  mux.NewRouter(),
		logger:  logger.With(logging.FieldComponent, "httpapi"),
		schemas: make(map[string]*schema.Schema),
	}
	for _, name := range schema.Names() {
		compiled, err := schema.Compile(name, opts...)
		if err != nil {
			return nil, fmt.Errorf("httpapi: %w", err)
		}
		s.schemas[name] = compiled
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Use(s.requestID, s.logRequests)
	s.router.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	s.router.HandleFunc("/schemas", s.listSchemas).Methods(http.MethodGet)
	s.router.HandleFunc("/schemas/{name}", s.getSchema).Methods(http.MethodGet)
	s.router.HandleFunc("/schemas/{name}/validate", s.validate).Methods(http.MethodPost)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("stopped")
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}
