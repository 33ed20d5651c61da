// Package api provides the HTTP surface of the hub. It adapts the
// application service to REST endpoints consumed by the web dashboard and
// keeps no state of its own.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"homehub/config"
	"homehub/internal/application"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

type Server struct {
	cfg    config.ServerConfig
	logger *slog.Logger
	svc    *application.Service
	server *http.Server
}

func New(cfg config.ServerConfig, svc *application.Service, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		svc:    svc,
	}
	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.buildRouter(),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	return s
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.cfg.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
