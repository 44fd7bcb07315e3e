// Package core wires the HTTP surface together: routing, shared middleware,
// and the server lifecycle.
package core

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"diatrack.example/go-diatrack/pkg/logger"
)

// Server wraps http.Server with graceful shutdown.
type Server struct {
	httpServer *http.Server
	log        logger.Logger
}

func NewServer(addr string, handler http.Handler, log logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		log: log,
	}
}

// Start begins serving and blocks until the listener closes.
func (s *Server) Start() error {
	s.log.Info(context.Background(), "server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// GracefulShutdown blocks until SIGINT or SIGTERM, then drains in-flight
// requests for up to 30 seconds.
func (s *Server) GracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.log.Info(context.Background(), "shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.Error(ctx, "forced shutdown", "error", err)
		return
	}
	s.log.Info(context.Background(), "server stopped")
}
