package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vehicles-api/internal/handler"
	"vehicles-api/internal/middleware"
)

// Config holds server configuration.
type Config struct {
	Port            int
	ShutdownTimeout time.Duration

	// RateLimit is the allowed requests per second; zero disables limiting.
	RateLimit float64
	RateBurst int

	// ServiceName labels request spans. Defaults to "vehicles-api".
	ServiceName string

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Server represents the HTTP server.
type Server struct {
	cfg        Config
	httpServer *http.Server
	mux        *http.ServeMux
	handler    *handler.Handler
	logger     *slog.Logger
}

// New creates a new Server with the given configuration.
// Optional vehicleService can be passed to enable the vehicle endpoints.
func New(cfg Config, vehicleService ...handler.VehicleService) *Server {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "vehicles-api"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	s := &Server{
		cfg:    cfg,
		mux:    mux,
		logger: logger,
	}

	s.httpServer = &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: middleware.Chain(mux,
			middleware.Recover(logger),
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Timing,
			middleware.Tracing(cfg.ServiceName),
			middleware.RateLimit(cfg.RateLimit, cfg.RateBurst),
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	if len(vehicleService) > 0 && vehicleService[0] != nil {
		s.handler = handler.New(vehicleService[0], logger)
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	if s.handler != nil {
		s.mux.HandleFunc("POST /vehicles", s.handler.Create)
		s.mux.HandleFunc("GET /vehicles", s.handler.List)
		s.mux.HandleFunc("GET /vehicles/{id}", s.handler.Get)
		s.mux.HandleFunc("PUT /vehicles/{id}", s.handler.Update)
		s.mux.HandleFunc("DELETE /vehicles/{id}", s.handler.Delete)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(handler.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server. This method blocks until the server is stopped.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// HandleFunc registers a handler function for the given pattern.
// This is useful for testing to add custom endpoints.
func (s *Server) HandleFunc(pattern string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, handler)
}

// Run starts the server and blocks until a shutdown signal is received.
// It handles SIGINT and SIGTERM for graceful shutdown.
// The provided context can also be used to trigger shutdown.
func (s *Server) Run(ctx context.Context) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)

	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		s.logger.Info("shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}
