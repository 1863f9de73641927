// Package http runs the API handler as a network server with graceful
// shutdown.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"fabric-price/internal/config"
)

// Config holds HTTP adapter configuration
type Config struct {
	// Address to listen on
	Address string

	// ReadTimeout for requests
	ReadTimeout time.Duration

	// WriteTimeout for responses
	WriteTimeout time.Duration

	// ShutdownTimeout bounds the drain of in-flight requests
	ShutdownTimeout time.Duration
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         ":8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// ConfigFrom maps the http section of the application config
func ConfigFrom(c config.HTTPConfig) *Config {
	cfg := DefaultConfig()
	if c.Addr != "" {
		cfg.Address = c.Addr
	}
	if c.ReadTimeout > 0 {
		cfg.ReadTimeout = c.ReadTimeout
	}
	if c.WriteTimeout > 0 {
		cfg.WriteTimeout = c.WriteTimeout
	}
	if c.ShutdownTimeout > 0 {
		cfg.ShutdownTimeout = c.ShutdownTimeout
	}
	return cfg
}

// Adapter is the HTTP adapter
type Adapter struct {
	handler http.Handler
	config  *Config
	logger  *zap.Logger

	mu     sync.Mutex
	server *http.Server
	addr   net.Addr
}

// New creates a new HTTP adapter
func New(handler http.Handler, cfg *Config, logger *zap.Logger) *Adapter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		handler: handler,
		config:  cfg,
		logger:  logger,
	}
}

// Addr returns the bound address once the server is listening
func (a *Adapter) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addr
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most ShutdownTimeout.
func (a *Adapter) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.config.Address)
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           a.handler,
		ReadTimeout:       a.config.ReadTimeout,
		ReadHeaderTimeout: a.config.ReadTimeout,
		WriteTimeout:      a.config.WriteTimeout,
	}

	a.mu.Lock()
	a.server = server
	a.addr = ln.Addr()
	a.mu.Unlock()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()
	a.logger.Info("http server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("http server shutting down", zap.Duration("timeout", a.config.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()
	if err := a.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	a.logger.Info("graceful shutdown complete")
	return nil
}

// Shutdown gracefully shuts down the server
func (a *Adapter) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	server := a.server
	a.mu.Unlock()

	if server != nil {
		return server.Shutdown(ctx)
	}
	return nil
}
