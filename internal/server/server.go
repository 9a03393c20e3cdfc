// Package server runs an http.Handler until the context is canceled or the
// process receives SIGINT/SIGTERM, then shuts it down gracefully.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/okayjack/pkg/logger"
)

const (
	defaultAddr              = ":8080"
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
	defaultShutdownTimeout   = 30 * time.Second
)

// ShutdownHook runs after the HTTP server stopped accepting requests.
type ShutdownHook func(ctx context.Context) error

type config struct {
	logger          *slog.Logger
	addr            string
	hooks           []ShutdownHook
	shutdownTimeout time.Duration
}

// Option configures Run and Serve.
type Option func(*config)

// WithAddr sets the listen address (default ":8080").
func WithAddr(addr string) Option {
	return func(c *config) {
		if addr != "" {
			c.addr = addr
		}
	}
}

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown including hooks.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// WithShutdownHook registers a hook. Hooks run in registration order.
func WithShutdownHook(hook ShutdownHook) Option {
	return func(c *config) {
		if hook != nil {
			c.hooks = append(c.hooks, hook)
		}
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		addr:            defaultAddr,
		logger:          logger.NewNope(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Run listens on the configured address and serves h until ctx is canceled
// or a termination signal arrives.
func Run(ctx context.Context, h http.Handler, opts ...Option) error {
	cfg := newConfig(opts)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", cfg.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.addr, err)
	}

	return serve(ctx, ln, h, cfg)
}

// Serve serves h on ln until ctx is canceled. ln is closed on return.
func Serve(ctx context.Context, ln net.Listener, h http.Handler, opts ...Option) error {
	return serve(ctx, ln, h, newConfig(opts))
}

func serve(ctx context.Context, ln net.Listener, h http.Handler, cfg *config) error {
	srv := &http.Server{
		Handler:           h,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cfg.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return shutdown(srv, cfg)
	})

	return g.Wait()
}

func shutdown(srv *http.Server, cfg *config) error {
	cfg.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown: %w", err))
	}

	for _, hook := range cfg.hooks {
		if err := hook(ctx); err != nil {
			cfg.logger.Error("shutdown hook failed", slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		cfg.logger.Error("shutdown completed with errors")
		return errors.Join(errs...)
	}

	cfg.logger.Info("shutdown completed")
	return nil
}
