package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jsamuelsen11/plugin-menus/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server is the menu service's HTTP listener. Shutdown drains in-flight
// requests before running the registered hooks.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
	hooks  []func(context.Context) error
}

// NewServer builds a Server for cfg. A nil logger discards.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger: logger,
	}
}

// OnShutdown registers fn to run after in-flight requests have drained.
// Hooks run in registration order and share the Shutdown deadline.
func (s *Server) OnShutdown(fn func(context.Context) error) {
	s.hooks = append(s.hooks, fn)
}

// Start listens on the configured address and serves until Shutdown, after
// which it returns nil.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown. The server owns ln.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("starting HTTP server", slog.String("addr", ln.Addr().String()))

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones, then runs the
// shutdown hooks. Without a deadline on ctx a 10-second timeout applies.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server")
	errs := []error{s.srv.Shutdown(ctx)}
	for _, hook := range s.hooks {
		errs = append(errs, hook(ctx))
	}
	return errors.Join(errs...)
}

// Addr is the configured host:port.
func (s *Server) Addr() string {
	return s.srv.Addr
}
