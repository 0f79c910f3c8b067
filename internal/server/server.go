package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/compozy/k8s-demo/internal/config"
	"github.com/compozy/k8s-demo/internal/domain"
	"github.com/compozy/k8s-demo/internal/service"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// Server hosts the root view over HTTP.
type Server struct {
	cfg      *config.Config
	renderer service.PageRenderer
	view     *domain.RootView
	log      *zap.Logger

	ready     atomic.Bool
	listening chan struct{}
	mu        sync.Mutex
	addr      string
}

// New creates a server. Nothing is bound until Run.
func New(cfg *config.Config, renderer service.PageRenderer, view *domain.RootView, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:       cfg,
		renderer:  renderer,
		view:      view,
		log:       log,
		listening: make(chan struct{}),
	}
}

// Handler returns the routed handler wrapped in the request id and access log middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)
	mux.HandleFunc("GET /version", s.handleVersion)
	return requestID(accessLog(s.log, mux))
}

// Listening is closed once the listener is bound.
func (s *Server) Listening() <-chan struct{} {
	return s.listening
}

// Addr reports the bound address, or "" before Run has bound the listener.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run serves until ctx is done, then shuts down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.listen(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ErrorLog:          zap.NewStdLog(s.log),
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.ready.Store(true)
	close(s.listening)
	s.log.Info("server listening", zap.String("addr", s.Addr()), zap.String("version", s.view.Version()))
	select {
	case err := <-errCh:
		s.ready.Store(false)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	s.ready.Store(false)
	s.log.Info("shutting down server", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

func (s *Server) listen(ctx context.Context) (net.Listener, error) {
	var ln net.Listener
	var lc net.ListenConfig
	backoff := retry.WithMaxRetries(uint64(s.cfg.ListenRetries), retry.NewExponential(s.cfg.ListenRetryDelay))
	err := retry.Do(ctx, backoff, func(retryCtx context.Context) error {
		l, err := lc.Listen(retryCtx, "tcp", s.cfg.ListenAddr)
		if err != nil {
			s.log.Warn("listen failed, retrying", zap.String("addr", s.cfg.ListenAddr), zap.Error(err))
			return retry.RetryableError(err)
		}
		ln = l
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.cfg.ListenAddr, err)
	}
	return ln, nil
}
