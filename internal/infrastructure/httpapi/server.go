// Package httpapi serves story assembly and generation over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ersonp/story-core/internal/application/handlers"
	"github.com/ersonp/story-core/internal/infrastructure/config"
)

// shutdownTimeout bounds how long in-flight requests may finish.
const shutdownTimeout = 10 * time.Second

// Server exposes the application handlers over HTTP.
type Server struct {
	assemble *handlers.AssembleHandler
	generate *handlers.GenerateHandler
	stories  *handlers.StoryHandler // nil disables the /api/v1/stories routes

	cfg     config.ServerConfig
	limiter *RateLimiter
	logger  *zap.Logger
}

// Options holds the handlers a Server routes to.
type Options struct {
	Assemble *handlers.AssembleHandler
	Generate *handlers.GenerateHandler
	Stories  *handlers.StoryHandler
	Logger   *zap.Logger
}

// NewServer creates a new Server.
func NewServer(cfg config.ServerConfig, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		assemble: opts.Assemble,
		generate: opts.Generate,
		stories:  opts.Stories,
		cfg:      cfg,
		limiter:  NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst),
		logger:   logger,
	}
}

// Handler returns the routed handler with logging and panic recovery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/v1/assemble", s.handleAssemble)

	// Endpoints that call the story model are rate limited.
	limited := func(next http.HandlerFunc) http.HandlerFunc {
		return s.limiter.Middleware(s.clientIP, next)
	}
	mux.HandleFunc("POST /generate", limited(s.handleGenerate))

	if s.stories != nil {
		mux.HandleFunc("GET /api/v1/stories", s.handleListStories)
		mux.HandleFunc("POST /api/v1/stories", limited(s.handleStartStory))
		mux.HandleFunc("GET /api/v1/stories/{id}", s.handleGetStory)
		mux.HandleFunc("DELETE /api/v1/stories/{id}", s.handleDeleteStory)
		mux.HandleFunc("GET /api/v1/stories/{id}/export", s.handleExportStory)
		mux.HandleFunc("POST /api/v1/stories/{id}/continue", limited(s.handleContinueStory))
		mux.HandleFunc("POST /api/v1/stories/{id}/end", limited(s.handleEndStory))
	}

	return recoverMiddleware(s.logger, logMiddleware(s.logger, s.clientIP, mux))
}

// clientIP identifies the caller for rate limiting and request logs.
func (s *Server) clientIP(r *http.Request) string {
	return clientIP(r, s.cfg.TrustProxy)
}

// Serve handles requests on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("HTTP API listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving HTTP: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return s.limiter.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		s.logger.Info("HTTP API shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down HTTP server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}
