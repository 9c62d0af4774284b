// Package server assembles the chi router and owns the HTTP server
// lifecycle.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/kroawen/nest-auth-example/internal/config"
	"github.com/kroawen/nest-auth-example/internal/handler"
	"github.com/kroawen/nest-auth-example/shared/httputil"
)

// NewRouter builds the full route tree. Register, login and the health check
// are public; everything else sits behind the auth guard.
func NewRouter(
	logger zerolog.Logger,
	guard func(http.Handler) http.Handler,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	todoHandler *handler.TodoHandler,
) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.AccessHandler(func(req *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(req).Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request handled")
	}))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.With(guard).Get("/me", authHandler.Me)
	})

	r.Group(func(r chi.Router) {
		r.Use(guard)
		r.Mount("/profile", profileHandler.Routes())
		r.Mount("/todos", todoHandler.Routes())
	})

	return r
}

// Server wraps the http.Server with graceful shutdown.
type Server struct {
	cfg    *config.Config
	logger *zerolog.Logger
	httpd  *http.Server
}

func New(cfg *config.Config, logger *zerolog.Logger, router chi.Router) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
		httpd: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.cfg.HTTPAddr).Msg("http server listening")
		if err := s.httpd.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info().Msg("shutting down http server")

	return s.httpd.Shutdown(shutdownCtx)
}
