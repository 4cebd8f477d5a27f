// Package server serves the site over HTTP: the page, its assets, the live
// session websocket and a small JSON API over the content.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/uchiverify/site/internal/content"
	"github.com/uchiverify/site/internal/live"
	"github.com/uchiverify/site/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port            int
	AllowAll        bool // allow all CORS and websocket origins (dev mode)
	ShutdownTimeout time.Duration
}

// Server is the live site server.
type Server struct {
	cfg        Config
	store      *content.Store
	views      *site.Views
	live       *live.Handler
	log        *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. Session options configure every live session.
func New(cfg Config, store *content.Store, views *site.Views, session live.Options, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	s := &Server{
		cfg:   cfg,
		store: store,
		views: views,
		log:   log,
	}
	s.live = live.NewHandler(store, views, live.HandlerOptions{
		Session:         session,
		AllowAllOrigins: cfg.AllowAll,
		Logger:          log.Named("live"),
	})
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  zap.NewStdLog(s.log.Named("http")),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Live sessions outlive any request timeout.
	r.Get("/ws", s.live.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/", s.handlePage)
		r.Get("/faq/{id}", s.handleEntryPage(content.KindFAQ))
		r.Get("/commands/{id}", s.handleEntryPage(content.KindCommand))
		r.Handle("/assets/*", http.StripPrefix("/assets/", site.AssetHandler()))

		r.Route("/api", func(r chi.Router) {
			r.Get("/search", s.handleSearch)
			r.Get("/entries/{section}", s.handleListEntries)
			r.Get("/entries/{section}/{id}", s.handleGetEntry)
		})
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Sessions returns the registry of open live sessions.
func (s *Server) Sessions() *live.Registry { return s.live.Sessions() }

// Listen opens the configured port.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("listening on port %d: %w", s.cfg.Port, err)
	}
	return ln, nil
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.log.Info("uchiverify site listening", zap.String("addr", ln.Addr().String()))
	err := s.httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Run serves ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return <-errCh
}

// Shutdown gracefully shuts down the server. Hijacked websocket
// connections are not tracked by net/http, so live sessions are closed
// explicitly.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.live.Sessions().CloseAll()
	s.log.Info("server stopped")
	return err
}
