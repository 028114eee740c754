package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/cbcberry/berrysite/internal/forms"
	"github.com/cbcberry/berrysite/internal/live"
	"github.com/cbcberry/berrysite/internal/logging"
	"github.com/cbcberry/berrysite/internal/pages"
	"github.com/cbcberry/berrysite/internal/redirects"
)

// Config holds server configuration.
type Config struct {
	Port      int
	PublicDir string // images and PDFs served under /images and /docs
	AllowAll  bool   // allow all CORS origins (dev mode)
}

// Server is the site's HTTP front: pages, form endpoints and live sessions.
type Server struct {
	cfg        Config
	logger     *zap.Logger
	redirects  *redirects.Table
	forms      *forms.Service
	renderer   *pages.Renderer
	live       *live.Handler
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies.
func New(cfg Config, logger *zap.Logger, table *redirects.Table, formsSvc *forms.Service, renderer *pages.Renderer, liveHandler *live.Handler) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:       cfg,
		logger:    logger,
		redirects: table,
		forms:     formsSvc,
		renderer:  renderer,
		live:      liveHandler,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	if s.redirects != nil {
		r.Use(s.redirects.Middleware)
	}
	r.Use(middleware.StripSlashes)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", s.handleHealth)

	// Live sessions outlive any request timeout.
	if s.live != nil {
		live.RegisterRoutes(r, s.live)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		if s.forms != nil {
			forms.RegisterRoutes(r, s.forms)
		}
		if s.renderer != nil {
			pages.RegisterRoutes(r, s.renderer, s.cfg.PublicDir)
		}
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}
	if s.live != nil {
		body["sessions"] = s.live.Active()
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("berrysite listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server. Live sessions are hijacked
// connections the http.Server no longer tracks, so they are closed first.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.live != nil {
		if err := s.live.Shutdown(ctx); err != nil {
			s.logger.Warn("closing live sessions", zap.Error(err))
		}
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
