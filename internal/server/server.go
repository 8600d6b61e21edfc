package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/rpgo/compound-interest/internal/calculation"
	"github.com/rpgo/compound-interest/internal/config"
)

// Config holds server configuration
type Config struct {
	Addr           string
	Log            zerolog.Logger
	Engine         *calculation.ProjectionEngine // defaults to calculation.NewProjectionEngine()
	AllowedOrigins []string                      // defaults to "*"
}

// Server exposes the projection engine over HTTP
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	engine *calculation.ProjectionEngine
	parser *config.InputParser
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	engine := cfg.Engine
	if engine == nil {
		engine = calculation.NewProjectionEngine()
	}
	s := &Server{
		router: chi.NewRouter(),
		log:    cfg.Log.With().Str("component", "server").Logger(),
		engine: engine,
		parser: config.NewInputParser(),
	}
	s.parser.Validate = engine.ValidateInput

	s.setupMiddleware(cfg.AllowedOrigins)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the router, for embedding or httptest.
func (s *Server) Handler() http.Handler { return s.router }

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(30 * time.Second))

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/defaults", s.handleDefaults)
		r.Get("/formats", s.handleFormats)
		r.Post("/projections", s.handleProjection)
		r.Post("/scenarios", s.handleScenarios)
	})
}

// Start starts the HTTP server. It returns http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
