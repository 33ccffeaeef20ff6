// Package server provides the HTTP API for the medical QA service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/healthdesk/medqa/internal/config"
	"github.com/healthdesk/medqa/internal/docstore"
	"github.com/healthdesk/medqa/internal/knowledge"
	"github.com/healthdesk/medqa/internal/qa"
	"go.uber.org/zap"
)

// Server is the HTTP server for the medqa API.
type Server struct {
	engine    *qa.Engine
	docs      *docstore.Store
	knowledge *knowledge.Store
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates a server with the given dependencies. A nil engine is
// tolerated: /health reports degraded and the remaining endpoints refuse to
// serve until an engine is present.
func NewServer(
	engine *qa.Engine,
	docs *docstore.Store,
	kb *knowledge.Store,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		engine:    engine,
		docs:      docs,
		knowledge: kb,
		config:    cfg,
		logger:    logger,
	}
}

// Router builds the chi router with middleware and all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", s.handleIndex)
	r.Get("/api/v1/health", s.handleHealth)
	r.Post("/api/v1/ask", s.handleAsk)
	r.Post("/api/v1/docs/upload", s.handleUpload)
	r.Get("/api/v1/docs/stats", s.handleStats)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
