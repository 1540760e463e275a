package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/docmap/internal/config"
	"github.com/dgallion1/docmap/internal/pipeline"
	"github.com/dgallion1/docmap/internal/summarize"
	"github.com/dgallion1/docmap/internal/uploads"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Server is the HTTP API server for docmap.
type Server struct {
	router       chi.Router
	generator    *pipeline.Generator
	orchestrator *pipeline.Orchestrator
	uploads      *uploads.Store
	stats        *summarize.LatencyStats
	backend      string
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. stats may be nil when
// the summarizer is not instrumented.
func NewServer(gen *pipeline.Generator, orch *pipeline.Orchestrator, store *uploads.Store, stats *summarize.LatencyStats, backend string, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		generator:    gen,
		orchestrator: orch,
		uploads:      store,
		stats:        stats,
		backend:      backend,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}).Handler)

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/upload-and-generate", s.handleUploadAndGenerate)
		r.Post("/mindmap", s.handleOutline)

		r.Post("/mindmaps", s.handleSubmitJob)
		r.Get("/mindmaps/{jobID}", s.handleJobStatus)

		r.Get("/stats/summarizer", s.handleSummarizerStats)
	})

	if s.cfg.FrontendDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.cfg.FrontendDir)))
	}

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
