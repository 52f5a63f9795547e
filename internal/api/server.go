package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/doclink/internal/config"
	"github.com/dgallion1/doclink/internal/resolver"
	"github.com/dgallion1/doclink/internal/session"
	"github.com/dgallion1/doclink/internal/wiki"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for doclink.
type Server struct {
	router    chi.Router
	sessions  *session.Store
	files     *resolver.FileResolver
	reference *resolver.ReferenceResolver
	stats     *wiki.FetchStats
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(sessions *session.Store, files *resolver.FileResolver, ref *resolver.ReferenceResolver, stats *wiki.FetchStats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		sessions:  sessions,
		files:     files,
		reference: ref,
		stats:     stats,
		log:       log,
		cfg:       cfg,
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

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.DoclinkAPIKey, s.log))

		r.Post("/api/documents", s.handleOpenDocument)
		r.Get("/api/documents/{docID}", s.handleExportDocument)
		r.Delete("/api/documents/{docID}", s.handleCloseDocument)

		r.Put("/api/documents/{docID}/selection", s.handleSetSelection)
		r.Get("/api/documents/{docID}/text", s.handleSelectedText)
		r.Post("/api/documents/{docID}/lookup", s.handleLookup)
		r.Post("/api/documents/{docID}/link", s.handleApplyLink)

		r.Get("/api/stats/fetch", s.handleFetchStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
