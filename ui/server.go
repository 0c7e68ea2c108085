package ui

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lrslens/app"
	"lrslens/domain/snapshot"
	"lrslens/internal"
	"lrslens/ports"
)

// SnapshotLoader loads a fresh snapshot of the four input extracts
type SnapshotLoader interface {
	Load(ctx context.Context) (*snapshot.Snapshot, error)
}

// Server exposes the two role views over HTTP. The snapshot is swapped
// atomically on refresh; each request composes its views from whichever
// snapshot it observes, so the core stays single-threaded per snapshot.
type Server struct {
	router  *chi.Mux
	reports *app.ReportService
	loader  SnapshotLoader
	archive ports.RunArchive // nil when no database is configured
	log     *internal.Logger

	mu   sync.RWMutex
	snap *snapshot.Snapshot
}

// NewServer creates the view server around an already-loaded snapshot
func NewServer(reports *app.ReportService, loader SnapshotLoader, snap *snapshot.Snapshot, archive ports.RunArchive, log *internal.Logger) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		reports: reports,
		loader:  loader,
		archive: archive,
		log:     log.WithComponent("Server"),
		snap:    snap,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/api/views/admin", s.handleAdminView)
	s.router.Get("/api/views/learner", s.handleLearnerView)
	s.router.Post("/api/refresh", s.handleRefresh)
	s.router.Get("/api/runs", s.handleRecentRuns)
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	s.log.Info("starting view server on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Router exposes the chi mux, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) snapshot() *snapshot.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Server) swapSnapshot(snap *snapshot.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}
