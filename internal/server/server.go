package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Store is the persistence surface the handlers need. *storage.DB satisfies
// it; tests use a fake.
type Store interface {
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	CreateExercise(ctx context.Context, payload models.ExerciseCreate) (*models.Exercise, error)
	ListEntries(ctx context.Context, date string) ([]models.Entry, error)
	CreateEntry(ctx context.Context, payload models.EntryCreate) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id int) error
}

// Compile-time check: *storage.DB satisfies Store.
var _ Store = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     Store
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db Store, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/exercises", s.handleListExercises)
	s.router.Post("/api/exercises", s.handleCreateExercise)
	s.router.Get("/api/entries", s.handleListEntries)
	s.router.Post("/api/entries", s.handleCreateEntry)
	s.router.Delete("/api/entries/{id}", s.handleDeleteEntry)
}
