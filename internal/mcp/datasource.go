package mcp

import (
	"context"

	"github.com/claude/liftlog/internal/api"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB (local)
// and *api.Client (remote via REST API) satisfy this interface.
type DataSource interface {
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	CreateExercise(ctx context.Context, payload models.ExerciseCreate) (*models.Exercise, error)
	ListEntries(ctx context.Context, date string) ([]models.Entry, error)
	CreateEntry(ctx context.Context, payload models.EntryCreate) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id int) error
}

// Compile-time checks: both backends satisfy DataSource.
var (
	_ DataSource = (*storage.DB)(nil)
	_ DataSource = (*api.Client)(nil)
)
