package storage

import (
	"context"
	"fmt"

	"github.com/claude/liftlog/internal/models"
)

// ListExercises retrieves the full catalog ordered by category then English
// name, matching the suggested-exercises listing.
func (db *DB) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name_es, name_en, category, created_at
		 FROM exercises
		 ORDER BY category, name_en`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		if err := rows.Scan(&ex.ID, &ex.NameES, &ex.NameEN, &ex.Category, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, ex)
	}
	return result, rows.Err()
}

// CreateExercise inserts a catalog exercise. Either name matching an
// existing exercise case-insensitively yields ErrDuplicateExercise.
func (db *DB) CreateExercise(ctx context.Context, payload models.ExerciseCreate) (*models.Exercise, error) {
	var exists bool
	err := db.Pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM exercises
			WHERE lower(name_es) = lower($1) OR lower(name_en) = lower($2)
		)`,
		payload.NameES, payload.NameEN).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking duplicate exercise: %w", err)
	}
	if exists {
		return nil, ErrDuplicateExercise
	}

	ex := models.Exercise{
		NameES:   payload.NameES,
		NameEN:   payload.NameEN,
		Category: payload.Category,
	}
	err = db.Pool.QueryRow(ctx,
		`INSERT INTO exercises (name_es, name_en, category)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		ex.NameES, ex.NameEN, ex.Category).Scan(&ex.ID, &ex.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting exercise: %w", err)
	}
	return &ex, nil
}

// CountExercises returns the catalog size. Used to keep seeding idempotent.
func (db *DB) CountExercises(ctx context.Context) (int, error) {
	var n int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting exercises: %w", err)
	}
	return n, nil
}
