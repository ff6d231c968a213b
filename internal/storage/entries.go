package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/jackc/pgx/v5"
)

const entrySelect = `
	SELECT e.id, e.exercise_id, e.weight_kg, e.reps, e.sets, e.rpe,
	       to_char(e.date, 'YYYY-MM-DD'), e.notes, e.created_at,
	       x.id, x.name_es, x.name_en, x.category, x.created_at
	FROM entries e
	LEFT JOIN exercises x ON x.id = e.exercise_id`

// ListEntries retrieves entries with their exercise embedded, newest first.
// A non-empty date (YYYY-MM-DD) filters to that day.
func (db *DB) ListEntries(ctx context.Context, date string) ([]models.Entry, error) {
	query := entrySelect + ` ORDER BY e.date DESC, e.created_at DESC`
	args := []any{}
	if date != "" {
		query = entrySelect + ` WHERE e.date = $1::date ORDER BY e.date DESC, e.created_at DESC`
		args = append(args, date)
	}

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

// CreateEntry validates the exercise reference and inserts the entry,
// returning it with the exercise embedded.
func (db *DB) CreateEntry(ctx context.Context, payload models.EntryCreate) (*models.Entry, error) {
	var ex models.Exercise
	err := db.Pool.QueryRow(ctx,
		`SELECT id, name_es, name_en, category, created_at FROM exercises WHERE id = $1`,
		payload.ExerciseID).Scan(&ex.ID, &ex.NameES, &ex.NameEN, &ex.Category, &ex.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("looking up exercise: %w", err)
	}

	entry := models.Entry{
		ExerciseID: payload.ExerciseID,
		WeightKg:   payload.WeightKg,
		Reps:       payload.Reps,
		Sets:       payload.Sets,
		RPE:        payload.RPE,
		Date:       payload.Date,
		Notes:      payload.Notes,
		Exercise:   &ex,
	}
	err = db.Pool.QueryRow(ctx,
		`INSERT INTO entries (exercise_id, weight_kg, reps, sets, rpe, date, notes)
		 VALUES ($1, $2, $3, $4, $5, $6::date, $7)
		 RETURNING id, created_at`,
		entry.ExerciseID, entry.WeightKg, entry.Reps, entry.Sets,
		entry.RPE, entry.Date, entry.Notes).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting entry: %w", err)
	}
	return &entry, nil
}

// DeleteEntry removes one entry by ID.
func (db *DB) DeleteEntry(ctx context.Context, id int) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// scanEntry reads one joined entry row. The exercise columns are nullable:
// an entry can outlive its catalog row.
func scanEntry(rows pgx.Rows) (models.Entry, error) {
	var e models.Entry
	var exID *int
	var exNameES, exNameEN, exCategory *string
	var exCreatedAt *time.Time

	if err := rows.Scan(&e.ID, &e.ExerciseID, &e.WeightKg, &e.Reps, &e.Sets, &e.RPE,
		&e.Date, &e.Notes, &e.CreatedAt,
		&exID, &exNameES, &exNameEN, &exCategory, &exCreatedAt); err != nil {
		return e, fmt.Errorf("scanning entry: %w", err)
	}

	if exID != nil {
		e.Exercise = &models.Exercise{
			ID:       *exID,
			NameES:   *exNameES,
			NameEN:   *exNameEN,
			Category: *exCategory,
		}
		if exCreatedAt != nil {
			e.Exercise.CreatedAt = *exCreatedAt
		}
	}
	return e, nil
}
