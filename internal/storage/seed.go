package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/claude/liftlog/internal/models"
)

// defaultExercises is the starter catalog loaded into an empty database.
var defaultExercises = []models.ExerciseCreate{
	{NameES: "Sentadilla trasera", NameEN: "Back Squat", Category: models.CategoryPowerlifting},
	{NameES: "Press de banca", NameEN: "Bench Press", Category: models.CategoryPowerlifting},
	{NameES: "Peso muerto", NameEN: "Deadlift", Category: models.CategoryPowerlifting},
	{NameES: "Press militar", NameEN: "Overhead Press", Category: models.CategoryPowerlifting},
	{NameES: "Sentadilla frontal", NameEN: "Front Squat", Category: models.CategoryWeightlifting},
	{NameES: "Arranque", NameEN: "Snatch", Category: models.CategoryWeightlifting},
	{NameES: "Cargada", NameEN: "Clean", Category: models.CategoryWeightlifting},
	{NameES: "Cargada y envion", NameEN: "Clean & Jerk", Category: models.CategoryWeightlifting},
	{NameES: "Power snatch", NameEN: "Power Snatch", Category: models.CategoryWeightlifting},
	{NameES: "Power clean", NameEN: "Power Clean", Category: models.CategoryWeightlifting},
	{NameES: "Tiron de arranque", NameEN: "Snatch Pull", Category: models.CategoryWeightlifting},
	{NameES: "Tiron de cargada", NameEN: "Clean Pull", Category: models.CategoryWeightlifting},
	{NameES: "Good morning", NameEN: "Good Morning", Category: models.CategoryAccessory},
	{NameES: "Remo con barra", NameEN: "Barbell Row", Category: models.CategoryAccessory},
	{NameES: "Zancadas", NameEN: "Lunges", Category: models.CategoryAccessory},
	{NameES: "Fondos", NameEN: "Dips", Category: models.CategoryAccessory},
	{NameES: "Dominadas", NameEN: "Pull-ups", Category: models.CategoryAccessory},
	{NameES: "Hip thrust", NameEN: "Hip Thrust", Category: models.CategoryAccessory},
	{NameES: "Extensiones de espalda", NameEN: "Back Extensions", Category: models.CategoryAccessory},
	{NameES: "Plancha", NameEN: "Plank", Category: models.CategoryAccessory},
}

type seedFile struct {
	Exercises []struct {
		NameES   string `json:"name_es"`
		NameEN   string `json:"name_en"`
		Category string `json:"category"`
	} `json:"exercises"`
}

// LoadSeedExercises reads the seed catalog from path, falling back to the
// built-in defaults when the file is missing, unreadable, or yields no
// usable rows. Rows missing either name are skipped.
func LoadSeedExercises(path string, log *slog.Logger) []models.ExerciseCreate {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("reading seed file", "path", path, "error", err)
		}
		return defaultExercises
	}

	var parsed seedFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Warn("parsing seed file", "path", path, "error", err)
		return defaultExercises
	}

	var exercises []models.ExerciseCreate
	for _, item := range parsed.Exercises {
		nameES := strings.TrimSpace(item.NameES)
		nameEN := strings.TrimSpace(item.NameEN)
		category := strings.TrimSpace(item.Category)
		if category == "" {
			category = models.CategoryPowerlifting
		}
		if nameES == "" || nameEN == "" {
			continue
		}
		exercises = append(exercises, models.ExerciseCreate{
			NameES: nameES, NameEN: nameEN, Category: category,
		})
	}
	if len(exercises) == 0 {
		return defaultExercises
	}
	return exercises
}

// SeedExercises populates an empty catalog. A non-empty catalog is left
// untouched, so startup seeding is idempotent.
func (db *DB) SeedExercises(ctx context.Context, exercises []models.ExerciseCreate) error {
	n, err := db.CountExercises(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, ex := range exercises {
		_, err := db.Pool.Exec(ctx,
			`INSERT INTO exercises (name_es, name_en, category) VALUES ($1, $2, $3)`,
			ex.NameES, ex.NameEN, ex.Category)
		if err != nil {
			return fmt.Errorf("seeding exercise %q: %w", ex.NameEN, err)
		}
	}
	return nil
}
