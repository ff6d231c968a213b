package models

import "time"

// Exercise categories. The catalog is seeded with the classic barbell lifts
// and users can add their own bilingual entries.
const (
	CategoryPowerlifting  = "powerlifting"
	CategoryWeightlifting = "weightlifting"
	CategoryAccessory     = "accessory"
)

// Exercise is a catalog item with Spanish and English names.
type Exercise struct {
	ID        int       `json:"id"`
	NameES    string    `json:"name_es"`
	NameEN    string    `json:"name_en"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// ExerciseCreate is the payload for adding a catalog exercise.
type ExerciseCreate struct {
	NameES   string `json:"name_es"`
	NameEN   string `json:"name_en"`
	Category string `json:"category"`
}

// Entry is one logged lift: a weight/reps/sets record for an exercise on a
// date. RPE and notes are optional. Exercise is embedded on reads and may be
// nil if the referenced catalog row no longer exists.
type Entry struct {
	ID         int       `json:"id"`
	ExerciseID int       `json:"exercise_id"`
	WeightKg   float64   `json:"weight_kg"`
	Reps       int       `json:"reps"`
	Sets       int       `json:"sets"`
	RPE        *float64  `json:"rpe"`
	Date       string    `json:"date"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	Exercise   *Exercise `json:"exercise"`
}

// EntryCreate is the payload for logging an entry. Date is YYYY-MM-DD.
type EntryCreate struct {
	ExerciseID int      `json:"exercise_id"`
	WeightKg   float64  `json:"weight_kg"`
	Reps       int      `json:"reps"`
	Sets       int      `json:"sets"`
	RPE        *float64 `json:"rpe"`
	Date       string   `json:"date"`
	Notes      *string  `json:"notes"`
}
