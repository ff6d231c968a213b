package ui

import (
	"testing"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/timer"
)

// TestRenderEntryFormatting verifies the fixed-precision weight, the
// "sets x reps" cell, and placeholders for absent optionals.
func TestRenderEntryFormatting(t *testing.T) {
	rpe := 8.5
	notes := "paused reps"
	state := State{
		Lang: "en",
		Entries: []models.Entry{
			{
				ID: 1, WeightKg: 102.5, Reps: 5, Sets: 3, RPE: &rpe,
				Date: "2024-01-01", Notes: &notes,
				Exercise: &models.Exercise{NameES: "Press de banca", NameEN: "Bench Press"},
			},
			{ID: 2, WeightKg: 60, Reps: 8, Sets: 4, Date: "2024-01-02"},
		},
		Timer: timer.Snapshot{Duration: 90, Remaining: 90, PlannedSets: 3, CurrentSet: 1},
	}

	view := Render(state)
	if len(view.Entries) != 2 {
		t.Fatalf("rows = %d, want 2", len(view.Entries))
	}

	first := view.Entries[0]
	if first.Weight != "102.5" {
		t.Errorf("weight = %q, want %q", first.Weight, "102.5")
	}
	if first.SetsReps != "3 x 5" {
		t.Errorf("sets-reps = %q, want %q", first.SetsReps, "3 x 5")
	}
	if first.RPE != "8.5" {
		t.Errorf("rpe = %q, want %q", first.RPE, "8.5")
	}
	if first.Exercise != "Bench Press" {
		t.Errorf("exercise = %q, want %q", first.Exercise, "Bench Press")
	}
	if first.Notes != "paused reps" {
		t.Errorf("notes = %q", first.Notes)
	}

	second := view.Entries[1]
	if second.Weight != "60.0" {
		t.Errorf("weight = %q, want %q", second.Weight, "60.0")
	}
	if second.Exercise != "-" {
		t.Errorf("missing exercise = %q, want %q", second.Exercise, "-")
	}
	if second.RPE != "-" {
		t.Errorf("absent rpe = %q, want %q", second.RPE, "-")
	}
	if second.Notes != "" {
		t.Errorf("absent notes = %q, want empty", second.Notes)
	}
}

// TestRenderTimerView verifies the MM:SS display and set progress line.
func TestRenderTimerView(t *testing.T) {
	state := State{
		Lang:  "es",
		Timer: timer.Snapshot{Duration: 90, Remaining: 75, PlannedSets: 5, CurrentSet: 2, Running: true},
	}

	view := Render(state)
	if view.Timer.Display != "01:15" {
		t.Errorf("display = %q, want %q", view.Timer.Display, "01:15")
	}
	if view.Timer.SetProgress != "2 / 5" {
		t.Errorf("set progress = %q, want %q", view.Timer.SetProgress, "2 / 5")
	}
	if !view.Timer.Running {
		t.Error("running flag lost in projection")
	}
}

// TestRenderCatalogLocalized verifies catalog names and category labels
// follow the state's language.
func TestRenderCatalogLocalized(t *testing.T) {
	exercises := []models.Exercise{
		{ID: 1, NameES: "Peso muerto", NameEN: "Deadlift", Category: models.CategoryPowerlifting},
		{ID: 2, NameES: "Zancadas", NameEN: "Lunges", Category: models.CategoryAccessory},
	}

	es := Render(State{Lang: "es", Exercises: exercises})
	if es.Catalog[0].Name != "Peso muerto" {
		t.Errorf("es name = %q", es.Catalog[0].Name)
	}
	if es.Catalog[1].Category != "Accesorios" {
		t.Errorf("es category = %q, want %q", es.Catalog[1].Category, "Accesorios")
	}

	en := Render(State{Lang: "en", Exercises: exercises})
	if en.Catalog[0].Name != "Deadlift" {
		t.Errorf("en name = %q", en.Catalog[0].Name)
	}
	if en.Catalog[1].Category != "Accessory" {
		t.Errorf("en category = %q, want %q", en.Catalog[1].Category, "Accessory")
	}
	if en.ExerciseOptions[0].Label != "Deadlift" {
		t.Errorf("option label = %q", en.ExerciseOptions[0].Label)
	}
}
