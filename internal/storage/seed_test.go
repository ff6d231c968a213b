package storage

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exercises.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadSeedExercisesMissingFile verifies the built-in defaults are used
// when no seed file exists.
func TestLoadSeedExercisesMissingFile(t *testing.T) {
	got := LoadSeedExercises(filepath.Join(t.TempDir(), "nope.json"), slog.Default())
	if len(got) != 20 {
		t.Errorf("defaults = %d exercises, want 20", len(got))
	}
	if got[0].NameEN != "Back Squat" {
		t.Errorf("first default = %q, want Back Squat", got[0].NameEN)
	}
}

// TestLoadSeedExercisesValidFile verifies a well-formed seed file replaces
// the defaults and rows missing a name are skipped.
func TestLoadSeedExercisesValidFile(t *testing.T) {
	path := writeSeed(t, `{"exercises": [
		{"name_es": " Sentadilla ", "name_en": " Squat ", "category": "powerlifting"},
		{"name_es": "", "name_en": "Nameless", "category": "accessory"},
		{"name_es": "Curl", "name_en": "Curl", "category": ""}
	]}`)

	got := LoadSeedExercises(path, slog.Default())
	if len(got) != 2 {
		t.Fatalf("exercises = %d, want 2 (incomplete row skipped)", len(got))
	}
	if got[0].NameES != "Sentadilla" || got[0].NameEN != "Squat" {
		t.Errorf("names not trimmed: %+v", got[0])
	}
	if got[1].Category != "powerlifting" {
		t.Errorf("blank category = %q, want powerlifting default", got[1].Category)
	}
}

// TestLoadSeedExercisesMalformed verifies a corrupt file falls back to the
// defaults instead of failing startup.
func TestLoadSeedExercisesMalformed(t *testing.T) {
	path := writeSeed(t, `{"exercises": [`)
	got := LoadSeedExercises(path, slog.Default())
	if len(got) != 20 {
		t.Errorf("exercises = %d, want 20 defaults", len(got))
	}
}

// TestLoadSeedExercisesEmptyList verifies a file with no usable rows falls
// back to the defaults.
func TestLoadSeedExercisesEmptyList(t *testing.T) {
	path := writeSeed(t, `{"exercises": []}`)
	got := LoadSeedExercises(path, slog.Default())
	if len(got) != 20 {
		t.Errorf("exercises = %d, want 20 defaults", len(got))
	}
}
