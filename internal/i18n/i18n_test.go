package i18n

import (
	"testing"

	"github.com/claude/liftlog/internal/models"
)

// TestResolveAllKeysNonEmpty verifies every key present in a language table
// resolves to a non-empty string, for every supported language.
func TestResolveAllKeysNonEmpty(t *testing.T) {
	for _, lang := range Languages() {
		for _, key := range Keys(lang) {
			if got := Resolve(lang, key); got == "" {
				t.Errorf("Resolve(%q, %q) = empty string", lang, key)
			}
		}
	}
}

// TestResolveUnknownKeyFallsBack verifies an absent key resolves to itself;
// soft-fail keeps the interface non-blocking.
func TestResolveUnknownKeyFallsBack(t *testing.T) {
	if got := Resolve(LangES, "no_such_key"); got != "no_such_key" {
		t.Errorf("Resolve = %q, want key echoed back", got)
	}
	if got := Resolve("fr", "title"); got != "title" {
		t.Errorf("Resolve with unknown lang = %q, want key echoed back", got)
	}
}

// TestTablesCoverSameKeys verifies both languages carry the same key set so
// a language switch can never lose a surface.
func TestTablesCoverSameKeys(t *testing.T) {
	es := Keys(LangES)
	enSet := make(map[string]bool)
	for _, k := range Keys(LangEN) {
		enSet[k] = true
	}
	if len(es) != len(enSet) {
		t.Fatalf("key counts differ: es=%d en=%d", len(es), len(enSet))
	}
	for _, k := range es {
		if !enSet[k] {
			t.Errorf("key %q present in es but not en", k)
		}
	}
}

// TestCategoryLabel verifies category labels localize and unknown
// categories fall back to accessory.
func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		lang, category, want string
	}{
		{LangES, models.CategoryPowerlifting, "Powerlifting"},
		{LangES, models.CategoryAccessory, "Accesorios"},
		{LangEN, models.CategoryAccessory, "Accessory"},
		{LangEN, models.CategoryWeightlifting, "Weightlifting"},
		{LangEN, "mystery", "Accessory"},
	}
	for _, tt := range tests {
		if got := CategoryLabel(tt.lang, tt.category); got != tt.want {
			t.Errorf("CategoryLabel(%q, %q) = %q, want %q", tt.lang, tt.category, got, tt.want)
		}
	}
}

// TestExerciseName verifies the language-aware name selection and the
// placeholder for a missing exercise reference.
func TestExerciseName(t *testing.T) {
	ex := &models.Exercise{NameES: "Peso muerto", NameEN: "Deadlift"}
	if got := ExerciseName(LangES, ex); got != "Peso muerto" {
		t.Errorf("es name = %q", got)
	}
	if got := ExerciseName(LangEN, ex); got != "Deadlift" {
		t.Errorf("en name = %q", got)
	}
	if got := ExerciseName(LangEN, nil); got != "-" {
		t.Errorf("nil exercise = %q, want %q", got, "-")
	}
}

// TestKnown verifies language membership checks.
func TestKnown(t *testing.T) {
	if !Known(LangES) || !Known(LangEN) {
		t.Error("supported languages reported unknown")
	}
	if Known("de") {
		t.Error("unsupported language reported known")
	}
}
