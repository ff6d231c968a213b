// Package i18n holds the bilingual (Spanish/English) string tables for the
// LiftLog interface and resolves keys against the active language.
package i18n

import "github.com/claude/liftlog/internal/models"

// Supported language codes.
const (
	LangES = "es"
	LangEN = "en"
)

// DefaultLang is used when no stored preference exists.
const DefaultLang = LangES

var tables = map[string]map[string]string{
	LangES: {
		"eyebrow":           "Powerlifting + Weightlifting",
		"title":             "Registro de levantamientos",
		"subtitle":          "Guarda tus sesiones, controla tiempos por set y administra ejercicios.",
		"language":          "Idioma",
		"log_title":         "Nuevo registro",
		"exercise":          "Ejercicio",
		"weight":            "Peso (kg)",
		"reps":              "Reps",
		"sets":              "Sets",
		"rpe":               "RPE (0-10)",
		"date":              "Fecha",
		"notes":             "Notas",
		"notes_placeholder": "Ej: tecnica, sensaciones, equipo",
		"save_entry":        "Guardar",
		"timer_title":       "Temporizador por set",
		"timer_desc":        "Elige un tiempo y controla tu descanso entre sets.",
		"duration":          "Duracion (seg)",
		"planned_sets":      "Sets planeados",
		"start":             "Iniciar",
		"pause":             "Pausar",
		"reset":             "Reiniciar",
		"set_progress":      "Set",
		"entries_title":     "Registros recientes",
		"sets_reps":         "Sets x Reps",
		"actions":           "Acciones",
		"exercises_title":   "Ejercicios sugeridos",
		"exercises_desc":    "Puedes agregar tu propio ejercicio bilingue.",
		"name_es":           "Nombre (ES)",
		"name_en":           "Nombre (EN)",
		"category":          "Categoria",
		"add_exercise":      "Agregar ejercicio",
		"cat_powerlifting":  "Powerlifting",
		"cat_weightlifting": "Weightlifting",
		"cat_accessory":     "Accesorios",
		"delete":            "Borrar",
		"saved":             "Registro guardado.",
		"deleted":           "Registro borrado.",
		"added":             "Ejercicio agregado.",
		"error":             "Ocurrio un error.",
	},
	LangEN: {
		"eyebrow":           "Powerlifting + Weightlifting",
		"title":             "Strength log",
		"subtitle":          "Save sessions, control set timers, and manage exercises.",
		"language":          "Language",
		"log_title":         "New entry",
		"exercise":          "Exercise",
		"weight":            "Weight (kg)",
		"reps":              "Reps",
		"sets":              "Sets",
		"rpe":               "RPE (0-10)",
		"date":              "Date",
		"notes":             "Notes",
		"notes_placeholder": "Ex: technique, feel, gear",
		"save_entry":        "Save",
		"timer_title":       "Set timer",
		"timer_desc":        "Pick a time and control your rest between sets.",
		"duration":          "Duration (sec)",
		"planned_sets":      "Planned sets",
		"start":             "Start",
		"pause":             "Pause",
		"reset":             "Reset",
		"set_progress":      "Set",
		"entries_title":     "Recent entries",
		"sets_reps":         "Sets x Reps",
		"actions":           "Actions",
		"exercises_title":   "Suggested exercises",
		"exercises_desc":    "Add your own bilingual exercise.",
		"name_es":           "Name (ES)",
		"name_en":           "Name (EN)",
		"category":          "Category",
		"add_exercise":      "Add exercise",
		"cat_powerlifting":  "Powerlifting",
		"cat_weightlifting": "Weightlifting",
		"cat_accessory":     "Accessory",
		"delete":            "Delete",
		"saved":             "Entry saved.",
		"deleted":           "Entry deleted.",
		"added":             "Exercise added.",
		"error":             "Something went wrong.",
	},
}

// Languages returns the supported language codes.
func Languages() []string {
	return []string{LangES, LangEN}
}

// Known reports whether lang is a supported language code.
func Known(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Keys returns every string key present in the given language's table.
func Keys(lang string) []string {
	table := tables[lang]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	return keys
}

// Resolve returns the localized string for key in lang. Unknown keys (or an
// unknown language) resolve to the key itself so the interface never blocks
// on a missing translation.
func Resolve(lang, key string) string {
	if s, ok := tables[lang][key]; ok {
		return s
	}
	return key
}

// CategoryLabel returns the localized label for an exercise category.
// Anything outside the known categories is treated as accessory work.
func CategoryLabel(lang, category string) string {
	switch category {
	case models.CategoryPowerlifting:
		return Resolve(lang, "cat_powerlifting")
	case models.CategoryWeightlifting:
		return Resolve(lang, "cat_weightlifting")
	default:
		return Resolve(lang, "cat_accessory")
	}
}

// ExerciseName picks the display name matching lang. A nil exercise (a log
// entry whose catalog row no longer exists) renders as a placeholder dash.
func ExerciseName(lang string, ex *models.Exercise) string {
	if ex == nil {
		return "-"
	}
	if lang == LangES {
		return ex.NameES
	}
	return ex.NameEN
}
