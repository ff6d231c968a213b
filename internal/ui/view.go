package ui

import (
	"fmt"
	"strconv"

	"github.com/claude/liftlog/internal/i18n"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/timer"
)

// View is the full presentation model: everything the front end needs to
// draw one frame, with all text already resolved against the current
// language. It is recomputed from scratch on every render.
type View struct {
	Lang     string
	Title    string
	Subtitle string
	Status   string

	Timer TimerView

	ExerciseOptions []ExerciseOption
	Catalog         []CatalogItem
	Entries         []EntryRow

	// Localized column headers for the entries table, in display order.
	EntryHeaders []string
}

// TimerView is the rendered countdown state.
type TimerView struct {
	Display     string // MM:SS
	SetProgress string // "current / planned"
	Running     bool
	Duration    int
	PlannedSets int
}

// ExerciseOption is one choice in the exercise selection control.
type ExerciseOption struct {
	ID    int
	Label string
}

// CatalogItem is one row of the exercise catalog listing.
type CatalogItem struct {
	Name     string
	Category string
}

// EntryRow is one rendered row of the entries table. Numeric fields are
// preformatted; absent optionals render as placeholders.
type EntryRow struct {
	ID       int
	Date     string
	Exercise string
	Weight   string // one decimal, e.g. "100.0"
	SetsReps string // "sets x reps", e.g. "3 x 5"
	RPE      string // "-" when absent
	Notes    string
}

// Render projects the application state into a View. It is a pure function:
// no I/O, no mutation, fully recomputed per call so a language switch only
// needs a re-render.
func Render(s State) View {
	v := View{
		Lang:     s.Lang,
		Title:    i18n.Resolve(s.Lang, "title"),
		Subtitle: i18n.Resolve(s.Lang, "subtitle"),
		Status:   s.Status,
		Timer: TimerView{
			Display:     timer.Format(s.Timer.Remaining),
			SetProgress: fmt.Sprintf("%d / %d", s.Timer.CurrentSet, s.Timer.PlannedSets),
			Running:     s.Timer.Running,
			Duration:    s.Timer.Duration,
			PlannedSets: s.Timer.PlannedSets,
		},
		EntryHeaders: []string{
			i18n.Resolve(s.Lang, "date"),
			i18n.Resolve(s.Lang, "exercise"),
			i18n.Resolve(s.Lang, "weight"),
			i18n.Resolve(s.Lang, "sets_reps"),
			i18n.Resolve(s.Lang, "rpe"),
			i18n.Resolve(s.Lang, "notes"),
			i18n.Resolve(s.Lang, "actions"),
		},
	}

	v.ExerciseOptions = make([]ExerciseOption, 0, len(s.Exercises))
	v.Catalog = make([]CatalogItem, 0, len(s.Exercises))
	for i := range s.Exercises {
		ex := &s.Exercises[i]
		v.ExerciseOptions = append(v.ExerciseOptions, ExerciseOption{
			ID:    ex.ID,
			Label: i18n.ExerciseName(s.Lang, ex),
		})
		v.Catalog = append(v.Catalog, CatalogItem{
			Name:     i18n.ExerciseName(s.Lang, ex),
			Category: i18n.CategoryLabel(s.Lang, ex.Category),
		})
	}

	v.Entries = make([]EntryRow, 0, len(s.Entries))
	for _, e := range s.Entries {
		v.Entries = append(v.Entries, renderEntry(s.Lang, e))
	}

	return v
}

func renderEntry(lang string, e models.Entry) EntryRow {
	row := EntryRow{
		ID:       e.ID,
		Date:     e.Date,
		Exercise: i18n.ExerciseName(lang, e.Exercise),
		Weight:   fmt.Sprintf("%.1f", e.WeightKg),
		SetsReps: fmt.Sprintf("%d x %d", e.Sets, e.Reps),
		RPE:      "-",
	}
	if e.RPE != nil {
		row.RPE = strconv.FormatFloat(*e.RPE, 'f', -1, 64)
	}
	if e.Notes != nil {
		row.Notes = *e.Notes
	}
	return row
}
