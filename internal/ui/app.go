// Package ui holds the client-side application state for LiftLog: the
// current language, the cached exercise and entry lists, the rest timer, the
// entry and exercise forms, and the transient status message. State changes
// go through App methods; presentation is a separate pure Render pass.
package ui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/claude/liftlog/internal/api"
	"github.com/claude/liftlog/internal/i18n"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/timer"
)

// statusTTL is how long a transient status message stays visible.
const statusTTL = 3 * time.Second

// Backend is the REST surface the controller dispatches to. *api.Client
// satisfies it; tests use a fake.
type Backend interface {
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	CreateExercise(ctx context.Context, payload models.ExerciseCreate) (*models.Exercise, error)
	ListEntries(ctx context.Context, date string) ([]models.Entry, error)
	CreateEntry(ctx context.Context, payload models.EntryCreate) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id int) error
}

// Compile-time check: the real HTTP client satisfies Backend.
var _ Backend = (*api.Client)(nil)

// LangStore persists the selected language between sessions. *Prefs
// satisfies it.
type LangStore interface {
	Language() (string, error)
	SetLanguage(lang string) error
}

// EntryForm mirrors the entry-logging inputs before numeric coercion.
type EntryForm struct {
	ExerciseID string
	Weight     string
	Reps       string
	Sets       string
	RPE        string // optional
	Date       string // YYYY-MM-DD
	Notes      string // optional, trimmed on submit
}

// ExerciseForm mirrors the add-exercise inputs.
type ExerciseForm struct {
	NameES   string
	NameEN   string
	Category string
}

// State is a snapshot of the application state handed to Render.
type State struct {
	Lang      string
	Exercises []models.Exercise
	Entries   []models.Entry
	Timer     timer.Snapshot
	Status    string

	EntryForm    EntryForm
	ExerciseForm ExerciseForm
}

// App owns the mutable application state and wires user actions to the
// backend, the timer, and the language store.
type App struct {
	backend Backend
	prefs   LangStore
	timer   *timer.Timer
	log     *slog.Logger

	mu        sync.Mutex
	lang      string
	exercises []models.Exercise
	entries   []models.Entry
	entryForm EntryForm
	exForm    ExerciseForm

	status    string
	statusGen int
	ttl       time.Duration

	onRender func(View)
}

// New creates an App. prefs may be nil (language defaults and is not
// persisted). The timer's notify hook is wired so every tick re-renders.
func New(backend Backend, tm *timer.Timer, prefs LangStore, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	a := &App{
		backend: backend,
		prefs:   prefs,
		timer:   tm,
		log:     log,
		lang:    i18n.DefaultLang,
		ttl:     statusTTL,
	}
	if prefs != nil {
		if lang, err := prefs.Language(); err == nil && i18n.Known(lang) {
			a.lang = lang
		} else if err != nil {
			log.Warn("reading language preference", "error", err)
		}
	}
	a.entryForm = EntryForm{
		Date: time.Now().Format("2006-01-02"),
		Sets: "3",
		Reps: "5",
	}
	a.exForm = ExerciseForm{Category: models.CategoryPowerlifting}
	tm.SetNotify(func(timer.Snapshot) { a.render() })
	return a
}

// SetOnRender registers the presentation callback invoked after every state
// transition.
func (a *App) SetOnRender(fn func(View)) {
	a.mu.Lock()
	a.onRender = fn
	a.mu.Unlock()
}

// Snapshot returns a copy of the current application state.
func (a *App) Snapshot() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

func (a *App) snapshotLocked() State {
	return State{
		Lang:         a.lang,
		Exercises:    append([]models.Exercise(nil), a.exercises...),
		Entries:      append([]models.Entry(nil), a.entries...),
		Timer:        a.timer.State(),
		Status:       a.status,
		EntryForm:    a.entryForm,
		ExerciseForm: a.exForm,
	}
}

// Load fetches the exercise catalog and the entries list. Called once at
// startup; any failure surfaces as the generic error status.
func (a *App) Load(ctx context.Context) {
	exercises, err := a.backend.ListExercises(ctx)
	if err != nil {
		a.fail("loading exercises", err)
		return
	}
	entries, err := a.backend.ListEntries(ctx, "")
	if err != nil {
		a.fail("loading entries", err)
		return
	}

	a.mu.Lock()
	a.exercises = exercises
	a.entries = entries
	if a.entryForm.ExerciseID == "" && len(exercises) > 0 {
		a.entryForm.ExerciseID = strconv.Itoa(exercises[0].ID)
	}
	a.mu.Unlock()
	a.render()
}

// Language returns the active language code.
func (a *App) Language() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lang
}

// SwitchLanguage persists the selected language and re-renders every
// localized surface. Unknown codes are ignored.
func (a *App) SwitchLanguage(lang string) {
	if !i18n.Known(lang) {
		a.log.Warn("ignoring unknown language", "lang", lang)
		return
	}
	a.mu.Lock()
	a.lang = lang
	a.mu.Unlock()

	if a.prefs != nil {
		if err := a.prefs.SetLanguage(lang); err != nil {
			a.log.Warn("persisting language preference", "error", err)
		}
	}
	a.render()
}

// UpdateEntryForm replaces the entry form fields.
func (a *App) UpdateEntryForm(f EntryForm) {
	a.mu.Lock()
	a.entryForm = f
	a.mu.Unlock()
	a.render()
}

// UpdateExerciseForm replaces the add-exercise form fields.
func (a *App) UpdateExerciseForm(f ExerciseForm) {
	a.mu.Lock()
	a.exForm = f
	a.mu.Unlock()
	a.render()
}

// SubmitEntry coerces the entry form into a create payload and dispatches
// it. On success the notes field is cleared, the entries list reloaded, and
// the localized confirmation shown; on any failure the list is left
// untouched and the generic error shown.
func (a *App) SubmitEntry(ctx context.Context) {
	a.mu.Lock()
	form := a.entryForm
	a.mu.Unlock()

	payload, err := coerceEntry(form)
	if err != nil {
		a.fail("entry form", err)
		return
	}

	if _, err := a.backend.CreateEntry(ctx, payload); err != nil {
		a.fail("creating entry", err)
		return
	}

	a.mu.Lock()
	a.entryForm.Notes = ""
	a.mu.Unlock()

	a.reloadEntries(ctx, "saved")
}

// SubmitExercise dispatches the add-exercise form: trimmed bilingual names
// plus category. On success the name fields are cleared and the catalog
// reloaded.
func (a *App) SubmitExercise(ctx context.Context) {
	a.mu.Lock()
	form := a.exForm
	a.mu.Unlock()

	payload := models.ExerciseCreate{
		NameES:   strings.TrimSpace(form.NameES),
		NameEN:   strings.TrimSpace(form.NameEN),
		Category: form.Category,
	}

	if _, err := a.backend.CreateExercise(ctx, payload); err != nil {
		a.fail("creating exercise", err)
		return
	}

	a.mu.Lock()
	a.exForm.NameES = ""
	a.exForm.NameEN = ""
	a.mu.Unlock()

	exercises, err := a.backend.ListExercises(ctx)
	if err != nil {
		a.fail("reloading exercises", err)
		return
	}
	a.mu.Lock()
	a.exercises = exercises
	lang := a.lang
	a.mu.Unlock()
	a.setStatus(i18n.Resolve(lang, "added"))
}

// DeleteEntry removes one entry by ID and reloads the list.
func (a *App) DeleteEntry(ctx context.Context, id int) {
	if err := a.backend.DeleteEntry(ctx, id); err != nil {
		a.fail("deleting entry", err)
		return
	}
	a.reloadEntries(ctx, "deleted")
}

// StartTimer reads the duration field (falling back to the last known
// duration when blank or unparseable) and starts the countdown. Starting
// while already running is a no-op.
func (a *App) StartTimer(durationField string) {
	d, _ := strconv.Atoi(strings.TrimSpace(durationField))
	a.timer.Start(d)
}

// PauseTimer cancels the active countdown, preserving the remaining time.
func (a *App) PauseTimer() {
	a.timer.Pause()
}

// ResetTimer stops the countdown and reinitializes it from the duration
// field.
func (a *App) ResetTimer(durationField string) {
	d, _ := strconv.Atoi(strings.TrimSpace(durationField))
	a.timer.Reset(d)
}

// SetPlannedSets updates the planned set count from its input field.
func (a *App) SetPlannedSets(field string) {
	n, _ := strconv.Atoi(strings.TrimSpace(field))
	a.timer.SetPlannedSets(n)
}

// ApplyPreset writes a preset duration and fully resets the countdown.
func (a *App) ApplyPreset(seconds int) {
	a.timer.ApplyPreset(seconds)
}

// Timer exposes the underlying countdown state.
func (a *App) Timer() timer.Snapshot {
	return a.timer.State()
}

func (a *App) reloadEntries(ctx context.Context, statusKey string) {
	entries, err := a.backend.ListEntries(ctx, "")
	if err != nil {
		a.fail("reloading entries", err)
		return
	}
	a.mu.Lock()
	a.entries = entries
	lang := a.lang
	a.mu.Unlock()
	a.setStatus(i18n.Resolve(lang, statusKey))
}

// fail logs the underlying error and shows the localized generic message.
// The single client-side error taxonomy: everything is "request failed".
func (a *App) fail(op string, err error) {
	a.log.Error(op, "error", err)
	a.mu.Lock()
	lang := a.lang
	a.mu.Unlock()
	a.setStatus(i18n.Resolve(lang, "error"))
}

// setStatus shows a transient message and schedules its auto-clear. The
// clear only fires if no newer message has superseded this one.
func (a *App) setStatus(msg string) {
	a.mu.Lock()
	a.status = msg
	a.statusGen++
	gen := a.statusGen
	ttl := a.ttl
	a.mu.Unlock()
	a.render()

	if msg == "" {
		return
	}
	time.AfterFunc(ttl, func() { a.clearStatusIfCurrent(gen) })
}

// clearStatusIfCurrent erases the status message only when gen still
// identifies the displayed message (last writer wins, newer never erased).
func (a *App) clearStatusIfCurrent(gen int) {
	a.mu.Lock()
	if a.statusGen != gen {
		a.mu.Unlock()
		return
	}
	a.status = ""
	a.mu.Unlock()
	a.render()
}

func (a *App) render() {
	a.mu.Lock()
	fn := a.onRender
	var snap State
	if fn != nil {
		snap = a.snapshotLocked()
	}
	a.mu.Unlock()
	if fn != nil {
		fn(Render(snap))
	}
}

// coerceEntry shapes the raw form fields into the wire payload: integer
// exercise ID, numeric weight/reps/sets, optional RPE, trimmed notes with
// empty treated as absent.
func coerceEntry(f EntryForm) (models.EntryCreate, error) {
	var p models.EntryCreate
	var err error

	if p.ExerciseID, err = strconv.Atoi(strings.TrimSpace(f.ExerciseID)); err != nil {
		return p, err
	}
	if p.WeightKg, err = strconv.ParseFloat(strings.TrimSpace(f.Weight), 64); err != nil {
		return p, err
	}
	if p.Reps, err = strconv.Atoi(strings.TrimSpace(f.Reps)); err != nil {
		return p, err
	}
	if p.Sets, err = strconv.Atoi(strings.TrimSpace(f.Sets)); err != nil {
		return p, err
	}
	if rpe := strings.TrimSpace(f.RPE); rpe != "" {
		v, err := strconv.ParseFloat(rpe, 64)
		if err != nil {
			return p, err
		}
		p.RPE = &v
	}
	p.Date = strings.TrimSpace(f.Date)
	if notes := strings.TrimSpace(f.Notes); notes != "" {
		p.Notes = &notes
	}
	return p, nil
}
