package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
	"github.com/go-chi/chi/v5"
)

const (
	maxNameLen  = 200
	maxNotesLen = 2000
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.db.ListExercises(r.Context())
	if err != nil {
		s.internalError(w, r, "listing exercises", err)
		return
	}
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var payload models.ExerciseCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	payload.NameES = strings.TrimSpace(payload.NameES)
	payload.NameEN = strings.TrimSpace(payload.NameEN)
	payload.Category = strings.TrimSpace(payload.Category)
	if payload.Category == "" {
		payload.Category = models.CategoryAccessory
	}
	if err := validateExercise(payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	ex, err := s.db.CreateExercise(r.Context(), payload)
	if errors.Is(err, storage.ErrDuplicateExercise) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Exercise already exists"})
		return
	}
	if err != nil {
		s.internalError(w, r, "creating exercise", err)
		return
	}
	writeJSON(w, http.StatusCreated, ex)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date filter"})
			return
		}
	}

	entries, err := s.db.ListEntries(r.Context(), date)
	if err != nil {
		s.internalError(w, r, "listing entries", err)
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var payload models.EntryCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := validateEntry(payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	entry, err := s.db.CreateEntry(r.Context(), payload)
	if errors.Is(err, storage.ErrExerciseNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Exercise not found"})
		return
	}
	if err != nil {
		s.internalError(w, r, "creating entry", err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid entry ID"})
		return
	}

	err = s.db.DeleteEntry(r.Context(), id)
	if errors.Is(err, storage.ErrEntryNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Entry not found"})
		return
	}
	if err != nil {
		s.internalError(w, r, "deleting entry", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func validateExercise(p models.ExerciseCreate) error {
	if p.NameES == "" || len(p.NameES) > maxNameLen {
		return fmt.Errorf("name_es must be 1-%d characters", maxNameLen)
	}
	if p.NameEN == "" || len(p.NameEN) > maxNameLen {
		return fmt.Errorf("name_en must be 1-%d characters", maxNameLen)
	}
	switch p.Category {
	case models.CategoryPowerlifting, models.CategoryWeightlifting, models.CategoryAccessory:
		return nil
	default:
		return fmt.Errorf("unknown category %q", p.Category)
	}
}

func validateEntry(p models.EntryCreate) error {
	if p.WeightKg <= 0 {
		return fmt.Errorf("weight_kg must be positive")
	}
	if p.Reps <= 0 {
		return fmt.Errorf("reps must be positive")
	}
	if p.Sets <= 0 {
		return fmt.Errorf("sets must be positive")
	}
	if p.RPE != nil && (*p.RPE < 0 || *p.RPE > 10) {
		return fmt.Errorf("rpe must be in [0, 10]")
	}
	if _, err := time.Parse("2006-01-02", p.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	if p.Notes != nil && len(*p.Notes) > maxNotesLen {
		return fmt.Errorf("notes must be at most %d characters", maxNotesLen)
	}
	return nil
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.log.Error(op, "error", err, "request_id", requestIDFromContext(r))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
