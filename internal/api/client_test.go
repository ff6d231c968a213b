package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claude/liftlog/internal/models"
)

// TestListExercises verifies a successful catalog fetch decodes into models.
func TestListExercises(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/exercises" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Exercise{
			{ID: 1, NameES: "Sentadilla trasera", NameEN: "Back Squat", Category: "powerlifting"},
			{ID: 2, NameES: "Arranque", NameEN: "Snatch", Category: "weightlifting"},
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	exercises, err := client.ListExercises(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exercises) != 2 {
		t.Fatalf("exercises = %d, want 2", len(exercises))
	}
	if exercises[0].NameEN != "Back Squat" {
		t.Errorf("name_en = %q, want %q", exercises[0].NameEN, "Back Squat")
	}
}

// TestCreateEntrySendsPayload verifies the POST body carries the submitted
// fields and the created entry is returned.
func TestCreateEntrySendsPayload(t *testing.T) {
	rpe := 8.0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/entries" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want application/json", ct)
		}
		var payload models.EntryCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.WeightKg != 100.0 || payload.Reps != 5 || payload.Sets != 3 {
			t.Errorf("payload = %+v", payload)
		}
		if payload.RPE == nil || *payload.RPE != 8.0 {
			t.Errorf("rpe = %v, want 8", payload.RPE)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Entry{ID: 7, ExerciseID: payload.ExerciseID,
			WeightKg: payload.WeightKg, Reps: payload.Reps, Sets: payload.Sets,
			RPE: payload.RPE, Date: payload.Date})
	}))
	defer srv.Close()

	client := New(srv.URL)
	entry, err := client.CreateEntry(context.Background(), models.EntryCreate{
		ExerciseID: 1, WeightKg: 100.0, Reps: 5, Sets: 3, RPE: &rpe, Date: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID != 7 {
		t.Errorf("id = %d, want 7", entry.ID)
	}
}

// TestDeleteEntry verifies the DELETE path includes the entry ID.
func TestDeleteEntry(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	if err := client.DeleteEntry(context.Background(), 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "DELETE /api/entries/42" {
		t.Errorf("request = %q, want %q", gotPath, "DELETE /api/entries/42")
	}
}

// TestListEntriesDateFilter verifies the optional date query parameter.
func TestListEntriesDateFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("date"); got != "2024-01-01" {
			t.Errorf("date = %q, want 2024-01-01", got)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	entries, err := client.ListEntries(context.Background(), "2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want 0", len(entries))
	}
}

// TestNonSuccessStatusIsUniformFailure verifies every non-2xx response
// collapses into ErrRequestFailed.
func TestNonSuccessStatusIsUniformFailure(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":"nope"}`))
		}))

		client := New(srv.URL)
		_, err := client.ListEntries(context.Background(), "")
		if !errors.Is(err, ErrRequestFailed) {
			t.Errorf("status %d: error = %v, want ErrRequestFailed", status, err)
		}
		srv.Close()
	}
}

// TestMalformedBodyIsUniformFailure verifies an undecodable success body is
// also surfaced as ErrRequestFailed.
func TestMalformedBodyIsUniformFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.ListExercises(context.Background())
	if !errors.Is(err, ErrRequestFailed) {
		t.Errorf("error = %v, want ErrRequestFailed", err)
	}
}

// TestTransportErrorIsUniformFailure verifies a connection failure maps to
// the same error kind as a bad status.
func TestTransportErrorIsUniformFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := New(srv.URL)
	_, err := client.ListExercises(context.Background())
	if !errors.Is(err, ErrRequestFailed) {
		t.Errorf("error = %v, want ErrRequestFailed", err)
	}
}
