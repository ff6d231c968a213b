package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// parseDate validates a YYYY-MM-DD date string.
func parseDate(s string) (string, error) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", err
	}
	return s, nil
}

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the exercise catalog. Each exercise has an ID, Spanish and English names, and a category (powerlifting, weightlifting, or accessory)."),
)

var toolAddExercise = mcp.NewTool("add_exercise",
	mcp.WithDescription("Add a custom exercise to the catalog. Names must be unique (case-insensitive) in both languages."),
	mcp.WithString("name_es", mcp.Required(), mcp.Description("Spanish name (e.g. 'Sentadilla frontal')")),
	mcp.WithString("name_en", mcp.Required(), mcp.Description("English name (e.g. 'Front Squat')")),
	mcp.WithString("category", mcp.Description("Exercise category. Defaults to 'accessory'."), mcp.Enum("powerlifting", "weightlifting", "accessory")),
)

var toolListEntries = mcp.NewTool("list_entries",
	mcp.WithDescription("List lift entries with the referenced exercise embedded, newest first. Optionally filtered to a single day."),
	mcp.WithString("date", mcp.Description("Filter to one day (YYYY-MM-DD)")),
)

var toolLogEntry = mcp.NewTool("log_entry",
	mcp.WithDescription("Log a lift: exercise, load in kilograms, reps, sets, and optionally RPE and notes."),
	mcp.WithNumber("exercise_id", mcp.Required(), mcp.Description("Catalog exercise ID (see list_exercises)")),
	mcp.WithNumber("weight_kg", mcp.Required(), mcp.Description("Load in kilograms, must be positive")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions per set, must be positive")),
	mcp.WithNumber("sets", mcp.Required(), mcp.Description("Number of sets, must be positive")),
	mcp.WithNumber("rpe", mcp.Description("Rating of perceived exertion, 0-10")),
	mcp.WithString("date", mcp.Description("Training date (YYYY-MM-DD). Defaults to today.")),
	mcp.WithString("notes", mcp.Description("Free-form notes, up to 2000 characters")),
)

var toolDeleteEntry = mcp.NewTool("delete_entry",
	mcp.WithDescription("Delete a lift entry by ID."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Entry ID")),
)

// --- Tool handlers ---

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.ListExercises(ctx)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) addExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nameES, err := req.RequireString("name_es")
	if err != nil {
		return mcp.NewToolResultError("name_es parameter is required"), nil
	}
	nameEN, err := req.RequireString("name_en")
	if err != nil {
		return mcp.NewToolResultError("name_en parameter is required"), nil
	}

	payload := models.ExerciseCreate{
		NameES:   strings.TrimSpace(nameES),
		NameEN:   strings.TrimSpace(nameEN),
		Category: req.GetString("category", models.CategoryAccessory),
	}
	if payload.NameES == "" || payload.NameEN == "" {
		return mcp.NewToolResultError("exercise names must not be blank"), nil
	}

	ex, err := h.ds.CreateExercise(ctx, payload)
	if err != nil {
		h.log.Error("mcp add_exercise", "error", err)
		return mcp.NewToolResultError("create failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(ex)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := req.GetString("date", "")
	if date != "" {
		if _, err := parseDate(date); err != nil {
			return mcp.NewToolResultError("invalid date, expected YYYY-MM-DD"), nil
		}
	}

	entries, err := h.ds.ListEntries(ctx, date)
	if err != nil {
		h.log.Error("mcp list_entries", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) logEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireInt("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}
	weight, err := req.RequireFloat("weight_kg")
	if err != nil {
		return mcp.NewToolResultError("weight_kg parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}
	sets, err := req.RequireInt("sets")
	if err != nil {
		return mcp.NewToolResultError("sets parameter is required"), nil
	}
	if weight <= 0 || reps <= 0 || sets <= 0 {
		return mcp.NewToolResultError("weight_kg, reps, and sets must be positive"), nil
	}

	payload := models.EntryCreate{
		ExerciseID: exerciseID,
		WeightKg:   weight,
		Reps:       reps,
		Sets:       sets,
		Date:       req.GetString("date", time.Now().Format("2006-01-02")),
	}
	if _, err := parseDate(payload.Date); err != nil {
		return mcp.NewToolResultError("invalid date, expected YYYY-MM-DD"), nil
	}
	if rpe := req.GetFloat("rpe", -1); rpe >= 0 {
		if rpe > 10 {
			return mcp.NewToolResultError("rpe must be between 0 and 10"), nil
		}
		payload.RPE = &rpe
	}
	if notes := strings.TrimSpace(req.GetString("notes", "")); notes != "" {
		payload.Notes = &notes
	}

	entry, err := h.ds.CreateEntry(ctx, payload)
	if err != nil {
		h.log.Error("mcp log_entry", "error", err)
		return mcp.NewToolResultError("create failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(entry)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) deleteEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	if err := h.ds.DeleteEntry(ctx, id); err != nil {
		h.log.Error("mcp delete_entry", "error", err)
		return mcp.NewToolResultError("delete failed: " + err.Error()), nil
	}

	return mcp.NewToolResultText("deleted"), nil
}
