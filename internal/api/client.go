// Package api is the HTTP client for the LiftLog REST backend. Every
// operation is one round-trip; any non-success status, transport failure, or
// undecodable body collapses into the single ErrRequestFailed kind, which
// callers present to the user as a generic transient message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// ErrRequestFailed is the uniform failure for any API operation. Wrapped
// errors carry detail for logs; the UI never inspects past this sentinel.
var ErrRequestFailed = errors.New("request failed")

// Client talks to the LiftLog server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client targeting the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListExercises fetches the full exercise catalog.
func (c *Client) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/exercises", nil)
	if err != nil {
		return nil, err
	}
	var exercises []models.Exercise
	if err := json.Unmarshal(body, &exercises); err != nil {
		return nil, fmt.Errorf("%w: decode exercises: %v", ErrRequestFailed, err)
	}
	return exercises, nil
}

// CreateExercise adds a bilingual exercise to the catalog.
func (c *Client) CreateExercise(ctx context.Context, payload models.ExerciseCreate) (*models.Exercise, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/exercises", payload)
	if err != nil {
		return nil, err
	}
	var ex models.Exercise
	if err := json.Unmarshal(body, &ex); err != nil {
		return nil, fmt.Errorf("%w: decode exercise: %v", ErrRequestFailed, err)
	}
	return &ex, nil
}

// ListEntries fetches logged entries, newest first. A non-empty date
// (YYYY-MM-DD) filters to that day.
func (c *Client) ListEntries(ctx context.Context, date string) ([]models.Entry, error) {
	path := "/api/entries"
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var entries []models.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode entries: %v", ErrRequestFailed, err)
	}
	return entries, nil
}

// CreateEntry logs a lift entry.
func (c *Client) CreateEntry(ctx context.Context, payload models.EntryCreate) (*models.Entry, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/entries", payload)
	if err != nil {
		return nil, err
	}
	var entry models.Entry
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("%w: decode entry: %v", ErrRequestFailed, err)
	}
	return &entry, nil
}

// DeleteEntry removes an entry by ID.
func (c *Client) DeleteEntry(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/entries/%d", id), nil)
	return err
}

// do performs one round-trip. payload, when non-nil, is JSON-encoded as the
// request body. Success is any 2xx status; everything else is ErrRequestFailed.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: encode payload: %v", ErrRequestFailed, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrRequestFailed, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s returned %d: %s", ErrRequestFailed, method, path, resp.StatusCode, body)
	}

	return body, nil
}
