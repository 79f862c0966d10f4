package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/studydash/internal/client/models"
	"github.com/google/uuid"
)

const (
	DashboardStatsPath = "/api/dashboard-stats"
	MyNotesPath        = "/api/my-notes"

	// RequestIDHeader carries a per-request uuid for correlating backend logs.
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 4 << 20
)

// Client talks to the backend API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	newID      func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New returns a Client for the backend rooted at baseURL
// (e.g. "http://localhost:5000").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DashboardStats fetches the caller's aggregated study statistics.
func (c *Client) DashboardStats(ctx context.Context, token string) (*models.DashboardStats, error) {
	var body struct {
		Stats *models.DashboardStats `json:"stats"`
	}
	if err := c.get(ctx, DashboardStatsPath, token, &body); err != nil {
		return nil, err
	}
	if body.Stats == nil {
		return nil, &missingFieldError{field: "stats"}
	}
	return body.Stats, nil
}

// MyNotes fetches the caller's note summaries.
func (c *Client) MyNotes(ctx context.Context, token string) ([]models.NoteSummary, error) {
	var body struct {
		Notes *[]models.NoteSummary `json:"notes"`
	}
	if err := c.get(ctx, MyNotesPath, token, &body); err != nil {
		return nil, err
	}
	if body.Notes == nil {
		return nil, &missingFieldError{field: "notes"}
	}
	notes := *body.Notes
	for i := range notes {
		if notes[i].Topics == nil {
			notes[i].Topics = []string{}
		}
	}
	return notes, nil
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, c.newID())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxBodyBytes)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Message string `json:"message"`
		}
		msg := genericStatusMessage(resp.StatusCode)
		if err := json.NewDecoder(body).Decode(&errBody); err == nil && errBody.Message != "" {
			msg = errBody.Message
		}
		return &StatusError{Status: resp.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
