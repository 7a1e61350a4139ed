package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Environment variables read by NewClientFromEnv.
const (
	EnvURL = "DRILLER_SCORE_API_URL"
	EnvKey = "DRILLER_SCORE_API_KEY"
)

// StatusError is returned when the server answers outside 2xx.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("leaderboard: %d %s: %s", e.Code, http.StatusText(e.Code), e.Message)
	}
	return fmt.Sprintf("leaderboard: unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// Client talks to a leaderboard server.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 4 * time.Second},
	}
}

// NewClientFromEnv returns a client configured from the environment,
// or nil when no server URL is set.
func NewClientFromEnv() *Client {
	baseURL := strings.TrimSpace(os.Getenv(EnvURL))
	if baseURL == "" {
		return nil
	}
	return NewClient(baseURL, strings.TrimSpace(os.Getenv(EnvKey)))
}

// Submit posts a finished run and returns the id the server assigned.
func (c *Client) Submit(ctx context.Context, gameID string, e Entry) (string, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("leaderboard: cannot encode entry: %w", err)
	}
	var out submitted
	if err := c.do(ctx, http.MethodPost, c.gamePath(gameID, "scores"), payload, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// Top fetches the best runs for a game.
func (c *Client) Top(ctx context.Context, gameID string, limit int) ([]Score, error) {
	path := c.gamePath(gameID, "scores")
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}
	var scores []Score
	if err := c.do(ctx, http.MethodGet, path, nil, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// Stats fetches the summary for a game.
func (c *Client) Stats(ctx context.Context, gameID string) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, c.gamePath(gameID, "stats"), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) gamePath(gameID, tail string) string {
	return "/api/games/" + url.PathEscape(gameID) + "/" + tail
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("leaderboard: cannot build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("leaderboard: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &StatusError{Code: resp.StatusCode, Message: eb.Error}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("leaderboard: cannot decode response: %w", err)
	}
	return nil
}
