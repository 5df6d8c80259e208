package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ScoreRequest is the body of a POST /scores request.
type ScoreRequest struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// HTTPLeaderboard talks to a leaderboard API server.
type HTTPLeaderboard struct {
	baseURL *url.URL
	client  *http.Client
}

// NewHTTPLeaderboard returns a leaderboard backed by the API served at baseURL.
// A nil client uses one with a ten second timeout.
func NewHTTPLeaderboard(baseURL string, client *http.Client) (*HTTPLeaderboard, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse leaderboard url: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("leaderboard url must be http or https, got %q", u.Scheme)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPLeaderboard{
		baseURL: u,
		client:  client,
	}, nil
}

func (l *HTTPLeaderboard) Close(ctx context.Context) error {
	l.client.CloseIdleConnections()
	return nil
}

func (l *HTTPLeaderboard) AddScore(ctx context.Context, name string, score int) error {
	if err := validateEntry(name, score); err != nil {
		return err
	}

	body, err := json.Marshal(ScoreRequest{Name: name, Score: score})
	if err != nil {
		return fmt.Errorf("failed to encode score: %v", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint("scores", nil), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to add score: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return responseError(resp)
	}
	return nil
}

func (l *HTTPLeaderboard) TopScores(ctx context.Context, limit int) ([]Entry, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}

	query := url.Values{"limit": []string{strconv.Itoa(limit)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint("scores", query), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	entries := []Entry{}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode scores: %v", err)
	}
	return entries, nil
}

func (l *HTTPLeaderboard) endpoint(path string, query url.Values) string {
	u := l.baseURL.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func responseError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	msg := strings.TrimSpace(string(b))
	if resp.StatusCode == http.StatusBadRequest {
		return &InvalidArgumentError{Field: "request", Message: msg}
	}
	return fmt.Errorf("leaderboard server responded %s: %s", resp.Status, msg)
}
