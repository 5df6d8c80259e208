package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mocks "github.com/cbodonnell/blockfall/mocks/github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_scores(t *testing.T) {
	lb := leaderboard.NewMemoryLeaderboard()
	h := NewRouter(lb, "*")

	rec := serve(h, http.MethodGet, "/scores", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	for i, name := range []string{"Ada", "Linus", "Grace"} {
		rec = serve(h, http.MethodPost, "/scores", fmt.Sprintf(`{"name":%q,"score":%d}`, name, (i+1)*100))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec = serve(h, http.MethodGet, "/scores?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var entries []leaderboard.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Grace", entries[0].Name)
	assert.Equal(t, 300, entries[0].Score)
	assert.Equal(t, "Linus", entries[1].Name)
}

func TestRouter_badRequests(t *testing.T) {
	h := NewRouter(leaderboard.NewMemoryLeaderboard(), "*")

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "limit not a number", method: http.MethodGet, target: "/scores?limit=ten"},
		{name: "limit zero", method: http.MethodGet, target: "/scores?limit=0"},
		{name: "limit too large", method: http.MethodGet, target: "/scores?limit=1000"},
		{name: "malformed body", method: http.MethodPost, target: "/scores", body: `{"name":`},
		{name: "unknown field", method: http.MethodPost, target: "/scores", body: `{"name":"Ada","score":1,"level":3}`},
		{name: "empty name", method: http.MethodPost, target: "/scores", body: `{"name":"","score":1}`},
		{name: "long name", method: http.MethodPost, target: "/scores", body: `{"name":"ABCDEFGHIJK","score":1}`},
		{name: "negative score", method: http.MethodPost, target: "/scores", body: `{"name":"Ada","score":-3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRouter_storageFailure(t *testing.T) {
	lb := mocks.NewLeaderboard(t)
	lb.EXPECT().TopScores(mock.Anything, leaderboard.DefaultLimit).Return(nil, errors.New("disk full"))
	lb.EXPECT().AddScore(mock.Anything, "Ada", 10).Return(errors.New("disk full"))
	h := NewRouter(lb, "*")

	rec := serve(h, http.MethodGet, "/scores", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk full")

	rec = serve(h, http.MethodPost, "/scores", `{"name":"Ada","score":10}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRouter_healthAndMethods(t *testing.T) {
	h := NewRouter(leaderboard.NewMemoryLeaderboard(), "*")

	rec := serve(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(h, http.MethodDelete, "/scores", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = serve(h, http.MethodGet, "/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CORS(t *testing.T) {
	h := NewRouter(leaderboard.NewMemoryLeaderboard(), "http://localhost:3000, https://blockfall.example")

	req := httptest.NewRequest(http.MethodOptions, "/scores", nil)
	req.Header.Set("Origin", "https://blockfall.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://blockfall.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")

	req = httptest.NewRequest(http.MethodGet, "/scores", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_gzip(t *testing.T) {
	lb := leaderboard.NewMemoryLeaderboard()
	ctx := context.Background()
	for i := 0; i < 60; i++ {
		require.NoError(t, lb.AddScore(ctx, fmt.Sprintf("P%d", i), i*10))
	}
	h := NewRouter(lb, "*")

	req := httptest.NewRequest(http.MethodGet, "/scores?limit=60", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestRouter_withHTTPLeaderboard(t *testing.T) {
	server := httptest.NewServer(NewRouter(leaderboard.NewMemoryLeaderboard(), "*"))
	defer server.Close()

	client, err := leaderboard.NewHTTPLeaderboard(server.URL, server.Client())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, client.AddScore(ctx, "Ada", 500))
	require.NoError(t, client.AddScore(ctx, "Linus", 700))

	entries, err := client.TopScores(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Linus", entries[0].Name)
	assert.False(t, entries[0].CreatedAt.IsZero())

	err = client.AddScore(ctx, "Ada", -1)
	assert.True(t, leaderboard.IsInvalidArgument(err))
}
