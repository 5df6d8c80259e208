package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/cbodonnell/blockfall/pkg/log"
)

// maxBodyBytes bounds a score submission.
const maxBodyBytes = 1 << 10

func HandleListScores(lb leaderboard.Leaderboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := leaderboard.DefaultLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "Limit must be a number", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		entries, err := lb.TopScores(r.Context(), limit)
		if err != nil {
			if leaderboard.IsInvalidArgument(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("failed to list scores: %v", err)
			http.Error(w, "Failed to list scores", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			log.Error("failed to encode scores: %v", err)
			return
		}
	}
}

func HandleAddScore(lb leaderboard.Leaderboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leaderboard.ScoreRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "Invalid score body", http.StatusBadRequest)
			return
		}

		if err := lb.AddScore(r.Context(), req.Name, req.Score); err != nil {
			if leaderboard.IsInvalidArgument(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("failed to add score: %v", err)
			http.Error(w, "Failed to add score", http.StatusInternalServerError)
			return
		}

		log.Info("Saved score %d for %s", req.Score, req.Name)
		w.WriteHeader(http.StatusCreated)
	}
}

func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}
