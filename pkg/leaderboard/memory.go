package leaderboard

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryLeaderboard keeps scores in process memory. Everything is lost on exit.
type MemoryLeaderboard struct {
	mu      sync.RWMutex
	nextID  int64
	entries []Entry
	now     func() time.Time
}

func NewMemoryLeaderboard() *MemoryLeaderboard {
	return &MemoryLeaderboard{
		nextID: 1,
		now:    time.Now,
	}
}

func (l *MemoryLeaderboard) Close(ctx context.Context) error {
	return nil
}

func (l *MemoryLeaderboard) AddScore(ctx context.Context, name string, score int) error {
	if err := validateEntry(name, score); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{
		ID:        l.nextID,
		Name:      name,
		Score:     score,
		CreatedAt: l.now().UTC(),
	})
	l.nextID++
	return nil
}

func (l *MemoryLeaderboard) TopScores(ctx context.Context, limit int) ([]Entry, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}

	l.mu.RLock()
	sorted := make([]Entry, len(l.entries))
	copy(sorted, l.entries)
	l.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].ID < sorted[j].ID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}
