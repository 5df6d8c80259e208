package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score    int
		number   int
		interval time.Duration
	}{
		{score: 0, number: 1, interval: 400 * time.Millisecond},
		{score: 1999, number: 1, interval: 400 * time.Millisecond},
		{score: 2000, number: 2, interval: 300 * time.Millisecond},
		{score: 4000, number: 3, interval: 200 * time.Millisecond},
		{score: 5999, number: 3, interval: 200 * time.Millisecond},
		{score: 6000, number: 4, interval: 150 * time.Millisecond},
		{score: 250000, number: 4, interval: 150 * time.Millisecond},
	}
	for _, tt := range tests {
		level := LevelFor(tt.score)
		assert.Equal(t, tt.number, level.Number, "score %d", tt.score)
		assert.Equal(t, tt.number-1, level.Theme, "score %d", tt.score)
		assert.Equal(t, tt.interval, level.Interval, "score %d", tt.score)
		assert.Equal(t, tt.interval, GravityInterval(tt.score), "score %d", tt.score)
	}
}
