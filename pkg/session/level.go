package session

import "time"

// Level is the pace of the game at a given score.
type Level struct {
	// Number starts at 1.
	Number int
	// Interval is the time between gravity steps.
	Interval time.Duration
	// Theme selects the background colour, 0 being the first level's.
	Theme int
}

var levels = []struct {
	minScore int
	interval time.Duration
}{
	{minScore: 0, interval: 400 * time.Millisecond},
	{minScore: 2000, interval: 300 * time.Millisecond},
	{minScore: 4000, interval: 200 * time.Millisecond},
	{minScore: 6000, interval: 150 * time.Millisecond},
}

// LevelFor returns the level reached with score.
func LevelFor(score int) Level {
	i := 0
	for j, l := range levels {
		if score >= l.minScore {
			i = j
		}
	}
	return Level{
		Number:   i + 1,
		Interval: levels[i].interval,
		Theme:    i,
	}
}

// GravityInterval is the time between automatic one row drops at score.
func GravityInterval(score int) time.Duration {
	return LevelFor(score).Interval
}
