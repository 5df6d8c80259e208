package tetris

// ScoreTable maps the number of rows cleared by a single lock to the points awarded.
// Counts missing from the table award nothing.
type ScoreTable map[int]int

// DefaultScoreTable is the line clear award used when no table is configured.
var DefaultScoreTable = ScoreTable{
	1: 100,
	2: 300,
	3: 500,
	4: 800,
}

// Points returns the award for clearing rows rows in one lock.
func (t ScoreTable) Points(rows int) int {
	return t[rows]
}
