package leaderboard

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteLeaderboard opens the sqlite database at path, creating it and its
// schema when missing. Use ":memory:" for a throwaway database.
// The caller is responsible for calling Close on the leaderboard.
func NewSQLiteLeaderboard(ctx context.Context, path string) (Leaderboard, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// an in-memory database lives only as long as its connection
	db.SetMaxOpenConns(1)

	lb, err := newSQLLeaderboard(ctx, db, "sqlite")
	if err != nil {
		return nil, err
	}
	return lb, nil
}
