package leaderboard

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// sqlLeaderboard stores scores through database/sql.
// It serves the sqlite and mysql backends, which share the ? placeholder syntax.
type sqlLeaderboard struct {
	db *sql.DB
}

func newSQLLeaderboard(ctx context.Context, db *sql.DB, dialect string) (*sqlLeaderboard, error) {
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	migrations, err := loadMigrations(dialect)
	if err != nil {
		db.Close()
		return nil, err
	}
	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", m.name, err)
		}
	}

	return &sqlLeaderboard{
		db: db,
	}, nil
}

func (l *sqlLeaderboard) Close(ctx context.Context) error {
	return l.db.Close()
}

func (l *sqlLeaderboard) AddScore(ctx context.Context, name string, score int) error {
	if err := validateEntry(name, score); err != nil {
		return err
	}

	q := `
	INSERT INTO leaderboard (player_name, score, created_at)
	VALUES (?, ?, ?);
	`
	if _, err := l.db.ExecContext(ctx, q, name, score, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert score: %v", err)
	}

	return nil
}

func (l *sqlLeaderboard) TopScores(ctx context.Context, limit int) ([]Entry, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}

	q := `
	SELECT id, player_name, score, created_at FROM leaderboard
	ORDER BY score DESC, id ASC
	LIMIT ?;
	`
	rows, err := l.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %v", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score: %v", err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %v", err)
	}

	return entries, nil
}
