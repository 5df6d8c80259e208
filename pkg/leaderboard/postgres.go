package leaderboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/jackc/pgx/v5"
)

type PostgresLeaderboard struct {
	// pgx.Conn is not safe for concurrent use
	mu   sync.Mutex
	conn *pgx.Conn
}

// NewPostgresLeaderboard connects to the database at connStr and applies the schema.
// The caller is responsible for calling Close on the leaderboard.
func NewPostgresLeaderboard(ctx context.Context, connStr string) (Leaderboard, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	migrations, err := loadMigrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for _, m := range migrations {
		if _, err := conn.Exec(ctx, m.sql); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %s: %v", m.name, err)
		}
	}

	return &PostgresLeaderboard{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (l *PostgresLeaderboard) Close(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn.Close(ctx)
}

func (l *PostgresLeaderboard) AddScore(ctx context.Context, name string, score int) error {
	if err := validateEntry(name, score); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	q := `
	INSERT INTO leaderboard (player_name, score) VALUES ($1, $2);
	`
	if _, err := l.conn.Exec(ctx, q, name, score); err != nil {
		return fmt.Errorf("failed to insert score: %v", err)
	}

	return nil
}

func (l *PostgresLeaderboard) TopScores(ctx context.Context, limit int) ([]Entry, error) {
	if err := ValidateLimit(limit); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	q := `
	SELECT id, player_name, score, created_at FROM leaderboard
	ORDER BY score DESC, id ASC
	LIMIT $1;
	`
	rows, err := l.conn.Query(ctx, q, limit)
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
