package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

func init() {
	Register("postgres", func(location string) (Store, error) {
		s, err := OpenPostgres(location)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// PostgresStore keeps scores in PostgreSQL, for SSH servers shared by many players.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects to the database at connStr and creates the schema.
func OpenPostgres(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snake_high_score (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		score INTEGER NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS snake_runs (
		id BIGSERIAL PRIMARY KEY,
		session_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		level INTEGER NOT NULL,
		length INTEGER NOT NULL,
		ticks BIGINT NOT NULL,
		duration_ms BIGINT NOT NULL,
		collision TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_snake_runs_top ON snake_runs(score DESC);
	`

	_, err := ps.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}

// LoadHighScore returns the stored high score, or 0 if none was saved.
func (ps *PostgresStore) LoadHighScore() (int, error) {
	var score int
	err := ps.db.QueryRow(`SELECT score FROM snake_high_score WHERE id = 1`).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SaveHighScore stores score unless a higher one is already stored.
func (ps *PostgresStore) SaveHighScore(score int) error {
	if err := validateScore(score); err != nil {
		return err
	}

	query := `
	INSERT INTO snake_high_score (id, score) VALUES (1, $1)
	ON CONFLICT (id)
	DO UPDATE SET
		score = GREATEST(snake_high_score.score, EXCLUDED.score),
		updated_at = NOW()
	`
	if _, err := ps.db.Exec(query, score); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (ps *PostgresStore) SaveRun(run Run) (int64, error) {
	run, err := prepareRun(run)
	if err != nil {
		return 0, err
	}

	query := `
	INSERT INTO snake_runs (session_id, score, level, length, ticks, duration_ms, collision, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id
	`
	var id int64
	err = ps.db.QueryRow(query,
		run.SessionID, run.Score, run.Level, run.Length, int64(run.Ticks),
		run.Duration.Milliseconds(), run.Collision, run.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best runs, highest score first.
func (ps *PostgresStore) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultTopRuns
	}

	rows, err := ps.db.Query(`
	SELECT id, session_id, score, level, length, ticks, duration_ms, collision, created_at
	FROM snake_runs
	ORDER BY score DESC, id ASC
	LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

var _ Store = (*PostgresStore)(nil)
