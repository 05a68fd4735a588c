package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

func init() {
	Register("sqlite", func(location string) (Store, error) {
		s, err := OpenSQLite(location)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// SQLiteStore keeps scores in a local SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath, err := prepareFile(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			collision TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadHighScore returns the stored high score, or 0 if none was saved.
func (s *SQLiteStore) LoadHighScore() (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_score WHERE id = 1").Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SaveHighScore stores score unless a higher one is already stored.
func (s *SQLiteStore) SaveHighScore(score int) error {
	if err := validateScore(score); err != nil {
		return err
	}

	_, err := s.db.Exec(
		`INSERT INTO high_score (id, score) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET
			score = MAX(score, excluded.score),
			updated_at = CURRENT_TIMESTAMP`,
		score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *SQLiteStore) SaveRun(run Run) (int64, error) {
	run, err := prepareRun(run)
	if err != nil {
		return 0, err
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (session_id, score, level, length, ticks, duration_ms, collision, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.SessionID, run.Score, run.Level, run.Length, int64(run.Ticks),
		run.Duration.Milliseconds(), run.Collision, run.CreatedAt.Format(sqlTimeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best runs, highest score first.
// Ties go to the earlier run.
func (s *SQLiteStore) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultTopRuns
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, score, level, length, ticks, duration_ms, collision, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// scanRuns reads the column list shared by the SQL backends.
func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var (
			r          Run
			ticks      int64
			durationMS int64
			createdAt  any
		)
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Score, &r.Level, &r.Length,
			&ticks, &durationMS, &r.Collision, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

var _ Store = (*SQLiteStore)(nil)
