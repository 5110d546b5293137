package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const createEntriesTableSQL = `
	CREATE TABLE IF NOT EXISTS deals (
		id TEXT PRIMARY KEY,
		draw_mode INTEGER NOT NULL,
		started_at INTEGER NOT NULL,  -- unix milliseconds
		ended_at INTEGER NOT NULL,    -- unix milliseconds
		outcome TEXT NOT NULL,
		moves INTEGER NOT NULL,
		draws INTEGER NOT NULL,
		recycles INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_deals_ended ON deals(ended_at)`

const selectEntryColumns = `id, draw_mode, started_at, ended_at, outcome, moves, draws, recycles`

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens or creates the journal database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// A second pooled connection to ":memory:" would see an empty database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createEntriesTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Save upserts the entry
func (r *SQLiteRepository) Save(ctx context.Context, e *Entry) error {
	query := `
		INSERT INTO deals (` + selectEntryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id)
		DO UPDATE SET draw_mode = excluded.draw_mode, started_at = excluded.started_at,
			ended_at = excluded.ended_at, outcome = excluded.outcome, moves = excluded.moves,
			draws = excluded.draws, recycles = excluded.recycles`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Mode, e.StartedAt.UnixMilli(), e.EndedAt.UnixMilli(),
		string(e.Outcome), e.Moves, e.Draws, e.Recycles)
	if err != nil {
		return fmt.Errorf("error saving entry %s: %w", e.ID, err)
	}
	return nil
}

// Get returns the entry with the given id
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM deals WHERE id = ?`

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading entry %s: %w", id, err)
	}
	return e, nil
}

// Recent returns up to limit entries, latest end time first
func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM deals ORDER BY ended_at DESC, rowid DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying recent entries: %w", err)
	}
	defer rows.Close()

	var out []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Summary counts played and won deals
func (r *SQLiteRepository) Summary(ctx context.Context) (Summary, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0) FROM deals`

	var s Summary
	if err := r.db.QueryRowContext(ctx, query, string(OutcomeWon)).Scan(&s.Played, &s.Won); err != nil {
		return Summary{}, fmt.Errorf("error computing summary: %w", err)
	}
	return s, nil
}

// Close closes the database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var (
		e                  Entry
		outcome            string
		startedAt, endedAt int64
	)
	if err := row.Scan(&e.ID, &e.Mode, &startedAt, &endedAt, &outcome, &e.Moves, &e.Draws, &e.Recycles); err != nil {
		return nil, err
	}
	e.StartedAt = time.UnixMilli(startedAt)
	e.EndedAt = time.UnixMilli(endedAt)
	e.Outcome = Outcome(outcome)
	return &e, nil
}
