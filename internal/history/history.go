// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of merge runs so that timings and
// memory peaks can be compared across runs.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdfconcat/pkg/types"
)

const defaultLimit = 20

// timeLayout is fixed width so started_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store manages the run history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			source_directory TEXT NOT NULL,
			start INTEGER NOT NULL,
			count INTEGER NOT NULL,
			watermark INTEGER NOT NULL,
			target TEXT NOT NULL,
			imported INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			failed INTEGER NOT NULL,
			pages INTEGER NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			peak_memory INTEGER NOT NULL,
			memory_samples INTEGER NOT NULL,
			target_size INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one run. Recording the same run ID twice is an error.
func (s *Store) Record(ctx context.Context, r types.RunSummary) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, source_directory, start, count, watermark, target,
			imported, skipped, failed, pages, elapsed_ns, peak_memory, memory_samples, target_size)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.StartedAt.UTC().Format(timeLayout), r.SourceDir, r.Start, r.Count, r.Watermark, r.Target,
		r.Imported, r.Skipped, r.Failed, r.Pages, int64(r.Elapsed), int64(r.PeakMemory), r.MemorySamples, r.TargetSize,
	)
	if err != nil {
		return fmt.Errorf("recording run %s: %w", r.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. A non-positive limit
// uses the default of 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.RunSummary, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, source_directory, start, count, watermark, target,
			imported, skipped, failed, pages, elapsed_ns, peak_memory, memory_samples, target_size
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunSummary
	for rows.Next() {
		var (
			r         types.RunSummary
			startedAt string
			elapsed   int64
			peak      int64
		)
		if err := rows.Scan(&r.ID, &startedAt, &r.SourceDir, &r.Start, &r.Count, &r.Watermark, &r.Target,
			&r.Imported, &r.Skipped, &r.Failed, &r.Pages, &elapsed, &peak, &r.MemorySamples, &r.TargetSize); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		t, err := time.Parse(timeLayout, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing start time of run %s: %w", r.ID, err)
		}
		r.StartedAt = t
		r.Elapsed = time.Duration(elapsed)
		r.PeakMemory = uint64(peak)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
