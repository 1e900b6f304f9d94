package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance and applies any
// pending migrations
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SaveRun records a completed chunking run
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *Run) error {
	query := `
		INSERT INTO runs (context_path, format, chunking_method, chunk_count, total_chars, out_dir, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	result, err := s.db.ExecContext(ctx, query,
		run.ContextPath, run.Format, run.ChunkingMethod,
		run.ChunkCount, run.TotalChars, run.OutDir, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get run ID: %w", err)
	}
	run.ID = id
	return nil
}

// ListRuns returns the most recent runs, newest first
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, context_path, format, chunking_method, chunk_count, total_chars, out_dir, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun fetches a run by ID
func (s *SQLiteStorage) GetRun(ctx context.Context, id int64) (*Run, error) {
	query := `
		SELECT id, context_path, format, chunking_method, chunk_count, total_chars, out_dir, created_at
		FROM runs
		WHERE id = ?
	`
	row := s.db.QueryRowContext(ctx, query, id)
	run := &Run{}
	err := row.Scan(&run.ID, &run.ContextPath, &run.Format, &run.ChunkingMethod,
		&run.ChunkCount, &run.TotalChars, &run.OutDir, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run %d: %w", id, err)
	}
	return run, nil
}

func scanRun(rows *sql.Rows) (*Run, error) {
	run := &Run{}
	err := rows.Scan(&run.ID, &run.ContextPath, &run.Format, &run.ChunkingMethod,
		&run.ChunkCount, &run.TotalChars, &run.OutDir, &run.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}
	return run, nil
}
