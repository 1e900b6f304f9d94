package storage

import (
	"context"
	"time"
)

// Run records a single chunking invocation for history reporting
type Run struct {
	ID             int64
	ContextPath    string
	Format         string
	ChunkingMethod string
	ChunkCount     int
	TotalChars     int
	OutDir         string
	CreatedAt      time.Time
}

// Storage persists chunking run history
type Storage interface {
	// SaveRun records a completed chunking run and fills in its ID
	SaveRun(ctx context.Context, run *Run) error

	// ListRuns returns the most recent runs, newest first
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	// GetRun fetches a run by ID; ErrNotFound when absent
	GetRun(ctx context.Context, id int64) (*Run, error)

	// Close releases the underlying database
	Close() error
}
