// Package batch chunks every matching file under a directory tree,
// fanning work out across a bounded worker pool. Per-file failures are
// collected, never fatal to the whole run.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/smartchunk-mcp/internal/chunker"
	"github.com/dshills/smartchunk-mcp/internal/storage"
	"github.com/dshills/smartchunk-mcp/internal/writer"
	"github.com/dshills/smartchunk-mcp/pkg/types"
)

// DefaultWorkers is the default worker pool size
const DefaultWorkers = 4

// DefaultExtensions lists the file extensions processed when the config
// names none
var DefaultExtensions = []string{
	".md", ".markdown", ".txt", ".log", ".json",
	".go", ".py", ".js", ".ts", ".rs", ".java",
}

// skipDirs are directory names never descended into
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	".idea":        true,
	".vscode":      true,
}

// Config controls a batch run
type Config struct {
	Workers    int
	Extensions []string
	Budget     types.SizeBudget
}

// DefaultConfig returns a batch configuration with standard settings
func DefaultConfig() *Config {
	return &Config{
		Workers:    DefaultWorkers,
		Extensions: DefaultExtensions,
		Budget:     types.DefaultSizeBudget(),
	}
}

// Statistics reports the outcome of a batch run
type Statistics struct {
	FilesProcessed int
	FilesFailed    int
	ChunksWritten  int
	Duration       time.Duration
	ErrorMessages  []string
}

// Processor chunks files concurrently and records each run
type Processor struct {
	chunker *chunker.Chunker
	writer  *writer.Writer
	store   storage.Storage // may be nil; history is then skipped
}

// New creates a batch processor. store may be nil to disable run history.
func New(c *chunker.Chunker, w *writer.Writer, store storage.Storage) *Processor {
	return &Processor{chunker: c, writer: w, store: store}
}

// ProcessDir chunks every matching file under root, writing each file's
// chunks to its own subdirectory of outDir. Individual file failures are
// recorded in the statistics; only context cancellation aborts the run.
func (p *Processor) ProcessDir(ctx context.Context, root, outDir string, config *Config) (*Statistics, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Budget.Validate(); err != nil {
		return nil, fmt.Errorf("invalid size budget: %w", err)
	}
	workers := config.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	files, err := discoverFiles(root, config.Extensions)
	if err != nil {
		return nil, fmt.Errorf("failed to discover files: %w", err)
	}

	start := time.Now()
	stats := &Statistics{}

	semaphore := make(chan struct{}, workers)
	var processed, failed, chunksWritten int32
	var mu sync.Mutex // Protect stats.ErrorMessages

	g, gctx := errgroup.WithContext(ctx)
	for _, file := range files {
		g.Go(func() error {
			select {
			case semaphore <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-semaphore }()

			n, err := p.processFile(gctx, root, file, outDir, config.Budget)
			if err != nil {
				atomic.AddInt32(&failed, 1)
				mu.Lock()
				stats.ErrorMessages = append(stats.ErrorMessages, fmt.Sprintf("%s: %v", file, err))
				mu.Unlock()
				return nil
			}
			atomic.AddInt32(&processed, 1)
			atomic.AddInt32(&chunksWritten, int32(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch processing aborted: %w", err)
	}

	stats.FilesProcessed = int(processed)
	stats.FilesFailed = int(failed)
	stats.ChunksWritten = int(chunksWritten)
	stats.Duration = time.Since(start)
	return stats, nil
}

// processFile chunks one file and returns the number of chunks written
func (p *Processor) processFile(ctx context.Context, root, file, outDir string, budget types.SizeBudget) (int, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}

	res, err := p.chunker.Chunk(ctx, string(data), file, budget)
	if err != nil {
		return 0, err
	}

	fileOut := filepath.Join(outDir, chunkDirName(root, file))
	if _, err := p.writer.WriteChunks(string(data), res, fileOut); err != nil {
		return 0, err
	}

	if p.store != nil {
		run := &storage.Run{
			ContextPath:    file,
			Format:         string(res.Format),
			ChunkingMethod: res.Method,
			ChunkCount:     len(res.Chunks),
			TotalChars:     len(data),
			OutDir:         fileOut,
		}
		if err := p.store.SaveRun(ctx, run); err != nil {
			return 0, fmt.Errorf("failed to record run: %w", err)
		}
	}
	return len(res.Chunks), nil
}

// chunkDirName flattens a file's path relative to root into a single
// directory name, so every file gets a distinct output directory
func chunkDirName(root, file string) string {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		rel = filepath.Base(file)
	}
	return strings.ReplaceAll(rel, string(os.PathSeparator), "_")
}

// discoverFiles walks root collecting files with matching extensions
func discoverFiles(root string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if wanted[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
