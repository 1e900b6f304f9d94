// Package writer persists chunking results: one file per chunk plus a
// manifest.json describing the run. It also decorates the manifest with
// previews and content hints, which are cosmetic and never affect the
// chunking itself.
package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/smartchunk-mcp/internal/chunker"
)

// DefaultPreviewLines is how many leading lines of a chunk appear in its
// manifest preview
const DefaultPreviewLines = 5

// Writer persists chunk payloads and the manifest for a chunking run
type Writer struct {
	includeHints bool
	previewLines int
}

// Option configures a Writer
type Option func(*Writer)

// WithoutHints disables preview and hint decoration
func WithoutHints() Option {
	return func(w *Writer) { w.includeHints = false }
}

// WithPreviewLines overrides the preview length
func WithPreviewLines(n int) Option {
	return func(w *Writer) { w.previewLines = n }
}

// New creates a Writer with hints enabled
func New(opts ...Option) *Writer {
	w := &Writer{includeHints: true, previewLines: DefaultPreviewLines}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteChunks writes every chunk file and manifest.json under outDir,
// creating it as needed, and returns the chunk file paths in order. The
// manifest inside res is decorated with previews and hints in place
// before serialization.
func (w *Writer) WriteChunks(content string, res *chunker.Result, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(res.Chunks))
	for i := range res.Chunks {
		meta := &res.Manifest.Chunks[i]
		text := res.Chunks[i].Text(content)

		path := filepath.Join(outDir, meta.File)
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return nil, fmt.Errorf("failed to write chunk %s: %w", meta.ID, err)
		}
		paths = append(paths, path)

		if w.includeHints {
			meta.Preview = Preview(text, w.previewLines)
			meta.Hints = ContentHints(text)
		}
	}

	data, err := json.MarshalIndent(res.Manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize manifest: %w", err)
	}
	manifestPath := filepath.Join(outDir, "manifest.json")
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	return paths, nil
}
