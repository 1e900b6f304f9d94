package chunker

import (
	"context"
	"fmt"
	"time"

	"github.com/dshills/smartchunk-mcp/internal/detector"
	"github.com/dshills/smartchunk-mcp/internal/symbols"
	"github.com/dshills/smartchunk-mcp/pkg/types"
)

// Default slack factors for the force-split rules. Markdown tolerates a
// larger overrun than code before splitting mid-structure.
const (
	DefaultMarkdownSlack = 1.5
	DefaultCodeSlack     = 1.2
)

// Chunker orchestrates format detection, splitter dispatch, and manifest
// assembly. It holds only configuration; calls are safe concurrently.
type Chunker struct {
	provider        symbols.Provider
	markdownSlack   float64
	codeSlack       float64
	providerTimeout time.Duration
}

// Option configures a Chunker
type Option func(*Chunker)

// WithProvider injects the symbol boundary provider used for code files.
// Without one, code files are split as plain text.
func WithProvider(p symbols.Provider) Option {
	return func(c *Chunker) { c.provider = p }
}

// WithMarkdownSlack overrides the markdown force-split factor
func WithMarkdownSlack(f float64) Option {
	return func(c *Chunker) { c.markdownSlack = f }
}

// WithCodeSlack overrides the code force-split factor
func WithCodeSlack(f float64) Option {
	return func(c *Chunker) { c.codeSlack = f }
}

// WithProviderTimeout bounds each symbol resolution call
func WithProviderTimeout(d time.Duration) Option {
	return func(c *Chunker) { c.providerTimeout = d }
}

// New creates a chunking orchestrator with the given options
func New(opts ...Option) *Chunker {
	c := &Chunker{
		markdownSlack:   DefaultMarkdownSlack,
		codeSlack:       DefaultCodeSlack,
		providerTimeout: DefaultProviderTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result is the outcome of one chunking run
type Result struct {
	Format   types.Format
	Method   string
	Chunks   []types.Chunk
	Manifest *types.Manifest
}

// Chunk splits content into bounded chunks and builds the manifest.
// pathHint selects the format by extension and, for code, locates the
// file for symbol resolution; it may be empty. The budget is validated
// here once, before any splitter runs.
func (c *Chunker) Chunk(ctx context.Context, content, pathHint string, budget types.SizeBudget) (*Result, error) {
	if err := budget.Validate(); err != nil {
		return nil, fmt.Errorf("invalid size budget: %w", err)
	}

	format := detector.Detect(content, pathHint)
	method := types.MethodText
	codemapUsed := false
	jsonChunked := false
	var chunks []types.Chunk

	switch format {
	case types.FormatMarkdown:
		chunks = SplitMarkdown(content, budget, c.markdownSlack)
		method = types.MethodMarkdown
	case types.FormatCode:
		splitter := NewCodeSplitter(c.provider, c.codeSlack, c.providerTimeout)
		chunks, codemapUsed = splitter.Split(ctx, content, pathHint, budget)
		if codemapUsed {
			method = types.MethodCode
		}
	case types.FormatJSON:
		var ok bool
		chunks, ok = SplitJSON(content, budget)
		if ok {
			method = types.MethodJSON
			jsonChunked = true
		} else {
			chunks = SplitText(content, budget)
		}
	default:
		chunks = SplitText(content, budget)
	}

	manifest := buildManifest(content, format, method, budget, chunks)
	manifest.CodemapAvailable = c.provider != nil
	manifest.CodemapUsed = codemapUsed
	manifest.JSONChunked = jsonChunked

	return &Result{
		Format:   format,
		Method:   method,
		Chunks:   chunks,
		Manifest: manifest,
	}, nil
}

// buildManifest assembles the per-run record from the chunk list
func buildManifest(content string, format types.Format, method string, budget types.SizeBudget, chunks []types.Chunk) *types.Manifest {
	m := &types.Manifest{
		Format:         format,
		ChunkingMethod: method,
		TargetSize:     budget.TargetSize,
		MinSize:        budget.MinSize,
		MaxSize:        budget.MaxSize,
		TotalChars:     len(content),
		TotalLines:     countLines(content),
		ChunkCount:     len(chunks),
		Chunks:         make([]types.ChunkMeta, 0, len(chunks)),
	}

	for i := range chunks {
		m.Chunks = append(m.Chunks, chunkMeta(content, format, i, &chunks[i]))
	}
	if n := len(chunks); n > 0 && chunks[n-1].IsStructural() {
		m.TotalItems = chunks[n-1].ItemRange[1]
	}
	return m
}

func chunkMeta(content string, format types.Format, index int, c *types.Chunk) types.ChunkMeta {
	meta := types.ChunkMeta{
		ID:          fmt.Sprintf("chunk_%04d", index),
		SplitReason: c.SplitReason,
		Format:      format,
		Boundaries:  c.Boundaries,
	}

	if c.IsStructural() {
		meta.File = meta.ID + ".json"
		meta.StartChar = 0
		meta.EndChar = len(c.Payload)
		meta.StartLine = 1
		meta.EndLine = countLines(c.Payload)
		itemRange := c.ItemRange
		if c.Container == types.ContainerObject {
			meta.KeyRange = &itemRange
			meta.Keys = c.Keys
		} else {
			meta.ElementRange = &itemRange
		}
		return meta
	}

	meta.File = meta.ID + ".txt"
	meta.StartChar = c.Start
	meta.EndChar = c.End
	meta.StartLine = lineNumberAt(content, c.Start)
	meta.EndLine = lineNumberAt(content, c.End)
	return meta
}
