package symbols

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/dshills/smartchunk-mcp/pkg/types"
)

// ErrUnavailable signals that no provider can serve the given path.
// Callers treat it like any other provider failure and fall back to plain
// text chunking.
var ErrUnavailable = errors.New("symbol provider unavailable")

// Provider resolves symbol boundaries for a source file. Implementations
// must honor context cancellation and report failures as errors; they are
// never allowed to block past the caller's deadline.
type Provider interface {
	ResolveSymbols(ctx context.Context, path string) ([]types.Symbol, error)
}

// Chain dispatches Go sources to the native AST provider and everything
// else to an external provider when one was detected at construction time.
type Chain struct {
	goProvider *GoProvider
	external   Provider
}

// NewChain builds a dispatch chain. external may be nil when no codemap
// installation was found.
func NewChain(external Provider) *Chain {
	return &Chain{goProvider: NewGoProvider(), external: external}
}

// DetectChain builds a dispatch chain from codemap detection. The nil
// check happens on the concrete type so an absent codemap stays a true
// nil inside the chain.
func DetectChain(ctx context.Context, d *Detector) *Chain {
	if p := d.Provider(ctx); p != nil {
		return NewChain(p)
	}
	return NewChain(nil)
}

// ResolveSymbols implements Provider
func (c *Chain) ResolveSymbols(ctx context.Context, path string) ([]types.Symbol, error) {
	if strings.ToLower(filepath.Ext(path)) == ".go" {
		return c.goProvider.ResolveSymbols(ctx, path)
	}
	if c.external == nil {
		return nil, ErrUnavailable
	}
	return c.external.ResolveSymbols(ctx, path)
}
