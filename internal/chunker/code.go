package chunker

import (
	"context"
	"os"
	"time"

	"github.com/dshills/smartchunk-mcp/internal/symbols"
	"github.com/dshills/smartchunk-mcp/pkg/types"
)

// preferredSymbolKinds are the symbol kinds worth splitting at once the
// current chunk has reached the target size
var preferredSymbolKinds = map[string]bool{
	"function": true,
	"class":    true,
	"method":   true,
	"impl":     true,
}

// DefaultProviderTimeout bounds a single symbol resolution call
const DefaultProviderTimeout = 10 * time.Second

// CodeSplitter divides source files at symbol boundaries reported by an
// injected provider, falling back to plain text splitting whenever symbol
// information cannot be had.
type CodeSplitter struct {
	provider symbols.Provider
	slack    float64
	timeout  time.Duration
}

// NewCodeSplitter creates a code splitter. provider may be nil, in which
// case every input takes the text fallback.
func NewCodeSplitter(provider symbols.Provider, slack float64, timeout time.Duration) *CodeSplitter {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &CodeSplitter{provider: provider, slack: slack, timeout: timeout}
}

// Split chunks content at symbol boundaries and reports whether the
// provider was actually used. Provider failures of any kind (absent,
// error, timeout, zero symbols) degrade to SplitText with used=false;
// they are never propagated.
func (s *CodeSplitter) Split(ctx context.Context, content, path string, budget types.SizeBudget) ([]types.Chunk, bool) {
	syms := s.resolve(ctx, path)
	if len(syms) == 0 {
		return SplitText(content, budget), false
	}
	units := symbolUnits(content, syms)
	if len(units) == 0 {
		return SplitText(content, budget), false
	}

	forceAt := int(s.slack * float64(budget.TargetSize))
	chunks := assemble(units, budget, func(curSize, unitSize int, u unit) (types.SplitReason, bool) {
		if curSize >= budget.TargetSize && u.preferred {
			return u.reason, true
		}
		if curSize >= forceAt {
			return types.ReasonTargetSize, true
		}
		return "", false
	})
	chunks = mergeTrailing(chunks, budget)
	if len(chunks) == 0 {
		return SplitText(content, budget), false
	}
	return chunks, true
}

func (s *CodeSplitter) resolve(ctx context.Context, path string) []types.Symbol {
	if s.provider == nil || path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	syms, err := s.provider.ResolveSymbols(ctx, path)
	if err != nil {
		return nil
	}
	return syms
}

// symbolUnits converts symbol line ranges into contiguous character spans
// covering the whole content. Each span runs from one symbol start to the
// next; the first span is extended back to offset zero and the last runs
// to the end of content, so imports, comments, and trailing code fold
// into the adjacent symbol's span.
func symbolUnits(content string, syms []types.Symbol) []unit {
	offsets := lineOffsets(content)

	starts := make([]int, 0, len(syms))
	bySymbol := make(map[int]types.Symbol, len(syms))
	for _, sym := range syms {
		start := lineStartChar(offsets, content, sym.StartLine)
		if start >= len(content) {
			continue
		}
		if _, seen := bySymbol[start]; !seen {
			bySymbol[start] = sym
		}
		starts = append(starts, start)
	}
	starts = sortedUniqueInts(starts)
	if len(starts) == 0 {
		return nil
	}

	units := make([]unit, 0, len(starts))
	for i, start := range starts {
		end := len(content)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		sym := bySymbol[start]
		u := unit{
			start: start,
			end:   end,
			boundary: &types.Boundary{
				Type: sym.Kind,
				Name: sym.Name,
				Line: sym.StartLine,
			},
			preferred: preferredSymbolKinds[sym.Kind],
			reason:    types.SymbolReason(sym.Kind),
		}
		if i == 0 {
			u.start = 0
		}
		units = append(units, u)
	}
	return units
}
