// Package chunker implements content-aware chunking: splitting one block
// of content into bounded-size pieces that respect the content's own
// structure.
//
// # Splitters
//
// Four splitters cover the supported formats:
//
//   - SplitText: paragraph, line, whitespace, then hard-offset fallback.
//     Also the overflow and fallback splitter for the others.
//   - SplitMarkdown: heading-section assembly with level 1-3 headings as
//     preferred split points.
//   - CodeSplitter: symbol-boundary assembly driven by an injected
//     symbols.Provider, with text fallback on any provider failure.
//   - SplitJSON: top-level array elements or object keys regrouped and
//     re-serialized; parsing every payload reconstructs the original
//     value.
//
// Markdown and code share the same greedy assembler: accumulate ordered
// structural units, close the current chunk when the next unit would
// break the max size, when a preferred boundary arrives past the target
// size, or when the chunk has overrun the target by a configurable slack
// factor. An undersized trailing chunk merges back into its predecessor
// when the union fits.
//
// # Orchestration
//
// Chunker ties it together: detect the format, dispatch, build the
// manifest:
//
//	c := chunker.New(chunker.WithProvider(symbols.NewChain(nil)))
//	res, err := c.Chunk(ctx, content, "notes.md", types.DefaultSizeBudget())
//
// For any input and valid budget the chunk ranges exactly tile the
// content (or the item list, for JSON) with no gaps or overlaps, and no
// chunk exceeds the max size unless a single atomic unit does. Chunking
// is deterministic and never fails past budget validation; every
// degraded path still yields a usable chunk list.
package chunker
