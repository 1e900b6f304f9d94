// Package types provides shared type definitions for the SmartChunk MCP server.
//
// This package defines domain types used across multiple components of
// SmartChunk, including formats, size budgets, chunks, manifests, and code
// symbols.
//
// # Core Types
//
// SizeBudget bounds every chunking run. It is validated once at the
// orchestrator boundary:
//
//	budget := types.SizeBudget{TargetSize: 100000, MinSize: 20000, MaxSize: 200000}
//	if err := budget.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// Chunk represents one bounded piece of the input. Most chunks reference
// the original content by a half-open byte range; JSON structural chunks
// instead carry a re-serialized payload:
//
//	chunk := types.Chunk{
//	    Start:       0,
//	    End:         4096,
//	    SplitReason: types.ReasonParagraph,
//	}
//
// Manifest is the machine-readable record of a chunking run, written as
// manifest.json next to the chunk files. Its field names form the wire
// contract consumed by downstream tooling and must not change.
//
// # Split Reasons
//
// Every chunk records why it ended where it did. Fixed reasons are
// declared as constants (ReasonParagraph, ReasonMaxSize, ...); parametric
// reasons are built with HeaderLevelReason and SymbolReason:
//
//	types.HeaderLevelReason(2) // "header_level_2"
//	types.SymbolReason("class") // "symbol_class"
//
// # Validation
//
// Domain types implement validation methods to ensure data integrity:
//
//	if err := chunk.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package types
