// Package symbols resolves code symbol boundaries for the chunker.
//
// The chunker never parses programming languages itself; it asks a
// Provider for symbol line ranges and degrades to plain text chunking
// when none is available. Three providers ship here:
//
//   - GoProvider parses Go sources with go/ast. No external tooling.
//   - CodemapProvider shells out to the codemap tool (tree-sitter based)
//     for every other language. Availability is probed once per process
//     through a Detector: an explicit SMARTCHUNK_CODEMAP_PATH binary,
//     codemap on PATH, then npx codemap, each under a short timeout.
//   - Chain dispatches by file extension between the two.
//
// Providers are injected into the chunker at construction time. Any
// provider failure (missing binary, crash, timeout, unparseable report)
// surfaces as an error the chunker converts into a text-chunking
// fallback; nothing in this package panics or blocks past its context.
package symbols
