package chunker

import (
	"regexp"
	"strings"

	"github.com/dshills/smartchunk-mcp/pkg/types"
)

// paragraphBreak matches a blank-line separator between paragraphs
var paragraphBreak = regexp.MustCompile(`\n\n+`)

// SplitText divides content at natural text boundaries. Within each search
// window it prefers a paragraph break, then a line break, then any
// whitespace, and hard-splits at the max size when nothing matches.
// Positions strictly advance, so the loop always terminates, and the final
// remainder is always emitted even when shorter than the minimum size.
func SplitText(content string, budget types.SizeBudget) []types.Chunk {
	if len(content) <= budget.MaxSize {
		return []types.Chunk{{Start: 0, End: len(content), SplitReason: types.ReasonSingleChunk}}
	}

	var chunks []types.Chunk
	pos := 0
	for {
		remaining := len(content) - pos
		if remaining <= budget.MaxSize {
			chunks = append(chunks, types.Chunk{Start: pos, End: len(content), SplitReason: types.ReasonEnd})
			return chunks
		}

		window := content[pos+budget.TargetSize : pos+budget.MaxSize]
		cut, reason := findTextBoundary(window)
		var end int
		if cut < 0 {
			end = pos + budget.MaxSize
		} else {
			end = pos + budget.TargetSize + cut
		}
		chunks = append(chunks, types.Chunk{Start: pos, End: end, SplitReason: reason})
		pos = end
	}
}

// findTextBoundary locates the preferred split point inside the window,
// returning the offset just past the separator and the reason, or -1 when
// the window holds no boundary at all.
func findTextBoundary(window string) (int, types.SplitReason) {
	if loc := paragraphBreak.FindStringIndex(window); loc != nil {
		return loc[1], types.ReasonParagraph
	}
	if i := strings.IndexByte(window, '\n'); i >= 0 {
		return i + 1, types.ReasonLine
	}
	if i := strings.IndexAny(window, " \t\r"); i >= 0 {
		return i + 1, types.ReasonWord
	}
	return -1, types.ReasonHardSplit
}
