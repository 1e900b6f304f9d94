package chunker

import (
	"regexp"

	"github.com/dshills/smartchunk-mcp/pkg/types"
)

// headingPattern matches an ATX heading line, capturing the hash run and
// the heading text
var headingPattern = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.+)$`)

// preferredHeadingLevel is the deepest heading level still treated as a
// good split point; deeper subsections only split on size pressure
const preferredHeadingLevel = 3

// SplitMarkdown divides content at heading boundaries. Sections are
// assembled greedily up to the budget; a chunk past the target size closes
// at the next level 1-3 heading, or once it would overrun the target by the
// slack factor. Content with no headings at all is split as plain text.
func SplitMarkdown(content string, budget types.SizeBudget, slack float64) []types.Chunk {
	units := markdownUnits(content)
	if units == nil {
		return SplitText(content, budget)
	}

	overrun := int(slack * float64(budget.TargetSize))
	chunks := assemble(units, budget, func(curSize, unitSize int, u unit) (types.SplitReason, bool) {
		if curSize < budget.TargetSize {
			return "", false
		}
		if u.preferred {
			return u.reason, true
		}
		if curSize+unitSize > overrun {
			return types.ReasonTargetSize, true
		}
		return "", false
	})
	chunks = mergeTrailing(chunks, budget)
	return splitOversized(content, chunks, budget)
}

// markdownUnits builds one unit per heading section, plus a preamble unit
// for content before the first heading. Returns nil when the content has
// no headings.
func markdownUnits(content string) []unit {
	matches := headingPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	var units []unit
	if matches[0][0] > 0 {
		units = append(units, unit{start: 0, end: matches[0][0]})
	}
	for i, m := range matches {
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		level := m[3] - m[2]
		units = append(units, unit{
			start: m[0],
			end:   end,
			boundary: &types.Boundary{
				Type:  "heading",
				Level: level,
				Text:  content[m[4]:m[5]],
				Line:  lineNumberAt(content, m[0]),
			},
			preferred: level <= preferredHeadingLevel,
			reason:    types.HeaderLevelReason(level),
		})
	}
	return units
}

// splitOversized re-splits any chunk still above the max size, which
// happens when a single section outgrows the budget. The first sub-chunk
// inherits the original reason and boundaries; the rest are tagged as
// oversized-section continuations.
func splitOversized(content string, chunks []types.Chunk, budget types.SizeBudget) []types.Chunk {
	out := make([]types.Chunk, 0, len(chunks))
	for _, c := range chunks {
		if c.End-c.Start <= budget.MaxSize {
			out = append(out, c)
			continue
		}
		sub := SplitText(content[c.Start:c.End], budget)
		for i := range sub {
			sub[i].Start += c.Start
			sub[i].End += c.Start
			if i == 0 {
				sub[i].SplitReason = c.SplitReason
				sub[i].Boundaries = c.Boundaries
			} else {
				sub[i].SplitReason = types.ReasonOversizedSection
				sub[i].Boundaries = nil
			}
		}
		out = append(out, sub...)
	}
	return out
}
