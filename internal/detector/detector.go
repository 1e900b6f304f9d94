// Package detector classifies content into the formats the chunker knows
// how to split. Classification is extension-first with a cheap content
// heuristic as fallback, never a full parse.
package detector

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dshills/smartchunk-mcp/pkg/types"
)

var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdx":      true,
}

var codeExts = map[string]bool{
	".py":    true,
	".js":    true,
	".jsx":   true,
	".ts":    true,
	".tsx":   true,
	".go":    true,
	".rs":    true,
	".java":  true,
	".c":     true,
	".h":     true,
	".cpp":   true,
	".hpp":   true,
	".cc":    true,
	".cs":    true,
	".rb":    true,
	".php":   true,
	".swift": true,
	".kt":    true,
}

var textExts = map[string]bool{
	".txt":  true,
	".text": true,
	".log":  true,
	".rst":  true,
}

// headingLine matches an ATX heading at the start of a line
var headingLine = regexp.MustCompile(`(?m)^#{1,6}[ \t]+\S`)

// markdownHeadingThreshold is the heading count above which extensionless
// content is treated as markdown
const markdownHeadingThreshold = 5

// Detect classifies content using the path extension when it is known,
// falling back to a heading-density heuristic on the content itself.
// An empty pathHint is allowed.
func Detect(content, pathHint string) types.Format {
	ext := strings.ToLower(filepath.Ext(pathHint))
	switch {
	case markdownExts[ext]:
		return types.FormatMarkdown
	case codeExts[ext]:
		return types.FormatCode
	case ext == ".json":
		return types.FormatJSON
	case textExts[ext]:
		return types.FormatText
	}

	// Unknown extension: many headings means markdown, else plain text.
	// Capped match count keeps this linear in the threshold, not the input.
	matches := headingLine.FindAllStringIndex(content, markdownHeadingThreshold+1)
	if len(matches) > markdownHeadingThreshold {
		return types.FormatMarkdown
	}
	return types.FormatText
}
