package writer

import (
	"strings"

	"github.com/dshills/smartchunk-mcp/pkg/types"
)

const (
	// hintHeaderScanLines bounds the header scan per chunk
	hintHeaderScanLines = 100
	// hintMaxHeaders caps the headers reported per chunk
	hintMaxHeaders = 5
	// hintHeaderTruncate caps the length of a reported header line
	hintHeaderTruncate = 80
	// codeDensityThreshold marks a chunk as likely code when the share of
	// punctuation typical for source exceeds it
	codeDensityThreshold = 0.02
)

// Preview returns the first maxLines lines of text, with an ellipsis
// marker when more follow
func Preview(text string, maxLines int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}
	return strings.Join(lines[:maxLines], "\n") + "\n..."
}

// ContentHints derives cheap signals about chunk content: markdown
// headers, fenced code blocks, code or JSON likelihood, and line density.
// Returns nil when nothing noteworthy was found.
func ContentHints(text string) *types.ChunkHints {
	hints := &types.ChunkHints{}
	lines := strings.Split(text, "\n")

	scan := lines
	if len(scan) > hintHeaderScanLines {
		scan = scan[:hintHeaderScanLines]
	}
	for _, line := range scan {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "#") && len(stripped) > 1 {
			if len(stripped) > hintHeaderTruncate {
				stripped = stripped[:hintHeaderTruncate]
			}
			hints.SectionHeaders = append(hints.SectionHeaders, stripped)
			if len(hints.SectionHeaders) == hintMaxHeaders {
				break
			}
		}
	}

	if fences := strings.Count(text, "```"); fences >= 2 {
		hints.HasCodeBlocks = true
		hints.CodeBlockCount = fences / 2
	}

	if len(text) > 0 {
		codeChars := 0
		for _, c := range text {
			if strings.ContainsRune("{}();[]<>=", c) {
				codeChars++
			}
		}
		if float64(codeChars)/float64(len(text)) > codeDensityThreshold {
			hints.LikelyCode = true
		}
	}

	stripped := strings.TrimSpace(text)
	if (strings.HasPrefix(stripped, "{") && strings.HasSuffix(stripped, "}")) ||
		(strings.HasPrefix(stripped, "[") && strings.HasSuffix(stripped, "]")) {
		hints.LikelyJSON = true
	}

	if len(lines) > 0 {
		nonEmpty := 0
		for _, line := range lines {
			if strings.TrimSpace(line) != "" {
				nonEmpty++
			}
		}
		density := float64(nonEmpty) / float64(len(lines))
		switch {
		case density > 0.8:
			hints.Density = "dense"
		case density < 0.4:
			hints.Density = "sparse"
		default:
			hints.Density = "normal"
		}
	}

	if hints.Empty() {
		return nil
	}
	return hints
}
