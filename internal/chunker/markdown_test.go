package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/smartchunk-mcp/pkg/types"
)

func mdSection(header, filler string, size int) string {
	body := strings.Repeat(filler, size)
	return header + "\n" + body + "\n"
}

func TestSplitMarkdownSingleChunk(t *testing.T) {
	content := "# Title\n\nShort document.\n"
	budget := types.SizeBudget{TargetSize: 100, MinSize: 10, MaxSize: 200}

	chunks := SplitMarkdown(content, budget, DefaultMarkdownSlack)

	require.Len(t, chunks, 1)
	assert.Equal(t, types.ReasonSingleChunk, chunks[0].SplitReason)
	require.Len(t, chunks[0].Boundaries, 1)
	assert.Equal(t, "heading", chunks[0].Boundaries[0].Type)
	assert.Equal(t, 1, chunks[0].Boundaries[0].Level)
	assert.Equal(t, "Title", chunks[0].Boundaries[0].Text)
}

func TestSplitMarkdownSplitsAtHeaders(t *testing.T) {
	content := "# Title\nIntro text here\n" +
		"## Section 1\n" + strings.Repeat("a", 30) + "\n" +
		"## Section 2\n" + strings.Repeat("b", 30) + "\n"
	budget := types.SizeBudget{TargetSize: 30, MinSize: 5, MaxSize: 100}

	chunks := SplitMarkdown(content, budget, DefaultMarkdownSlack)

	assertTiling(t, content, chunks)
	require.Greater(t, len(chunks), 1)
	assert.Equal(t, types.SplitReason("header_level_2"), chunks[0].SplitReason)
	assert.Equal(t, types.ReasonEnd, chunks[len(chunks)-1].SplitReason)
}

func TestSplitMarkdownScenario(t *testing.T) {
	// Four sections around 40 chars each, level 1 then three level 2
	content := mdSection("# Title", "t", 31) +
		mdSection("## A", "a", 34) +
		mdSection("## B", "b", 34) +
		mdSection("## C", "c", 34)
	budget := types.SizeBudget{TargetSize: 60, MinSize: 20, MaxSize: 150}

	chunks := SplitMarkdown(content, budget, DefaultMarkdownSlack)

	assertTiling(t, content, chunks)
	require.GreaterOrEqual(t, len(chunks), 2)

	// Boundaries across chunks preserve original heading order
	var headings []string
	for _, c := range chunks {
		for _, b := range c.Boundaries {
			assert.Equal(t, "heading", b.Type)
			headings = append(headings, b.Text)
		}
	}
	assert.Equal(t, []string{"Title", "A", "B", "C"}, headings)

	// Reconstruction equals the original text
	var rebuilt strings.Builder
	for _, c := range chunks {
		rebuilt.WriteString(content[c.Start:c.End])
	}
	assert.Equal(t, content, rebuilt.String())
}

func TestSplitMarkdownPreamble(t *testing.T) {
	content := "Intro before any heading.\n\n# First\nbody\n"
	budget := types.SizeBudget{TargetSize: 1000, MinSize: 10, MaxSize: 2000}

	chunks := SplitMarkdown(content, budget, DefaultMarkdownSlack)

	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Start)
	require.Len(t, chunks[0].Boundaries, 1)
	assert.Equal(t, "First", chunks[0].Boundaries[0].Text)
}

func TestSplitMarkdownDeepHeadingsSplitOnSlack(t *testing.T) {
	// Only level 4 headings: never preferred, so splits come from the
	// slack overrun rule
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString(mdSection("#### Sub", "x", 40))
	}
	content := sb.String()
	budget := types.SizeBudget{TargetSize: 60, MinSize: 20, MaxSize: 500}

	chunks := SplitMarkdown(content, budget, DefaultMarkdownSlack)

	assertTiling(t, content, chunks)
	require.Greater(t, len(chunks), 1)
	assert.Equal(t, types.ReasonTargetSize, chunks[0].SplitReason)
	for _, c := range chunks {
		for _, b := range c.Boundaries {
			assert.Equal(t, 4, b.Level)
		}
	}
}

func TestSplitMarkdownNoHeadingsDelegatesToText(t *testing.T) {
	content := strings.Repeat("plain prose without structure ", 20)
	budget := types.SizeBudget{TargetSize: 100, MinSize: 40, MaxSize: 200}

	chunks := SplitMarkdown(content, budget, DefaultMarkdownSlack)

	assert.Equal(t, SplitText(content, budget), chunks)
}

func TestSplitMarkdownTrailingMerge(t *testing.T) {
	// Last section is tiny; it should merge into the previous chunk
	content := mdSection("# One", "a", 60) +
		mdSection("# Two", "b", 60) +
		"# Tiny\nx\n"
	budget := types.SizeBudget{TargetSize: 60, MinSize: 30, MaxSize: 200}

	chunks := SplitMarkdown(content, budget, DefaultMarkdownSlack)

	assertTiling(t, content, chunks)
	last := chunks[len(chunks)-1]
	assert.Equal(t, len(content), last.End)
	// The tiny section's heading travels with the merged chunk
	found := false
	for _, b := range last.Boundaries {
		if b.Text == "Tiny" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSplitMarkdownOversizedSection(t *testing.T) {
	content := "## Big Section\n" + strings.Repeat("x", 1000)
	budget := types.SizeBudget{TargetSize: 100, MinSize: 50, MaxSize: 200}

	chunks := SplitMarkdown(content, budget, DefaultMarkdownSlack)

	assertTiling(t, content, chunks)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, c.End-c.Start, budget.MaxSize)
	}
	// Only the first piece keeps the heading; continuations are marked
	require.NotEmpty(t, chunks[0].Boundaries)
	for _, c := range chunks[1 : len(chunks)-1] {
		assert.Equal(t, types.ReasonOversizedSection, c.SplitReason)
		assert.Empty(t, c.Boundaries)
	}
}
