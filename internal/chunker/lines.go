package chunker

import (
	"sort"
	"strings"
)

// lineOffsets returns the byte offset of the start of each line, 0-indexed.
// offsets[i] is where line i+1 begins.
func lineOffsets(content string) []int {
	offsets := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// lineStartChar converts a 1-indexed line number to the byte offset of the
// line start, clamping out-of-range lines to the content bounds.
func lineStartChar(offsets []int, content string, line int) int {
	if line < 1 {
		return 0
	}
	if line > len(offsets) {
		return len(content)
	}
	return offsets[line-1]
}

// lineNumberAt returns the 1-indexed line containing the byte offset
func lineNumberAt(content string, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	return strings.Count(content[:offset], "\n") + 1
}

// countLines reports the total line count of content, counting a trailing
// partial line
func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}

// sortedUniqueInts returns the sorted distinct values of xs
func sortedUniqueInts(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	out := make([]int, len(xs))
	copy(out, xs)
	sort.Ints(out)
	unique := out[:1]
	for _, v := range out[1:] {
		if v != unique[len(unique)-1] {
			unique = append(unique, v)
		}
	}
	return unique
}
