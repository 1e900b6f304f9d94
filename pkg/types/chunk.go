package types

import "fmt"

// SplitReason records why a chunk ended where it did
type SplitReason string

const (
	// Whole-input outcomes
	ReasonSingleChunk SplitReason = "single_chunk"

	// Text splitter boundaries, in preference order
	ReasonParagraph SplitReason = "paragraph"
	ReasonLine      SplitReason = "line"
	ReasonWord      SplitReason = "word"
	ReasonHardSplit SplitReason = "hard_split"

	// Structural assembly outcomes
	ReasonMaxSize          SplitReason = "max_size"
	ReasonTargetSize       SplitReason = "target_size"
	ReasonOversizedSection SplitReason = "oversized_section"

	// JSON structural boundaries
	ReasonElementBoundary SplitReason = "element_boundary"
	ReasonKeyBoundary     SplitReason = "key_boundary"

	// Positional markers
	ReasonStart SplitReason = "start"
	ReasonEnd   SplitReason = "end"
)

// HeaderLevelReason builds the reason for a split at a markdown heading
// of the given level, e.g. "header_level_2".
func HeaderLevelReason(level int) SplitReason {
	return SplitReason(fmt.Sprintf("header_level_%d", level))
}

// SymbolReason builds the reason for a split at a code symbol of the
// given kind, e.g. "symbol_function".
func SymbolReason(kind string) SplitReason {
	return SplitReason("symbol_" + kind)
}

// Boundary describes a structural marker contained in a chunk: a markdown
// heading or a code symbol start. Heading boundaries carry Level and Text,
// symbol boundaries carry Name with the symbol kind as Type.
type Boundary struct {
	Type  string `json:"type"`
	Level int    `json:"level,omitempty"`
	Text  string `json:"text,omitempty"`
	Name  string `json:"name,omitempty"`
	Line  int    `json:"line,omitempty"`
}

// Container identifies the top-level JSON value a structural chunk was
// carved from
type Container string

const (
	ContainerArray  Container = "array"
	ContainerObject Container = "object"
)

// Chunk is one bounded piece of the input.
//
// Text, markdown, and code chunks reference the original content by the
// half-open rune-byte range [Start, End). JSON structural chunks instead
// carry a re-serialized payload in Payload, with Container, ItemRange,
// and (for objects) Keys describing the slice of the parsed document.
type Chunk struct {
	Start       int
	End         int
	SplitReason SplitReason
	Boundaries  []Boundary

	Payload   string
	Container Container
	ItemRange [2]int
	Keys      []string
}

// IsStructural reports whether the chunk carries a re-serialized JSON
// payload rather than a range into the original content
func (c *Chunk) IsStructural() bool {
	return c.Container != ""
}

// Size returns the chunk length in characters
func (c *Chunk) Size() int {
	if c.IsStructural() {
		return len(c.Payload)
	}
	return c.End - c.Start
}

// Text returns the chunk body given the original content
func (c *Chunk) Text(content string) string {
	if c.IsStructural() {
		return c.Payload
	}
	return content[c.Start:c.End]
}

// Validate checks basic chunk integrity
func (c *Chunk) Validate() error {
	if c.IsStructural() {
		if c.Container != ContainerArray && c.Container != ContainerObject {
			return fmt.Errorf("%w: %q", ErrInvalidContainer, c.Container)
		}
		if c.ItemRange[0] > c.ItemRange[1] {
			return ErrInvalidItemRange
		}
		return nil
	}
	if c.Start < 0 || c.End < c.Start {
		return ErrInvalidChunkRange
	}
	return nil
}
