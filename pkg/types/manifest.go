package types

// Chunking method names reported in the manifest
const (
	MethodText     = "smart_text"
	MethodMarkdown = "smart_markdown"
	MethodCode     = "smart_code"
	MethodJSON     = "smart_json"
)

// Manifest describes a complete chunking run. It is written alongside the
// chunk files as manifest.json and returned by the MCP tools.
type Manifest struct {
	Format           Format      `json:"format"`
	ChunkingMethod   string      `json:"chunking_method"`
	CodemapAvailable bool        `json:"codemap_available"`
	CodemapUsed      bool        `json:"codemap_used"`
	JSONChunked      bool        `json:"json_chunked"`
	TargetSize       int         `json:"target_size"`
	MinSize          int         `json:"min_size"`
	MaxSize          int         `json:"max_size"`
	TotalChars       int         `json:"total_chars"`
	TotalLines       int         `json:"total_lines"`
	TotalItems       int         `json:"total_items,omitempty"`
	ChunkCount       int         `json:"chunk_count"`
	Chunks           []ChunkMeta `json:"chunks"`
}

// ChunkMeta is the per-chunk manifest entry
type ChunkMeta struct {
	ID           string      `json:"id"`
	File         string      `json:"file"`
	StartChar    int         `json:"start_char"`
	EndChar      int         `json:"end_char"`
	StartLine    int         `json:"start_line"`
	EndLine      int         `json:"end_line"`
	SplitReason  SplitReason `json:"split_reason"`
	Format       Format      `json:"format"`
	ElementRange *[2]int     `json:"element_range,omitempty"`
	KeyRange     *[2]int     `json:"key_range,omitempty"`
	Keys         []string    `json:"keys,omitempty"`
	Boundaries   []Boundary  `json:"boundaries,omitempty"`
	Preview      string      `json:"preview,omitempty"`
	Hints        *ChunkHints `json:"hints,omitempty"`
}

// ChunkHints gives a reader cheap signals about chunk content without
// opening the chunk file
type ChunkHints struct {
	SectionHeaders []string `json:"section_headers,omitempty"`
	HasCodeBlocks  bool     `json:"has_code_blocks,omitempty"`
	CodeBlockCount int      `json:"code_block_count,omitempty"`
	LikelyCode     bool     `json:"likely_code,omitempty"`
	LikelyJSON     bool     `json:"likely_json,omitempty"`
	Density        string   `json:"density,omitempty"`
}

// Empty reports whether the hints carry no signal worth serializing
func (h *ChunkHints) Empty() bool {
	return len(h.SectionHeaders) == 0 && !h.HasCodeBlocks && !h.LikelyCode &&
		!h.LikelyJSON && h.Density == ""
}
