package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// smartChunkTool returns the tool definition for smart_chunk
func smartChunkTool() mcp.Tool {
	return mcp.Tool{
		Name:        "smart_chunk",
		Description: "Split a file into bounded-size, boundary-respecting chunks and write them with a manifest",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the file to chunk",
				},
				"out_dir": map[string]interface{}{
					"type":        "string",
					"description": "Directory to write chunk files and manifest.json into (created if missing)",
				},
				"target_size": map[string]interface{}{
					"type":        "integer",
					"description": "Preferred chunk size in characters",
					"default":     100000,
				},
				"min_size": map[string]interface{}{
					"type":        "integer",
					"description": "Minimum chunk size; a smaller trailing chunk is merged into its predecessor",
					"default":     20000,
				},
				"max_size": map[string]interface{}{
					"type":        "integer",
					"description": "Hard upper limit on chunk size in characters",
					"default":     200000,
				},
			},
			Required: []string{"path", "out_dir"},
		},
	}
}

// chunkContentTool returns the tool definition for chunk_content
func chunkContentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "chunk_content",
		Description: "Split inline content into chunks and return the manifest without writing files",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"content": map[string]interface{}{
					"type":        "string",
					"description": "The content to chunk",
				},
				"path_hint": map[string]interface{}{
					"type":        "string",
					"description": "File name or path used only for format detection (e.g. 'data.json')",
				},
				"target_size": map[string]interface{}{
					"type":        "integer",
					"description": "Preferred chunk size in characters",
					"default":     100000,
				},
				"min_size": map[string]interface{}{
					"type":        "integer",
					"description": "Minimum chunk size before trailing merge",
					"default":     20000,
				},
				"max_size": map[string]interface{}{
					"type":        "integer",
					"description": "Hard upper limit on chunk size in characters",
					"default":     200000,
				},
			},
			Required: []string{"content"},
		},
	}
}

// getHistoryTool returns the tool definition for get_history
func getHistoryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_history",
		Description: "List recent chunking runs recorded by this server",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of runs to return (1-100)",
					"default":     20,
					"minimum":     1,
					"maximum":     100,
				},
			},
		},
	}
}
