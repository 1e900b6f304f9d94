package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/smartchunk-mcp/internal/storage"
	"github.com/dshills/smartchunk-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
)

// handleSmartChunk handles the smart_chunk tool invocation
func (s *Server) handleSmartChunk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}
	if err := validateFilePath(path); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}

	outDir, ok := args["out_dir"].(string)
	if !ok || outDir == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "out_dir parameter is required", map[string]interface{}{
			"param":  "out_dir",
			"reason": "missing or empty",
		})
	}

	budget := budgetFromArgs(args)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to read file", map[string]interface{}{
			"error": err.Error(),
		})
	}
	content := string(data)

	res, err := s.chunker.Chunk(ctx, content, path, budget)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "chunking failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	paths, err := s.writer.WriteChunks(content, res, outDir)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to write chunks", map[string]interface{}{
			"error": err.Error(),
		})
	}

	run := &storage.Run{
		ContextPath:    path,
		Format:         string(res.Format),
		ChunkingMethod: res.Method,
		ChunkCount:     len(res.Chunks),
		TotalChars:     len(content),
		OutDir:         outDir,
	}
	if err := s.storage.SaveRun(ctx, run); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to record run", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"format":          res.Format,
		"chunking_method": res.Method,
		"chunk_count":     len(res.Chunks),
		"codemap_used":    res.Manifest.CodemapUsed,
		"json_chunked":    res.Manifest.JSONChunked,
		"total_chars":     len(content),
		"out_dir":         outDir,
		"manifest":        filepath.Join(outDir, "manifest.json"),
		"chunk_files":     paths,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleChunkContent handles the chunk_content tool invocation
func (s *Server) handleChunkContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	content, ok := args["content"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "content parameter is required", map[string]interface{}{
			"param":  "content",
			"reason": "missing",
		})
	}
	pathHint := getStringDefault(args, "path_hint", "")
	budget := budgetFromArgs(args)

	res, err := s.chunker.Chunk(ctx, content, pathHint, budget)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "chunking failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	data, err := json.MarshalIndent(res.Manifest, "", "  ")
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to serialize manifest", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleGetHistory handles the get_history tool invocation
func (s *Server) handleGetHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	limit := getIntDefault(args, "limit", 20)
	if limit < 1 || limit > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
		})
	}

	runs, err := s.storage.ListRuns(ctx, limit)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list runs", map[string]interface{}{
			"error": err.Error(),
		})
	}

	entries := make([]map[string]interface{}, 0, len(runs))
	for _, run := range runs {
		entries = append(entries, map[string]interface{}{
			"id":              run.ID,
			"context_path":    run.ContextPath,
			"format":          run.Format,
			"chunking_method": run.ChunkingMethod,
			"chunk_count":     run.ChunkCount,
			"total_chars":     run.TotalChars,
			"out_dir":         run.OutDir,
			"created_at":      run.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	response := map[string]interface{}{
		"runs":  entries,
		"count": len(entries),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// budgetFromArgs reads the size parameters, falling back to defaults.
// Validation happens inside the chunker.
func budgetFromArgs(args map[string]interface{}) types.SizeBudget {
	return types.SizeBudget{
		TargetSize: getIntDefault(args, "target_size", types.DefaultTargetSize),
		MinSize:    getIntDefault(args, "min_size", types.DefaultMinSize),
		MaxSize:    getIntDefault(args, "max_size", types.DefaultMaxSize),
	}
}

// newMCPError creates an MCP protocol error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// Validation helpers

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrPathIsDirectory = errors.New("path is a directory, not a file")
)

// validateFilePath checks that a path names an existing, readable file
func validateFilePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}
	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}
	if info.IsDir() {
		return ErrPathIsDirectory
	}
	return nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
