package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/smartchunk-mcp/internal/chunker"
	"github.com/dshills/smartchunk-mcp/internal/storage"
	"github.com/dshills/smartchunk-mcp/internal/symbols"
	"github.com/dshills/smartchunk-mcp/internal/writer"
)

const (
	// ServerName is the MCP server name
	ServerName = "smartchunk-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultDBPath is the default location for the history database
	DefaultDBPath = "~/.smartchunk/history"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp     *server.MCPServer
	storage storage.Storage
	chunker *chunker.Chunker
	writer  *writer.Writer
}

// NewServer creates a new MCP server instance. Codemap availability is
// probed once here and injected into the chunker.
func NewServer(ctx context.Context, dbPath string) (*Server, error) {
	if dbPath == "" || dbPath == DefaultDBPath {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".smartchunk", "history")
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	dbFile := filepath.Join(dbPath, "smartchunk.db")

	store, err := storage.NewSQLiteStorage(dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var detector symbols.Detector
	provider := symbols.DetectChain(ctx, &detector)

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:     mcpServer,
		storage: store,
		chunker: chunker.New(chunker.WithProvider(provider)),
		writer:  writer.New(),
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.storage.Close() }()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	s.mcp.AddTool(smartChunkTool(), s.handleSmartChunk)
	s.mcp.AddTool(chunkContentTool(), s.handleChunkContent)
	s.mcp.AddTool(getHistoryTool(), s.handleGetHistory)
	return nil
}
