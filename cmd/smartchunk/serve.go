package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/smartchunk-mcp/internal/mcp"
	"github.com/dshills/smartchunk-mcp/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Run the SmartChunk MCP server. The server speaks JSON-RPC over
stdio, so all logging goes to stderr.

The history database location can be overridden with SMARTCHUNK_DB_PATH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Printf("SmartChunk MCP Server v%s starting...", mcp.ServerVersion)
		log.Printf("Build Mode: %s, Driver: %s", storage.BuildMode, storage.DriverName)

		dbPath := os.Getenv("SMARTCHUNK_DB_PATH")
		if dbPath == "" {
			dbPath = mcp.DefaultDBPath
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		server, err := mcp.NewServer(ctx, dbPath)
		if err != nil {
			return err
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		errChan := make(chan error, 1)
		go func() {
			log.Println("MCP server ready, listening on stdio...")
			errChan <- server.Serve(ctx)
		}()

		select {
		case sig := <-sigChan:
			log.Printf("Received signal %v, shutting down gracefully...", sig)
			cancel()
		case err := <-errChan:
			if err != nil {
				return err
			}
		}

		log.Println("Server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
