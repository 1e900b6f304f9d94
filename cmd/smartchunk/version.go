package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/smartchunk-mcp/internal/mcp"
	"github.com/dshills/smartchunk-mcp/internal/storage"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "SmartChunk MCP Server\n")
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", version)
		fmt.Fprintf(cmd.OutOrStdout(), "Server Version: %s\n", mcp.ServerVersion)
		fmt.Fprintf(cmd.OutOrStdout(), "Build Time: %s\n", buildTime)
		fmt.Fprintf(cmd.OutOrStdout(), "Build Mode: %s\n", storage.BuildMode)
		fmt.Fprintf(cmd.OutOrStdout(), "SQLite Driver: %s\n", storage.DriverName)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
