package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/smartchunk-mcp/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent chunking runs recorded by the MCP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := os.Getenv("SMARTCHUNK_DB_PATH")
		if dbPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			dbPath = filepath.Join(home, ".smartchunk", "history")
		}
		dbFile := filepath.Join(dbPath, "smartchunk.db")
		if _, err := os.Stat(dbFile); os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "no history recorded yet")
			return nil
		}

		store, err := storage.NewSQLiteStorage(dbFile)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		runs, err := store.ListRuns(cmd.Context(), flagHistoryLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no history recorded yet")
			return nil
		}
		for _, run := range runs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-14s %4d chunks  %9d chars  %s\n",
				run.CreatedAt.Format("2006-01-02 15:04"), run.ChunkingMethod,
				run.ChunkCount, run.TotalChars, run.ContextPath)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "maximum runs to show")
	rootCmd.AddCommand(historyCmd)
}
