package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/smartchunk-mcp/internal/batch"
	"github.com/dshills/smartchunk-mcp/internal/chunker"
	"github.com/dshills/smartchunk-mcp/internal/symbols"
	"github.com/dshills/smartchunk-mcp/internal/writer"
)

var (
	flagBatchOut     string
	flagBatchWorkers int
	flagBatchExts    []string
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Chunk every matching file under a directory tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve directory: %w", err)
		}
		outDir := flagBatchOut
		if outDir == "" {
			outDir = root + ".chunks"
		}

		var detector symbols.Detector
		provider := symbols.DetectChain(cmd.Context(), &detector)
		c := chunker.New(chunker.WithProvider(provider))

		config := batch.DefaultConfig()
		config.Budget = budgetFromFlags()
		if flagBatchWorkers > 0 {
			config.Workers = flagBatchWorkers
		}
		if len(flagBatchExts) > 0 {
			config.Extensions = flagBatchExts
		}

		p := batch.New(c, writer.New(), nil)
		stats, err := p.ProcessDir(cmd.Context(), root, outDir, config)
		if err != nil {
			return err
		}

		for _, msg := range stats.ErrorMessages {
			log.Printf("warning: %s", msg)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "processed %d files (%d failed), %d chunks in %s -> %s\n",
			stats.FilesProcessed, stats.FilesFailed, stats.ChunksWritten,
			stats.Duration.Round(time.Millisecond), outDir)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&flagBatchOut, "out", "o", "", "output directory (default <dir>.chunks)")
	batchCmd.Flags().IntVar(&flagBatchWorkers, "workers", batch.DefaultWorkers, "concurrent workers")
	batchCmd.Flags().StringSliceVar(&flagBatchExts, "ext", nil, "file extensions to include (default common text/code formats)")
	rootCmd.AddCommand(batchCmd)
}
