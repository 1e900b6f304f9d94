package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/smartchunk-mcp/internal/chunker"
	"github.com/dshills/smartchunk-mcp/internal/symbols"
	"github.com/dshills/smartchunk-mcp/internal/writer"
)

var (
	flagOutDir  string
	flagNoHints bool
)

var chunkCmd = &cobra.Command{
	Use:   "chunk <file>",
	Short: "Chunk a single file into an output directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		content := string(data)

		outDir := flagOutDir
		if outDir == "" {
			outDir = path + ".chunks"
		}

		var detector symbols.Detector
		provider := symbols.DetectChain(cmd.Context(), &detector)
		c := chunker.New(chunker.WithProvider(provider))

		res, err := c.Chunk(cmd.Context(), content, path, budgetFromFlags())
		if err != nil {
			return err
		}

		opts := []writer.Option{}
		if flagNoHints {
			opts = append(opts, writer.WithoutHints())
		}
		paths, err := writer.New(opts...).WriteChunks(content, res, outDir)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d chunks (%s) -> %s\n",
			filepath.Base(path), len(paths), res.Method, outDir)
		return nil
	},
}

func init() {
	chunkCmd.Flags().StringVarP(&flagOutDir, "out", "o", "", "output directory (default <file>.chunks)")
	chunkCmd.Flags().BoolVar(&flagNoHints, "no-hints", false, "skip previews and content hints in the manifest")
	rootCmd.AddCommand(chunkCmd)
}
