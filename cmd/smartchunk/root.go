// Package main provides the smartchunk CLI application.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/smartchunk-mcp/pkg/types"
)

var (
	flagTargetSize int
	flagMinSize    int
	flagMaxSize    int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "smartchunk",
	Short: "Content-aware chunking for large files",
	Long: `smartchunk splits large files into bounded-size, boundary-respecting
chunks: markdown at headings, code at symbol boundaries, JSON at
top-level elements or keys, and plain text at paragraph breaks.

Each run writes one file per chunk plus a manifest.json describing
ranges, split reasons, and structural boundaries.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTargetSize, "target-size", types.DefaultTargetSize,
		"preferred chunk size in characters")
	rootCmd.PersistentFlags().IntVar(&flagMinSize, "min-size", types.DefaultMinSize,
		"minimum chunk size before trailing merge")
	rootCmd.PersistentFlags().IntVar(&flagMaxSize, "max-size", types.DefaultMaxSize,
		"hard upper limit on chunk size in characters")
}

// budgetFromFlags builds the size budget from the persistent flags
func budgetFromFlags() types.SizeBudget {
	return types.SizeBudget{
		TargetSize: flagTargetSize,
		MinSize:    flagMinSize,
		MaxSize:    flagMaxSize,
	}
}
