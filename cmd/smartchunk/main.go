package main

import (
	"log"
	"os"
)

func main() {
	// All diagnostics go to stderr; stdout carries command output and,
	// under serve, the MCP protocol
	log.SetOutput(os.Stderr)

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
