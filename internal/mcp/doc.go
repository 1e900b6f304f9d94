// Package mcp implements the Model Context Protocol (MCP) server for
// SmartChunk.
//
// The MCP server exposes three tools to AI coding assistants:
//   - smart_chunk: chunk a file to an output directory with a manifest
//   - chunk_content: chunk inline content and return the manifest
//   - get_history: list recent chunking runs
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server communicates via standard input/output; all logging goes to
// stderr so stdout stays clean for protocol traffic.
//
// # Tool: smart_chunk
//
// Chunk a file into bounded pieces written next to a manifest.json:
//
//	Request:
//	  {"path": "/data/big.json", "out_dir": "/tmp/chunks", "target_size": 100000}
//	Response:
//	  {"format": "json", "chunking_method": "smart_json", "chunk_count": 7, ...}
//
// # Tool: chunk_content
//
// Chunk content supplied inline, returning the full manifest without
// writing any files. path_hint drives format detection only.
//
// # Tool: get_history
//
// Return the most recent chunking runs recorded in the history database.
package mcp
