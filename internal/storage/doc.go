// Package storage persists chunking run history in SQLite.
//
// Every chunking invocation that writes output records one Run row:
// which file was chunked, the format and method used, how many chunks
// came out, and where they went. The history feeds the get_history MCP
// tool and the CLI history command.
//
// Two driver builds exist behind build tags: github.com/mattn/go-sqlite3
// with the sqlite_cgo tag, modernc.org/sqlite otherwise. Schema changes
// go through versioned migrations ordered by semver.
package storage
