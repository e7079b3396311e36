// Package logging provides a structured logging system for plain-mcp built
// on Go's standard slog package.
//
// All log entries carry a level, a subsystem tag and an optional error
// attribute. Output always goes to the writer passed to Init — when serving
// MCP over stdio that writer must be stderr, because stdout carries the
// protocol framing.
package logging
