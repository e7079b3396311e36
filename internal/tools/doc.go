// Package tools registers the Plain tool set on an MCP server.
//
// Each tool validates its arguments, performs a single logical Plain API
// operation through internal/plain, reshapes the payload into a flat
// JSON-friendly view and returns it as a text content block. Remote and
// transport failures become tool error results carrying the remote
// message; reads that find nothing return an informational sentence
// instead of an error.
package tools
