package tools

import (
	"github.com/tellahq/plain-mcp/internal/plain"

	"github.com/mark3labs/mcp-go/server"
)

// Server exposes the Plain API as MCP tools over stdio.
type Server struct {
	client *plain.Client
	mcp    *server.MCPServer
}

// NewServer creates the MCP server and registers the full tool set against
// the given Plain client.
func NewServer(client *plain.Client, version string) *Server {
	// WithRecovery turns a panicking handler into a tool error instead of
	// tearing down the stdio session for every other tool.
	mcpServer := server.NewMCPServer(
		"plain-mcp",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s := &Server{
		client: client,
		mcp:    mcpServer,
	}

	s.registerThreadTools()
	s.registerMessagingTools()
	s.registerTimelineTools()
	s.registerCustomerTools()
	s.registerCompanyTools()
	s.registerTenantTools()
	s.registerTierTools()
	s.registerLabelTools()
	s.registerEventTools()
	s.registerUserTools()

	return s
}

// ServeStdio serves MCP over stdin/stdout until the host closes the
// stream.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
