// Package mcp exposes the site's FAQ articles and bot commands to AI agents
// over the Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/uchiverify/site/internal/content"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes content lookup tools.
type Server struct {
	store *content.Store
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server over store.
func NewServer(store *content.Store) *Server {
	s := &Server{store: store}

	s.mcp = server.NewMCPServer(
		"uchiverify",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchEntriesTool, s.handleSearchEntries)
	s.mcp.AddTool(getEntryTool, s.handleGetEntry)
	s.mcp.AddTool(listEntriesTool, s.handleListEntries)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
