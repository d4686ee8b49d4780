// Package mcp exposes pattern parsing and matching as Model Context
// Protocol tools over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

const (
	// ServerName is the MCP server name
	ServerName = "rex-mcp"
	// ServerVersion is the current server version
	ServerVersion = "0.1.0"
)

// Server wraps the MCP server and its registered tools.
type Server struct {
	mcp *server.MCPServer
}

// NewServer creates a new MCP server instance with all tools registered.
func NewServer() *Server {
	s := &Server{
		mcp: server.NewMCPServer(ServerName, ServerVersion),
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(parsePatternTool(), s.handleParsePattern)
	s.mcp.AddTool(matchPatternTool(), s.handleMatchPattern)
}
