// ABOUTME: MCP server setup for the wellness plan generator.
// ABOUTME: Wraps the MCP server with the submissions Repository and a clock.
package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/storage"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

const instructions = `Generates deterministic 75-day Indian diet and workout plans.
Call generate_plan with a person's details; missing values fall back to defaults.
Plans are only stored when save is true. Read wellness://catalog for accepted values.`

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	// now stamps generated plans; tests pin it.
	now func() time.Time
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository) (*Server, error) {
	s := &Server{
		mcpServer: mcp.NewServer(
			&mcp.Implementation{Name: "wellness", Version: Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
		repo: repo,
		now:  time.Now,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve runs the server over stdio until ctx is cancelled or the client
// disconnects.
func (s *Server) Serve(ctx context.Context) error {
	log.WithField("version", Version).Info("serving MCP on stdio")
	err := s.mcpServer.Run(ctx, &mcp.StdioTransport{})
	if ctx.Err() != nil {
		return nil
	}
	return err
}
