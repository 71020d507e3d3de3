// ABOUTME: MCP resource implementations for the daily-balance tracker.
// ABOUTME: Provides hydrocal://progress, a snapshot of every onboarded user.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// hydrocal://progress - progress snapshot for every onboarded user
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "hydrocal://progress",
		Name:        "Daily Progress",
		Description: "Water and calorie standing for every onboarded user",
		MIMEType:    "application/json",
	}, s.handleProgressResource)
}

func (s *Server) handleProgressResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	all := s.tracker.AllProgress()

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal progress: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "hydrocal://progress",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
