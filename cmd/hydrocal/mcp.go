// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hydrocal/hydrocal/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to track water, meals, and workouts
through a standardized protocol. The server communicates via stdin/stdout.

Records live in memory for the lifetime of the server process.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "hydrocal": {
        "command": "hydrocal",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  set_profile     Configure a profile and derive daily goals
  log_water       Log water intake
  log_food        Log a meal by name and weight
  log_workout     Log a workout by type and duration
  check_progress  Today's standing against the goals

AVAILABLE RESOURCES:

  hydrocal://progress   Progress snapshot for every onboarded user`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, cleanup := buildTracker()
		defer cleanup()

		server, err := mcp.NewServer(tr)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
