// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP lets AI assistants generate plans and work with saved submissions through
a standardized protocol. The server communicates via stdin/stdout; logs go to
stderr or the configured log file.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "wellness": {
        "command": "wellness",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  generate_plan       Generate a 75-day plan (optionally save it)
  calculate_metrics   BMI, BMR and calorie targets
  estimate_macros     Daily macro grams and water intake
  list_submissions    List saved submissions
  get_submission      Get a saved submission as JSON or Markdown
  delete_submission   Delete a saved submission

AVAILABLE RESOURCES:

  wellness://recent    Last 10 saved submissions
  wellness://catalog   Accepted input values`,
	Annotations: storageAnnotation(),
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
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
