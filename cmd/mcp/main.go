// Package main provides the entry point for the reading queue MCP server.
//
// This MCP server lets AI agents read and manage a reader's queue through
// the reading queue API.
//
// Configuration:
//
//	READING_QUEUE_API_URL   - Base URL of the API (default: http://localhost:8080)
//	READING_QUEUE_API_TOKEN - Bearer token for authentication (required)
//
// Usage with an MCP client:
//
//	mcp add reading-queue --transport stdio \
//	  --env READING_QUEUE_API_TOKEN=xxx \
//	  -- /path/to/reading-queue-mcp
package main

import (
	"log"
	"os"

	"github.com/jbeshir/reading-queue/cmd/mcp/client"
	"github.com/jbeshir/reading-queue/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("READING_QUEUE_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiToken := os.Getenv("READING_QUEUE_API_TOKEN")
	if apiToken == "" {
		log.Fatal("READING_QUEUE_API_TOKEN environment variable is required")
	}

	apiClient := client.NewClient(apiURL, apiToken)
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
