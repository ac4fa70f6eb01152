// Package server provides the MCP server implementation.
package server

import (
	"github.com/jbeshir/reading-queue/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server is the MCP server for the reading queue.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"reading-queue",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_reading_queue",
		mcp.WithDescription(
			"Get the articles to read next, highest priority first. "+
				"At most three unread articles, favouring reads that fit the current time of day."),
	), s.handleGetReadingQueue)

	s.mcpServer.AddTool(mcp.NewTool("get_archive_suggestions",
		mcp.WithDescription(
			"List saved articles that look safe to archive, with the reason for each. "+
				"Nothing is archived until archive_articles is called."),
	), s.handleGetArchiveSuggestions)

	s.mcpServer.AddTool(mcp.NewTool("archive_articles",
		mcp.WithDescription("Archive several saved articles at once, such as accepted archive suggestions."),
		mcp.WithString("article_ids",
			mcp.Required(),
			mcp.Description("Comma-separated list of article IDs to archive"),
		),
	), s.handleArchiveArticles)

	s.mcpServer.AddTool(mcp.NewTool("get_reading_stats",
		mcp.WithDescription(
			"Get reading statistics: totals, read rate, top hashtags and creators, "+
				"reads per day this week, and the current reading streak."),
	), s.handleGetReadingStats)

	s.mcpServer.AddTool(mcp.NewTool("save_article",
		mcp.WithDescription("Save an article URL to the reading queue. Metadata is looked up from the page."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The http(s) URL of the article"),
		),
	), s.handleSaveArticle)

	s.mcpServer.AddTool(mcp.NewTool("set_article_status",
		mcp.WithDescription("Move a saved article between unread, reading, read and archived."),
		mcp.WithString("article_id",
			mcp.Required(),
			mcp.Description("The ID of the saved article"),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("The new status"),
			mcp.Enum("unread", "reading", "read", "archived"),
		),
	), s.handleSetArticleStatus)

	s.mcpServer.AddTool(mcp.NewTool("search_articles",
		mcp.WithDescription(
			"Search saved articles by title, excerpt, creator or hashtag, "+
				"optionally filtered by status. Newest first."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive text to search for"),
		),
		mcp.WithString("status",
			mcp.Description("Only include articles with this status"),
			mcp.Enum("unread", "reading", "read", "archived"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of articles per page (default: 50, max: 200)"),
		),
	), s.handleSearchArticles)
}
