package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jbeshir/reading-queue/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) handleGetReadingQueue(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	queue, err := s.client.GetQueue(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get reading queue: %v", err)), nil
	}

	if len(queue.Queue) == 0 {
		return mcp.NewToolResultText("The reading queue is empty."), nil
	}

	header := fmt.Sprintf("Queue for the %s (%d article(s)):", queue.TimeSlot, len(queue.Queue))
	return formatJSONResult(header, queue.Queue)
}

func (s *Server) handleGetArchiveSuggestions(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	suggestions, err := s.client.GetArchiveSuggestions(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get archive suggestions: %v", err)), nil
	}

	if len(suggestions.ArchiveSuggestions) == 0 {
		return mcp.NewToolResultText("No articles to archive."), nil
	}

	header := fmt.Sprintf("Found %d archive suggestion(s):", len(suggestions.ArchiveSuggestions))
	return formatJSONResult(header, suggestions.ArchiveSuggestions)
}

func (s *Server) handleArchiveArticles(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	raw, ok := args["article_ids"].(string)
	ids := splitAndTrim(raw)
	if !ok || len(ids) == 0 {
		return mcp.NewToolResultError("article_ids is required"), nil
	}

	if err := s.client.ArchiveArticles(ctx, ids); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to archive articles: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Archived %d article(s)", len(ids))), nil
}

func (s *Server) handleGetReadingStats(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	stats, err := s.client.GetStats(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get reading stats: %v", err)), nil
	}

	return formatJSONResult("", stats)
}

func (s *Server) handleSaveArticle(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	rawURL, ok := args["url"].(string)
	if !ok || rawURL == "" {
		return mcp.NewToolResultError("url is required"), nil
	}

	saved, err := s.client.SaveArticle(ctx, rawURL)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save article: %v", err)), nil
	}

	header := fmt.Sprintf("Saved article %s (%d min read):", saved.Article.ID, saved.Article.ReadingTimeMinutes)
	return formatJSONResult(header, saved.Article)
}

func (s *Server) handleSetArticleStatus(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	articleID, ok := args["article_id"].(string)
	if !ok || articleID == "" {
		return mcp.NewToolResultError("article_id is required"), nil
	}

	status, ok := args["status"].(string)
	if !ok || status == "" {
		return mcp.NewToolResultError("status is required (unread, reading, read or archived)"), nil
	}
	status = strings.ToLower(status)

	if err := s.client.SetArticleStatus(ctx, articleID, status); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set article status: %v", err)), nil
	}

	msg := fmt.Sprintf("Successfully marked article %s as %s", articleID, status)
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleSearchArticles(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	filters := parseSearchFilters(request.GetArguments())

	articles, err := s.client.SearchArticles(ctx, filters)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search articles: %v", err)), nil
	}

	if len(articles.Data) == 0 {
		return mcp.NewToolResultText("No articles found."), nil
	}

	header := fmt.Sprintf("Found %d article(s), showing page %d:", articles.Metadata.Total, articles.Metadata.Page)
	return formatJSONResult(header, articles.Data)
}

func parseSearchFilters(args map[string]any) client.SearchFilters {
	filters := client.SearchFilters{
		Page:     1,
		PageSize: 50,
	}

	if query, ok := args["query"].(string); ok {
		filters.Query = strings.TrimSpace(query)
	}
	if status, ok := args["status"].(string); ok {
		filters.Status = strings.ToLower(status)
	}
	if p, ok := args["page"].(float64); ok && p > 0 {
		filters.Page = int(p)
	}
	if ps, ok := args["page_size"].(float64); ok && ps > 0 {
		filters.PageSize = min(int(ps), 200)
	}
	return filters
}

func splitAndTrim(s string) []string {
	var parts []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func formatJSONResult(header string, v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format result: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	if header == "" {
		return mcp.NewToolResultText(string(data)), nil
	}
	return mcp.NewToolResultText(header + "\n\n" + string(data)), nil
}
