// Package client provides an HTTP client for the reading queue API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/reading-queue/internal/domain"
)

// QueueResponse is the reader's current reading queue.
type QueueResponse struct {
	Queue       []domain.Article `json:"queue"`
	TimeSlot    domain.TimeSlot  `json:"time_slot"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// ArchiveSuggestionsResponse lists articles the reader may want to archive.
type ArchiveSuggestionsResponse struct {
	ArchiveSuggestions []domain.ArchiveSuggestion `json:"archive_suggestions"`
	GeneratedAt        time.Time                  `json:"generated_at"`
}

// ArticlesResponse represents the paginated response for article lists.
type ArticlesResponse struct {
	Data     []domain.Article `json:"data"`
	Metadata struct {
		Total    int `json:"total"`
		Page     int `json:"page"`
		PageSize int `json:"page_size"`
	} `json:"metadata"`
}

// SaveArticleResponse is the saved article with the views it produced.
type SaveArticleResponse struct {
	Article domain.Article      `json:"article"`
	Views   domain.ReadingViews `json:"views"`
}

// SearchFilters contains search parameters for listing articles.
type SearchFilters struct {
	Query    string
	Status   string
	Page     int
	PageSize int
}

// Client is an HTTP client for the reading queue API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}

	return c.handleResponse(resp, result)
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (f SearchFilters) queryParams() url.Values {
	params := url.Values{}

	if f.Query != "" {
		params.Set("q", f.Query)
	}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(f.PageSize))
	}

	return params
}

// GetQueue returns the reader's prioritised reading queue.
func (c *Client) GetQueue(ctx context.Context) (*QueueResponse, error) {
	var result QueueResponse
	if err := c.doRequest(ctx, http.MethodGet, "/v1/queue", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetArchiveSuggestions returns the articles suggested for archiving.
func (c *Client) GetArchiveSuggestions(ctx context.Context) (*ArchiveSuggestionsResponse, error) {
	var result ArchiveSuggestionsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/v1/archive-suggestions", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStats returns the reader's reading statistics.
func (c *Client) GetStats(ctx context.Context) (*domain.ReadingStats, error) {
	var result domain.ReadingStats
	if err := c.doRequest(ctx, http.MethodGet, "/v1/stats", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetArticle returns a single saved article.
func (c *Client) GetArticle(ctx context.Context, articleID string) (*domain.Article, error) {
	var result domain.Article
	path := "/v1/articles/" + url.PathEscape(articleID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchArticles lists saved articles matching filters.
func (c *Client) SearchArticles(ctx context.Context, filters SearchFilters) (*ArticlesResponse, error) {
	path := "/v1/articles"
	if params := filters.queryParams(); len(params) > 0 {
		path += "?" + params.Encode()
	}

	var result ArticlesResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SaveArticle adds a URL to the reader's collection.
func (c *Client) SaveArticle(ctx context.Context, rawURL string) (*SaveArticleResponse, error) {
	var result SaveArticleResponse
	body := map[string]string{"url": rawURL}
	if err := c.doRequest(ctx, http.MethodPost, "/v1/articles", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SetArticleStatus moves an article to status.
func (c *Client) SetArticleStatus(ctx context.Context, articleID, status string) error {
	path := fmt.Sprintf("/v1/articles/%s/status/%s", url.PathEscape(articleID), url.PathEscape(status))
	return c.doRequest(ctx, http.MethodPost, path, nil, nil)
}

// ArchiveArticles archives several articles at once.
func (c *Client) ArchiveArticles(ctx context.Context, articleIDs []string) error {
	body := map[string][]string{"ids": articleIDs}
	return c.doRequest(ctx, http.MethodPost, "/v1/articles/archive", body, nil)
}
