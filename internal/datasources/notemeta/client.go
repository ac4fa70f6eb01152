package notemeta

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jbeshir/reading-queue/internal/datasources"
	"github.com/jbeshir/reading-queue/internal/domain"
)

var _ datasources.MetadataFetcher = (*Client)(nil)

// maxPageBytes bounds how much of a page is read.
const maxPageBytes = 4 << 20

// Client fetches an article page and extracts its metadata.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new Client whose requests give up after timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

func (c *Client) FetchMetadata(ctx context.Context, rawURL string) (domain.ArticleMetadata, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil || pageURL.Host == "" || (pageURL.Scheme != "http" && pageURL.Scheme != "https") {
		return domain.ArticleMetadata{}, fmt.Errorf("%w: invalid URL %q", datasources.ErrMetadataUnavailable, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.ArticleMetadata{}, fmt.Errorf("creating request: %w", err)
	}

	// note.com serves a bare shell to clients that do not look like browsers.
	req.Header.Set("User-Agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "ja,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ArticleMetadata{}, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.ArticleMetadata{}, fmt.Errorf("%w: page returned status %d",
			datasources.ErrMetadataUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return domain.ArticleMetadata{}, fmt.Errorf("reading page: %w", err)
	}

	return ParsePage(body, pageURL)
}
