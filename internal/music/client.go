// Package music wraps the external music-catalog search API. The provider is
// opaque to the rest of the service: callers hand it a query and get back
// embeddable YouTube links for matching songs.
package music

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

//go:generate mockgen -destination=../mocks/mock_music_searcher.go -package=mocks github.com/danielstevenson70/ITGHM-api/internal/music Searcher

type Searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds the process-wide search client. It is constructed once at
// startup and injected into the services that need it.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type searchResult struct {
	ResultType string `json:"resultType"`
	VideoID    string `json:"videoId"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

// Search queries the provider for songs matching the query and returns embed
// URLs for each hit.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/search?filter=songs&query=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	var links []string
	for _, result := range body.Results {
		if result.ResultType == "song" && result.VideoID != "" {
			links = append(links, fmt.Sprintf("https://www.youtube.com/embed/%s", result.VideoID))
		}
	}

	return links, nil
}
