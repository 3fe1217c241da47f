package client

import (
	"context"

	"github.com/mediakit-io/ytapi/internal/http"
	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// SearchClient implements youtube.SearchClient.
type SearchClient struct {
	httpClient *http.Client
}

// NewSearchClient creates a new search client.
func NewSearchClient(httpClient *http.Client) *SearchClient {
	return &SearchClient{httpClient: httpClient}
}

// List implements youtube.SearchClient.List.
func (c *SearchClient) List(ctx context.Context, query string, count int, opts *youtube.QueryParams) ([]youtube.SearchResult, error) {
	params := withDefaultPart(opts, "search")
	if query != "" {
		params.Set("q", query)
	}

	return listPages[youtube.SearchResult](ctx, c.httpClient, "/search", count, params)
}
