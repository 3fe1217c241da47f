package client

import (
	"context"

	"github.com/mediakit-io/ytapi/internal/http"
	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// PlaylistItemsClient implements youtube.PlaylistItemsClient.
type PlaylistItemsClient struct {
	httpClient *http.Client
}

// NewPlaylistItemsClient creates a new playlist items client.
func NewPlaylistItemsClient(httpClient *http.Client) *PlaylistItemsClient {
	return &PlaylistItemsClient{httpClient: httpClient}
}

// List implements youtube.PlaylistItemsClient.List. Entries arrive in
// playlist order across pages.
func (c *PlaylistItemsClient) List(ctx context.Context, playlistID string, count int, opts *youtube.QueryParams) ([]youtube.PlaylistItem, error) {
	params := withDefaultPart(opts, "playlistItems")
	params.Set("playlistId", playlistID)

	return listPages[youtube.PlaylistItem](ctx, c.httpClient, "/playlistItems", count, params)
}
