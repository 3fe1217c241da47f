package client

import (
	"context"

	"github.com/mediakit-io/ytapi/internal/http"
	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// PlaylistsClient implements youtube.PlaylistsClient.
type PlaylistsClient struct {
	httpClient *http.Client
}

// NewPlaylistsClient creates a new playlists client.
func NewPlaylistsClient(httpClient *http.Client) *PlaylistsClient {
	return &PlaylistsClient{httpClient: httpClient}
}

// Get implements youtube.PlaylistsClient.Get.
func (c *PlaylistsClient) Get(ctx context.Context, id string, opts *youtube.QueryParams) (*youtube.Playlist, error) {
	return getFirstAs[youtube.Playlist](ctx, c.httpClient, "playlists", id, opts)
}

// ByChannel implements youtube.PlaylistsClient.ByChannel.
func (c *PlaylistsClient) ByChannel(ctx context.Context, channelID string, count int, opts *youtube.QueryParams) ([]youtube.Playlist, error) {
	params := withDefaultPart(opts, "playlists")
	params.Set("channelId", channelID)

	return listPages[youtube.Playlist](ctx, c.httpClient, "/playlists", count, params)
}
