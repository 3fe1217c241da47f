package client

import (
	"context"
	"net/url"

	"github.com/mediakit-io/ytapi/internal/http"
	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// ChannelsClient implements youtube.ChannelsClient.
type ChannelsClient struct {
	httpClient *http.Client
}

// NewChannelsClient creates a new channels client.
func NewChannelsClient(httpClient *http.Client) *ChannelsClient {
	return &ChannelsClient{httpClient: httpClient}
}

// Get implements youtube.ChannelsClient.Get.
func (c *ChannelsClient) Get(ctx context.Context, id string, opts *youtube.QueryParams) (*youtube.Channel, error) {
	return getFirstAs[youtube.Channel](ctx, c.httpClient, "channels", id, opts)
}

// ByUsername implements youtube.ChannelsClient.ByUsername. Legacy usernames
// are resolved with the forUsername filter instead of id.
func (c *ChannelsClient) ByUsername(ctx context.Context, username string, opts *youtube.QueryParams) (*youtube.Channel, error) {
	params := youtube.MergeValues(opts.ToValues(), url.Values{"forUsername": []string{username}})

	raw, err := getResource(ctx, c.httpClient, "channels", params)
	if err != nil {
		return nil, err
	}

	return decodeItem[youtube.Channel]("channels", raw)
}
