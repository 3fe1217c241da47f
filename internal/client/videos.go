package client

import (
	"context"

	"github.com/mediakit-io/ytapi/internal/http"
	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// VideosClient implements youtube.VideosClient.
type VideosClient struct {
	httpClient *http.Client
}

// NewVideosClient creates a new videos client.
func NewVideosClient(httpClient *http.Client) *VideosClient {
	return &VideosClient{httpClient: httpClient}
}

// Get implements youtube.VideosClient.Get.
func (c *VideosClient) Get(ctx context.Context, id string, opts *youtube.QueryParams) (*youtube.Video, error) {
	return getFirstAs[youtube.Video](ctx, c.httpClient, "videos", id, opts)
}

// List implements youtube.VideosClient.List.
func (c *VideosClient) List(ctx context.Context, count int, opts *youtube.QueryParams) ([]youtube.Video, error) {
	params := withDefaultPart(opts, "videos")

	return listPages[youtube.Video](ctx, c.httpClient, "/videos", count, params)
}

// MostPopular implements youtube.VideosClient.MostPopular.
func (c *VideosClient) MostPopular(ctx context.Context, count int, opts *youtube.QueryParams) ([]youtube.Video, error) {
	params := withDefaultPart(opts, "videos")
	params.Set("chart", "mostPopular")

	return listPages[youtube.Video](ctx, c.httpClient, "/videos", count, params)
}
