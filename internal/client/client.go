// Package client implements the youtube.Client interface.
package client

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/mediakit-io/ytapi/internal/auth"
	"github.com/mediakit-io/ytapi/internal/http"
	"github.com/mediakit-io/ytapi/pkg/youtube"
)

// Client implements the youtube.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     youtube.Logger

	// Resource clients
	videos        youtube.VideosClient
	channels      youtube.ChannelsClient
	playlists     youtube.PlaylistsClient
	playlistItems youtube.PlaylistItemsClient
	search        youtube.SearchClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *youtube.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// New creates a new API client.
func New(config *youtube.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, youtube.ErrAPIEndpointRequired
	}

	var keys auth.KeyProvider

	if config.APIKey != "" {
		provider, err := auth.NewStaticKeyProvider(config.APIKey)
		if err != nil {
			return nil, err
		}

		keys = provider
	}

	httpClient := http.NewClient(config.APIEndpoint, keys, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.APIEndpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithKeyProvider creates a new API client with a custom key provider.
func NewWithKeyProvider(config *youtube.Config, keys auth.KeyProvider) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, youtube.ErrAPIEndpointRequired
	}

	httpClient := http.NewClient(config.APIEndpoint, keys, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.APIEndpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.videos = NewVideosClient(c.httpClient)
	c.channels = NewChannelsClient(c.httpClient)
	c.playlists = NewPlaylistsClient(c.httpClient)
	c.playlistItems = NewPlaylistItemsClient(c.httpClient)
	c.search = NewSearchClient(c.httpClient)
}

// Videos implements youtube.Client.Videos.
func (c *Client) Videos() youtube.VideosClient {
	return c.videos
}

// Channels implements youtube.Client.Channels.
func (c *Client) Channels() youtube.ChannelsClient {
	return c.channels
}

// Playlists implements youtube.Client.Playlists.
func (c *Client) Playlists() youtube.PlaylistsClient {
	return c.playlists
}

// PlaylistItems implements youtube.Client.PlaylistItems.
func (c *Client) PlaylistItems() youtube.PlaylistItemsClient {
	return c.playlistItems
}

// Search implements youtube.Client.Search.
func (c *Client) Search() youtube.SearchClient {
	return c.search
}

// GetResource implements youtube.Client.GetResource.
func (c *Client) GetResource(ctx context.Context, resourceType string, params url.Values) (json.RawMessage, error) {
	return getResource(ctx, c.httpClient, resourceType, params)
}

// GetResourceByID implements youtube.Client.GetResourceByID.
func (c *Client) GetResourceByID(ctx context.Context, resourceType, id string, params url.Values) (json.RawMessage, error) {
	return getResourceByID(ctx, c.httpClient, resourceType, id, params)
}

// loggerAdapter adapts youtube.Logger to http.Logger.
type loggerAdapter struct {
	logger youtube.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
