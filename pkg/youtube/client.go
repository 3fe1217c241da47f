package youtube

import (
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// Client is the high-level entry point to the API.
type Client interface {
	// Typed resource clients.
	Videos() VideosClient
	Channels() ChannelsClient
	Playlists() PlaylistsClient
	PlaylistItems() PlaylistItemsClient
	Search() SearchClient

	// GetResource fetches the first item matching params from the endpoint
	// configured for resourceType, merging the type's default part selectors
	// underneath the caller's parameters. It returns the raw item so callers
	// can work with resource types the typed clients do not cover.
	GetResource(ctx context.Context, resourceType string, params url.Values) (json.RawMessage, error)

	// GetResourceByID is the identity-qualified form of GetResource; id wins
	// over any id already present in params.
	GetResourceByID(ctx context.Context, resourceType, id string, params url.Values) (json.RawMessage, error)
}

// VideosClient provides access to the videos endpoint.
type VideosClient interface {
	// Get fetches a single video by ID.
	Get(ctx context.Context, id string, opts *QueryParams) (*Video, error)
	// List fetches videos matching opts, up to count items across pages.
	List(ctx context.Context, count int, opts *QueryParams) ([]Video, error)
	// MostPopular fetches the most-popular chart, up to count items.
	MostPopular(ctx context.Context, count int, opts *QueryParams) ([]Video, error)
}

// ChannelsClient provides access to the channels endpoint.
type ChannelsClient interface {
	Get(ctx context.Context, id string, opts *QueryParams) (*Channel, error)
	// ByUsername fetches a channel by its legacy username.
	ByUsername(ctx context.Context, username string, opts *QueryParams) (*Channel, error)
}

// PlaylistsClient provides access to the playlists endpoint.
type PlaylistsClient interface {
	Get(ctx context.Context, id string, opts *QueryParams) (*Playlist, error)
	// ByChannel lists a channel's playlists, up to count items.
	ByChannel(ctx context.Context, channelID string, count int, opts *QueryParams) ([]Playlist, error)
}

// PlaylistItemsClient provides access to the playlistItems endpoint.
type PlaylistItemsClient interface {
	// List fetches a playlist's entries in playlist order, up to count items.
	List(ctx context.Context, playlistID string, count int, opts *QueryParams) ([]PlaylistItem, error)
}

// SearchClient provides access to the search endpoint.
type SearchClient interface {
	// List runs a free-text search, up to count items across pages.
	List(ctx context.Context, query string, count int, opts *QueryParams) ([]SearchResult, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a youtube.Client.
//
// APIKey is the only supported credential; it is appended to every request's
// query string. Obtaining or rotating keys is out of scope for the client.
//
// Per-request timeouts should be controlled via the context passed to client
// methods. Retries are disabled by default so every request maps to exactly
// one network call; set RetryMax only when the caller can tolerate repeated
// quota consumption for transient 5xx/429 responses.
type Config struct {
	// APIEndpoint is the base URL of the API. ytclient.New defaults it to
	// the public endpoint and normalizes a missing scheme or trailing slash.
	APIEndpoint string

	// APIKey is the API credential sent with every request. Empty is
	// allowed; requests are then sent without a credential and typically
	// rejected by the server.
	APIKey string

	// HTTPTimeout is the underlying transport timeout. Zero means the
	// library default.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of transport-level retries for 5xx and
	// 429 responses. Zero disables retries.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is the optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
